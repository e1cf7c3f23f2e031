package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL.
// Cubre el catálogo y sus variantes (talla/color con stock propio).
type ProductoRepo struct {
	q Querier
}

func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoCols = `id, nombre, descripcion, categoria, created_at, updated_at`
const varianteCols = `id, producto_id, talla, color, precio, stock, created_at, updated_at`

func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, descripcion, categoria, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, p.Nombre, p.Descripcion, p.Categoria, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(ctx, `SELECT `+productoCols+` FROM productos WHERE id = $1`, id).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Categoria, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

func (r *ProductoRepo) List(ctx context.Context, limit, offset int) ([]*entity.Producto, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productoCols+` FROM productos ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Categoria, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, categoria = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.Descripcion, p.Categoria, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete borra el producto; las variantes caen por ON DELETE CASCADE.
func (r *ProductoRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) CreateVariante(ctx context.Context, v *entity.VarianteProducto) error {
	query := `
		INSERT INTO variantes_producto (producto_id, talla, color, precio, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, v.ProductoID, v.Talla, v.Color, v.Precio, v.Stock, v.CreatedAt, v.UpdatedAt).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert variante: %w", err)
	}
	return nil
}

func (r *ProductoRepo) GetVariante(ctx context.Context, id int64) (*entity.VarianteProducto, error) {
	return r.scanVariante(ctx, `SELECT `+varianteCols+` FROM variantes_producto WHERE id = $1`, id)
}

// GetVarianteForUpdate bloquea la variante para ajustar stock en transacción.
func (r *ProductoRepo) GetVarianteForUpdate(ctx context.Context, id int64) (*entity.VarianteProducto, error) {
	return r.scanVariante(ctx, `SELECT `+varianteCols+` FROM variantes_producto WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductoRepo) scanVariante(ctx context.Context, query string, args ...any) (*entity.VarianteProducto, error) {
	var v entity.VarianteProducto
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.ProductoID, &v.Talla, &v.Color, &v.Precio, &v.Stock, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variante: %w", err)
	}
	return &v, nil
}

func (r *ProductoRepo) ListVariantes(ctx context.Context, productoID int64) ([]*entity.VarianteProducto, error) {
	rows, err := r.q.Query(ctx, `SELECT `+varianteCols+` FROM variantes_producto WHERE producto_id = $1 ORDER BY id`, productoID)
	if err != nil {
		return nil, fmt.Errorf("list variantes: %w", err)
	}
	defer rows.Close()
	var list []*entity.VarianteProducto
	for rows.Next() {
		var v entity.VarianteProducto
		if err := rows.Scan(&v.ID, &v.ProductoID, &v.Talla, &v.Color, &v.Precio, &v.Stock, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan variante: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

func (r *ProductoRepo) UpdateVariante(ctx context.Context, v *entity.VarianteProducto) error {
	query := `
		UPDATE variantes_producto
		SET talla = $2, color = $3, precio = $4, stock = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, v.ID, v.Talla, v.Color, v.Precio, v.Stock, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update variante: %w", err)
	}
	return nil
}

func (r *ProductoRepo) ActualizarStock(ctx context.Context, varianteID int64, stock int) error {
	query := `UPDATE variantes_producto SET stock = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, varianteID, stock, time.Now())
	if err != nil {
		return fmt.Errorf("actualizar stock: %w", err)
	}
	return nil
}
