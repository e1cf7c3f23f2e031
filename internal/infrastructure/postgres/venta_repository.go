package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository sobre PostgreSQL.
type VentaRepo struct {
	q Querier
}

func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

const ventaCols = `id, cliente_id, fecha, total, estado, created_at`

// Create inserta la cabecera y sus líneas. Debe invocarse dentro de una
// transacción; los ajustes de stock ocurren en el mismo ámbito.
func (r *VentaRepo) Create(ctx context.Context, v *entity.Venta, detalles []*entity.DetalleVenta) error {
	query := `
		INSERT INTO ventas (cliente_id, fecha, total, estado, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, v.ClienteID, v.Fecha, v.Total, v.Estado, v.CreatedAt).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	detalleQuery := `
		INSERT INTO detalle_ventas (venta_id, variante_id, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	for _, d := range detalles {
		d.VentaID = v.ID
		if err := r.q.QueryRow(ctx, detalleQuery, d.VentaID, d.VarianteID, d.Cantidad, d.PrecioUnitario, d.Subtotal).Scan(&d.ID); err != nil {
			return fmt.Errorf("insert detalle venta: %w", err)
		}
	}
	return nil
}

func (r *VentaRepo) GetByID(ctx context.Context, id int64) (*entity.Venta, error) {
	return r.scanOne(ctx, `SELECT `+ventaCols+` FROM ventas WHERE id = $1`, id)
}

// GetByIDForUpdate bloquea la cabecera para que dos anulaciones concurrentes
// no observen ambas el estado Completada.
func (r *VentaRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Venta, error) {
	return r.scanOne(ctx, `SELECT `+ventaCols+` FROM ventas WHERE id = $1 FOR UPDATE`, id)
}

func (r *VentaRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Venta, error) {
	var v entity.Venta
	err := r.q.QueryRow(ctx, query, args...).Scan(&v.ID, &v.ClienteID, &v.Fecha, &v.Total, &v.Estado, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

func (r *VentaRepo) GetDetalles(ctx context.Context, ventaID int64) ([]*entity.DetalleVenta, error) {
	query := `
		SELECT id, venta_id, variante_id, cantidad, precio_unitario, subtotal
		FROM detalle_ventas
		WHERE venta_id = $1
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("detalles venta: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetalleVenta
	for rows.Next() {
		var d entity.DetalleVenta
		if err := rows.Scan(&d.ID, &d.VentaID, &d.VarianteID, &d.Cantidad, &d.PrecioUnitario, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle venta: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Anular marca la venta como Anulada. El stock se restaura en el caso de uso,
// dentro de la misma transacción.
func (r *VentaRepo) Anular(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `UPDATE ventas SET estado = $2 WHERE id = $1`, id, entity.VentaAnulada)
	if err != nil {
		return fmt.Errorf("anular venta: %w", err)
	}
	return nil
}

func (r *VentaRepo) List(ctx context.Context, limit, offset int) ([]*entity.Venta, error) {
	rows, err := r.q.Query(ctx, `SELECT `+ventaCols+` FROM ventas ORDER BY fecha DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.ClienteID, &v.Fecha, &v.Total, &v.Estado, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
