package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

const proveedorCols = `id, nit, nombre, email, telefono, created_at, updated_at`

func (r *ProveedorRepo) Create(ctx context.Context, p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (nit, nombre, email, telefono, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, p.NIT, p.Nombre, p.Email, p.Telefono, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) GetByID(ctx context.Context, id int64) (*entity.Proveedor, error) {
	return r.scanOne(ctx, `SELECT `+proveedorCols+` FROM proveedores WHERE id = $1`, id)
}

func (r *ProveedorRepo) GetByNIT(ctx context.Context, nit string) (*entity.Proveedor, error) {
	return r.scanOne(ctx, `SELECT `+proveedorCols+` FROM proveedores WHERE nit = $1`, nit)
}

func (r *ProveedorRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := r.q.QueryRow(ctx, query, args...).Scan(&p.ID, &p.NIT, &p.Nombre, &p.Email, &p.Telefono, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

func (r *ProveedorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Proveedor, error) {
	rows, err := r.q.Query(ctx, `SELECT `+proveedorCols+` FROM proveedores ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.NIT, &p.Nombre, &p.Email, &p.Telefono, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProveedorRepo) Update(ctx context.Context, p *entity.Proveedor) error {
	query := `
		UPDATE proveedores
		SET nit = $2, nombre = $3, email = $4, telefono = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.NIT, p.Nombre, p.Email, p.Telefono, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}
