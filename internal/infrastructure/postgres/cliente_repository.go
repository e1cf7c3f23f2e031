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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteCols = `id, nit, nombre, email, telefono, direccion, created_at, updated_at`

func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (nit, nombre, email, telefono, direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.NIT, c.Nombre, c.Email, c.Telefono, c.Direccion, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	return r.scanOne(ctx, `SELECT `+clienteCols+` FROM clientes WHERE id = $1`, id)
}

// GetByNIT busca al cliente por su NIT, la llave de negocio de la tienda.
func (r *ClienteRepo) GetByNIT(ctx context.Context, nit string) (*entity.Cliente, error) {
	return r.scanOne(ctx, `SELECT `+clienteCols+` FROM clientes WHERE nit = $1`, nit)
}

func (r *ClienteRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.NIT, &c.Nombre, &c.Email, &c.Telefono, &c.Direccion, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

func (r *ClienteRepo) List(ctx context.Context, limit, offset int) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(ctx, `SELECT `+clienteCols+` FROM clientes ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.NIT, &c.Nombre, &c.Email, &c.Telefono, &c.Direccion, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nit = $2, nombre = $3, email = $4, telefono = $5, direccion = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.NIT, c.Nombre, c.Email, c.Telefono, c.Direccion, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
