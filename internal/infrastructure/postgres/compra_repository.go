package postgres

import (
	"context"
	"fmt"

	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo implementación de CompraRepository sobre PostgreSQL.
type CompraRepo struct {
	q Querier
}

func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

func (r *CompraRepo) Create(ctx context.Context, c *entity.Compra) error {
	query := `
		INSERT INTO compras (proveedor_id, variante_id, cantidad, costo_unitario, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.ProveedorID, c.VarianteID, c.Cantidad, c.CostoUnitario, c.Fecha, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert compra: %w", err)
	}
	return nil
}

func (r *CompraRepo) List(ctx context.Context, limit, offset int) ([]*entity.Compra, error) {
	query := `
		SELECT id, proveedor_id, variante_id, cantidad, costo_unitario, fecha, created_at
		FROM compras
		ORDER BY fecha DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Compra
	for rows.Next() {
		var c entity.Compra
		if err := rows.Scan(&c.ID, &c.ProveedorID, &c.VarianteID, &c.Cantidad, &c.CostoUnitario, &c.Fecha, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
