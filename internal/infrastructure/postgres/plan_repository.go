package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación de PlanRepository sobre PostgreSQL.
type PlanRepo struct {
	q Querier
}

func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

const planCols = `id, nombre, descripcion, precio, duracion_meses, created_at, updated_at`

func (r *PlanRepo) Create(ctx context.Context, p *entity.Plan) error {
	query := `
		INSERT INTO planes (nombre, descripcion, precio, duracion_meses, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, p.Nombre, p.Descripcion, p.Precio, p.DuracionMes, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

func (r *PlanRepo) GetByID(ctx context.Context, id int64) (*entity.Plan, error) {
	var p entity.Plan
	err := r.q.QueryRow(ctx, `SELECT `+planCols+` FROM planes WHERE id = $1`, id).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.DuracionMes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}

func (r *PlanRepo) List(ctx context.Context, limit, offset int) ([]*entity.Plan, error) {
	rows, err := r.q.Query(ctx, `SELECT `+planCols+` FROM planes ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list planes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.DuracionMes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PlanRepo) Update(ctx context.Context, p *entity.Plan) error {
	query := `
		UPDATE planes
		SET nombre = $2, descripcion = $3, precio = $4, duracion_meses = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.Descripcion, p.Precio, p.DuracionMes, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	return nil
}

func (r *PlanRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM planes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}
