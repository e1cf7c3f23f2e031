package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

var _ repository.ClaseRepository = (*ClaseRepo)(nil)

// ClaseRepo implementación de ClaseRepository sobre PostgreSQL.
type ClaseRepo struct {
	q Querier
}

func NewClaseRepository(q Querier) *ClaseRepo {
	return &ClaseRepo{q: q}
}

const claseCols = `id, nombre, instructor_id, horario, cupos, estado, created_at, updated_at`

func (r *ClaseRepo) Create(ctx context.Context, c *entity.Clase) error {
	query := `
		INSERT INTO clases (nombre, instructor_id, horario, cupos, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.Nombre, c.InstructorID, c.Horario, c.Cupos, c.Estado, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert clase: %w", err)
	}
	return nil
}

func (r *ClaseRepo) GetByID(ctx context.Context, id int64) (*entity.Clase, error) {
	return r.scanOne(ctx, `SELECT `+claseCols+` FROM clases WHERE id = $1`, id)
}

// GetByIDForUpdate bloquea la clase para la validación de elegibilidad de matrícula.
func (r *ClaseRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Clase, error) {
	return r.scanOne(ctx, `SELECT `+claseCols+` FROM clases WHERE id = $1 FOR UPDATE`, id)
}

func (r *ClaseRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Clase, error) {
	var c entity.Clase
	err := r.q.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Nombre, &c.InstructorID, &c.Horario, &c.Cupos, &c.Estado, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get clase: %w", err)
	}
	return &c, nil
}

func (r *ClaseRepo) List(ctx context.Context, limit, offset int) ([]*entity.Clase, error) {
	query := `SELECT ` + claseCols + ` FROM clases ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Clase
	for rows.Next() {
		var c entity.Clase
		if err := rows.Scan(&c.ID, &c.Nombre, &c.InstructorID, &c.Horario, &c.Cupos, &c.Estado, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan clase: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *ClaseRepo) Update(ctx context.Context, c *entity.Clase) error {
	query := `
		UPDATE clases
		SET nombre = $2, instructor_id = $3, horario = $4, cupos = $5, estado = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.Nombre, c.InstructorID, c.Horario, c.Cupos, c.Estado, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update clase: %w", err)
	}
	return nil
}

func (r *ClaseRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete clase: %w", err)
	}
	return nil
}
