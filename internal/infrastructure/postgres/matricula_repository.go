package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

var _ repository.MatriculaRepository = (*MatriculaRepo)(nil)

// MatriculaRepo implementación de MatriculaRepository sobre PostgreSQL.
type MatriculaRepo struct {
	q Querier
}

func NewMatriculaRepository(q Querier) *MatriculaRepo {
	return &MatriculaRepo{q: q}
}

// selectDetalle trae los nombres de estudiante, clase y plan para presentación.
const selectDetalle = `
	SELECT m.id, m.estudiante_id, m.clase_id, m.plan_id, m.fecha, m.estado, m.created_at,
	       u.nombre AS estudiante,
	       c.nombre AS clase,
	       p.nombre AS plan
	FROM matriculas m
	JOIN estudiantes e ON e.id = m.estudiante_id
	JOIN usuarios u ON u.id = e.usuario_id
	JOIN clases c ON c.id = m.clase_id
	JOIN planes p ON p.id = m.plan_id`

func (r *MatriculaRepo) Create(ctx context.Context, m *entity.Matricula) error {
	query := `
		INSERT INTO matriculas (estudiante_id, clase_id, plan_id, fecha, estado, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, m.EstudianteID, m.ClaseID, m.PlanID, m.Fecha, m.Estado, m.CreatedAt).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert matricula: %w", err)
	}
	return nil
}

// GetDetalle devuelve la matrícula con los nombres denormalizados.
func (r *MatriculaRepo) GetDetalle(ctx context.Context, id int64) (*entity.MatriculaDetalle, error) {
	var d entity.MatriculaDetalle
	err := r.q.QueryRow(ctx, selectDetalle+` WHERE m.id = $1`, id).Scan(
		&d.ID, &d.EstudianteID, &d.ClaseID, &d.PlanID, &d.Fecha, &d.Estado, &d.CreatedAt,
		&d.Estudiante, &d.Clase, &d.Plan,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get matricula: %w", err)
	}
	return &d, nil
}

// ListByEstudiante lista las matrículas de un estudiante (para el gate de propiedad).
func (r *MatriculaRepo) ListByEstudiante(ctx context.Context, estudianteID int64) ([]*entity.MatriculaDetalle, error) {
	return r.scanList(ctx, selectDetalle+` WHERE m.estudiante_id = $1 ORDER BY m.fecha DESC`, estudianteID)
}

func (r *MatriculaRepo) List(ctx context.Context, limit, offset int) ([]*entity.MatriculaDetalle, error) {
	return r.scanList(ctx, selectDetalle+` ORDER BY m.id LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *MatriculaRepo) scanList(ctx context.Context, query string, args ...any) ([]*entity.MatriculaDetalle, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list matriculas: %w", err)
	}
	defer rows.Close()
	var list []*entity.MatriculaDetalle
	for rows.Next() {
		var d entity.MatriculaDetalle
		if err := rows.Scan(
			&d.ID, &d.EstudianteID, &d.ClaseID, &d.PlanID, &d.Fecha, &d.Estado, &d.CreatedAt,
			&d.Estudiante, &d.Clase, &d.Plan,
		); err != nil {
			return nil, fmt.Errorf("scan matricula: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
