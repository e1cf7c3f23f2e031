package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

var _ repository.InstructorRepository = (*InstructorRepo)(nil)

// InstructorRepo implementación de InstructorRepository sobre PostgreSQL.
type InstructorRepo struct {
	q Querier
}

func NewInstructorRepository(q Querier) *InstructorRepo {
	return &InstructorRepo{q: q}
}

const instructorCols = `id, usuario_id, especialidad, estado, created_at, updated_at`

// Create persiste un perfil de instructor.
func (r *InstructorRepo) Create(ctx context.Context, i *entity.Instructor) error {
	query := `
		INSERT INTO instructores (usuario_id, especialidad, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, i.UsuarioID, i.Especialidad, i.Estado, i.CreatedAt, i.UpdatedAt).Scan(&i.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPerfilDuplicado
		}
		return fmt.Errorf("insert instructor: %w", err)
	}
	return nil
}

func (r *InstructorRepo) GetByID(ctx context.Context, id int64) (*entity.Instructor, error) {
	return r.scanOne(ctx, `SELECT `+instructorCols+` FROM instructores WHERE id = $1`, id)
}

func (r *InstructorRepo) GetByUsuarioID(ctx context.Context, usuarioID int64) (*entity.Instructor, error) {
	return r.scanOne(ctx, `SELECT `+instructorCols+` FROM instructores WHERE usuario_id = $1`, usuarioID)
}

func (r *InstructorRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Instructor, error) {
	var i entity.Instructor
	err := r.q.QueryRow(ctx, query, args...).Scan(&i.ID, &i.UsuarioID, &i.Especialidad, &i.Estado, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get instructor: %w", err)
	}
	return &i, nil
}

// List lista solo perfiles activos, paginados.
func (r *InstructorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Instructor, error) {
	query := `SELECT ` + instructorCols + ` FROM instructores WHERE estado = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, entity.EstadoActivo, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list instructores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Instructor
	for rows.Next() {
		var i entity.Instructor
		if err := rows.Scan(&i.ID, &i.UsuarioID, &i.Especialidad, &i.Estado, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan instructor: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

func (r *InstructorRepo) Update(ctx context.Context, i *entity.Instructor) error {
	query := `
		UPDATE instructores
		SET usuario_id = $2, especialidad = $3, estado = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, i.ID, i.UsuarioID, i.Especialidad, i.Estado, i.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPerfilDuplicado
		}
		return fmt.Errorf("update instructor: %w", err)
	}
	return nil
}

// SoftDelete marca el perfil como Inactivo conservando la fila.
func (r *InstructorRepo) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE instructores SET estado = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, entity.EstadoInactivo, time.Now())
	if err != nil {
		return fmt.Errorf("soft delete instructor: %w", err)
	}
	return nil
}
