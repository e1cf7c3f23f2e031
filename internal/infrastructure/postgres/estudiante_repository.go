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

var _ repository.EstudianteRepository = (*EstudianteRepo)(nil)

// EstudianteRepo implementación de EstudianteRepository sobre PostgreSQL.
type EstudianteRepo struct {
	q Querier
}

func NewEstudianteRepository(q Querier) *EstudianteRepo {
	return &EstudianteRepo{q: q}
}

const estudianteCols = `id, usuario_id, fecha_nacimiento, nivel, estado, estado_preinscripcion, created_at, updated_at`

// Create persiste un perfil de estudiante (o una preinscripción pendiente).
func (r *EstudianteRepo) Create(ctx context.Context, e *entity.Estudiante) error {
	query := `
		INSERT INTO estudiantes (usuario_id, fecha_nacimiento, nivel, estado, estado_preinscripcion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		e.UsuarioID, e.FechaNacimiento, e.Nivel, e.Estado, e.EstadoPreinscripcion, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPerfilDuplicado
		}
		return fmt.Errorf("insert estudiante: %w", err)
	}
	return nil
}

func (r *EstudianteRepo) GetByID(ctx context.Context, id int64) (*entity.Estudiante, error) {
	return r.scanOne(ctx, `SELECT `+estudianteCols+` FROM estudiantes WHERE id = $1`, id)
}

// GetByIDForUpdate bloquea la fila del estudiante dentro de la transacción.
func (r *EstudianteRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Estudiante, error) {
	return r.scanOne(ctx, `SELECT `+estudianteCols+` FROM estudiantes WHERE id = $1 FOR UPDATE`, id)
}

func (r *EstudianteRepo) GetByUsuarioID(ctx context.Context, usuarioID int64) (*entity.Estudiante, error) {
	return r.scanOne(ctx, `SELECT `+estudianteCols+` FROM estudiantes WHERE usuario_id = $1`, usuarioID)
}

func (r *EstudianteRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Estudiante, error) {
	var e entity.Estudiante
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.UsuarioID, &e.FechaNacimiento, &e.Nivel, &e.Estado, &e.EstadoPreinscripcion, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estudiante: %w", err)
	}
	return &e, nil
}

// PropietarioDe devuelve el usuario dueño del perfil para el gate de propiedad.
func (r *EstudianteRepo) PropietarioDe(ctx context.Context, id int64) (int64, bool, error) {
	var usuarioID int64
	err := r.q.QueryRow(ctx, `SELECT usuario_id FROM estudiantes WHERE id = $1`, id).Scan(&usuarioID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("propietario de estudiante: %w", err)
	}
	return usuarioID, true, nil
}

func (r *EstudianteRepo) List(ctx context.Context, limit, offset int) ([]*entity.Estudiante, error) {
	query := `SELECT ` + estudianteCols + ` FROM estudiantes WHERE estado = $1 ORDER BY id LIMIT $2 OFFSET $3`
	return r.scanList(ctx, query, entity.EstadoActivo, limit, offset)
}

// ListPreinscripciones lista las solicitudes aún pendientes de decisión.
func (r *EstudianteRepo) ListPreinscripciones(ctx context.Context, limit, offset int) ([]*entity.Estudiante, error) {
	query := `SELECT ` + estudianteCols + ` FROM estudiantes WHERE estado_preinscripcion = $1 ORDER BY created_at LIMIT $2 OFFSET $3`
	return r.scanList(ctx, query, entity.PreinscripcionPendiente, limit, offset)
}

func (r *EstudianteRepo) scanList(ctx context.Context, query string, args ...any) ([]*entity.Estudiante, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list estudiantes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Estudiante
	for rows.Next() {
		var e entity.Estudiante
		if err := rows.Scan(&e.ID, &e.UsuarioID, &e.FechaNacimiento, &e.Nivel, &e.Estado, &e.EstadoPreinscripcion, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan estudiante: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *EstudianteRepo) Update(ctx context.Context, e *entity.Estudiante) error {
	query := `
		UPDATE estudiantes
		SET fecha_nacimiento = $2, nivel = $3, estado = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, e.ID, e.FechaNacimiento, e.Nivel, e.Estado, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update estudiante: %w", err)
	}
	return nil
}

func (r *EstudianteRepo) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE estudiantes SET estado = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, entity.EstadoInactivo, time.Now())
	if err != nil {
		return fmt.Errorf("soft delete estudiante: %w", err)
	}
	return nil
}

// TransicionarPreinscripcion aplica pendiente→estado con un update condicional.
// La cláusula WHERE garantiza que una solicitud ya decidida no cambie: cero
// filas afectadas significa que no estaba pendiente. Al aceptar, el perfil
// pasa además a estado Activo.
func (r *EstudianteRepo) TransicionarPreinscripcion(ctx context.Context, id int64, estado string) (bool, error) {
	query := `
		UPDATE estudiantes
		SET estado_preinscripcion = $2,
		    estado = CASE WHEN $2 = $3 THEN $4 ELSE estado END,
		    updated_at = $5
		WHERE id = $1 AND estado_preinscripcion = $6`
	tag, err := r.q.Exec(ctx, query,
		id, estado, entity.PreinscripcionAceptada, entity.EstadoActivo, time.Now(), entity.PreinscripcionPendiente,
	)
	if err != nil {
		return false, fmt.Errorf("transicionar preinscripcion: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
