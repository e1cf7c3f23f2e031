package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

var _ repository.EventoRepository = (*EventoRepo)(nil)

// EventoRepo implementación de EventoRepository sobre PostgreSQL.
type EventoRepo struct {
	q Querier
}

func NewEventoRepository(q Querier) *EventoRepo {
	return &EventoRepo{q: q}
}

const eventoCols = `id, nombre, fecha, lugar, cupos, estado, created_at, updated_at`

func (r *EventoRepo) Create(ctx context.Context, e *entity.Evento) error {
	query := `
		INSERT INTO eventos (nombre, fecha, lugar, cupos, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, e.Nombre, e.Fecha, e.Lugar, e.Cupos, e.Estado, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert evento: %w", err)
	}
	return nil
}

func (r *EventoRepo) GetByID(ctx context.Context, id int64) (*entity.Evento, error) {
	var e entity.Evento
	err := r.q.QueryRow(ctx, `SELECT `+eventoCols+` FROM eventos WHERE id = $1`, id).Scan(
		&e.ID, &e.Nombre, &e.Fecha, &e.Lugar, &e.Cupos, &e.Estado, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get evento: %w", err)
	}
	return &e, nil
}

func (r *EventoRepo) List(ctx context.Context, limit, offset int) ([]*entity.Evento, error) {
	rows, err := r.q.Query(ctx, `SELECT `+eventoCols+` FROM eventos ORDER BY fecha DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list eventos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Evento
	for rows.Next() {
		var e entity.Evento
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Fecha, &e.Lugar, &e.Cupos, &e.Estado, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan evento: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *EventoRepo) Update(ctx context.Context, e *entity.Evento) error {
	query := `
		UPDATE eventos
		SET nombre = $2, fecha = $3, lugar = $4, cupos = $5, estado = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, e.ID, e.Nombre, e.Fecha, e.Lugar, e.Cupos, e.Estado, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update evento: %w", err)
	}
	return nil
}

func (r *EventoRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM eventos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete evento: %w", err)
	}
	return nil
}
