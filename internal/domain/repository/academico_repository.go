package repository

import (
	"context"

	"github.com/academiaskate/academia-api/internal/domain/entity"
)

// ClaseRepository puerto para clases.
type ClaseRepository interface {
	Create(ctx context.Context, c *entity.Clase) error
	GetByID(ctx context.Context, id int64) (*entity.Clase, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Clase, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Clase, error)
	Update(ctx context.Context, c *entity.Clase) error
	Delete(ctx context.Context, id int64) error
}

// PlanRepository puerto para planes.
type PlanRepository interface {
	Create(ctx context.Context, p *entity.Plan) error
	GetByID(ctx context.Context, id int64) (*entity.Plan, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Plan, error)
	Update(ctx context.Context, p *entity.Plan) error
	Delete(ctx context.Context, id int64) error
}

// MatriculaRepository puerto para matrículas.
type MatriculaRepository interface {
	Create(ctx context.Context, m *entity.Matricula) error
	// GetDetalle devuelve la matrícula con los campos denormalizados de
	// estudiante, clase y plan para la respuesta.
	GetDetalle(ctx context.Context, id int64) (*entity.MatriculaDetalle, error)
	ListByEstudiante(ctx context.Context, estudianteID int64) ([]*entity.MatriculaDetalle, error)
	List(ctx context.Context, limit, offset int) ([]*entity.MatriculaDetalle, error)
}

// EventoRepository puerto para eventos de la escuela.
type EventoRepository interface {
	Create(ctx context.Context, e *entity.Evento) error
	GetByID(ctx context.Context, id int64) (*entity.Evento, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Evento, error)
	Update(ctx context.Context, e *entity.Evento) error
	Delete(ctx context.Context, id int64) error
}
