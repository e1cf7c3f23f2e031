package usecase

import (
	"context"
	"time"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// EventoUseCase CRUD de eventos de la escuela.
type EventoUseCase struct {
	eventoRepo repository.EventoRepository
}

// NewEventoUseCase construye el caso de uso.
func NewEventoUseCase(eventoRepo repository.EventoRepository) *EventoUseCase {
	return &EventoUseCase{eventoRepo: eventoRepo}
}

// Create crea un evento programado.
func (uc *EventoUseCase) Create(ctx context.Context, in dto.CreateEventoRequest) (*dto.EventoResponse, error) {
	now := time.Now()
	e := &entity.Evento{
		Nombre:    in.Nombre,
		Fecha:     in.Fecha,
		Lugar:     in.Lugar,
		Cupos:     in.Cupos,
		Estado:    "Programado",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.eventoRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEventoResponse(e), nil
}

// GetByID obtiene un evento.
func (uc *EventoUseCase) GetByID(ctx context.Context, id int64) (*dto.EventoResponse, error) {
	e, err := uc.eventoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toEventoResponse(e), nil
}

// List lista eventos.
func (uc *EventoUseCase) List(ctx context.Context, limit, offset int) ([]*dto.EventoResponse, error) {
	eventos, err := uc.eventoRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EventoResponse, 0, len(eventos))
	for _, e := range eventos {
		out = append(out, toEventoResponse(e))
	}
	return out, nil
}

// Update actualización parcial.
func (uc *EventoUseCase) Update(ctx context.Context, id int64, in dto.UpdateEventoRequest) (*dto.EventoResponse, error) {
	e, err := uc.eventoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		e.Nombre = *in.Nombre
	}
	if in.Fecha != nil {
		e.Fecha = *in.Fecha
	}
	if in.Lugar != nil {
		e.Lugar = *in.Lugar
	}
	if in.Cupos != nil {
		e.Cupos = *in.Cupos
	}
	if in.Estado != nil {
		e.Estado = *in.Estado
	}
	e.UpdatedAt = time.Now()
	if err := uc.eventoRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEventoResponse(e), nil
}

// Delete elimina un evento.
func (uc *EventoUseCase) Delete(ctx context.Context, id int64) error {
	e, err := uc.eventoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.eventoRepo.Delete(ctx, id)
}

func toEventoResponse(e *entity.Evento) *dto.EventoResponse {
	return &dto.EventoResponse{
		ID:        e.ID,
		Nombre:    e.Nombre,
		Fecha:     e.Fecha,
		Lugar:     e.Lugar,
		Cupos:     e.Cupos,
		Estado:    e.Estado,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
