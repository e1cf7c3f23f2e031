package usecase

import (
	"context"
	"time"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// ClaseUseCase CRUD de clases.
type ClaseUseCase struct {
	claseRepo      repository.ClaseRepository
	instructorRepo repository.InstructorRepository
}

// NewClaseUseCase construye el caso de uso.
func NewClaseUseCase(claseRepo repository.ClaseRepository, instructorRepo repository.InstructorRepository) *ClaseUseCase {
	return &ClaseUseCase{claseRepo: claseRepo, instructorRepo: instructorRepo}
}

// Create crea una clase Disponible dictada por un instructor activo.
func (uc *ClaseUseCase) Create(ctx context.Context, in dto.CreateClaseRequest) (*dto.ClaseResponse, error) {
	instructor, err := uc.instructorRepo.GetByID(ctx, in.InstructorID)
	if err != nil {
		return nil, err
	}
	if instructor == nil || instructor.Estado != entity.EstadoActivo {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	c := &entity.Clase{
		Nombre:       in.Nombre,
		InstructorID: in.InstructorID,
		Horario:      in.Horario,
		Cupos:        in.Cupos,
		Estado:       entity.ClaseDisponible,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.claseRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toClaseResponse(c), nil
}

// GetByID obtiene una clase.
func (uc *ClaseUseCase) GetByID(ctx context.Context, id int64) (*dto.ClaseResponse, error) {
	c, err := uc.claseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toClaseResponse(c), nil
}

// List lista clases.
func (uc *ClaseUseCase) List(ctx context.Context, limit, offset int) ([]*dto.ClaseResponse, error) {
	clases, err := uc.claseRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClaseResponse, 0, len(clases))
	for _, c := range clases {
		out = append(out, toClaseResponse(c))
	}
	return out, nil
}

// Update actualización parcial.
func (uc *ClaseUseCase) Update(ctx context.Context, id int64, in dto.UpdateClaseRequest) (*dto.ClaseResponse, error) {
	c, err := uc.claseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		c.Nombre = *in.Nombre
	}
	if in.Horario != nil {
		c.Horario = *in.Horario
	}
	if in.Cupos != nil {
		c.Cupos = *in.Cupos
	}
	if in.Estado != nil {
		c.Estado = *in.Estado
	}
	c.UpdatedAt = time.Now()
	if err := uc.claseRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toClaseResponse(c), nil
}

// Delete elimina una clase.
func (uc *ClaseUseCase) Delete(ctx context.Context, id int64) error {
	c, err := uc.claseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.claseRepo.Delete(ctx, id)
}

func toClaseResponse(c *entity.Clase) *dto.ClaseResponse {
	return &dto.ClaseResponse{
		ID:           c.ID,
		Nombre:       c.Nombre,
		InstructorID: c.InstructorID,
		Horario:      c.Horario,
		Cupos:        c.Cupos,
		Estado:       c.Estado,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
