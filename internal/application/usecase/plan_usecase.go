package usecase

import (
	"context"
	"time"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// PlanUseCase CRUD de planes.
type PlanUseCase struct {
	planRepo repository.PlanRepository
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(planRepo repository.PlanRepository) *PlanUseCase {
	return &PlanUseCase{planRepo: planRepo}
}

// Create crea un plan.
func (uc *PlanUseCase) Create(ctx context.Context, in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	now := time.Now()
	p := &entity.Plan{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		DuracionMes: in.DuracionMes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.planRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPlanResponse(p), nil
}

// GetByID obtiene un plan.
func (uc *PlanUseCase) GetByID(ctx context.Context, id int64) (*dto.PlanResponse, error) {
	p, err := uc.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPlanResponse(p), nil
}

// List lista planes.
func (uc *PlanUseCase) List(ctx context.Context, limit, offset int) ([]*dto.PlanResponse, error) {
	planes, err := uc.planRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PlanResponse, 0, len(planes))
	for _, p := range planes {
		out = append(out, toPlanResponse(p))
	}
	return out, nil
}

// Update actualización parcial.
func (uc *PlanUseCase) Update(ctx context.Context, id int64, in dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	p, err := uc.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		p.Precio = *in.Precio
	}
	if in.DuracionMes != nil {
		p.DuracionMes = *in.DuracionMes
	}
	p.UpdatedAt = time.Now()
	if err := uc.planRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPlanResponse(p), nil
}

// Delete elimina un plan.
func (uc *PlanUseCase) Delete(ctx context.Context, id int64) error {
	p, err := uc.planRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.planRepo.Delete(ctx, id)
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		DuracionMes: p.DuracionMes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
