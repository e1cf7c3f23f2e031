package usecase

import (
	"context"
	"time"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// ProveedorUseCase CRUD de proveedores.
type ProveedorUseCase struct {
	proveedorRepo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(proveedorRepo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{proveedorRepo: proveedorRepo}
}

// Create crea un proveedor. El NIT es único.
func (uc *ProveedorUseCase) Create(ctx context.Context, in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	existente, err := uc.proveedorRepo.GetByNIT(ctx, in.NIT)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	now := time.Now()
	p := &entity.Proveedor{
		NIT:       in.NIT,
		Nombre:    in.Nombre,
		Email:     in.Email,
		Telefono:  in.Telefono,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.proveedorRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProveedorResponse(p), nil
}

// GetByID obtiene un proveedor.
func (uc *ProveedorUseCase) GetByID(ctx context.Context, id int64) (*dto.ProveedorResponse, error) {
	p, err := uc.proveedorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProveedorResponse(p), nil
}

// List lista proveedores.
func (uc *ProveedorUseCase) List(ctx context.Context, limit, offset int) ([]*dto.ProveedorResponse, error) {
	proveedores, err := uc.proveedorRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, toProveedorResponse(p))
	}
	return out, nil
}

// Delete elimina un proveedor.
func (uc *ProveedorUseCase) Delete(ctx context.Context, id int64) error {
	p, err := uc.proveedorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.proveedorRepo.Delete(ctx, id)
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:        p.ID,
		NIT:       p.NIT,
		Nombre:    p.Nombre,
		Email:     p.Email,
		Telefono:  p.Telefono,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
