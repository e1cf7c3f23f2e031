package usecase

import (
	"context"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// RolUseCase consulta de roles/permisos y administración de roles_permisos.
type RolUseCase struct {
	rolRepo repository.RolRepository
}

// NewRolUseCase construye el caso de uso.
func NewRolUseCase(rolRepo repository.RolRepository) *RolUseCase {
	return &RolUseCase{rolRepo: rolRepo}
}

// List lista los roles definidos.
func (uc *RolUseCase) List(ctx context.Context) ([]*dto.RolResponse, error) {
	roles, err := uc.rolRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RolResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, &dto.RolResponse{ID: r.ID, Nombre: r.Nombre})
	}
	return out, nil
}

// ListPermisos lista los permisos definidos.
func (uc *RolUseCase) ListPermisos(ctx context.Context) ([]*dto.PermisoResponse, error) {
	permisos, err := uc.rolRepo.ListPermisos(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PermisoResponse, 0, len(permisos))
	for _, p := range permisos {
		out = append(out, &dto.PermisoResponse{ID: p.ID, Nombre: p.Nombre})
	}
	return out, nil
}

// AsignarPermiso vincula un permiso a un rol. El cambio es visible en la
// siguiente petición de cualquier usuario con ese rol: la resolución de
// permisos no usa caché.
func (uc *RolUseCase) AsignarPermiso(ctx context.Context, rolID, permisoID int64) error {
	if rolID <= 0 || permisoID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.rolRepo.AsignarPermiso(ctx, rolID, permisoID)
}

// QuitarPermiso desvincula un permiso de un rol (revocación inmediata).
func (uc *RolUseCase) QuitarPermiso(ctx context.Context, rolID, permisoID int64) error {
	if rolID <= 0 || permisoID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.rolRepo.QuitarPermiso(ctx, rolID, permisoID)
}
