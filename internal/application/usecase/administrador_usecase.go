package usecase

import (
	"context"
	"time"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// AdministradorUseCase ciclo de vida de perfiles de administrador. La creación
// y el re-apuntado aplican la exclusión mutua de roles de dominio; perfil y
// grant de rol se escriben en una sola transacción.
type AdministradorUseCase struct {
	txRunner  TxRunner
	adminRepo repository.AdministradorRepository
}

// NewAdministradorUseCase construye el caso de uso.
func NewAdministradorUseCase(txRunner TxRunner, adminRepo repository.AdministradorRepository) *AdministradorUseCase {
	return &AdministradorUseCase{txRunner: txRunner, adminRepo: adminRepo}
}

// Create valida las precondiciones (usuario activo, sin rol de dominio, sin
// perfil previo) y escribe perfil + grant de rol atómicamente.
func (uc *AdministradorUseCase) Create(ctx context.Context, in dto.CreateAdministradorRequest) (*dto.AdministradorResponse, error) {
	var creado *entity.Administrador
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		if err := verificarUsuarioAsignable(ctx, r, in.UsuarioID); err != nil {
			return err
		}
		existente, err := r.Administradores.GetByUsuarioID(ctx, in.UsuarioID)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.ErrPerfilDuplicado
		}
		rol, err := r.Roles.GetByNombre(ctx, entity.RolAdministrador)
		if err != nil {
			return err
		}
		if rol == nil {
			return domain.ErrRolNoConfigurado
		}
		now := time.Now()
		a := &entity.Administrador{
			UsuarioID: in.UsuarioID,
			Cargo:     in.Cargo,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := r.Administradores.Create(ctx, a); err != nil {
			return err
		}
		if err := r.Roles.Asignar(ctx, in.UsuarioID, rol.ID); err != nil {
			return err
		}
		creado = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toAdministradorResponse(creado), nil
}

// Update cambia el cargo y/o re-apunta el perfil a otro usuario. El re-apuntado
// repite las tres precondiciones contra el nuevo usuario y mueve el grant
// (quitar al dueño anterior, asignar al nuevo) en la misma transacción.
func (uc *AdministradorUseCase) Update(ctx context.Context, id int64, in dto.UpdateAdministradorRequest) (*dto.AdministradorResponse, error) {
	var actualizado *entity.Administrador
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		a, err := r.Administradores.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return domain.ErrNotFound
		}
		if in.Cargo != nil {
			a.Cargo = *in.Cargo
		}
		if in.UsuarioID != nil && *in.UsuarioID != a.UsuarioID {
			if err := verificarUsuarioAsignable(ctx, r, *in.UsuarioID); err != nil {
				return err
			}
			existente, err := r.Administradores.GetByUsuarioID(ctx, *in.UsuarioID)
			if err != nil {
				return err
			}
			if existente != nil {
				return domain.ErrPerfilDuplicado
			}
			rol, err := r.Roles.GetByNombre(ctx, entity.RolAdministrador)
			if err != nil {
				return err
			}
			if rol == nil {
				return domain.ErrRolNoConfigurado
			}
			if err := r.Roles.Quitar(ctx, a.UsuarioID, rol.ID); err != nil {
				return err
			}
			if err := r.Roles.Asignar(ctx, *in.UsuarioID, rol.ID); err != nil {
				return err
			}
			a.UsuarioID = *in.UsuarioID
		}
		a.UpdatedAt = time.Now()
		if err := r.Administradores.Update(ctx, a); err != nil {
			return err
		}
		actualizado = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toAdministradorResponse(actualizado), nil
}

// Delete borra físicamente el perfil y quita el grant, devolviendo al usuario
// al estado "sin rol de dominio".
func (uc *AdministradorUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(r Repos) error {
		a, err := r.Administradores.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return domain.ErrNotFound
		}
		if err := r.Administradores.Delete(ctx, id); err != nil {
			return err
		}
		rol, err := r.Roles.GetByNombre(ctx, entity.RolAdministrador)
		if err != nil {
			return err
		}
		if rol != nil {
			if err := r.Roles.Quitar(ctx, a.UsuarioID, rol.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID obtiene un perfil de administrador.
func (uc *AdministradorUseCase) GetByID(ctx context.Context, id int64) (*dto.AdministradorResponse, error) {
	a, err := uc.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return toAdministradorResponse(a), nil
}

// List lista perfiles de administrador.
func (uc *AdministradorUseCase) List(ctx context.Context, limit, offset int) ([]*dto.AdministradorResponse, error) {
	admins, err := uc.adminRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AdministradorResponse, 0, len(admins))
	for _, a := range admins {
		out = append(out, toAdministradorResponse(a))
	}
	return out, nil
}

func toAdministradorResponse(a *entity.Administrador) *dto.AdministradorResponse {
	if a == nil {
		return nil
	}
	return &dto.AdministradorResponse{
		ID:        a.ID,
		UsuarioID: a.UsuarioID,
		Cargo:     a.Cargo,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
