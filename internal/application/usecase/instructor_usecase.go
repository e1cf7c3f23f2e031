package usecase

import (
	"context"
	"time"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// InstructorUseCase ciclo de vida de perfiles de instructor. Mismas reglas de
// exclusividad que Administrador; la baja es lógica (estado Inactivo) pero
// también retira el grant de rol.
type InstructorUseCase struct {
	txRunner       TxRunner
	instructorRepo repository.InstructorRepository
}

// NewInstructorUseCase construye el caso de uso.
func NewInstructorUseCase(txRunner TxRunner, instructorRepo repository.InstructorRepository) *InstructorUseCase {
	return &InstructorUseCase{txRunner: txRunner, instructorRepo: instructorRepo}
}

// Create valida precondiciones y escribe perfil + grant en una transacción.
func (uc *InstructorUseCase) Create(ctx context.Context, in dto.CreateInstructorRequest) (*dto.InstructorResponse, error) {
	var creado *entity.Instructor
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		if err := verificarUsuarioAsignable(ctx, r, in.UsuarioID); err != nil {
			return err
		}
		existente, err := r.Instructores.GetByUsuarioID(ctx, in.UsuarioID)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.ErrPerfilDuplicado
		}
		rol, err := r.Roles.GetByNombre(ctx, entity.RolInstructor)
		if err != nil {
			return err
		}
		if rol == nil {
			return domain.ErrRolNoConfigurado
		}
		now := time.Now()
		i := &entity.Instructor{
			UsuarioID:    in.UsuarioID,
			Especialidad: in.Especialidad,
			Estado:       entity.EstadoActivo,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := r.Instructores.Create(ctx, i); err != nil {
			return err
		}
		if err := r.Roles.Asignar(ctx, in.UsuarioID, rol.ID); err != nil {
			return err
		}
		creado = i
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInstructorResponse(creado), nil
}

// Update cambia la especialidad y/o re-apunta el perfil a otro usuario,
// moviendo el grant atómicamente con la actualización del perfil.
func (uc *InstructorUseCase) Update(ctx context.Context, id int64, in dto.UpdateInstructorRequest) (*dto.InstructorResponse, error) {
	var actualizado *entity.Instructor
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		i, err := r.Instructores.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if i == nil {
			return domain.ErrNotFound
		}
		if in.Especialidad != nil {
			i.Especialidad = *in.Especialidad
		}
		if in.UsuarioID != nil && *in.UsuarioID != i.UsuarioID {
			if err := verificarUsuarioAsignable(ctx, r, *in.UsuarioID); err != nil {
				return err
			}
			existente, err := r.Instructores.GetByUsuarioID(ctx, *in.UsuarioID)
			if err != nil {
				return err
			}
			if existente != nil {
				return domain.ErrPerfilDuplicado
			}
			rol, err := r.Roles.GetByNombre(ctx, entity.RolInstructor)
			if err != nil {
				return err
			}
			if rol == nil {
				return domain.ErrRolNoConfigurado
			}
			if err := r.Roles.Quitar(ctx, i.UsuarioID, rol.ID); err != nil {
				return err
			}
			if err := r.Roles.Asignar(ctx, *in.UsuarioID, rol.ID); err != nil {
				return err
			}
			i.UsuarioID = *in.UsuarioID
		}
		i.UpdatedAt = time.Now()
		if err := r.Instructores.Update(ctx, i); err != nil {
			return err
		}
		actualizado = i
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInstructorResponse(actualizado), nil
}

// Delete baja lógica: marca el perfil Inactivo y quita el grant de rol.
func (uc *InstructorUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(r Repos) error {
		i, err := r.Instructores.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if i == nil {
			return domain.ErrNotFound
		}
		if err := r.Instructores.SoftDelete(ctx, id); err != nil {
			return err
		}
		rol, err := r.Roles.GetByNombre(ctx, entity.RolInstructor)
		if err != nil {
			return err
		}
		if rol != nil {
			if err := r.Roles.Quitar(ctx, i.UsuarioID, rol.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID obtiene un perfil de instructor.
func (uc *InstructorUseCase) GetByID(ctx context.Context, id int64) (*dto.InstructorResponse, error) {
	i, err := uc.instructorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, nil
	}
	return toInstructorResponse(i), nil
}

// List lista perfiles de instructor.
func (uc *InstructorUseCase) List(ctx context.Context, limit, offset int) ([]*dto.InstructorResponse, error) {
	instructores, err := uc.instructorRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InstructorResponse, 0, len(instructores))
	for _, i := range instructores {
		out = append(out, toInstructorResponse(i))
	}
	return out, nil
}

func toInstructorResponse(i *entity.Instructor) *dto.InstructorResponse {
	if i == nil {
		return nil
	}
	return &dto.InstructorResponse{
		ID:           i.ID,
		UsuarioID:    i.UsuarioID,
		Especialidad: i.Especialidad,
		Estado:       i.Estado,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
