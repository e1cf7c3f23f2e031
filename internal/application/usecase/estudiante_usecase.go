package usecase

import (
	"context"
	"time"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// EstudianteUseCase perfiles de estudiante y flujo de preinscripción.
//
// Máquina de estados de la preinscripción:
//
//	pendiente ──aceptada──▶ aceptada   (asigna rol estudiante, idempotente)
//	pendiente ──rechazada─▶ rechazada  (sin efecto sobre roles)
//
// Cualquier transición sobre una fila no pendiente falla con ErrNoPendiente,
// detectado por el update condicional que afecta cero filas.
type EstudianteUseCase struct {
	txRunner       TxRunner
	estudianteRepo repository.EstudianteRepository
}

// NewEstudianteUseCase construye el caso de uso.
func NewEstudianteUseCase(txRunner TxRunner, estudianteRepo repository.EstudianteRepository) *EstudianteUseCase {
	return &EstudianteUseCase{txRunner: txRunner, estudianteRepo: estudianteRepo}
}

// Preinscribir crea una solicitud de inscripción a nombre del usuario
// autenticado: un estudiante Inactivo con preinscripción pendiente.
func (uc *EstudianteUseCase) Preinscribir(ctx context.Context, usuarioID int64, in dto.PreinscripcionRequest) (*dto.EstudianteResponse, error) {
	existente, err := uc.estudianteRepo.GetByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrPerfilDuplicado
	}
	nivel := in.Nivel
	if nivel == "" {
		nivel = "principiante"
	}
	now := time.Now()
	e := &entity.Estudiante{
		UsuarioID:            usuarioID,
		FechaNacimiento:      in.FechaNacimiento,
		Nivel:                nivel,
		Estado:               entity.EstadoInactivo,
		EstadoPreinscripcion: entity.PreinscripcionPendiente,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.estudianteRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEstudianteResponse(e), nil
}

// Aprobar transiciona la preinscripción a aceptada o rechazada.
//
// En aceptada: resuelve el usuario dueño, resuelve el rol "estudiante"
// (ErrRolNoConfigurado si falta), asigna el grant solo si no existe y ejecuta
// el update condicional — todo en una transacción, de modo que una fila no
// pendiente revierte también el grant.
func (uc *EstudianteUseCase) Aprobar(ctx context.Context, id int64, estado string) (*dto.EstudianteResponse, error) {
	if estado != entity.PreinscripcionAceptada && estado != entity.PreinscripcionRechazada {
		return nil, domain.ErrEstadoInvalido
	}
	var aprobado *entity.Estudiante
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		e, err := r.Estudiantes.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return domain.ErrNotFound
		}
		if estado == entity.PreinscripcionAceptada {
			rol, err := r.Roles.GetByNombre(ctx, entity.RolEstudiante)
			if err != nil {
				return err
			}
			if rol == nil {
				return domain.ErrRolNoConfigurado
			}
			existe, err := r.Roles.GrantExiste(ctx, e.UsuarioID, rol.ID)
			if err != nil {
				return err
			}
			if !existe {
				if err := r.Roles.Asignar(ctx, e.UsuarioID, rol.ID); err != nil {
					return err
				}
			}
		}
		afectada, err := r.Estudiantes.TransicionarPreinscripcion(ctx, id, estado)
		if err != nil {
			return err
		}
		if !afectada {
			return domain.ErrNoPendiente
		}
		e.EstadoPreinscripcion = estado
		if estado == entity.PreinscripcionAceptada {
			e.Estado = entity.EstadoActivo
		}
		aprobado = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toEstudianteResponse(aprobado), nil
}

// GetByID obtiene un estudiante.
func (uc *EstudianteUseCase) GetByID(ctx context.Context, id int64) (*dto.EstudianteResponse, error) {
	e, err := uc.estudianteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toEstudianteResponse(e), nil
}

// List lista estudiantes.
func (uc *EstudianteUseCase) List(ctx context.Context, limit, offset int) ([]*dto.EstudianteResponse, error) {
	estudiantes, err := uc.estudianteRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toEstudianteResponses(estudiantes), nil
}

// ListPreinscripciones lista solicitudes pendientes de aprobación.
func (uc *EstudianteUseCase) ListPreinscripciones(ctx context.Context, limit, offset int) ([]*dto.EstudianteResponse, error) {
	estudiantes, err := uc.estudianteRepo.ListPreinscripciones(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toEstudianteResponses(estudiantes), nil
}

// Update actualización parcial del perfil.
func (uc *EstudianteUseCase) Update(ctx context.Context, id int64, in dto.UpdateEstudianteRequest) (*dto.EstudianteResponse, error) {
	e, err := uc.estudianteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nivel != nil {
		e.Nivel = *in.Nivel
	}
	if in.Estado != nil {
		e.Estado = *in.Estado
	}
	e.UpdatedAt = time.Now()
	if err := uc.estudianteRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEstudianteResponse(e), nil
}

// Delete baja lógica: la fila se conserva con estado Inactivo.
func (uc *EstudianteUseCase) Delete(ctx context.Context, id int64) error {
	e, err := uc.estudianteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.estudianteRepo.SoftDelete(ctx, id)
}

func toEstudianteResponse(e *entity.Estudiante) *dto.EstudianteResponse {
	if e == nil {
		return nil
	}
	return &dto.EstudianteResponse{
		ID:                   e.ID,
		UsuarioID:            e.UsuarioID,
		FechaNacimiento:      e.FechaNacimiento,
		Nivel:                e.Nivel,
		Estado:               e.Estado,
		EstadoPreinscripcion: e.EstadoPreinscripcion,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func toEstudianteResponses(estudiantes []*entity.Estudiante) []*dto.EstudianteResponse {
	out := make([]*dto.EstudianteResponse, 0, len(estudiantes))
	for _, e := range estudiantes {
		out = append(out, toEstudianteResponse(e))
	}
	return out
}
