package usecase

import (
	"context"
	"time"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// MatriculaUseCase creación y consulta de matrículas. Las tres validaciones de
// elegibilidad y el insert comparten transacción; estudiante y clase se leen
// con bloqueo de fila para que una desactivación concurrente no gane la carrera
// a una matrícula exitosa.
type MatriculaUseCase struct {
	txRunner      TxRunner
	matriculaRepo repository.MatriculaRepository
}

// NewMatriculaUseCase construye el caso de uso.
func NewMatriculaUseCase(txRunner TxRunner, matriculaRepo repository.MatriculaRepository) *MatriculaUseCase {
	return &MatriculaUseCase{txRunner: txRunner, matriculaRepo: matriculaRepo}
}

// Create valida, en orden: estudiante Activo, clase Disponible, plan existente;
// luego inserta la matrícula y la devuelve con los campos denormalizados.
func (uc *MatriculaUseCase) Create(ctx context.Context, in dto.CreateMatriculaRequest) (*dto.MatriculaResponse, error) {
	var creadaID int64
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		estudiante, err := r.Estudiantes.GetByIDForUpdate(ctx, in.EstudianteID)
		if err != nil {
			return err
		}
		if estudiante == nil || estudiante.Estado != entity.EstadoActivo {
			return domain.ErrEstudianteNoElegible
		}
		clase, err := r.Clases.GetByIDForUpdate(ctx, in.ClaseID)
		if err != nil {
			return err
		}
		if clase == nil || clase.Estado != entity.ClaseDisponible {
			return domain.ErrClaseNoElegible
		}
		plan, err := r.Planes.GetByID(ctx, in.PlanID)
		if err != nil {
			return err
		}
		if plan == nil {
			return domain.ErrPlanNoEncontrado
		}
		fecha := time.Now()
		if in.Fecha != nil {
			fecha = *in.Fecha
		}
		estado := in.Estado
		if estado == "" {
			estado = entity.MatriculaActiva
		}
		m := &entity.Matricula{
			EstudianteID: in.EstudianteID,
			ClaseID:      in.ClaseID,
			PlanID:       in.PlanID,
			Fecha:        fecha,
			Estado:       estado,
			CreatedAt:    time.Now(),
		}
		if err := r.Matriculas.Create(ctx, m); err != nil {
			return err
		}
		creadaID = m.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	detalle, err := uc.matriculaRepo.GetDetalle(ctx, creadaID)
	if err != nil {
		return nil, err
	}
	return toMatriculaResponse(detalle), nil
}

// GetByID obtiene una matrícula con detalle.
func (uc *MatriculaUseCase) GetByID(ctx context.Context, id int64) (*dto.MatriculaResponse, error) {
	detalle, err := uc.matriculaRepo.GetDetalle(ctx, id)
	if err != nil {
		return nil, err
	}
	if detalle == nil {
		return nil, nil
	}
	return toMatriculaResponse(detalle), nil
}

// ListByEstudiante lista las matrículas de un estudiante.
func (uc *MatriculaUseCase) ListByEstudiante(ctx context.Context, estudianteID int64) ([]*dto.MatriculaResponse, error) {
	detalles, err := uc.matriculaRepo.ListByEstudiante(ctx, estudianteID)
	if err != nil {
		return nil, err
	}
	return toMatriculaResponses(detalles), nil
}

// List lista matrículas.
func (uc *MatriculaUseCase) List(ctx context.Context, limit, offset int) ([]*dto.MatriculaResponse, error) {
	detalles, err := uc.matriculaRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMatriculaResponses(detalles), nil
}

func toMatriculaResponse(m *entity.MatriculaDetalle) *dto.MatriculaResponse {
	if m == nil {
		return nil
	}
	return &dto.MatriculaResponse{
		ID:           m.ID,
		EstudianteID: m.EstudianteID,
		ClaseID:      m.ClaseID,
		PlanID:       m.PlanID,
		Fecha:        m.Fecha,
		Estado:       m.Estado,
		Estudiante:   m.Estudiante,
		Clase:        m.Clase,
		Plan:         m.Plan,
	}
}

func toMatriculaResponses(detalles []*entity.MatriculaDetalle) []*dto.MatriculaResponse {
	out := make([]*dto.MatriculaResponse, 0, len(detalles))
	for _, d := range detalles {
		out = append(out, toMatriculaResponse(d))
	}
	return out
}
