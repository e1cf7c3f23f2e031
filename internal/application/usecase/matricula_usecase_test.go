package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/application/usecase"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de elegibilidad de matrícula. Las tres validaciones corren en orden
// fijo (estudiante, clase, plan) y la primera que falla decide el error.
// ──────────────────────────────────────────────────────────────────────────────

type matriculaFixture struct {
	uc          *usecase.MatriculaUseCase
	estudiantes *fakeEstudianteRepo
	clases      *fakeClaseRepo
	planes      *fakePlanRepo
	matriculas  *fakeMatriculaRepo
}

func newMatriculaFixture() *matriculaFixture {
	estudiantes := newFakeEstudianteRepo()
	clases := newFakeClaseRepo()
	planes := newFakePlanRepo()
	matriculas := newFakeMatriculaRepo()
	tx := &fakeTxRunner{repos: usecase.Repos{
		Estudiantes: estudiantes,
		Clases:      clases,
		Planes:      planes,
		Matriculas:  matriculas,
	}}
	return &matriculaFixture{
		uc:          usecase.NewMatriculaUseCase(tx, matriculas),
		estudiantes: estudiantes,
		clases:      clases,
		planes:      planes,
		matriculas:  matriculas,
	}
}

func (f *matriculaFixture) sembrar(t *testing.T, estadoEstudiante, estadoClase string) (estudianteID, claseID, planID int64) {
	t.Helper()
	ctx := context.Background()

	e := &entity.Estudiante{UsuarioID: 7, Nivel: "intermedio", Estado: estadoEstudiante, EstadoPreinscripcion: entity.PreinscripcionAceptada}
	require.NoError(t, f.estudiantes.Create(ctx, e))

	c := &entity.Clase{Nombre: "Street avanzado", InstructorID: 1, Horario: "sábados 10:00", Cupos: 12, Estado: estadoClase}
	require.NoError(t, f.clases.Create(ctx, c))

	p := &entity.Plan{Nombre: "Mensual", Precio: decimal.NewFromInt(120000), DuracionMes: 1}
	require.NoError(t, f.planes.Create(ctx, p))

	return e.ID, c.ID, p.ID
}

func TestMatriculaCreate_Elegible(t *testing.T) {
	f := newMatriculaFixture()
	estudianteID, claseID, planID := f.sembrar(t, entity.EstadoActivo, entity.ClaseDisponible)

	resp, err := f.uc.Create(context.Background(), dto.CreateMatriculaRequest{
		EstudianteID: estudianteID,
		ClaseID:      claseID,
		PlanID:       planID,
	})

	require.NoError(t, err)
	assert.Equal(t, estudianteID, resp.EstudianteID)
	assert.Equal(t, claseID, resp.ClaseID)
	assert.Equal(t, entity.MatriculaActiva, resp.Estado, "sin estado explícito la matrícula nace Activa")
	assert.False(t, resp.Fecha.IsZero(), "sin fecha explícita se usa la fecha actual")
}

func TestMatriculaCreate_EstudianteInactivo(t *testing.T) {
	f := newMatriculaFixture()
	estudianteID, claseID, planID := f.sembrar(t, entity.EstadoInactivo, entity.ClaseDisponible)

	_, err := f.uc.Create(context.Background(), dto.CreateMatriculaRequest{
		EstudianteID: estudianteID,
		ClaseID:      claseID,
		PlanID:       planID,
	})

	assert.ErrorIs(t, err, domain.ErrEstudianteNoElegible)
}

func TestMatriculaCreate_EstudianteInexistente(t *testing.T) {
	f := newMatriculaFixture()
	_, claseID, planID := f.sembrar(t, entity.EstadoActivo, entity.ClaseDisponible)

	_, err := f.uc.Create(context.Background(), dto.CreateMatriculaRequest{
		EstudianteID: 99,
		ClaseID:      claseID,
		PlanID:       planID,
	})

	assert.ErrorIs(t, err, domain.ErrEstudianteNoElegible)
}

func TestMatriculaCreate_ClaseCerrada(t *testing.T) {
	f := newMatriculaFixture()
	estudianteID, claseID, planID := f.sembrar(t, entity.EstadoActivo, entity.ClaseCerrada)

	_, err := f.uc.Create(context.Background(), dto.CreateMatriculaRequest{
		EstudianteID: estudianteID,
		ClaseID:      claseID,
		PlanID:       planID,
	})

	assert.ErrorIs(t, err, domain.ErrClaseNoElegible)
}

func TestMatriculaCreate_PlanInexistente(t *testing.T) {
	f := newMatriculaFixture()
	estudianteID, claseID, _ := f.sembrar(t, entity.EstadoActivo, entity.ClaseDisponible)

	_, err := f.uc.Create(context.Background(), dto.CreateMatriculaRequest{
		EstudianteID: estudianteID,
		ClaseID:      claseID,
		PlanID:       99,
	})

	assert.ErrorIs(t, err, domain.ErrPlanNoEncontrado)
}

func TestMatriculaCreate_OrdenDeValidaciones(t *testing.T) {
	f := newMatriculaFixture()

	// Estudiante inactivo Y clase cerrada: debe reportarse el estudiante,
	// que se valida primero.
	estudianteID, claseID, planID := f.sembrar(t, entity.EstadoInactivo, entity.ClaseCerrada)

	_, err := f.uc.Create(context.Background(), dto.CreateMatriculaRequest{
		EstudianteID: estudianteID,
		ClaseID:      claseID,
		PlanID:       planID,
	})

	assert.ErrorIs(t, err, domain.ErrEstudianteNoElegible)
}

func TestMatriculaListByEstudiante(t *testing.T) {
	f := newMatriculaFixture()
	estudianteID, claseID, planID := f.sembrar(t, entity.EstadoActivo, entity.ClaseDisponible)

	for i := 0; i < 2; i++ {
		_, err := f.uc.Create(context.Background(), dto.CreateMatriculaRequest{
			EstudianteID: estudianteID,
			ClaseID:      claseID,
			PlanID:       planID,
		})
		require.NoError(t, err)
	}

	lista, err := f.uc.ListByEstudiante(context.Background(), estudianteID)
	require.NoError(t, err)
	assert.Len(t, lista, 2)
}
