package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/application/usecase"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del flujo de preinscripción: alta de la solicitud, aprobación con
// asignación idempotente del rol estudiante y rechazo sin efecto sobre roles.
// La transición solo es legal desde pendiente; una fila ya decidida responde
// ErrNoPendiente sin importar cuántas veces se reintente.
// ──────────────────────────────────────────────────────────────────────────────

type estudianteFixture struct {
	uc          *usecase.EstudianteUseCase
	roles       *fakeRolRepo
	estudiantes *fakeEstudianteRepo
}

func newEstudianteFixture(conRolEstudiante bool) *estudianteFixture {
	var roles *fakeRolRepo
	if conRolEstudiante {
		roles = newFakeRolRepo(entity.RolAdministrador, entity.RolEstudiante)
	} else {
		roles = newFakeRolRepo(entity.RolAdministrador)
	}
	estudiantes := newFakeEstudianteRepo()
	tx := &fakeTxRunner{repos: usecase.Repos{Roles: roles, Estudiantes: estudiantes}}
	return &estudianteFixture{
		uc:          usecase.NewEstudianteUseCase(tx, estudiantes),
		roles:       roles,
		estudiantes: estudiantes,
	}
}

func (f *estudianteFixture) preinscribir(t *testing.T, usuarioID int64) *dto.EstudianteResponse {
	t.Helper()
	resp, err := f.uc.Preinscribir(context.Background(), usuarioID, dto.PreinscripcionRequest{Nivel: "intermedio"})
	require.NoError(t, err)
	return resp
}

// ── Preinscribir ──────────────────────────────────────────────────────────────

func TestPreinscribir_CreaSolicitudPendienteInactiva(t *testing.T) {
	f := newEstudianteFixture(true)

	resp, err := f.uc.Preinscribir(context.Background(), 7, dto.PreinscripcionRequest{})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.UsuarioID)
	assert.Equal(t, entity.EstadoInactivo, resp.Estado, "la solicitud nace inactiva hasta su aprobación")
	assert.Equal(t, entity.PreinscripcionPendiente, resp.EstadoPreinscripcion)
	assert.Equal(t, "principiante", resp.Nivel, "sin nivel indicado se asume principiante")
}

func TestPreinscribir_SolicitudDuplicada(t *testing.T) {
	f := newEstudianteFixture(true)
	f.preinscribir(t, 7)

	_, err := f.uc.Preinscribir(context.Background(), 7, dto.PreinscripcionRequest{})

	assert.ErrorIs(t, err, domain.ErrPerfilDuplicado, "un usuario tiene a lo sumo un perfil de estudiante")
}

// ── Aprobar ───────────────────────────────────────────────────────────────────

func TestAprobar_AceptadaActivaYAsignaRol(t *testing.T) {
	f := newEstudianteFixture(true)
	solicitud := f.preinscribir(t, 7)

	resp, err := f.uc.Aprobar(context.Background(), solicitud.ID, entity.PreinscripcionAceptada)

	require.NoError(t, err)
	assert.Equal(t, entity.PreinscripcionAceptada, resp.EstadoPreinscripcion)
	assert.Equal(t, entity.EstadoActivo, resp.Estado, "aceptar activa el perfil")
	assert.True(t, f.roles.tieneGrant(7, entity.RolEstudiante))
}

func TestAprobar_AceptadaConGrantPrevioNoFalla(t *testing.T) {
	f := newEstudianteFixture(true)
	solicitud := f.preinscribir(t, 7)

	// El usuario ya tiene el rol (p. ej. re-preinscripción tras baja lógica):
	// la asignación debe ser idempotente.
	rol, _ := f.roles.GetByNombre(context.Background(), entity.RolEstudiante)
	require.NoError(t, f.roles.Asignar(context.Background(), 7, rol.ID))

	_, err := f.uc.Aprobar(context.Background(), solicitud.ID, entity.PreinscripcionAceptada)

	require.NoError(t, err)
	assert.True(t, f.roles.tieneGrant(7, entity.RolEstudiante))
}

func TestAprobar_RechazadaNoAsignaRol(t *testing.T) {
	f := newEstudianteFixture(true)
	solicitud := f.preinscribir(t, 7)

	resp, err := f.uc.Aprobar(context.Background(), solicitud.ID, entity.PreinscripcionRechazada)

	require.NoError(t, err)
	assert.Equal(t, entity.PreinscripcionRechazada, resp.EstadoPreinscripcion)
	assert.Equal(t, entity.EstadoInactivo, resp.Estado, "el rechazo no activa el perfil")
	assert.False(t, f.roles.tieneGrant(7, entity.RolEstudiante))
}

func TestAprobar_YaDecididaEsNoPendiente(t *testing.T) {
	f := newEstudianteFixture(true)
	solicitud := f.preinscribir(t, 7)

	_, err := f.uc.Aprobar(context.Background(), solicitud.ID, entity.PreinscripcionAceptada)
	require.NoError(t, err)

	_, err = f.uc.Aprobar(context.Background(), solicitud.ID, entity.PreinscripcionRechazada)
	assert.ErrorIs(t, err, domain.ErrNoPendiente, "una fila decidida no admite una segunda transición")
}

func TestAprobar_EstadoInvalido(t *testing.T) {
	f := newEstudianteFixture(true)
	solicitud := f.preinscribir(t, 7)

	_, err := f.uc.Aprobar(context.Background(), solicitud.ID, "congelada")

	assert.ErrorIs(t, err, domain.ErrEstadoInvalido)
}

func TestAprobar_EstudianteInexistente(t *testing.T) {
	f := newEstudianteFixture(true)

	_, err := f.uc.Aprobar(context.Background(), 99, entity.PreinscripcionAceptada)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAprobar_RolEstudianteNoConfigurado(t *testing.T) {
	f := newEstudianteFixture(false)
	solicitud := f.preinscribir(t, 7)

	_, err := f.uc.Aprobar(context.Background(), solicitud.ID, entity.PreinscripcionAceptada)

	assert.ErrorIs(t, err, domain.ErrRolNoConfigurado)
}

// ── Baja lógica ───────────────────────────────────────────────────────────────

func TestEstudianteDelete_ConservaLaFila(t *testing.T) {
	f := newEstudianteFixture(true)
	solicitud := f.preinscribir(t, 7)
	_, err := f.uc.Aprobar(context.Background(), solicitud.ID, entity.PreinscripcionAceptada)
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), solicitud.ID))

	e, _ := f.estudiantes.GetByID(context.Background(), solicitud.ID)
	require.NotNil(t, e, "la baja es lógica, la fila se conserva")
	assert.Equal(t, entity.EstadoInactivo, e.Estado)
	assert.True(t, f.roles.tieneGrant(7, entity.RolEstudiante),
		"la baja lógica no revoca el rol; eso permite reactivar el perfil")
}
