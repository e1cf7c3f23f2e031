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
// Tests del ciclo de vida del perfil de instructor. Comparte la exclusión
// mutua de roles con Administrador, pero la baja difiere: es lógica (la fila
// se conserva con estado Inactivo) y aun así retira el grant de rol.
// ──────────────────────────────────────────────────────────────────────────────

type instructorFixture struct {
	uc           *usecase.InstructorUseCase
	usuarios     *fakeUsuarioRepo
	roles        *fakeRolRepo
	instructores *fakeInstructorRepo
}

func newInstructorFixture() *instructorFixture {
	usuarios := newFakeUsuarioRepo()
	roles := newFakeRolRepo(entity.RolAdministrador, entity.RolInstructor, entity.RolEstudiante, entity.RolCliente)
	instructores := newFakeInstructorRepo()
	tx := &fakeTxRunner{repos: usecase.Repos{
		Usuarios:     usuarios,
		Roles:        roles,
		Instructores: instructores,
	}}
	return &instructorFixture{
		uc:           usecase.NewInstructorUseCase(tx, instructores),
		usuarios:     usuarios,
		roles:        roles,
		instructores: instructores,
	}
}

func (f *instructorFixture) agregarUsuario(t *testing.T, activo bool) int64 {
	t.Helper()
	u := &entity.Usuario{Nombre: "Marco", Email: "marco@academia.io", Activo: activo}
	require.NoError(t, f.usuarios.Create(context.Background(), u))
	return u.ID
}

func TestInstructorCreate_AsignaPerfilYRol(t *testing.T) {
	f := newInstructorFixture()
	usuarioID := f.agregarUsuario(t, true)

	resp, err := f.uc.Create(context.Background(), dto.CreateInstructorRequest{
		UsuarioID:    usuarioID,
		Especialidad: "street",
	})

	require.NoError(t, err)
	assert.Equal(t, usuarioID, resp.UsuarioID)
	assert.Equal(t, "street", resp.Especialidad)
	assert.Equal(t, entity.EstadoActivo, resp.Estado, "el perfil nace Activo")
	assert.True(t, f.roles.tieneGrant(usuarioID, entity.RolInstructor))
}

func TestInstructorCreate_UsuarioInactivo(t *testing.T) {
	f := newInstructorFixture()
	usuarioID := f.agregarUsuario(t, false)

	_, err := f.uc.Create(context.Background(), dto.CreateInstructorRequest{UsuarioID: usuarioID})

	assert.ErrorIs(t, err, domain.ErrUsuarioInvalido)
}

func TestInstructorCreate_RolEnConflicto(t *testing.T) {
	f := newInstructorFixture()
	usuarioID := f.agregarUsuario(t, true)
	rolAdmin, _ := f.roles.GetByNombre(context.Background(), entity.RolAdministrador)
	require.NoError(t, f.roles.Asignar(context.Background(), usuarioID, rolAdmin.ID))

	_, err := f.uc.Create(context.Background(), dto.CreateInstructorRequest{UsuarioID: usuarioID})

	assert.ErrorIs(t, err, domain.ErrRolEnConflicto,
		"un administrador no puede recibir también el perfil de instructor")
}

func TestInstructorCreate_PerfilDuplicado(t *testing.T) {
	f := newInstructorFixture()
	usuarioID := f.agregarUsuario(t, true)

	// Perfil huérfano sin grant: la tercera precondición debe atraparlo.
	require.NoError(t, f.instructores.Create(context.Background(), &entity.Instructor{UsuarioID: usuarioID}))

	_, err := f.uc.Create(context.Background(), dto.CreateInstructorRequest{UsuarioID: usuarioID})

	assert.ErrorIs(t, err, domain.ErrPerfilDuplicado)
}

func TestInstructorCreate_RolNoConfigurado(t *testing.T) {
	usuarios := newFakeUsuarioRepo()
	roles := newFakeRolRepo() // sin roles sembrados
	instructores := newFakeInstructorRepo()
	tx := &fakeTxRunner{repos: usecase.Repos{Usuarios: usuarios, Roles: roles, Instructores: instructores}}
	uc := usecase.NewInstructorUseCase(tx, instructores)

	u := &entity.Usuario{Nombre: "Marco", Email: "marco@academia.io", Activo: true}
	require.NoError(t, usuarios.Create(context.Background(), u))

	_, err := uc.Create(context.Background(), dto.CreateInstructorRequest{UsuarioID: u.ID})

	assert.ErrorIs(t, err, domain.ErrRolNoConfigurado)
}

func TestInstructorUpdate_ReapuntarMueveElGrant(t *testing.T) {
	f := newInstructorFixture()
	original := f.agregarUsuario(t, true)
	nuevo := f.agregarUsuario(t, true)

	resp, err := f.uc.Create(context.Background(), dto.CreateInstructorRequest{UsuarioID: original, Especialidad: "street"})
	require.NoError(t, err)

	actualizado, err := f.uc.Update(context.Background(), resp.ID, dto.UpdateInstructorRequest{UsuarioID: &nuevo})
	require.NoError(t, err)

	assert.Equal(t, nuevo, actualizado.UsuarioID)
	assert.True(t, f.roles.tieneGrant(nuevo, entity.RolInstructor), "el nuevo dueño recibe el grant")
	assert.False(t, f.roles.tieneGrant(original, entity.RolInstructor), "el dueño anterior lo pierde")
}

func TestInstructorUpdate_ReapuntarAUsuarioConRol(t *testing.T) {
	f := newInstructorFixture()
	original := f.agregarUsuario(t, true)
	ocupado := f.agregarUsuario(t, true)
	rolEstudiante, _ := f.roles.GetByNombre(context.Background(), entity.RolEstudiante)
	require.NoError(t, f.roles.Asignar(context.Background(), ocupado, rolEstudiante.ID))

	resp, err := f.uc.Create(context.Background(), dto.CreateInstructorRequest{UsuarioID: original})
	require.NoError(t, err)

	_, err = f.uc.Update(context.Background(), resp.ID, dto.UpdateInstructorRequest{UsuarioID: &ocupado})

	assert.ErrorIs(t, err, domain.ErrRolEnConflicto)
	assert.True(t, f.roles.tieneGrant(original, entity.RolInstructor), "el grant original no debe moverse")
}

func TestInstructorDelete_ConservaLaFilaYQuitaElGrant(t *testing.T) {
	f := newInstructorFixture()
	usuarioID := f.agregarUsuario(t, true)

	resp, err := f.uc.Create(context.Background(), dto.CreateInstructorRequest{UsuarioID: usuarioID, Especialidad: "vert"})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), resp.ID))

	perfil, _ := f.instructores.GetByID(context.Background(), resp.ID)
	require.NotNil(t, perfil, "la baja es lógica, la fila se conserva")
	assert.Equal(t, entity.EstadoInactivo, perfil.Estado)
	assert.False(t, f.roles.tieneGrant(usuarioID, entity.RolInstructor),
		"aunque la fila sobrevive, el usuario pierde el rol instructor")
}

func TestInstructorDelete_NoExiste(t *testing.T) {
	f := newInstructorFixture()

	err := f.uc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
