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
// Tests de la exclusión mutua de roles sobre el ciclo de vida del perfil de
// administrador. Las precondiciones se verifican en orden fijo y con
// corto-circuito: usuario inválido gana a rol en conflicto, y rol en conflicto
// gana a perfil duplicado.
// ──────────────────────────────────────────────────────────────────────────────

type adminFixture struct {
	uc       *usecase.AdministradorUseCase
	usuarios *fakeUsuarioRepo
	roles    *fakeRolRepo
	admins   *fakeAdministradorRepo
}

func newAdminFixture() *adminFixture {
	usuarios := newFakeUsuarioRepo()
	roles := newFakeRolRepo(entity.RolAdministrador, entity.RolInstructor, entity.RolEstudiante, entity.RolCliente)
	admins := newFakeAdministradorRepo()
	tx := &fakeTxRunner{repos: usecase.Repos{
		Usuarios:        usuarios,
		Roles:           roles,
		Administradores: admins,
	}}
	return &adminFixture{
		uc:       usecase.NewAdministradorUseCase(tx, admins),
		usuarios: usuarios,
		roles:    roles,
		admins:   admins,
	}
}

func (f *adminFixture) agregarUsuario(t *testing.T, activo bool) int64 {
	t.Helper()
	u := &entity.Usuario{Nombre: "Laura", Email: "laura@academia.io", Activo: activo}
	require.NoError(t, f.usuarios.Create(context.Background(), u))
	return u.ID
}

func TestAdministradorCreate_AsignaPerfilYRol(t *testing.T) {
	f := newAdminFixture()
	usuarioID := f.agregarUsuario(t, true)

	resp, err := f.uc.Create(context.Background(), dto.CreateAdministradorRequest{
		UsuarioID: usuarioID,
		Cargo:     "Coordinador",
	})

	require.NoError(t, err)
	assert.Equal(t, usuarioID, resp.UsuarioID)
	assert.Equal(t, "Coordinador", resp.Cargo)
	assert.True(t, f.roles.tieneGrant(usuarioID, entity.RolAdministrador),
		"crear el perfil debe asignar el rol administrador en la misma operación")
}

func TestAdministradorCreate_UsuarioInexistente(t *testing.T) {
	f := newAdminFixture()

	_, err := f.uc.Create(context.Background(), dto.CreateAdministradorRequest{UsuarioID: 99})

	assert.ErrorIs(t, err, domain.ErrUsuarioInvalido)
}

func TestAdministradorCreate_UsuarioInactivo(t *testing.T) {
	f := newAdminFixture()
	usuarioID := f.agregarUsuario(t, false)

	_, err := f.uc.Create(context.Background(), dto.CreateAdministradorRequest{UsuarioID: usuarioID})

	assert.ErrorIs(t, err, domain.ErrUsuarioInvalido, "una cuenta sin activar no es asignable")
}

func TestAdministradorCreate_RolEnConflicto(t *testing.T) {
	f := newAdminFixture()
	usuarioID := f.agregarUsuario(t, true)
	rolEstudiante, _ := f.roles.GetByNombre(context.Background(), entity.RolEstudiante)
	require.NoError(t, f.roles.Asignar(context.Background(), usuarioID, rolEstudiante.ID))

	_, err := f.uc.Create(context.Background(), dto.CreateAdministradorRequest{UsuarioID: usuarioID})

	assert.ErrorIs(t, err, domain.ErrRolEnConflicto,
		"un usuario con cualquier rol de dominio no puede recibir otro perfil")
}

func TestAdministradorCreate_PerfilDuplicado(t *testing.T) {
	f := newAdminFixture()
	usuarioID := f.agregarUsuario(t, true)

	// Perfil huérfano sin grant: la tercera precondición debe atraparlo.
	require.NoError(t, f.admins.Create(context.Background(), &entity.Administrador{UsuarioID: usuarioID}))

	_, err := f.uc.Create(context.Background(), dto.CreateAdministradorRequest{UsuarioID: usuarioID})

	assert.ErrorIs(t, err, domain.ErrPerfilDuplicado)
}

func TestAdministradorCreate_OrdenDePrecondiciones(t *testing.T) {
	f := newAdminFixture()

	// Usuario inactivo Y con rol en conflicto: debe reportarse el primero
	// de la cadena de validaciones.
	usuarioID := f.agregarUsuario(t, false)
	rolInstructor, _ := f.roles.GetByNombre(context.Background(), entity.RolInstructor)
	require.NoError(t, f.roles.Asignar(context.Background(), usuarioID, rolInstructor.ID))

	_, err := f.uc.Create(context.Background(), dto.CreateAdministradorRequest{UsuarioID: usuarioID})

	assert.ErrorIs(t, err, domain.ErrUsuarioInvalido)
}

func TestAdministradorCreate_RolNoConfigurado(t *testing.T) {
	usuarios := newFakeUsuarioRepo()
	roles := newFakeRolRepo() // sin roles sembrados
	admins := newFakeAdministradorRepo()
	tx := &fakeTxRunner{repos: usecase.Repos{Usuarios: usuarios, Roles: roles, Administradores: admins}}
	uc := usecase.NewAdministradorUseCase(tx, admins)

	u := &entity.Usuario{Nombre: "Laura", Email: "laura@academia.io", Activo: true}
	require.NoError(t, usuarios.Create(context.Background(), u))

	_, err := uc.Create(context.Background(), dto.CreateAdministradorRequest{UsuarioID: u.ID})

	assert.ErrorIs(t, err, domain.ErrRolNoConfigurado,
		"sin la fila del rol administrador la operación debe fallar, no crear el perfil a medias")
}

func TestAdministradorUpdate_ReapuntarMueveElGrant(t *testing.T) {
	f := newAdminFixture()
	original := f.agregarUsuario(t, true)
	nuevo := f.agregarUsuario(t, true)

	resp, err := f.uc.Create(context.Background(), dto.CreateAdministradorRequest{UsuarioID: original, Cargo: "Coordinador"})
	require.NoError(t, err)

	actualizado, err := f.uc.Update(context.Background(), resp.ID, dto.UpdateAdministradorRequest{UsuarioID: &nuevo})
	require.NoError(t, err)

	assert.Equal(t, nuevo, actualizado.UsuarioID)
	assert.True(t, f.roles.tieneGrant(nuevo, entity.RolAdministrador), "el nuevo dueño recibe el grant")
	assert.False(t, f.roles.tieneGrant(original, entity.RolAdministrador), "el dueño anterior lo pierde")
}

func TestAdministradorUpdate_ReapuntarAUsuarioConRol(t *testing.T) {
	f := newAdminFixture()
	original := f.agregarUsuario(t, true)
	ocupado := f.agregarUsuario(t, true)
	rolCliente, _ := f.roles.GetByNombre(context.Background(), entity.RolCliente)
	require.NoError(t, f.roles.Asignar(context.Background(), ocupado, rolCliente.ID))

	resp, err := f.uc.Create(context.Background(), dto.CreateAdministradorRequest{UsuarioID: original})
	require.NoError(t, err)

	_, err = f.uc.Update(context.Background(), resp.ID, dto.UpdateAdministradorRequest{UsuarioID: &ocupado})

	assert.ErrorIs(t, err, domain.ErrRolEnConflicto)
	assert.True(t, f.roles.tieneGrant(original, entity.RolAdministrador), "el grant original no debe moverse")
}

func TestAdministradorDelete_QuitaPerfilYGrant(t *testing.T) {
	f := newAdminFixture()
	usuarioID := f.agregarUsuario(t, true)

	resp, err := f.uc.Create(context.Background(), dto.CreateAdministradorRequest{UsuarioID: usuarioID})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), resp.ID))

	perfil, _ := f.admins.GetByID(context.Background(), resp.ID)
	assert.Nil(t, perfil, "el perfil se borra físicamente")
	assert.False(t, f.roles.tieneGrant(usuarioID, entity.RolAdministrador),
		"el usuario vuelve al estado sin rol de dominio")
}

func TestAdministradorDelete_NoExiste(t *testing.T) {
	f := newAdminFixture()

	err := f.uc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
