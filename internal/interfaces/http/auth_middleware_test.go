package http_test

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/academiaskate/academia-api/internal/interfaces/http"
	pkgjwt "github.com/academiaskate/academia-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del middleware de autenticación y de los gates de autorización.
//
// Los roles y permisos se resuelven contra un resolutor falso en memoria, con
// la misma semántica que el repositorio real: lo que devuelve el resolutor en
// ESTA petición es lo que vale, sin caché. Los gates se prueban sobre una app
// Fiber mínima con un handler que responde 200 "ok" si la cadena lo deja pasar.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "secreto-de-pruebas"
	testIssuer    = "academia-api-test"
	testExpMin    = 60

	idAdmin      int64 = 1
	idInstructor int64 = 2
	idEstudiante int64 = 3
	idSinRol     int64 = 4
)

// fakeResolutor resuelve roles y permisos desde mapas en memoria.
type fakeResolutor struct {
	roles    map[int64][]string
	permisos map[int64][]string
}

func (f *fakeResolutor) RolesDeUsuario(_ context.Context, usuarioID int64) ([]string, error) {
	return f.roles[usuarioID], nil
}

func (f *fakeResolutor) PermisosDeUsuario(_ context.Context, usuarioID int64) ([]string, error) {
	return f.permisos[usuarioID], nil
}

func nuevoResolutor() *fakeResolutor {
	return &fakeResolutor{
		roles: map[int64][]string{
			idAdmin:      {"administrador"},
			idInstructor: {"instructor"},
			idEstudiante: {"estudiante"},
		},
		permisos: map[int64][]string{
			idInstructor: {"gestionar_clases"},
		},
	}
}

// buildTestApp arma una app con dos rutas protegidas: una detrás de
// AdminOPermiso("gestionar_clases") y otra detrás de PropietarioOPermiso
// sobre un recurso cuyo dueño es idEstudiante (solo existe el recurso 10).
func buildTestApp(t *testing.T, resolutor apphttp.ResolutorPermisos) *fiber.App {
	t.Helper()

	buscar := apphttp.BuscarPropietario(func(_ context.Context, id int64) (int64, bool, error) {
		if id == 10 {
			return idEstudiante, true, nil
		}
		return 0, false, nil
	})

	app := fiber.New()
	auth := apphttp.AuthMiddleware(testJWTSecret, resolutor)

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/clases", auth, apphttp.AdminOPermiso("gestionar_clases"), ok)
	app.Get("/estudiantes/:id", auth, apphttp.PropietarioOPermiso(buscar, "gestionar_estudiantes"), ok)
	return app
}

// tokenPara genera un Bearer token válido para el usuario dado.
func tokenPara(t *testing.T, usuarioID int64) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, usuarioID, "test@academia.io", testIssuer, testExpMin)
	require.NoError(t, err, "Generate no debe fallar con parámetros válidos")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// ── Autenticación ─────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(t, nuevoResolutor())

	status, body := doRequest(t, app, "/clases", "")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "TOKEN_FALTANTE", "sin header Authorization debe responder TOKEN_FALTANTE")
}

func TestAuthMiddleware_TokenMalformado(t *testing.T) {
	app := buildTestApp(t, nuevoResolutor())

	status, body := doRequest(t, app, "/clases", "Bearer no-es-un-jwt")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "TOKEN_INVALIDO")
}

func TestAuthMiddleware_EsquemaInvalido(t *testing.T) {
	app := buildTestApp(t, nuevoResolutor())

	status, body := doRequest(t, app, "/clases", "Basic abc123")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "TOKEN_INVALIDO", "un esquema distinto de Bearer debe rechazarse")
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildTestApp(t, nuevoResolutor())

	// Token emitido con expiración negativa: ya venció al generarse.
	tok, err := pkgjwt.Generate(testJWTSecret, idAdmin, "admin@academia.io", testIssuer, -1)
	require.NoError(t, err)

	status, body := doRequest(t, app, "/clases", "Bearer "+tok)

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "TOKEN_EXPIRADO", "un token vencido debe distinguirse de uno inválido")
}

func TestAuthMiddleware_FirmaDeOtroSecreto(t *testing.T) {
	app := buildTestApp(t, nuevoResolutor())

	tok, err := pkgjwt.Generate("otro-secreto", idAdmin, "admin@academia.io", testIssuer, testExpMin)
	require.NoError(t, err)

	status, body := doRequest(t, app, "/clases", "Bearer "+tok)

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "TOKEN_INVALIDO")
}

// ── AdminOPermiso ─────────────────────────────────────────────────────────────

func TestAdminOPermiso_AdminPasaSiempre(t *testing.T) {
	app := buildTestApp(t, nuevoResolutor())

	status, body := doRequest(t, app, "/clases", tokenPara(t, idAdmin))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body, "el administrador pasa sin necesidad del permiso")
}

func TestAdminOPermiso_PermisoExplicitoPasa(t *testing.T) {
	app := buildTestApp(t, nuevoResolutor())

	// El instructor no es admin pero tiene gestionar_clases.
	status, body := doRequest(t, app, "/clases", tokenPara(t, idInstructor))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body)
}

func TestAdminOPermiso_SinPermisoProhibido(t *testing.T) {
	app := buildTestApp(t, nuevoResolutor())

	status, body := doRequest(t, app, "/clases", tokenPara(t, idEstudiante))

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Contains(t, body, "PROHIBIDO")
}

func TestAdminOPermiso_RevocacionVisibleEnSiguientePeticion(t *testing.T) {
	resolutor := nuevoResolutor()
	app := buildTestApp(t, resolutor)

	status, _ := doRequest(t, app, "/clases", tokenPara(t, idInstructor))
	require.Equal(t, fiber.StatusOK, status)

	// Se revoca el permiso; el mismo token deja de pasar sin reemitirse.
	resolutor.permisos[idInstructor] = nil

	status, body := doRequest(t, app, "/clases", tokenPara(t, idInstructor))
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Contains(t, body, "PROHIBIDO", "la revocación debe ser visible en la siguiente petición")
}

// ── PropietarioOPermiso ───────────────────────────────────────────────────────

func TestPropietarioOPermiso_AdminPasa(t *testing.T) {
	app := buildTestApp(t, nuevoResolutor())

	status, body := doRequest(t, app, "/estudiantes/10", tokenPara(t, idAdmin))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body)
}

func TestPropietarioOPermiso_DuenoPasa(t *testing.T) {
	app := buildTestApp(t, nuevoResolutor())

	status, body := doRequest(t, app, "/estudiantes/10", tokenPara(t, idEstudiante))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body, "el dueño del recurso pasa sin permiso explícito")
}

func TestPropietarioOPermiso_NoDuenoSinPermisoProhibido(t *testing.T) {
	app := buildTestApp(t, nuevoResolutor())

	status, body := doRequest(t, app, "/estudiantes/10", tokenPara(t, idSinRol))

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Contains(t, body, "PROHIBIDO")
}

func TestPropietarioOPermiso_NoDuenoConPermisoPasa(t *testing.T) {
	resolutor := nuevoResolutor()
	resolutor.permisos[idInstructor] = []string{"gestionar_estudiantes"}
	app := buildTestApp(t, resolutor)

	status, body := doRequest(t, app, "/estudiantes/10", tokenPara(t, idInstructor))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body)
}

func TestPropietarioOPermiso_RecursoInexistente404(t *testing.T) {
	app := buildTestApp(t, nuevoResolutor())

	// El 404 se decide antes de evaluar propiedad o permiso, incluso para un
	// usuario que habría sido rechazado con 403 sobre un recurso existente.
	status, body := doRequest(t, app, "/estudiantes/99", tokenPara(t, idSinRol))

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "NO_ENCONTRADO")
}

func TestPropietarioOPermiso_IDInvalido400(t *testing.T) {
	app := buildTestApp(t, nuevoResolutor())

	status, body := doRequest(t, app, "/estudiantes/abc", tokenPara(t, idEstudiante))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "ID_INVALIDO")
}
