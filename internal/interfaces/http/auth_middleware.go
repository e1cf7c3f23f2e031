package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/pkg/jwt"
)

// LocalIdentidad key de la identidad autenticada en Fiber Locals.
const LocalIdentidad = "identidad"

// Identidad contexto de autorización de la petición: roles y permisos
// resueltos contra la BD en el momento del request, no al emitir el token.
// Una revocación es visible en la siguiente petición.
type Identidad struct {
	UsuarioID int64
	Email     string
	Roles     []string
	Permisos  []string
}

// EsAdmin reporta si la identidad tiene el rol administrador.
func (i *Identidad) EsAdmin() bool {
	for _, r := range i.Roles {
		if r == entity.RolAdministrador {
			return true
		}
	}
	return false
}

// TienePermiso reporta si el permiso está en el conjunto resuelto.
func (i *Identidad) TienePermiso(permiso string) bool {
	permiso = strings.ToLower(permiso)
	for _, p := range i.Permisos {
		if p == permiso {
			return true
		}
	}
	return false
}

// ResolutorPermisos resuelve roles y permisos vigentes de un usuario.
type ResolutorPermisos interface {
	RolesDeUsuario(ctx context.Context, usuarioID int64) ([]string, error)
	PermisosDeUsuario(ctx context.Context, usuarioID int64) ([]string, error)
}

// AuthMiddleware valida el Bearer Token, resuelve roles y permisos del usuario
// y deja la Identidad en c.Locals.
func AuthMiddleware(jwtSecret string, resolutor ResolutorPermisos) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_FALTANTE", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_INVALIDO", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_FALTANTE", Message: "token vacío"})
		}

		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			if err == jwt.ErrTokenExpirado {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_EXPIRADO", Message: "token expirado"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_INVALIDO", Message: "token inválido"})
		}
		usuarioID, err := claims.UsuarioID()
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_INVALIDO", Message: "token inválido"})
		}

		roles, err := resolutor.RolesDeUsuario(c.Context(), usuarioID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo resolver la identidad"})
		}
		permisos, err := resolutor.PermisosDeUsuario(c.Context(), usuarioID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo resolver la identidad"})
		}

		c.Locals(LocalIdentidad, &Identidad{
			UsuarioID: usuarioID,
			Email:     claims.Email,
			Roles:     roles,
			Permisos:  permisos,
		})
		return c.Next()
	}
}

// GetIdentidad devuelve la identidad del contexto (después del middleware de auth).
func GetIdentidad(c *fiber.Ctx) *Identidad {
	v := c.Locals(LocalIdentidad)
	if v == nil {
		return nil
	}
	id, _ := v.(*Identidad)
	return id
}

// AdminOPermiso autoriza si la identidad es administrador o tiene el permiso.
func AdminOPermiso(permiso string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := GetIdentidad(c)
		if id == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_FALTANTE", Message: "no autenticado"})
		}
		if id.EsAdmin() || id.TienePermiso(permiso) {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PROHIBIDO", Message: "se requiere el permiso " + permiso})
	}
}

// BuscarPropietario devuelve el usuario dueño del recurso :id. found=false
// cuando el recurso no existe.
type BuscarPropietario func(ctx context.Context, id int64) (usuarioID int64, found bool, err error)

// PropietarioOPermiso autoriza el acceso a un recurso con dueño. El orden es
// fijo: administrador pasa siempre; el recurso inexistente responde 404 antes
// de evaluar propiedad; el dueño pasa; si no, decide el permiso.
func PropietarioOPermiso(buscar BuscarPropietario, permiso string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := GetIdentidad(c)
		if id == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_FALTANTE", Message: "no autenticado"})
		}
		if id.EsAdmin() {
			return c.Next()
		}
		recursoID, err := c.ParamsInt("id")
		if err != nil || recursoID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_INVALIDO", Message: "id inválido"})
		}
		propietario, found, err := buscar(c.Context(), int64(recursoID))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if !found {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "recurso no encontrado"})
		}
		if propietario == id.UsuarioID {
			return c.Next()
		}
		if id.TienePermiso(permiso) {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PROHIBIDO", Message: "se requiere el permiso " + permiso})
	}
}
