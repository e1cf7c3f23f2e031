package repository

import (
	"context"

	"github.com/academiaskate/academia-api/internal/domain/entity"
)

// RolRepository puerto de persistencia para roles, permisos y sus joins.
// Es también la fuente de la resolución de permisos del middleware de
// autorización: se consulta en cada petición autenticada (sin caché) para que
// una revocación sea visible en la siguiente petición.
type RolRepository interface {
	List(ctx context.Context) ([]*entity.Rol, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Rol, error)

	// RolesDeUsuario devuelve los nombres de rol vigentes del usuario, en minúsculas.
	RolesDeUsuario(ctx context.Context, usuarioID int64) ([]string, error)
	// PermisosDeUsuario devuelve la unión distinta de permisos alcanzables
	// desde los roles del usuario, en minúsculas.
	PermisosDeUsuario(ctx context.Context, usuarioID int64) ([]string, error)

	// Grants usuario-rol.
	GrantExiste(ctx context.Context, usuarioID, rolID int64) (bool, error)
	Asignar(ctx context.Context, usuarioID, rolID int64) error
	Quitar(ctx context.Context, usuarioID, rolID int64) error

	// Permisos y su asignación a roles.
	ListPermisos(ctx context.Context) ([]*entity.Permiso, error)
	AsignarPermiso(ctx context.Context, rolID, permisoID int64) error
	QuitarPermiso(ctx context.Context, rolID, permisoID int64) error
}
