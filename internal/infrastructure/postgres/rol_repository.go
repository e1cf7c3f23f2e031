package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

var _ repository.RolRepository = (*RolRepo)(nil)

// RolRepo implementación de RolRepository sobre PostgreSQL. Sirve además la
// resolución de roles/permisos del middleware de autorización: dos lecturas
// por petición, sin caché, en minúsculas para comparación case-insensitive.
type RolRepo struct {
	q Querier
}

// NewRolRepository construye el adaptador. Acepta pool o tx (Querier).
func NewRolRepository(q Querier) *RolRepo {
	return &RolRepo{q: q}
}

// List lista los roles definidos.
func (r *RolRepo) List(ctx context.Context) ([]*entity.Rol, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre FROM roles ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rol
	for rows.Next() {
		var rol entity.Rol
		if err := rows.Scan(&rol.ID, &rol.Nombre); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		list = append(list, &rol)
	}
	return list, rows.Err()
}

// GetByNombre obtiene un rol por nombre (case-insensitive).
func (r *RolRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Rol, error) {
	var rol entity.Rol
	err := r.q.QueryRow(ctx, `SELECT id, nombre FROM roles WHERE LOWER(nombre) = LOWER($1)`, nombre).
		Scan(&rol.ID, &rol.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rol por nombre: %w", err)
	}
	return &rol, nil
}

// RolesDeUsuario devuelve los nombres de rol vigentes del usuario, en minúsculas.
func (r *RolRepo) RolesDeUsuario(ctx context.Context, usuarioID int64) ([]string, error) {
	query := `
		SELECT LOWER(r.nombre)
		FROM usuario_roles ur
		JOIN roles r ON r.id = ur.rol_id
		WHERE ur.usuario_id = $1`
	return r.scanNombres(ctx, query, usuarioID)
}

// PermisosDeUsuario devuelve la unión distinta de permisos alcanzables desde
// los roles del usuario, en minúsculas.
func (r *RolRepo) PermisosDeUsuario(ctx context.Context, usuarioID int64) ([]string, error) {
	query := `
		SELECT DISTINCT LOWER(p.nombre)
		FROM usuario_roles ur
		JOIN roles_permisos rp ON rp.rol_id = ur.rol_id
		JOIN permisos p ON p.id = rp.permiso_id
		WHERE ur.usuario_id = $1`
	return r.scanNombres(ctx, query, usuarioID)
}

func (r *RolRepo) scanNombres(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query nombres: %w", err)
	}
	defer rows.Close()
	var nombres []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan nombre: %w", err)
		}
		nombres = append(nombres, n)
	}
	return nombres, rows.Err()
}

// GrantExiste verifica si el par (usuario, rol) ya está en usuario_roles.
func (r *RolRepo) GrantExiste(ctx context.Context, usuarioID, rolID int64) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM usuario_roles WHERE usuario_id = $1 AND rol_id = $2)`,
		usuarioID, rolID,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("grant existe: %w", err)
	}
	return existe, nil
}

// Asignar inserta el grant usuario-rol.
func (r *RolRepo) Asignar(ctx context.Context, usuarioID, rolID int64) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO usuario_roles (usuario_id, rol_id) VALUES ($1, $2)`,
		usuarioID, rolID,
	)
	if err != nil {
		return fmt.Errorf("asignar rol: %w", err)
	}
	return nil
}

// Quitar elimina el grant usuario-rol.
func (r *RolRepo) Quitar(ctx context.Context, usuarioID, rolID int64) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM usuario_roles WHERE usuario_id = $1 AND rol_id = $2`,
		usuarioID, rolID,
	)
	if err != nil {
		return fmt.Errorf("quitar rol: %w", err)
	}
	return nil
}

// ListPermisos lista los permisos definidos.
func (r *RolRepo) ListPermisos(ctx context.Context) ([]*entity.Permiso, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre FROM permisos ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list permisos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Permiso
	for rows.Next() {
		var p entity.Permiso
		if err := rows.Scan(&p.ID, &p.Nombre); err != nil {
			return nil, fmt.Errorf("scan permiso: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// AsignarPermiso vincula un permiso a un rol. Idempotente.
func (r *RolRepo) AsignarPermiso(ctx context.Context, rolID, permisoID int64) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO roles_permisos (rol_id, permiso_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		rolID, permisoID,
	)
	if err != nil {
		return fmt.Errorf("asignar permiso: %w", err)
	}
	return nil
}

// QuitarPermiso desvincula un permiso de un rol.
func (r *RolRepo) QuitarPermiso(ctx context.Context, rolID, permisoID int64) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM roles_permisos WHERE rol_id = $1 AND permiso_id = $2`,
		rolID, permisoID,
	)
	if err != nil {
		return fmt.Errorf("quitar permiso: %w", err)
	}
	return nil
}
