package usecase

import (
	"context"

	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
)

// verificarUsuarioAsignable aplica las precondiciones de exclusividad de roles,
// en orden y con corto-circuito en el primer fallo:
//
//  1. el usuario destino existe y está activo        → ErrUsuarioInvalido
//  2. no tiene ninguno de los roles de dominio        → ErrRolEnConflicto
//
// La tercera precondición (sin perfil previo) depende de la tabla de perfil y
// la verifica cada caso de uso. Debe llamarse con repositorios atados a la
// misma transacción que hará las escrituras.
func verificarUsuarioAsignable(ctx context.Context, r Repos, usuarioID int64) error {
	u, err := r.Usuarios.GetByID(ctx, usuarioID)
	if err != nil {
		return err
	}
	if u == nil || !u.Activo {
		return domain.ErrUsuarioInvalido
	}
	roles, err := r.Roles.RolesDeUsuario(ctx, usuarioID)
	if err != nil {
		return err
	}
	for _, nombre := range roles {
		for _, excluyente := range entity.RolesExcluyentes {
			if nombre == excluyente {
				return domain.ErrRolEnConflicto
			}
		}
	}
	return nil
}
