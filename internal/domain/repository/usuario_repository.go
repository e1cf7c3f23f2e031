package repository

import (
	"context"

	"github.com/academiaskate/academia-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando la fila no existe.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	GetByTokenActivacion(ctx context.Context, token string) (*entity.Usuario, error)
	Update(ctx context.Context, u *entity.Usuario) error
	// Activar marca al usuario como activo y consume el token de un solo uso.
	Activar(ctx context.Context, id int64) error
	Desactivar(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.Usuario, error)
}
