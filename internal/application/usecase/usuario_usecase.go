package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// UsuarioUseCase administración de usuarios. El alta pasa por el caso de uso
// de auth (registro + activación); aquí van consulta, edición y baja lógica.
type UsuarioUseCase struct {
	usuarioRepo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(usuarioRepo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarioRepo: usuarioRepo}
}

// GetByID obtiene un usuario.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id int64) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return ToUsuarioResponse(u), nil
}

// List lista usuarios.
func (uc *UsuarioUseCase) List(ctx context.Context, limit, offset int) ([]*dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarioRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, ToUsuarioResponse(u))
	}
	return out, nil
}

// Update actualización parcial. El password se re-hashea con bcrypt.
func (uc *UsuarioUseCase) Update(ctx context.Context, id int64, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		u.Nombre = *in.Nombre
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	u.UpdatedAt = time.Now()
	if err := uc.usuarioRepo.Update(ctx, u); err != nil {
		return nil, err
	}
	return ToUsuarioResponse(u), nil
}

// Desactivar baja lógica del usuario. La fila se conserva porque los perfiles
// de rol la referencian.
func (uc *UsuarioUseCase) Desactivar(ctx context.Context, id int64) error {
	u, err := uc.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return uc.usuarioRepo.Desactivar(ctx, id)
}

// ToUsuarioResponse mapea la entidad a su representación pública.
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Documento: u.Documento,
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
