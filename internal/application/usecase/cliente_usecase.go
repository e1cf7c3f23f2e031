package usecase

import (
	"context"
	"time"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// ClienteUseCase CRUD de clientes de la tienda.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(clienteRepo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo}
}

// Create crea un cliente. El NIT es único.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	existente, err := uc.clienteRepo.GetByNIT(ctx, in.NIT)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	now := time.Now()
	c := &entity.Cliente{
		NIT:       in.NIT,
		Nombre:    in.Nombre,
		Email:     in.Email,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clienteRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByID obtiene un cliente por id.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	c, err := uc.clienteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toClienteResponse(c), nil
}

// GetByNIT obtiene un cliente por NIT.
func (uc *ClienteUseCase) GetByNIT(ctx context.Context, nit string) (*dto.ClienteResponse, error) {
	c, err := uc.clienteRepo.GetByNIT(ctx, nit)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toClienteResponse(c), nil
}

// List lista clientes.
func (uc *ClienteUseCase) List(ctx context.Context, limit, offset int) ([]*dto.ClienteResponse, error) {
	clientes, err := uc.clienteRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Update actualización parcial.
func (uc *ClienteUseCase) Update(ctx context.Context, id int64, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.clienteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		c.Nombre = *in.Nombre
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Telefono != nil {
		c.Telefono = *in.Telefono
	}
	if in.Direccion != nil {
		c.Direccion = *in.Direccion
	}
	c.UpdatedAt = time.Now()
	if err := uc.clienteRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Delete elimina un cliente.
func (uc *ClienteUseCase) Delete(ctx context.Context, id int64) error {
	c, err := uc.clienteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.clienteRepo.Delete(ctx, id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		NIT:       c.NIT,
		Nombre:    c.Nombre,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
