package usecase

import (
	"context"
	"time"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// ProductoUseCase CRUD del catálogo y sus variantes. El stock de cada variante
// solo lo mutan ventas, anulaciones y compras (dentro de transacción).
type ProductoUseCase struct {
	productoRepo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productoRepo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo}
}

// Create crea un producto sin variantes.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	now := time.Now()
	p := &entity.Producto{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Categoria:   in.Categoria,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productoRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductoResponse(p, nil), nil
}

// AgregarVariante agrega una variante (talla/color) a un producto existente.
func (uc *ProductoUseCase) AgregarVariante(ctx context.Context, productoID int64, in dto.CreateVarianteRequest) (*dto.VarianteResponse, error) {
	p, err := uc.productoRepo.GetByID(ctx, productoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	v := &entity.VarianteProducto{
		ProductoID: productoID,
		Talla:      in.Talla,
		Color:      in.Color,
		Precio:     in.Precio,
		Stock:      in.Stock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.productoRepo.CreateVariante(ctx, v); err != nil {
		return nil, err
	}
	return toVarianteResponse(v), nil
}

// GetByID obtiene un producto con sus variantes.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	variantes, err := uc.productoRepo.ListVariantes(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductoResponse(p, variantes), nil
}

// List lista productos (sin variantes).
func (uc *ProductoUseCase) List(ctx context.Context, limit, offset int) ([]*dto.ProductoResponse, error) {
	productos, err := uc.productoRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductoResponse(p, nil))
	}
	return out, nil
}

// Update actualización parcial del producto.
func (uc *ProductoUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Categoria != nil {
		p.Categoria = *in.Categoria
	}
	p.UpdatedAt = time.Now()
	if err := uc.productoRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductoResponse(p, nil), nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductoUseCase) Delete(ctx context.Context, id int64) error {
	p, err := uc.productoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.productoRepo.Delete(ctx, id)
}

func toProductoResponse(p *entity.Producto, variantes []*entity.VarianteProducto) *dto.ProductoResponse {
	out := &dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Categoria:   p.Categoria,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, v := range variantes {
		out.Variantes = append(out.Variantes, *toVarianteResponse(v))
	}
	return out
}

func toVarianteResponse(v *entity.VarianteProducto) *dto.VarianteResponse {
	return &dto.VarianteResponse{
		ID:         v.ID,
		ProductoID: v.ProductoID,
		Talla:      v.Talla,
		Color:      v.Color,
		Precio:     v.Precio,
		Stock:      v.Stock,
	}
}
