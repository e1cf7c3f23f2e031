package repository

import (
	"context"

	"github.com/academiaskate/academia-api/internal/domain/entity"
)

// ProductoRepository puerto para el catálogo de productos y sus variantes.
type ProductoRepository interface {
	Create(ctx context.Context, p *entity.Producto) error
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Producto, error)
	Update(ctx context.Context, p *entity.Producto) error
	Delete(ctx context.Context, id int64) error

	CreateVariante(ctx context.Context, v *entity.VarianteProducto) error
	GetVariante(ctx context.Context, id int64) (*entity.VarianteProducto, error)
	// GetVarianteForUpdate bloquea la fila de la variante para ajustar stock
	// dentro de una transacción (venta, anulación, compra).
	GetVarianteForUpdate(ctx context.Context, id int64) (*entity.VarianteProducto, error)
	ListVariantes(ctx context.Context, productoID int64) ([]*entity.VarianteProducto, error)
	UpdateVariante(ctx context.Context, v *entity.VarianteProducto) error
	ActualizarStock(ctx context.Context, varianteID int64, stock int) error
}

// ClienteRepository puerto para clientes de la tienda.
type ClienteRepository interface {
	Create(ctx context.Context, c *entity.Cliente) error
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	GetByNIT(ctx context.Context, nit string) (*entity.Cliente, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Cliente, error)
	Update(ctx context.Context, c *entity.Cliente) error
	Delete(ctx context.Context, id int64) error
}

// VentaRepository puerto para ventas y sus detalles.
type VentaRepository interface {
	Create(ctx context.Context, v *entity.Venta, detalles []*entity.DetalleVenta) error
	GetByID(ctx context.Context, id int64) (*entity.Venta, error)
	// GetByIDForUpdate bloquea la cabecera para el flujo de anulación: dos
	// peticiones concurrentes no deben observar ambas "no anulada".
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Venta, error)
	GetDetalles(ctx context.Context, ventaID int64) ([]*entity.DetalleVenta, error)
	Anular(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.Venta, error)
}

// ProveedorRepository puerto para proveedores.
type ProveedorRepository interface {
	Create(ctx context.Context, p *entity.Proveedor) error
	GetByID(ctx context.Context, id int64) (*entity.Proveedor, error)
	GetByNIT(ctx context.Context, nit string) (*entity.Proveedor, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Proveedor, error)
	Update(ctx context.Context, p *entity.Proveedor) error
	Delete(ctx context.Context, id int64) error
}

// CompraRepository puerto para compras a proveedores.
type CompraRepository interface {
	Create(ctx context.Context, c *entity.Compra) error
	List(ctx context.Context, limit, offset int) ([]*entity.Compra, error)
}
