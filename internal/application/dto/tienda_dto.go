package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest alta de producto del catálogo.
type CreateProductoRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
	Categoria   string `json:"categoria"`
}

// UpdateProductoRequest actualización parcial de producto.
type UpdateProductoRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Categoria   *string `json:"categoria"`
}

// ProductoResponse producto con sus variantes.
type ProductoResponse struct {
	ID          int64              `json:"id"`
	Nombre      string             `json:"nombre"`
	Descripcion string             `json:"descripcion"`
	Categoria   string             `json:"categoria"`
	Variantes   []VarianteResponse `json:"variantes,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CreateVarianteRequest alta de variante (talla/color) de un producto.
type CreateVarianteRequest struct {
	Talla  string          `json:"talla"`
	Color  string          `json:"color"`
	Precio decimal.Decimal `json:"precio"`
	Stock  int             `json:"stock" validate:"gte=0"`
}

// VarianteResponse variante de producto.
type VarianteResponse struct {
	ID         int64           `json:"id"`
	ProductoID int64           `json:"producto_id"`
	Talla      string          `json:"talla"`
	Color      string          `json:"color"`
	Precio     decimal.Decimal `json:"precio"`
	Stock      int             `json:"stock"`
}

// CreateClienteRequest alta de cliente.
type CreateClienteRequest struct {
	NIT       string `json:"nit" validate:"required"`
	Nombre    string `json:"nombre" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// UpdateClienteRequest actualización parcial de cliente.
type UpdateClienteRequest struct {
	Nombre    *string `json:"nombre"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

// ClienteResponse cliente.
type ClienteResponse struct {
	ID        int64     `json:"id"`
	NIT       string    `json:"nit"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Direccion string    `json:"direccion"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineaVentaRequest línea de una venta: variante y cantidad.
type LineaVentaRequest struct {
	VarianteID int64 `json:"variante_id" validate:"required,gt=0"`
	Cantidad   int   `json:"cantidad" validate:"required,gt=0"`
}

// CreateVentaRequest alta de venta. El precio unitario se toma de la variante
// al momento de la venta, no del request.
type CreateVentaRequest struct {
	ClienteID *int64              `json:"cliente_id" validate:"omitempty,gt=0"`
	Lineas    []LineaVentaRequest `json:"lineas" validate:"required,min=1,dive"`
}

// DetalleVentaResponse línea de venta persistida.
type DetalleVentaResponse struct {
	ID             int64           `json:"id"`
	VarianteID     int64           `json:"variante_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse venta con sus líneas.
type VentaResponse struct {
	ID        int64                  `json:"id"`
	ClienteID *int64                 `json:"cliente_id,omitempty"`
	Fecha     time.Time              `json:"fecha"`
	Total     decimal.Decimal        `json:"total"`
	Estado    string                 `json:"estado"`
	Detalles  []DetalleVentaResponse `json:"detalles,omitempty"`
}

// EnviarReciboRequest envía el recibo PDF de una venta al correo indicado.
type EnviarReciboRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CreateProveedorRequest alta de proveedor.
type CreateProveedorRequest struct {
	NIT      string `json:"nit" validate:"required"`
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Telefono string `json:"telefono"`
}

// ProveedorResponse proveedor.
type ProveedorResponse struct {
	ID        int64     `json:"id"`
	NIT       string    `json:"nit"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCompraRequest registra una compra a proveedor y suma stock a la variante.
type CreateCompraRequest struct {
	ProveedorID   int64           `json:"proveedor_id" validate:"required,gt=0"`
	VarianteID    int64           `json:"variante_id" validate:"required,gt=0"`
	Cantidad      int             `json:"cantidad" validate:"required,gt=0"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
}

// CompraResponse compra registrada.
type CompraResponse struct {
	ID            int64           `json:"id"`
	ProveedorID   int64           `json:"proveedor_id"`
	VarianteID    int64           `json:"variante_id"`
	Cantidad      int             `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	Fecha         time.Time       `json:"fecha"`
}
