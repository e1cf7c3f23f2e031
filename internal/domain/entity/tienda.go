package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de ventas.
const (
	VentaCompletada = "Completada"
	VentaAnulada    = "Anulada"
)

// Producto artículo del catálogo (tablas, ruedas, indumentaria).
type Producto struct {
	ID          int64
	Nombre      string
	Descripcion string
	Categoria   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VarianteProducto presentación concreta de un producto: talla/color, con stock y precio propios.
type VarianteProducto struct {
	ID         int64
	ProductoID int64
	Talla      string
	Color      string
	Precio     decimal.Decimal
	Stock      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Cliente comprador de la tienda, direccionable por NIT además de por id.
type Cliente struct {
	ID        int64
	NIT       string
	Nombre    string
	Email     string
	Telefono  string
	Direccion string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Venta cabecera de venta. La anulación restaura el stock de cada variante
// bajo bloqueo de fila.
type Venta struct {
	ID        int64
	ClienteID *int64
	Fecha     time.Time
	Total     decimal.Decimal
	Estado    string // Completada, Anulada
	CreatedAt time.Time
}

// DetalleVenta línea de venta.
type DetalleVenta struct {
	ID             int64
	VentaID        int64
	VarianteID     int64
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// Proveedor proveedor de mercancía.
type Proveedor struct {
	ID        int64
	NIT       string
	Nombre    string
	Email     string
	Telefono  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Compra compra a proveedor; al registrarse incrementa el stock de la variante.
type Compra struct {
	ID           int64
	ProveedorID  int64
	VarianteID   int64
	Cantidad     int
	CostoUnitario decimal.Decimal
	Fecha        time.Time
	CreatedAt    time.Time
}
