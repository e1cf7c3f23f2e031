package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// GeneradorRecibo puerto de generación del recibo PDF de una venta.
type GeneradorRecibo interface {
	GenerarRecibo(ctx context.Context, venta *entity.Venta, detalles []*entity.DetalleVenta, cliente *entity.Cliente) ([]byte, error)
}

// VentaUseCase ventas de la tienda: creación con descuento de stock, anulación
// con restauración bajo bloqueo de fila y envío del recibo PDF por correo.
type VentaUseCase struct {
	txRunner    TxRunner
	ventaRepo   repository.VentaRepository
	clienteRepo repository.ClienteRepository
	recibos     GeneradorRecibo
	mailer      Mailer
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(
	txRunner TxRunner,
	ventaRepo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	recibos GeneradorRecibo,
	mailer Mailer,
) *VentaUseCase {
	return &VentaUseCase{
		txRunner:    txRunner,
		ventaRepo:   ventaRepo,
		clienteRepo: clienteRepo,
		recibos:     recibos,
		mailer:      mailer,
	}
}

// Create registra una venta: por cada línea bloquea la variante
// (SELECT ... FOR UPDATE), verifica stock, lo descuenta y toma el precio
// vigente de la variante. Cabecera y detalles se insertan en la misma
// transacción.
func (uc *VentaUseCase) Create(ctx context.Context, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	var creada *entity.Venta
	var detalles []*entity.DetalleVenta
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		total := decimal.Zero
		detalles = detalles[:0]
		for _, linea := range in.Lineas {
			variante, err := r.Productos.GetVarianteForUpdate(ctx, linea.VarianteID)
			if err != nil {
				return err
			}
			if variante == nil {
				return domain.ErrNotFound
			}
			if variante.Stock < linea.Cantidad {
				return domain.ErrStockInsuficiente
			}
			if err := r.Productos.ActualizarStock(ctx, variante.ID, variante.Stock-linea.Cantidad); err != nil {
				return err
			}
			subtotal := variante.Precio.Mul(decimal.NewFromInt(int64(linea.Cantidad)))
			detalles = append(detalles, &entity.DetalleVenta{
				VarianteID:     variante.ID,
				Cantidad:       linea.Cantidad,
				PrecioUnitario: variante.Precio,
				Subtotal:       subtotal,
			})
			total = total.Add(subtotal)
		}
		v := &entity.Venta{
			ClienteID: in.ClienteID,
			Fecha:     time.Now(),
			Total:     total,
			Estado:    entity.VentaCompletada,
			CreatedAt: time.Now(),
		}
		if err := r.Ventas.Create(ctx, v, detalles); err != nil {
			return err
		}
		creada = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toVentaResponse(creada, detalles), nil
}

// Anular cancela una venta y restaura el stock de cada variante. La cabecera
// se lee con FOR UPDATE: dos anulaciones concurrentes no pueden observar ambas
// "no anulada" y restaurar el stock dos veces.
func (uc *VentaUseCase) Anular(ctx context.Context, id int64) (*dto.VentaResponse, error) {
	var anulada *entity.Venta
	var detalles []*entity.DetalleVenta
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		v, err := r.Ventas.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}
		if v.Estado == entity.VentaAnulada {
			return domain.ErrVentaYaAnulada
		}
		detalles, err = r.Ventas.GetDetalles(ctx, id)
		if err != nil {
			return err
		}
		for _, d := range detalles {
			variante, err := r.Productos.GetVarianteForUpdate(ctx, d.VarianteID)
			if err != nil {
				return err
			}
			if variante == nil {
				continue // variante eliminada después de la venta; no hay stock que restaurar
			}
			if err := r.Productos.ActualizarStock(ctx, variante.ID, variante.Stock+d.Cantidad); err != nil {
				return err
			}
		}
		if err := r.Ventas.Anular(ctx, id); err != nil {
			return err
		}
		v.Estado = entity.VentaAnulada
		anulada = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toVentaResponse(anulada, detalles), nil
}

// EnviarRecibo genera el recibo PDF de la venta y lo envía por correo.
func (uc *VentaUseCase) EnviarRecibo(ctx context.Context, id int64, email string) error {
	v, err := uc.ventaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	detalles, err := uc.ventaRepo.GetDetalles(ctx, id)
	if err != nil {
		return err
	}
	var cliente *entity.Cliente
	if v.ClienteID != nil {
		cliente, err = uc.clienteRepo.GetByID(ctx, *v.ClienteID)
		if err != nil {
			return err
		}
	}
	pdf, err := uc.recibos.GenerarRecibo(ctx, v, detalles, cliente)
	if err != nil {
		return fmt.Errorf("generar recibo: %w", err)
	}
	asunto := fmt.Sprintf("Recibo de venta #%d", v.ID)
	cuerpo := fmt.Sprintf("Adjuntamos el recibo de su compra del %s.", v.Fecha.Format("2006-01-02"))
	nombre := fmt.Sprintf("recibo-venta-%d.pdf", v.ID)
	return uc.mailer.EnviarConAdjunto(email, asunto, cuerpo, pdf, nombre)
}

// GetByID obtiene una venta con sus líneas.
func (uc *VentaUseCase) GetByID(ctx context.Context, id int64) (*dto.VentaResponse, error) {
	v, err := uc.ventaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	detalles, err := uc.ventaRepo.GetDetalles(ctx, id)
	if err != nil {
		return nil, err
	}
	return toVentaResponse(v, detalles), nil
}

// List lista ventas (sin líneas).
func (uc *VentaUseCase) List(ctx context.Context, limit, offset int) ([]*dto.VentaResponse, error) {
	ventas, err := uc.ventaRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, toVentaResponse(v, nil))
	}
	return out, nil
}

func toVentaResponse(v *entity.Venta, detalles []*entity.DetalleVenta) *dto.VentaResponse {
	if v == nil {
		return nil
	}
	out := &dto.VentaResponse{
		ID:        v.ID,
		ClienteID: v.ClienteID,
		Fecha:     v.Fecha,
		Total:     v.Total,
		Estado:    v.Estado,
	}
	for _, d := range detalles {
		out.Detalles = append(out.Detalles, dto.DetalleVentaResponse{
			ID:             d.ID,
			VarianteID:     d.VarianteID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	return out
}
