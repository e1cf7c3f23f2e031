package usecase

import (
	"context"
	"time"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// CompraUseCase compras a proveedores: el registro de la compra y el aumento
// de stock de la variante comparten transacción.
type CompraUseCase struct {
	txRunner      TxRunner
	proveedorRepo repository.ProveedorRepository
	compraRepo    repository.CompraRepository
}

// NewCompraUseCase construye el caso de uso.
func NewCompraUseCase(txRunner TxRunner, proveedorRepo repository.ProveedorRepository, compraRepo repository.CompraRepository) *CompraUseCase {
	return &CompraUseCase{txRunner: txRunner, proveedorRepo: proveedorRepo, compraRepo: compraRepo}
}

// Create registra la compra y suma el stock bajo bloqueo de fila.
func (uc *CompraUseCase) Create(ctx context.Context, in dto.CreateCompraRequest) (*dto.CompraResponse, error) {
	proveedor, err := uc.proveedorRepo.GetByID(ctx, in.ProveedorID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}
	var creada *entity.Compra
	err = uc.txRunner.Run(ctx, func(r Repos) error {
		variante, err := r.Productos.GetVarianteForUpdate(ctx, in.VarianteID)
		if err != nil {
			return err
		}
		if variante == nil {
			return domain.ErrNotFound
		}
		if err := r.Productos.ActualizarStock(ctx, variante.ID, variante.Stock+in.Cantidad); err != nil {
			return err
		}
		c := &entity.Compra{
			ProveedorID:   in.ProveedorID,
			VarianteID:    in.VarianteID,
			Cantidad:      in.Cantidad,
			CostoUnitario: in.CostoUnitario,
			Fecha:         time.Now(),
			CreatedAt:     time.Now(),
		}
		if err := r.Compras.Create(ctx, c); err != nil {
			return err
		}
		creada = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.CompraResponse{
		ID:            creada.ID,
		ProveedorID:   creada.ProveedorID,
		VarianteID:    creada.VarianteID,
		Cantidad:      creada.Cantidad,
		CostoUnitario: creada.CostoUnitario,
		Fecha:         creada.Fecha,
	}, nil
}

// List lista compras.
func (uc *CompraUseCase) List(ctx context.Context, limit, offset int) ([]*dto.CompraResponse, error) {
	compras, err := uc.compraRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompraResponse, 0, len(compras))
	for _, c := range compras {
		out = append(out, &dto.CompraResponse{
			ID:            c.ID,
			ProveedorID:   c.ProveedorID,
			VarianteID:    c.VarianteID,
			Cantidad:      c.Cantidad,
			CostoUnitario: c.CostoUnitario,
			Fecha:         c.Fecha,
		})
	}
	return out, nil
}
