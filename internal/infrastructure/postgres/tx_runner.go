package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academiaskate/academia-api/internal/application/usecase"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos usecase.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := usecase.Repos{
		Usuarios:        NewUsuarioRepository(tx),
		Roles:           NewRolRepository(tx),
		Administradores: NewAdministradorRepository(tx),
		Instructores:    NewInstructorRepository(tx),
		Estudiantes:     NewEstudianteRepository(tx),
		Clases:          NewClaseRepository(tx),
		Planes:          NewPlanRepository(tx),
		Matriculas:      NewMatriculaRepository(tx),
		Productos:       NewProductoRepository(tx),
		Ventas:          NewVentaRepository(tx),
		Compras:         NewCompraRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
