package repository

import (
	"context"

	"github.com/academiaskate/academia-api/internal/domain/entity"
)

// EnvioRepository puerto para campañas de correo masivo.
type EnvioRepository interface {
	// Create persiste la cabecera y los destinatarios (todos en pendiente).
	Create(ctx context.Context, e *entity.EnvioMasivo, emails []string) error
	GetByID(ctx context.Context, id int64) (*entity.EnvioMasivo, error)
	List(ctx context.Context, limit, offset int) ([]*entity.EnvioMasivo, error)
	ListDestinatarios(ctx context.Context, envioID int64) ([]*entity.EnvioDestinatario, error)

	// PendientesParaEnvio devuelve hasta n destinatarios pendientes junto con
	// sus campañas, indexadas por id de envío. El worker marca cada fila como
	// enviado o fallido tras el intento; un solo despachador procesa la cola.
	PendientesParaEnvio(ctx context.Context, n int) ([]*entity.EnvioDestinatario, map[int64]*entity.EnvioMasivo, error)
	MarcarEnviado(ctx context.Context, destinatarioID int64) error
	MarcarFallido(ctx context.Context, destinatarioID int64, causa string) error
}
