// Package worker contiene los procesos de fondo de la API.
package worker

import (
	"context"
	"time"

	"github.com/academiaskate/academia-api/internal/application/usecase"
	"github.com/academiaskate/academia-api/internal/domain/repository"
	"github.com/academiaskate/academia-api/pkg/logger"
)

// EnvioWorker despacha los destinatarios pendientes de las campañas de correo.
// Corre un solo despachador: cada tick reclama un lote, envía por SMTP y marca
// cada fila como enviado o fallido.
type EnvioWorker struct {
	envios   repository.EnvioRepository
	mailer   usecase.Mailer
	log      *logger.Logger
	interval time.Duration
	lote     int
}

// NewEnvioWorker construye el worker. El intervalo por defecto es 5s.
func NewEnvioWorker(envios repository.EnvioRepository, mailer usecase.Mailer, log *logger.Logger) *EnvioWorker {
	return &EnvioWorker{
		envios:   envios,
		mailer:   mailer,
		log:      log,
		interval: 5 * time.Second,
		lote:     50,
	}
}

// Run procesa la cola hasta que el contexto se cancele. Bloqueante; se lanza
// en su propia goroutine.
func (w *EnvioWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info().Dur("interval", w.interval).Msg("envio_worker: iniciado")
	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("envio_worker: detenido")
			return
		case <-ticker.C:
			w.procesarLote(ctx)
		}
	}
}

func (w *EnvioWorker) procesarLote(ctx context.Context) {
	pendientes, envios, err := w.envios.PendientesParaEnvio(ctx, w.lote)
	if err != nil {
		w.log.Error().Err(err).Msg("envio_worker: no se pudo leer la cola")
		return
	}
	if len(pendientes) == 0 {
		return
	}

	for _, d := range pendientes {
		if ctx.Err() != nil {
			return
		}
		campania, ok := envios[d.EnvioID]
		if !ok {
			w.log.Warn().Int64("destinatario_id", d.ID).Msg("envio_worker: destinatario sin campaña")
			continue
		}
		if err := w.mailer.Enviar(d.Email, campania.Asunto, campania.CuerpoHTML); err != nil {
			w.log.Error().Err(err).Str("to", d.Email).Int64("envio_id", d.EnvioID).Msg("envio_worker: envío fallido")
			if err := w.envios.MarcarFallido(ctx, d.ID, err.Error()); err != nil {
				w.log.Error().Err(err).Int64("destinatario_id", d.ID).Msg("envio_worker: no se pudo marcar fallido")
			}
			continue
		}
		if err := w.envios.MarcarEnviado(ctx, d.ID); err != nil {
			w.log.Error().Err(err).Int64("destinatario_id", d.ID).Msg("envio_worker: no se pudo marcar enviado")
			continue
		}
		w.log.Info().Str("to", d.Email).Int64("envio_id", d.EnvioID).Msg("envio_worker: correo enviado")
	}
}
