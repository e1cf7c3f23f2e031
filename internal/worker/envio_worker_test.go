package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del despachador de campañas. La cola es un repositorio falso en
// memoria; el mailer falso puede fallar para direcciones concretas, lo que
// permite verificar que un destinatario fallido no frena al resto del lote.
// ──────────────────────────────────────────────────────────────────────────────

type fakeEnvioQueue struct {
	mu         sync.Mutex
	pendientes []*entity.EnvioDestinatario
	envios     map[int64]*entity.EnvioMasivo
	enviados   []int64
	fallidos   map[int64]string
}

func newFakeEnvioQueue() *fakeEnvioQueue {
	return &fakeEnvioQueue{
		envios:   make(map[int64]*entity.EnvioMasivo),
		fallidos: make(map[int64]string),
	}
}

func (f *fakeEnvioQueue) Create(_ context.Context, _ *entity.EnvioMasivo, _ []string) error {
	return nil
}

func (f *fakeEnvioQueue) GetByID(_ context.Context, id int64) (*entity.EnvioMasivo, error) {
	return f.envios[id], nil
}

func (f *fakeEnvioQueue) List(_ context.Context, _, _ int) ([]*entity.EnvioMasivo, error) {
	return nil, nil
}

func (f *fakeEnvioQueue) ListDestinatarios(_ context.Context, _ int64) ([]*entity.EnvioDestinatario, error) {
	return nil, nil
}

func (f *fakeEnvioQueue) PendientesParaEnvio(_ context.Context, n int) ([]*entity.EnvioDestinatario, map[int64]*entity.EnvioMasivo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Copia: el repo real devuelve filas independientes de la cola interna,
	// que quitar() muta mientras el worker aún itera el lote.
	lote := f.pendientes
	if len(lote) > n {
		lote = lote[:n]
	}
	out := make([]*entity.EnvioDestinatario, len(lote))
	copy(out, lote)
	return out, f.envios, nil
}

func (f *fakeEnvioQueue) MarcarEnviado(_ context.Context, destinatarioID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enviados = append(f.enviados, destinatarioID)
	f.quitar(destinatarioID)
	return nil
}

func (f *fakeEnvioQueue) MarcarFallido(_ context.Context, destinatarioID int64, causa string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fallidos[destinatarioID] = causa
	f.quitar(destinatarioID)
	return nil
}

func (f *fakeEnvioQueue) totalEnviados() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.enviados)
}

func (f *fakeEnvioQueue) quitar(destinatarioID int64) {
	for i, d := range f.pendientes {
		if d.ID == destinatarioID {
			f.pendientes = append(f.pendientes[:i], f.pendientes[i+1:]...)
			return
		}
	}
}

func (f *fakeEnvioQueue) sembrar(envioID int64, asunto string, emails ...string) {
	f.envios[envioID] = &entity.EnvioMasivo{ID: envioID, Asunto: asunto, CuerpoHTML: "<p>hola</p>"}
	for _, email := range emails {
		f.pendientes = append(f.pendientes, &entity.EnvioDestinatario{
			ID:      int64(len(f.pendientes) + 1),
			EnvioID: envioID,
			Email:   email,
			Estado:  entity.EnvioPendiente,
		})
	}
}

// fakeWorkerMailer falla para las direcciones listadas en rechaza.
type fakeWorkerMailer struct {
	enviados []string
	rechaza  map[string]bool
}

func (f *fakeWorkerMailer) Enviar(to, _, _ string) error {
	if f.rechaza[to] {
		return errors.New("smtp: buzón inexistente")
	}
	f.enviados = append(f.enviados, to)
	return nil
}

func (f *fakeWorkerMailer) EnviarConAdjunto(_, _, _ string, _ []byte, _ string) error {
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestProcesarLote_MarcaEnviados(t *testing.T) {
	cola := newFakeEnvioQueue()
	cola.sembrar(1, "Campeonato de otoño", "a@correo.com", "b@correo.com")
	mailer := &fakeWorkerMailer{}

	w := NewEnvioWorker(cola, mailer, testLogger())
	w.procesarLote(context.Background())

	assert.ElementsMatch(t, []string{"a@correo.com", "b@correo.com"}, mailer.enviados)
	assert.Len(t, cola.enviados, 2)
	assert.Empty(t, cola.fallidos)
	assert.Empty(t, cola.pendientes, "un destinatario despachado sale de la cola")
}

func TestProcesarLote_FalloNoFrenaElLote(t *testing.T) {
	cola := newFakeEnvioQueue()
	cola.sembrar(1, "Campeonato de otoño", "a@correo.com", "roto@correo.com", "c@correo.com")
	mailer := &fakeWorkerMailer{rechaza: map[string]bool{"roto@correo.com": true}}

	w := NewEnvioWorker(cola, mailer, testLogger())
	w.procesarLote(context.Background())

	assert.ElementsMatch(t, []string{"a@correo.com", "c@correo.com"}, mailer.enviados)
	require.Len(t, cola.fallidos, 1)
	assert.Contains(t, cola.fallidos[2], "buzón inexistente", "la causa del fallo queda registrada")
	assert.Len(t, cola.enviados, 2)
}

func TestProcesarLote_RespetaElTamanoDeLote(t *testing.T) {
	cola := newFakeEnvioQueue()
	cola.sembrar(1, "Campeonato de otoño", "a@correo.com", "b@correo.com", "c@correo.com")
	mailer := &fakeWorkerMailer{}

	w := NewEnvioWorker(cola, mailer, testLogger())
	w.lote = 2
	w.procesarLote(context.Background())

	assert.Len(t, mailer.enviados, 2)
	assert.Len(t, cola.pendientes, 1, "el resto queda para el siguiente tick")
}

func TestProcesarLote_DestinatarioSinCampania(t *testing.T) {
	cola := newFakeEnvioQueue()
	cola.pendientes = append(cola.pendientes, &entity.EnvioDestinatario{
		ID: 1, EnvioID: 99, Email: "a@correo.com", Estado: entity.EnvioPendiente,
	})
	mailer := &fakeWorkerMailer{}

	w := NewEnvioWorker(cola, mailer, testLogger())
	w.procesarLote(context.Background())

	assert.Empty(t, mailer.enviados)
	assert.Empty(t, cola.enviados)
	assert.Empty(t, cola.fallidos, "sin campaña no hay intento que marcar")
}

func TestRun_SeDetieneAlCancelar(t *testing.T) {
	cola := newFakeEnvioQueue()
	cola.sembrar(1, "Campeonato de otoño", "a@correo.com")
	mailer := &fakeWorkerMailer{}

	w := NewEnvioWorker(cola, mailer, testLogger())
	w.interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	// Esperar al menos un tick antes de cancelar.
	require.Eventually(t, func() bool { return cola.totalEnviados() == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run no terminó tras cancelar el contexto")
	}
}
