package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
	"github.com/academiaskate/academia-api/internal/domain/entity"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// EnvioUseCase campañas de correo masivo. La creación solo encola; el worker
// de fondo despacha los destinatarios pendientes.
type EnvioUseCase struct {
	envioRepo repository.EnvioRepository
}

// NewEnvioUseCase construye el caso de uso.
func NewEnvioUseCase(envioRepo repository.EnvioRepository) *EnvioUseCase {
	return &EnvioUseCase{envioRepo: envioRepo}
}

// Create crea la campaña con todos sus destinatarios en pendiente.
func (uc *EnvioUseCase) Create(ctx context.Context, creadoPor int64, in dto.CreateEnvioRequest) (*dto.EnvioResponse, error) {
	e := &entity.EnvioMasivo{
		Lote:       uuid.New().String(),
		Asunto:     in.Asunto,
		CuerpoHTML: in.CuerpoHTML,
		CreadoPor:  creadoPor,
		CreatedAt:  time.Now(),
	}
	if err := uc.envioRepo.Create(ctx, e, in.Destinatarios); err != nil {
		return nil, err
	}
	return toEnvioResponse(e), nil
}

// GetByID obtiene la campaña con el estado de cada destinatario.
func (uc *EnvioUseCase) GetByID(ctx context.Context, id int64) (*dto.EnvioDetalleResponse, error) {
	e, err := uc.envioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	destinatarios, err := uc.envioRepo.ListDestinatarios(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.EnvioDetalleResponse{EnvioResponse: *toEnvioResponse(e)}
	for _, d := range destinatarios {
		out.Destinatarios = append(out.Destinatarios, dto.DestinatarioResponse{
			ID:        d.ID,
			Email:     d.Email,
			Estado:    d.Estado,
			Error:     d.Error,
			EnviadoEn: d.EnviadoEn,
		})
	}
	return out, nil
}

// List lista campañas.
func (uc *EnvioUseCase) List(ctx context.Context, limit, offset int) ([]*dto.EnvioResponse, error) {
	envios, err := uc.envioRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EnvioResponse, 0, len(envios))
	for _, e := range envios {
		out = append(out, toEnvioResponse(e))
	}
	return out, nil
}

func toEnvioResponse(e *entity.EnvioMasivo) *dto.EnvioResponse {
	return &dto.EnvioResponse{
		ID:        e.ID,
		Lote:      e.Lote,
		Asunto:    e.Asunto,
		CreadoPor: e.CreadoPor,
		CreatedAt: e.CreatedAt,
	}
}
