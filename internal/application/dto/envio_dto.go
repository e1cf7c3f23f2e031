package dto

import "time"

// CreateEnvioRequest crea una campaña de correo masivo. Los destinatarios
// quedan en cola (pendiente) y los despacha el worker de fondo.
type CreateEnvioRequest struct {
	Asunto       string   `json:"asunto" validate:"required"`
	CuerpoHTML   string   `json:"cuerpo_html" validate:"required"`
	Destinatarios []string `json:"destinatarios" validate:"required,min=1,dive,email"`
}

// EnvioResponse campaña de correo.
type EnvioResponse struct {
	ID        int64     `json:"id"`
	Lote      string    `json:"lote"`
	Asunto    string    `json:"asunto"`
	CreadoPor int64     `json:"creado_por"`
	CreatedAt time.Time `json:"created_at"`
}

// DestinatarioResponse destinatario con su estado de despacho.
type DestinatarioResponse struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Estado    string     `json:"estado"`
	Error     *string    `json:"error,omitempty"`
	EnviadoEn *time.Time `json:"enviado_en,omitempty"`
}

// EnvioDetalleResponse campaña con sus destinatarios.
type EnvioDetalleResponse struct {
	EnvioResponse
	Destinatarios []DestinatarioResponse `json:"destinatarios"`
}
