package entity

import "time"

// Estados de destinatarios de envíos masivos.
const (
	EnvioPendiente = "pendiente"
	EnvioEnviado   = "enviado"
	EnvioFallido   = "fallido"
)

// EnvioMasivo campaña de correo: asunto + cuerpo HTML + lote de destinatarios.
// El worker de fondo despacha los destinatarios pendientes cada pocos segundos.
type EnvioMasivo struct {
	ID        int64
	Lote      string // UUID del lote
	Asunto    string
	CuerpoHTML string
	CreadoPor int64 // usuario que creó la campaña
	CreatedAt time.Time
}

// EnvioDestinatario fila por destinatario con su estado de despacho.
type EnvioDestinatario struct {
	ID         int64
	EnvioID    int64
	Email      string
	Estado     string // pendiente, enviado, fallido
	Error      *string
	EnviadoEn  *time.Time
}
