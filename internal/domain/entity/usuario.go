package entity

import "time"

// Usuario identidad del sistema. Un usuario puede tener a lo sumo UN rol de
// dominio (administrador, instructor, estudiante, cliente); la exclusión se
// aplica en escritura, no por constraint de esquema.
type Usuario struct {
	ID              int64
	Nombre          string
	Email           string
	Documento       string
	PasswordHash    string // bcrypt, nunca plano después de persistir
	Activo          bool
	TokenActivacion *string // UUID de un solo uso; nil una vez activada la cuenta
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
