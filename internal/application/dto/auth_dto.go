package dto

import "time"

// RegisterRequest registro de cuenta. La cuenta nace inactiva y se activa con
// el token de un solo uso enviado por correo.
type RegisterRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Documento string `json:"documento" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// UsuarioResponse representación pública de un usuario (sin hash).
type UsuarioResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Documento string    `json:"documento"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateUsuarioRequest actualización parcial de un usuario.
type UpdateUsuarioRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}
