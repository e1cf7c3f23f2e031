package dto

import "time"

// CreateAdministradorRequest alta de perfil de administrador sobre un usuario existente.
type CreateAdministradorRequest struct {
	UsuarioID int64  `json:"usuario_id" validate:"required,gt=0"`
	Cargo     string `json:"cargo"`
}

// UpdateAdministradorRequest re-apunta el perfil a otro usuario o cambia el cargo.
type UpdateAdministradorRequest struct {
	UsuarioID *int64  `json:"usuario_id" validate:"omitempty,gt=0"`
	Cargo     *string `json:"cargo"`
}

// AdministradorResponse perfil de administrador.
type AdministradorResponse struct {
	ID        int64     `json:"id"`
	UsuarioID int64     `json:"usuario_id"`
	Cargo     string    `json:"cargo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInstructorRequest alta de perfil de instructor.
type CreateInstructorRequest struct {
	UsuarioID    int64  `json:"usuario_id" validate:"required,gt=0"`
	Especialidad string `json:"especialidad"`
}

// UpdateInstructorRequest re-apunta el perfil o cambia la especialidad.
type UpdateInstructorRequest struct {
	UsuarioID    *int64  `json:"usuario_id" validate:"omitempty,gt=0"`
	Especialidad *string `json:"especialidad"`
}

// InstructorResponse perfil de instructor.
type InstructorResponse struct {
	ID           int64     `json:"id"`
	UsuarioID    int64     `json:"usuario_id"`
	Especialidad string    `json:"especialidad"`
	Estado       string    `json:"estado"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PreinscripcionRequest solicitud de inscripción autoservicio: crea un
// estudiante en estado pendiente a nombre del usuario autenticado.
type PreinscripcionRequest struct {
	FechaNacimiento *time.Time `json:"fecha_nacimiento"`
	Nivel           string     `json:"nivel" validate:"omitempty,oneof=principiante intermedio avanzado"`
}

// AprobarPreinscripcionRequest transición pendiente → aceptada | rechazada.
type AprobarPreinscripcionRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// EstudianteResponse perfil de estudiante.
type EstudianteResponse struct {
	ID                   int64      `json:"id"`
	UsuarioID            int64      `json:"usuario_id"`
	FechaNacimiento      *time.Time `json:"fecha_nacimiento,omitempty"`
	Nivel                string     `json:"nivel"`
	Estado               string     `json:"estado"`
	EstadoPreinscripcion string     `json:"estado_preinscripcion"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// UpdateEstudianteRequest actualización parcial del perfil de estudiante.
type UpdateEstudianteRequest struct {
	Nivel  *string `json:"nivel" validate:"omitempty,oneof=principiante intermedio avanzado"`
	Estado *string `json:"estado" validate:"omitempty,oneof=Activo Inactivo"`
}
