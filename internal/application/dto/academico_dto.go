package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClaseRequest alta de clase.
type CreateClaseRequest struct {
	Nombre       string `json:"nombre" validate:"required"`
	InstructorID int64  `json:"instructor_id" validate:"required,gt=0"`
	Horario      string `json:"horario"`
	Cupos        int    `json:"cupos" validate:"gte=0"`
}

// UpdateClaseRequest actualización parcial de clase.
type UpdateClaseRequest struct {
	Nombre  *string `json:"nombre"`
	Horario *string `json:"horario"`
	Cupos   *int    `json:"cupos" validate:"omitempty,gte=0"`
	Estado  *string `json:"estado" validate:"omitempty,oneof=Disponible Cerrada"`
}

// ClaseResponse clase.
type ClaseResponse struct {
	ID           int64     `json:"id"`
	Nombre       string    `json:"nombre"`
	InstructorID int64     `json:"instructor_id"`
	Horario      string    `json:"horario"`
	Cupos        int       `json:"cupos"`
	Estado       string    `json:"estado"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreatePlanRequest alta de plan.
type CreatePlanRequest struct {
	Nombre      string          `json:"nombre" validate:"required"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	DuracionMes int             `json:"duracion_meses" validate:"gt=0"`
}

// UpdatePlanRequest actualización parcial de plan.
type UpdatePlanRequest struct {
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	DuracionMes *int             `json:"duracion_meses" validate:"omitempty,gt=0"`
}

// PlanResponse plan.
type PlanResponse struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	DuracionMes int             `json:"duracion_meses"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateMatriculaRequest alta de matrícula. Fecha por defecto hoy; estado por defecto Activa.
type CreateMatriculaRequest struct {
	EstudianteID int64      `json:"estudiante_id" validate:"required,gt=0"`
	ClaseID      int64      `json:"clase_id" validate:"required,gt=0"`
	PlanID       int64      `json:"plan_id" validate:"required,gt=0"`
	Fecha        *time.Time `json:"fecha"`
	Estado       string     `json:"estado"`
}

// MatriculaResponse matrícula con campos denormalizados para presentación.
type MatriculaResponse struct {
	ID           int64     `json:"id"`
	EstudianteID int64     `json:"estudiante_id"`
	ClaseID      int64     `json:"clase_id"`
	PlanID       int64     `json:"plan_id"`
	Fecha        time.Time `json:"fecha"`
	Estado       string    `json:"estado"`
	Estudiante   string    `json:"estudiante"`
	Clase        string    `json:"clase"`
	Plan         string    `json:"plan"`
}

// CreateEventoRequest alta de evento.
type CreateEventoRequest struct {
	Nombre string    `json:"nombre" validate:"required"`
	Fecha  time.Time `json:"fecha" validate:"required"`
	Lugar  string    `json:"lugar"`
	Cupos  int       `json:"cupos" validate:"gte=0"`
}

// UpdateEventoRequest actualización parcial de evento.
type UpdateEventoRequest struct {
	Nombre *string    `json:"nombre"`
	Fecha  *time.Time `json:"fecha"`
	Lugar  *string    `json:"lugar"`
	Cupos  *int       `json:"cupos" validate:"omitempty,gte=0"`
	Estado *string    `json:"estado"`
}

// EventoResponse evento.
type EventoResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Fecha     time.Time `json:"fecha"`
	Lugar     string    `json:"lugar"`
	Cupos     int       `json:"cupos"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
