package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de clases y matrículas.
const (
	ClaseDisponible = "Disponible"
	ClaseCerrada    = "Cerrada"

	MatriculaActiva = "Activa"
)

// Clase sesión dictada por un instructor. Solo se matricula sobre clases Disponibles.
type Clase struct {
	ID           int64
	Nombre       string
	InstructorID int64
	Horario      string
	Cupos        int
	Estado       string // Disponible, Cerrada
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Plan plan de pago para matrículas.
type Plan struct {
	ID          int64
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal
	DuracionMes int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Matricula inscripción de un estudiante activo a una clase disponible bajo un plan.
type Matricula struct {
	ID           int64
	EstudianteID int64
	ClaseID      int64
	PlanID       int64
	Fecha        time.Time
	Estado       string
	CreatedAt    time.Time
}

// MatriculaDetalle matrícula con campos denormalizados para presentación.
type MatriculaDetalle struct {
	Matricula
	Estudiante string
	Clase      string
	Plan       string
}

// Evento actividad de la escuela (campeonato, clínica, exhibición).
type Evento struct {
	ID        int64
	Nombre    string
	Fecha     time.Time
	Lugar     string
	Cupos     int
	Estado    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
