package entity

import "time"

// Estados de perfiles con borrado lógico.
const (
	EstadoActivo   = "Activo"
	EstadoInactivo = "Inactivo"
)

// Estados de preinscripción de un estudiante. Solo son legales las
// transiciones pendiente→aceptada y pendiente→rechazada.
const (
	PreinscripcionPendiente = "pendiente"
	PreinscripcionAceptada  = "aceptada"
	PreinscripcionRechazada = "rechazada"
)

// Administrador perfil 1:1 sobre Usuario. Borrado físico (junto con su rol).
type Administrador struct {
	ID        int64
	UsuarioID int64
	Cargo     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Instructor perfil 1:1 sobre Usuario. Borrado lógico vía Estado.
type Instructor struct {
	ID           int64
	UsuarioID    int64
	Especialidad string
	Estado       string // Activo, Inactivo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Estudiante perfil 1:1 sobre Usuario. Borrado lógico vía Estado.
// Una fila con EstadoPreinscripcion=pendiente es una solicitud de inscripción
// pendiente de aprobación administrativa.
type Estudiante struct {
	ID                   int64
	UsuarioID            int64
	FechaNacimiento      *time.Time
	Nivel                string // principiante, intermedio, avanzado
	Estado               string // Activo, Inactivo
	EstadoPreinscripcion string // pendiente, aceptada, rechazada
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
