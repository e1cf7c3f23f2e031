package entity

// Roles de dominio. Mutuamente excluyentes por usuario.
const (
	RolAdministrador = "administrador"
	RolInstructor    = "instructor"
	RolEstudiante    = "estudiante"
	RolCliente       = "cliente"
)

// RolesExcluyentes es el conjunto completo de roles de dominio: asignar
// cualquiera de ellos exige que el usuario no tenga ninguno (incluido el propio).
var RolesExcluyentes = []string{RolAdministrador, RolInstructor, RolEstudiante, RolCliente}

// Rol bundle de permisos con nombre. Datos de referencia estáticos.
type Rol struct {
	ID     int64
	Nombre string
}

// Permiso capacidad con nombre (ej. "gestionar_clases", "gestionar_ventas").
type Permiso struct {
	ID     int64
	Nombre string
}
