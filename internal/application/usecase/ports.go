package usecase

import (
	"context"

	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción. El TxRunner
// los construye sobre la tx y los pasa al callback; toda escritura multi-tabla
// (perfil+rol, aprobación de preinscripción, matrícula, venta, compra) debe
// ocurrir dentro de un Run para ser atómica.
type Repos struct {
	Usuarios        repository.UsuarioRepository
	Roles           repository.RolRepository
	Administradores repository.AdministradorRepository
	Instructores    repository.InstructorRepository
	Estudiantes     repository.EstudianteRepository
	Clases          repository.ClaseRepository
	Planes          repository.PlanRepository
	Matriculas      repository.MatriculaRepository
	Productos       repository.ProductoRepository
	Ventas          repository.VentaRepository
	Compras         repository.CompraRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Commit si fn devuelve nil; rollback si no.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}

// Mailer puerto de correo saliente (activación de cuentas, recibos, campañas).
type Mailer interface {
	Enviar(to, asunto, cuerpoHTML string) error
	EnviarConAdjunto(to, asunto, cuerpo string, adjunto []byte, nombreArchivo string) error
}
