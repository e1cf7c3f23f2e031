package repository

import (
	"context"

	"github.com/academiaskate/academia-api/internal/domain/entity"
)

// AdministradorRepository puerto para perfiles de administrador (borrado físico).
type AdministradorRepository interface {
	Create(ctx context.Context, a *entity.Administrador) error
	GetByID(ctx context.Context, id int64) (*entity.Administrador, error)
	GetByUsuarioID(ctx context.Context, usuarioID int64) (*entity.Administrador, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Administrador, error)
	Update(ctx context.Context, a *entity.Administrador) error
	Delete(ctx context.Context, id int64) error
}

// InstructorRepository puerto para perfiles de instructor (borrado lógico).
type InstructorRepository interface {
	Create(ctx context.Context, i *entity.Instructor) error
	GetByID(ctx context.Context, id int64) (*entity.Instructor, error)
	GetByUsuarioID(ctx context.Context, usuarioID int64) (*entity.Instructor, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Instructor, error)
	Update(ctx context.Context, i *entity.Instructor) error
	// SoftDelete marca el perfil como Inactivo; la fila se conserva.
	SoftDelete(ctx context.Context, id int64) error
}

// EstudianteRepository puerto para perfiles de estudiante y preinscripciones.
type EstudianteRepository interface {
	Create(ctx context.Context, e *entity.Estudiante) error
	GetByID(ctx context.Context, id int64) (*entity.Estudiante, error)
	// GetByIDForUpdate bloquea la fila (SELECT ... FOR UPDATE) para validaciones
	// previas a escritura dentro de una transacción.
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Estudiante, error)
	GetByUsuarioID(ctx context.Context, usuarioID int64) (*entity.Estudiante, error)
	// PropietarioDe devuelve el usuario dueño del perfil para el gate de
	// propiedad. found=false cuando el perfil no existe.
	PropietarioDe(ctx context.Context, id int64) (usuarioID int64, found bool, err error)
	List(ctx context.Context, limit, offset int) ([]*entity.Estudiante, error)
	ListPreinscripciones(ctx context.Context, limit, offset int) ([]*entity.Estudiante, error)
	Update(ctx context.Context, e *entity.Estudiante) error
	SoftDelete(ctx context.Context, id int64) error
	// TransicionarPreinscripcion ejecuta el update condicional
	// (WHERE estado_preinscripcion = 'pendiente') y devuelve si afectó la fila.
	TransicionarPreinscripcion(ctx context.Context, id int64, estado string) (bool, error)
}
