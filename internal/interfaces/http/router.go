package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academiaskate/academia-api/internal/application/auth"
	"github.com/academiaskate/academia-api/internal/application/usecase"
	"github.com/academiaskate/academia-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	UsuarioUC       *usecase.UsuarioUseCase
	RolUC           *usecase.RolUseCase
	AdministradorUC *usecase.AdministradorUseCase
	InstructorUC    *usecase.InstructorUseCase
	EstudianteUC    *usecase.EstudianteUseCase
	MatriculaUC     *usecase.MatriculaUseCase
	ClaseUC         *usecase.ClaseUseCase
	PlanUC          *usecase.PlanUseCase
	EventoUC        *usecase.EventoUseCase
	ProductoUC      *usecase.ProductoUseCase
	VentaUC         *usecase.VentaUseCase
	ClienteUC       *usecase.ClienteUseCase
	ProveedorUC     *usecase.ProveedorUseCase
	CompraUC        *usecase.CompraUseCase
	EnvioUC         *usecase.EnvioUseCase

	// Resolutor consulta roles y permisos en cada petición autenticada.
	Resolutor ResolutorPermisos
	// Estudiantes alimenta el gate de propiedad sobre perfiles de estudiante.
	Estudiantes repository.EstudianteRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Get("/activar/:token", authHandler.Activar)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token; la identidad se resuelve por petición)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Resolutor))

	// Usuarios
	usuarios := protected.Group("/usuarios", AdminOPermiso("gestionar_usuarios"))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Desactivar)

	// Roles y permisos (solo administración de RBAC)
	rolHandler := NewRolHandler(deps.RolUC)
	roles := protected.Group("/roles", AdminOPermiso("gestionar_roles"))
	roles.Get("/", rolHandler.List)
	roles.Post("/:id/permisos", rolHandler.AsignarPermiso)
	roles.Delete("/:id/permisos/:permisoId", rolHandler.QuitarPermiso)
	protected.Get("/permisos", AdminOPermiso("gestionar_roles"), rolHandler.ListPermisos)

	// Administradores
	administradores := protected.Group("/administradores", AdminOPermiso("gestionar_administradores"))
	administradorHandler := NewAdministradorHandler(deps.AdministradorUC)
	administradores.Post("/", administradorHandler.Create)
	administradores.Get("/", administradorHandler.List)
	administradores.Get("/:id", administradorHandler.GetByID)
	administradores.Put("/:id", administradorHandler.Update)
	administradores.Delete("/:id", administradorHandler.Delete)

	// Instructores
	instructores := protected.Group("/instructores")
	instructorHandler := NewInstructorHandler(deps.InstructorUC)
	instructores.Get("/", instructorHandler.List)
	instructores.Get("/:id", instructorHandler.GetByID)
	instructores.Post("/", AdminOPermiso("gestionar_instructores"), instructorHandler.Create)
	instructores.Put("/:id", AdminOPermiso("gestionar_instructores"), instructorHandler.Update)
	instructores.Delete("/:id", AdminOPermiso("gestionar_instructores"), instructorHandler.Delete)

	// Estudiantes: la lectura de un perfil la pasa el dueño o quien tenga el permiso
	propietarioEstudiante := BuscarPropietario(deps.Estudiantes.PropietarioDe)
	estudiantes := protected.Group("/estudiantes")
	estudianteHandler := NewEstudianteHandler(deps.EstudianteUC)
	estudiantes.Post("/preinscripcion", estudianteHandler.Preinscribir)
	estudiantes.Get("/preinscripciones", AdminOPermiso("gestionar_estudiantes"), estudianteHandler.ListPreinscripciones)
	estudiantes.Put("/:id/preinscripcion", AdminOPermiso("gestionar_estudiantes"), estudianteHandler.Aprobar)
	estudiantes.Get("/", AdminOPermiso("gestionar_estudiantes"), estudianteHandler.List)
	estudiantes.Get("/:id", PropietarioOPermiso(propietarioEstudiante, "gestionar_estudiantes"), estudianteHandler.GetByID)
	estudiantes.Put("/:id", AdminOPermiso("gestionar_estudiantes"), estudianteHandler.Update)
	estudiantes.Delete("/:id", AdminOPermiso("gestionar_estudiantes"), estudianteHandler.Delete)

	// Matrículas: el listado por estudiante lo pasa el dueño del perfil
	matriculas := protected.Group("/matriculas")
	matriculaHandler := NewMatriculaHandler(deps.MatriculaUC)
	matriculas.Post("/", AdminOPermiso("gestionar_matriculas"), matriculaHandler.Create)
	matriculas.Get("/", AdminOPermiso("gestionar_matriculas"), matriculaHandler.List)
	matriculas.Get("/estudiante/:id", PropietarioOPermiso(propietarioEstudiante, "gestionar_matriculas"), matriculaHandler.ListByEstudiante)
	matriculas.Get("/:id", AdminOPermiso("gestionar_matriculas"), matriculaHandler.GetByID)

	// Clases
	clases := protected.Group("/clases")
	claseHandler := NewClaseHandler(deps.ClaseUC)
	clases.Get("/", claseHandler.List)
	clases.Get("/:id", claseHandler.GetByID)
	clases.Post("/", AdminOPermiso("gestionar_clases"), claseHandler.Create)
	clases.Put("/:id", AdminOPermiso("gestionar_clases"), claseHandler.Update)
	clases.Delete("/:id", AdminOPermiso("gestionar_clases"), claseHandler.Delete)

	// Planes
	planes := protected.Group("/planes")
	planHandler := NewPlanHandler(deps.PlanUC)
	planes.Get("/", planHandler.List)
	planes.Get("/:id", planHandler.GetByID)
	planes.Post("/", AdminOPermiso("gestionar_planes"), planHandler.Create)
	planes.Put("/:id", AdminOPermiso("gestionar_planes"), planHandler.Update)
	planes.Delete("/:id", AdminOPermiso("gestionar_planes"), planHandler.Delete)

	// Eventos
	eventos := protected.Group("/eventos")
	eventoHandler := NewEventoHandler(deps.EventoUC)
	eventos.Get("/", eventoHandler.List)
	eventos.Get("/:id", eventoHandler.GetByID)
	eventos.Post("/", AdminOPermiso("gestionar_eventos"), eventoHandler.Create)
	eventos.Put("/:id", AdminOPermiso("gestionar_eventos"), eventoHandler.Update)
	eventos.Delete("/:id", AdminOPermiso("gestionar_eventos"), eventoHandler.Delete)

	// Productos y variantes
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Post("/", AdminOPermiso("gestionar_productos"), productoHandler.Create)
	productos.Post("/:id/variantes", AdminOPermiso("gestionar_productos"), productoHandler.AgregarVariante)
	productos.Put("/:id", AdminOPermiso("gestionar_productos"), productoHandler.Update)
	productos.Delete("/:id", AdminOPermiso("gestionar_productos"), productoHandler.Delete)

	// Ventas
	ventas := protected.Group("/ventas", AdminOPermiso("gestionar_ventas"))
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventas.Post("/", ventaHandler.Create)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Put("/:id/anular", ventaHandler.Anular)
	ventas.Post("/:id/recibo", ventaHandler.EnviarRecibo)

	// Clientes
	clientes := protected.Group("/clientes", AdminOPermiso("gestionar_clientes"))
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/nit/:nit", clienteHandler.GetByNIT)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Proveedores
	proveedores := protected.Group("/proveedores", AdminOPermiso("gestionar_proveedores"))
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Delete("/:id", proveedorHandler.Delete)

	// Compras
	compras := protected.Group("/compras", AdminOPermiso("gestionar_compras"))
	compraHandler := NewCompraHandler(deps.CompraUC)
	compras.Post("/", compraHandler.Create)
	compras.Get("/", compraHandler.List)

	// Envíos masivos
	envios := protected.Group("/envios", AdminOPermiso("gestionar_envios"))
	envioHandler := NewEnvioHandler(deps.EnvioUC)
	envios.Post("/", envioHandler.Create)
	envios.Get("/", envioHandler.List)
	envios.Get("/:id", envioHandler.GetByID)
}
