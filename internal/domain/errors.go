package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	ErrEmailDuplicado      = errors.New("el email ya está registrado")
	ErrDocumentoDuplicado  = errors.New("el documento ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicado           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")

	// Ciclo de vida de perfiles y roles excluyentes.
	ErrUsuarioInvalido  = errors.New("el usuario no existe o está inactivo")
	ErrRolEnConflicto   = errors.New("el usuario ya tiene un rol de dominio asignado")
	ErrPerfilDuplicado  = errors.New("el usuario ya tiene un perfil asociado")
	ErrRolNoConfigurado = errors.New("rol requerido no está definido en la base de datos")

	// Preinscripciones.
	ErrNoPendiente    = errors.New("la preinscripción no está pendiente")
	ErrEstadoInvalido = errors.New("estado de preinscripción inválido")

	// Matrículas.
	ErrEstudianteNoElegible = errors.New("el estudiante no existe o no está activo")
	ErrClaseNoElegible      = errors.New("la clase no existe o no está disponible")
	ErrPlanNoEncontrado     = errors.New("el plan no existe")

	// Tienda.
	ErrStockInsuficiente = errors.New("stock insuficiente")
	ErrVentaYaAnulada    = errors.New("la venta ya fue anulada")

	// Activación de cuentas.
	ErrTokenActivacion = errors.New("token de activación inválido o ya usado")
)
