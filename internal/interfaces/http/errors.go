package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/domain"
)

// mapeo de errores de dominio a (status, código). Todo lo no mapeado es 500.
var erroresHTTP = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrNotFound, fiber.StatusNotFound, "NO_ENCONTRADO"},
	{domain.ErrUsuarioNoEncontrado, fiber.StatusNotFound, "NO_ENCONTRADO"},
	{domain.ErrPlanNoEncontrado, fiber.StatusNotFound, "NO_ENCONTRADO"},
	{domain.ErrEmailDuplicado, fiber.StatusConflict, "EMAIL_DUPLICADO"},
	{domain.ErrDocumentoDuplicado, fiber.StatusConflict, "DOCUMENTO_DUPLICADO"},
	{domain.ErrDuplicado, fiber.StatusConflict, "DUPLICADO"},
	{domain.ErrPerfilDuplicado, fiber.StatusConflict, "PERFIL_DUPLICADO"},
	{domain.ErrRolEnConflicto, fiber.StatusConflict, "ROL_EN_CONFLICTO"},
	{domain.ErrNoPendiente, fiber.StatusConflict, "NO_PENDIENTE"},
	{domain.ErrVentaYaAnulada, fiber.StatusConflict, "VENTA_ANULADA"},
	{domain.ErrStockInsuficiente, fiber.StatusConflict, "STOCK_INSUFICIENTE"},
	{domain.ErrUsuarioInvalido, fiber.StatusUnprocessableEntity, "USUARIO_INVALIDO"},
	{domain.ErrEstudianteNoElegible, fiber.StatusUnprocessableEntity, "ESTUDIANTE_NO_ELEGIBLE"},
	{domain.ErrClaseNoElegible, fiber.StatusUnprocessableEntity, "CLASE_NO_ELEGIBLE"},
	{domain.ErrEstadoInvalido, fiber.StatusBadRequest, "ESTADO_INVALIDO"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrTokenActivacion, fiber.StatusBadRequest, "TOKEN_ACTIVACION"},
	{domain.ErrRolNoConfigurado, fiber.StatusInternalServerError, "ROL_NO_CONFIGURADO"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "NO_AUTORIZADO"},
	{domain.ErrForbidden, fiber.StatusForbidden, "PROHIBIDO"},
}

// errorJSON responde el sobre de error según el error de dominio.
func errorJSON(c *fiber.Ctx, err error) error {
	for _, m := range erroresHTTP {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
