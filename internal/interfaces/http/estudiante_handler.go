package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/application/usecase"
)

// EstudianteHandler maneja perfiles de estudiante y preinscripciones (protegido).
type EstudianteHandler struct {
	uc *usecase.EstudianteUseCase
}

// NewEstudianteHandler construye el handler.
func NewEstudianteHandler(uc *usecase.EstudianteUseCase) *EstudianteHandler {
	return &EstudianteHandler{uc: uc}
}

// Preinscribir godoc
// @Summary      Autoservicio: solicitar inscripción como estudiante
// @Tags         estudiantes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreinscripcionRequest  true  "fecha_nacimiento, nivel"
// @Success      201   {object}  dto.EstudianteResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estudiantes/preinscripcion [post]
func (h *EstudianteHandler) Preinscribir(c *fiber.Ctx) error {
	id := GetIdentidad(c)
	if id == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_FALTANTE", Message: "no autenticado"})
	}
	var in dto.PreinscripcionRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Preinscribir(c.Context(), id.UsuarioID, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPreinscripciones lista solicitudes pendientes de decisión.
func (h *EstudianteHandler) ListPreinscripciones(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListPreinscripciones(c.Context(), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Aprobar godoc
// @Summary      Decidir una preinscripción (pendiente → aceptada | rechazada)
// @Tags         estudiantes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del estudiante"
// @Param        body  body  dto.AprobarPreinscripcionRequest  true  "estado destino"
// @Success      200   {object}  dto.EstudianteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estudiantes/{id}/preinscripcion [put]
func (h *EstudianteHandler) Aprobar(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	var in dto.AprobarPreinscripcionRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Aprobar(c.Context(), id, in.Estado)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un estudiante. El gate de propiedad corre antes en la ruta.
func (h *EstudianteHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "estudiante no encontrado"})
	}
	return c.JSON(out)
}

// List lista estudiantes activos.
func (h *EstudianteHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update actualiza el perfil.
func (h *EstudianteHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	var in dto.UpdateEstudianteRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete marca el perfil como Inactivo.
func (h *EstudianteHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
