package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/application/usecase"
)

// ClaseHandler maneja clases (protegido).
type ClaseHandler struct {
	uc *usecase.ClaseUseCase
}

// NewClaseHandler construye el handler.
func NewClaseHandler(uc *usecase.ClaseUseCase) *ClaseHandler {
	return &ClaseHandler{uc: uc}
}

// Create crea una clase a cargo de un instructor existente.
func (h *ClaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClaseRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una clase.
func (h *ClaseHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "clase no encontrada"})
	}
	return c.JSON(out)
}

// List lista clases.
func (h *ClaseHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una clase.
func (h *ClaseHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	var in dto.UpdateClaseRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una clase.
func (h *ClaseHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
