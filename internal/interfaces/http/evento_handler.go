package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/application/usecase"
)

// EventoHandler maneja eventos de la escuela (protegido).
type EventoHandler struct {
	uc *usecase.EventoUseCase
}

// NewEventoHandler construye el handler.
func NewEventoHandler(uc *usecase.EventoUseCase) *EventoHandler {
	return &EventoHandler{uc: uc}
}

// Create crea un evento.
func (h *EventoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventoRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un evento.
func (h *EventoHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "evento no encontrado"})
	}
	return c.JSON(out)
}

// List lista eventos.
func (h *EventoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un evento.
func (h *EventoHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	var in dto.UpdateEventoRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un evento.
func (h *EventoHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
