package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/application/usecase"
)

// InstructorHandler maneja perfiles de instructor (protegido).
type InstructorHandler struct {
	uc *usecase.InstructorUseCase
}

// NewInstructorHandler construye el handler.
func NewInstructorHandler(uc *usecase.InstructorUseCase) *InstructorHandler {
	return &InstructorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear perfil de instructor (perfil + rol en una transacción)
// @Tags         instructores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInstructorRequest  true  "usuario_id, especialidad"
// @Success      201   {object}  dto.InstructorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/instructores [post]
func (h *InstructorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInstructorRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un instructor por id.
func (h *InstructorHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "instructor no encontrado"})
	}
	return c.JSON(out)
}

// List lista instructores activos.
func (h *InstructorHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update actualiza o re-apunta el perfil.
func (h *InstructorHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	var in dto.UpdateInstructorRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete marca el perfil como Inactivo y quita el rol.
func (h *InstructorHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
