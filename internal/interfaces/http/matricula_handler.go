package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/application/usecase"
)

// MatriculaHandler maneja matrículas (protegido).
type MatriculaHandler struct {
	uc *usecase.MatriculaUseCase
}

// NewMatriculaHandler construye el handler.
func NewMatriculaHandler(uc *usecase.MatriculaUseCase) *MatriculaHandler {
	return &MatriculaHandler{uc: uc}
}

// Create godoc
// @Summary      Matricular estudiante (elegibilidad bajo bloqueo de fila)
// @Tags         matriculas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMatriculaRequest  true  "estudiante_id, clase_id, plan_id"
// @Success      201   {object}  dto.MatriculaResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/matriculas [post]
func (h *MatriculaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMatriculaRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene la matrícula con campos denormalizados.
func (h *MatriculaHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "matrícula no encontrada"})
	}
	return c.JSON(out)
}

// ListByEstudiante lista las matrículas de un estudiante. El gate de propiedad
// corre antes en la ruta.
func (h *MatriculaHandler) ListByEstudiante(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	out, err := h.uc.ListByEstudiante(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// List lista matrículas.
func (h *MatriculaHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
