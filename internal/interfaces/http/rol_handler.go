package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/application/usecase"
)

// RolHandler maneja roles y permisos (protegido, solo administración).
type RolHandler struct {
	uc *usecase.RolUseCase
}

// NewRolHandler construye el handler.
func NewRolHandler(uc *usecase.RolUseCase) *RolHandler {
	return &RolHandler{uc: uc}
}

// List godoc
// @Summary      Listar roles
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RolResponse
// @Router       /api/roles [get]
func (h *RolHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ListPermisos godoc
// @Summary      Listar permisos
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PermisoResponse
// @Router       /api/permisos [get]
func (h *RolHandler) ListPermisos(c *fiber.Ctx) error {
	out, err := h.uc.ListPermisos(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// AsignarPermiso godoc
// @Summary      Asignar un permiso a un rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID del rol"
// @Param        body  body  dto.AsignarPermisoRequest  true  "permiso_id"
// @Success      204
// @Router       /api/roles/{id}/permisos [post]
func (h *RolHandler) AsignarPermiso(c *fiber.Ctx) error {
	rolID := paramID(c)
	if rolID == 0 {
		return nil
	}
	var in dto.AsignarPermisoRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	if err := h.uc.AsignarPermiso(c.Context(), rolID, in.PermisoID); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// QuitarPermiso godoc
// @Summary      Quitar un permiso de un rol
// @Tags         roles
// @Security     Bearer
// @Param        id         path  int  true  "ID del rol"
// @Param        permisoId  path  int  true  "ID del permiso"
// @Success      204
// @Router       /api/roles/{id}/permisos/{permisoId} [delete]
func (h *RolHandler) QuitarPermiso(c *fiber.Ctx) error {
	rolID := paramID(c)
	if rolID == 0 {
		return nil
	}
	permisoID, err := c.ParamsInt("permisoId")
	if err != nil || permisoID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_INVALIDO", Message: "permisoId inválido"})
	}
	if err := h.uc.QuitarPermiso(c.Context(), rolID, int64(permisoID)); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
