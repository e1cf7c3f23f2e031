package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/application/usecase"
)

// AdministradorHandler maneja perfiles de administrador (protegido).
type AdministradorHandler struct {
	uc *usecase.AdministradorUseCase
}

// NewAdministradorHandler construye el handler.
func NewAdministradorHandler(uc *usecase.AdministradorUseCase) *AdministradorHandler {
	return &AdministradorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear perfil de administrador (perfil + rol en una transacción)
// @Tags         administradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdministradorRequest  true  "usuario_id, cargo"
// @Success      201   {object}  dto.AdministradorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/administradores [post]
func (h *AdministradorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdministradorRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener administrador por ID
// @Tags         administradores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del perfil"
// @Success      200  {object}  dto.AdministradorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/administradores/{id} [get]
func (h *AdministradorHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "administrador no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar administradores
// @Tags         administradores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AdministradorResponse
// @Router       /api/administradores [get]
func (h *AdministradorHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar administrador (re-apuntar mueve también el rol)
// @Tags         administradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del perfil"
// @Param        body  body  dto.UpdateAdministradorRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AdministradorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/administradores/{id} [put]
func (h *AdministradorHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	var in dto.UpdateAdministradorRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar administrador (borra perfil y rol)
// @Tags         administradores
// @Security     Bearer
// @Param        id  path  int  true  "ID del perfil"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/administradores/{id} [delete]
func (h *AdministradorHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
