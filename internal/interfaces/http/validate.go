package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/academiaskate/academia-api/internal/application/dto"
)

var validate = validator.New()

func init() {
	// Registra decimal.Decimal como numérico para que tags como gt=0 y gte=0
	// funcionen sin panic ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// parseAndValidate parsea el body JSON y corre las tags de validación.
// Devuelve false tras escribir la respuesta de error; el handler debe retornar
// sin escribir otra.
func parseAndValidate(c *fiber.Ctx, req interface{}) bool {
	if err := c.BodyParser(req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	if err := validate.Struct(req); err != nil {
		var campos []string
		for _, fe := range err.(validator.ValidationErrors) {
			campos = append(campos, fe.Field()+":"+fe.Tag())
		}
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "validación fallida: " + strings.Join(campos, ", "),
		})
		return false
	}
	return true
}

// paramID lee el parámetro :id como entero positivo. Devuelve 0 tras escribir
// la respuesta de error.
func paramID(c *fiber.Ctx) int64 {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_INVALIDO", Message: "id inválido"})
		return 0
	}
	return int64(id)
}

// pageParams lee limit/offset con defaults y topes.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
