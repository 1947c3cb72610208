package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
)

// writeError traduce errores de dominio a status + dto.ErrorResponse.
// Lo que no es de dominio se loguea y sale como 500 con el detalle crudo del almacén.
func writeError(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	var cv *domain.ConstraintViolation
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: ve.Error(), Field: ve.Field})
	case errors.As(err, &cv):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: duplicateMessage(cv.Field), Field: cv.Field})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrShipmentHeaderFailed):
		logFrom(c).Error().Err(err).Msg("remesa no registrada")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SHIPMENT_HEADER_FAILED", Message: domain.ErrShipmentHeaderFailed.Error()})
	default:
		logFrom(c).Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor", Detail: err.Error()})
	}
}

func duplicateMessage(field string) string {
	switch field {
	case "nome_produto":
		return "Já existe um produto com este nome."
	case "sku":
		return "Já existe um produto com este SKU."
	case "email":
		return "Já existe um usuário com este email."
	default:
		return "valor duplicado"
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// ErrorHandler handler de errores de Fiber (rutas inexistentes, panics recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return writeError(c, err)
}
