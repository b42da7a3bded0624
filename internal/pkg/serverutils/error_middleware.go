package serverutils

import (
	"errors"

	"eva-support-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service errors into the response envelope.
// No error is allowed to escape unhandled to the client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		var collaboratorErr *dto.CollaboratorError

		switch {
		case errors.Is(err, dto.ErrEmptyInput):
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponse(fiber.StatusBadRequest, err.Error()))
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponse(fiber.StatusBadRequest, validationErr.Message))
		case errors.Is(err, dto.ErrBusy):
			return ctx.Status(fiber.StatusConflict).
				JSON(ErrorResponse(fiber.StatusConflict, err.Error()))
		case errors.Is(err, dto.ErrMessageNotDeletable):
			return ctx.Status(fiber.StatusUnprocessableEntity).
				JSON(ErrorResponse(fiber.StatusUnprocessableEntity, err.Error()))
		case errors.Is(err, dto.ErrConversationNotFound),
			errors.Is(err, dto.ErrMessageNotFound),
			errors.Is(err, dto.ErrTrashRecordNotFound):
			return ctx.Status(fiber.StatusNotFound).
				JSON(ErrorResponse(fiber.StatusNotFound, err.Error()))
		case errors.As(err, &collaboratorErr):
			// User sees the friendly message only; detail stays in logs.
			return ctx.Status(fiber.StatusBadGateway).
				JSON(ErrorResponse(fiber.StatusBadGateway, collaboratorErr.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).
				JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
