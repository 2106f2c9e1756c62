package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"constructdocs/internal/http/middleware"
	"constructdocs/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking
// internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError translates the service error taxonomy into HTTP
// statuses and stable machine-readable codes.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		return writeError(c, fiber.StatusForbidden, "PERMISSION_DENIED", "role does not permit this operation")
	case errors.Is(err, service.ErrEmptyFile):
		return writeError(c, fiber.StatusBadRequest, "EMPTY_FILE", "uploaded file is empty")
	case errors.Is(err, service.ErrFileTooLarge):
		return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the maximum allowed size")
	case errors.Is(err, service.ErrUnsupportedFileType):
		return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_FILE_TYPE", "file type is not allowed")
	case errors.Is(err, service.ErrInvalidCategory):
		return writeError(c, fiber.StatusBadRequest, "INVALID_CATEGORY", "category must be a construction document category")
	case errors.Is(err, service.ErrMissingReference):
		return writeError(c, fiber.StatusBadRequest, "MISSING_REFERENCE", "constructionId and projectId are required")
	case errors.Is(err, service.ErrInvalidVersion):
		return writeError(c, fiber.StatusBadRequest, "INVALID_VERSION", "version must be a positive integer")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
	case errors.Is(err, service.ErrConstructionNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "construction not found")
	case errors.Is(err, service.ErrIDRequired),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrProjectRequired):
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
