package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"arangodoc/internal/content"
	"arangodoc/internal/http/middleware"
	"arangodoc/internal/logging"
	"arangodoc/internal/protocol"
	"arangodoc/internal/service"
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

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "BAD_REQUEST", "ArangoDocumentNotFound")
// - message: human-readable safe message
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

var badRequests = []struct {
	err  error
	code string
}{
	{service.ErrCollectionRequired, "COLLECTION_REQUIRED"},
	{service.ErrKeyRequired, "KEY_REQUIRED"},
	{service.ErrInvalidJSON, "INVALID_JSON"},
	{service.ErrNotObject, "NOT_AN_OBJECT"},
	{service.ErrEmptyBatch, "EMPTY_BATCH"},
	{service.ErrInvalidPatch, "INVALID_PATCH"},
	{content.ErrNotAnObject, "NOT_AN_OBJECT"},
	{content.ErrConflictingField, "CONFLICTING_FIELD"},
}

// writeServiceError translates an error of the service layer into a response.
// Server error envelopes keep their status and use the server error name as code.
func writeServiceError(c *fiber.Ctx, err error) error {
	for _, br := range badRequests {
		if errors.Is(err, br.err) {
			return writeError(c, fiber.StatusBadRequest, br.code, err.Error())
		}
	}
	if errors.Is(err, service.ErrPatchFailed) {
		return writeError(c, fiber.StatusUnprocessableEntity, "PATCH_FAILED", err.Error())
	}
	if protocol.IsNotModified(err) {
		return c.SendStatus(fiber.StatusNotModified)
	}

	var apiErr *protocol.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status == 0 {
			status = apiErr.Code.HTTPStatus()
		}
		message := apiErr.Message
		if message == "" {
			message = apiErr.Code.String()
		}
		return writeError(c, status, apiErr.Code.String(), message)
	}

	logger := logging.From(c.UserContext())
	switch {
	case errors.Is(err, protocol.ErrProtocolViolation):
		logger.Errorw("unexpected database response", "error", err)
		return writeError(c, fiber.StatusBadGateway, "BAD_GATEWAY", "unexpected response from the database")
	case protocol.IsTransport(err):
		logger.Warnw("database unavailable", "error", err)
		return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
	default:
		logger.Errorw("request failed", "error", err)
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
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
		case fiber.StatusUnsupportedMediaType:
			return writeError(c, status, "UNSUPPORTED_MEDIA_TYPE", "unsupported media type")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
