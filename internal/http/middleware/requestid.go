package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"arangodoc/internal/connection"
)

const (
	// RequestIDHeader carries the request id on gateway responses and database requests.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the fiber locals key holding the request id.
	RequestIDLocalKey = "request_id"

	maxRequestIDLength = 128
)

// RequestID assigns every request an id: the incoming X-Request-ID when it is usable, a new
// UUID otherwise. The id is echoed on the response and forwarded to the database through the
// user context.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.SetUserContext(connection.WithRequestID(c.UserContext(), id))
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}

// validRequestID accepts short printable ASCII ids.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
