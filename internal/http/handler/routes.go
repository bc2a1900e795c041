package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"arangodoc/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, docSvc service.DocumentService) {
	app.Get("/health", HealthCheck(docSvc))
	app.Get("/healthz", LivenessProbe())

	app.Get("/collections", ListCollections(docSvc))

	app.Post("/collections/:collection/documents", CreateDocuments(docSvc))
	app.Get("/collections/:collection/documents/:key", GetDocument(docSvc))
	app.Put("/collections/:collection/documents/:key", ReplaceDocument(docSvc))
	app.Patch("/collections/:collection/documents/:key", UpdateDocument(docSvc))
	app.Delete("/collections/:collection/documents/:key", DeleteDocument(docSvc))
}

// HealthCheck godoc
// @Summary Database health
// @Description Pings the database and reports its version.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		v, err := docSvc.Health(ctx)
		if err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"server":  v.Server,
			"version": v.Version,
		})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListCollections godoc
// @Summary List collections
// @Tags collections
// @Produce json
// @Param includeSystem query bool false "include system collections"
// @Success 200 {array} model.Collection
// @Router /collections [get]
func ListCollections(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := docSvc.ListCollections(c.UserContext(), c.QueryBool("includeSystem", false))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(list)
	}
}
