package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"constructdocs/internal/service"
)

// RegisterRoutes attaches the HTTP routes to the provided Fiber app. Handlers
// stay thin: role resolution happens in middleware, everything else in the
// services.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService, conSvc service.ConstructionService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/documents", UploadDocument(docSvc))
	app.Put("/documents/:id", ReplaceDocument(docSvc))
	app.Get("/documents/:id", GetDocument(docSvc))
	app.Get("/documents/:id/download", DownloadDocument(docSvc))
	app.Delete("/documents/:id", DeleteDocument(docSvc))

	app.Post("/constructions", CreateConstruction(conSvc))
	app.Get("/constructions/:id", GetConstruction(conSvc))
	app.Get("/constructions/:id/documents", ListConstructionDocuments(docSvc))
	app.Get("/constructions/:id/documents/versions", ListConstructionVersions(docSvc))

	app.Get("/projects/:id/documents", ListProjectDocuments(docSvc))
	app.Get("/projects/:id/constructions", ListProjectConstructions(conSvc))
}
