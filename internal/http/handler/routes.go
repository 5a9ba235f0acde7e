package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docstore/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService, defaultOwnerID int64) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint checks DB connectivity only
	app.Get("/health", HealthCheck(db))
	// Backward-compatible simple liveness probe
	app.Get("/healthz", LivenessProbe())

	// Static document routes must precede the parameterized :id routes.
	app.Get("/documents/search", SearchDocuments(docSvc))
	app.Get("/documents/download/:id", DownloadDocument(docSvc))
	app.Post("/documents/upload", UploadDocuments(docSvc, defaultOwnerID))

	app.Get("/documents", ListDocuments(docSvc))
	app.Post("/documents", CreateDocument(docSvc, defaultOwnerID))
	app.Get("/documents/:id", GetDocument(docSvc))
	app.Delete("/documents/:id", DeleteDocument(docSvc))
}
