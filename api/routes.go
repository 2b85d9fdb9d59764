package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public API under /api.
//
// Session auth is intentionally not applied to the content routes; the
// authMiddleware pre-check stays available for back-office mounts.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		//r.Use(authMiddleware.authenticate)

		r.Get("/health", handlers.healthHandler.health())

		// Project endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		// Article endpoints (create/read only)
		r.Get("/articles", handlers.articleHandler.getAllArticles())
		r.Get("/articles/{articleID}", handlers.articleHandler.getArticle())
		r.Post("/articles", handlers.articleHandler.createArticle())

		// Contact form endpoints
		r.Post("/contact", handlers.contactHandler.submitContact())
		r.Get("/contact", handlers.contactHandler.getAllSubmissions())
	})
}
