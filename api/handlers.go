package api

import (
	"time"

	"github.com/dalemartenxen/PECE-Portfolio/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(store storage.Store, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(store),
		articleHandler: newArticleHandler(store),
		contactHandler: newContactHandler(store),
		healthHandler:  newHealthHandler(store, startupTime),
	}
}
