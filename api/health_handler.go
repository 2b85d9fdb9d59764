package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dalemartenxen/PECE-Portfolio/storage"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	store       storage.Store
	startupTime time.Time
}

func newHealthHandler(store storage.Store, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		store:       store,
		startupTime: startupTime,
	}
}

// health reports the selected backend strategy and process uptime
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"status":  "ok",
			"backend": h.store.Kind(),
			"uptime":  time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
