package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dalemartenxen/PECE-Portfolio/models"
	"github.com/dalemartenxen/PECE-Portfolio/services"
	"github.com/dalemartenxen/PECE-Portfolio/storage"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.Store
	notify    func(models.ContactSubmission) error
}

func newContactHandler(store storage.Store) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		notify:    services.NotifyContactSubmission,
	}
}

// submitContact validates and persists a contact-form submission. The
// email notification runs after the response is committed; a notifier
// failure is logged and never reaches the submitter.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.InsertContactSubmission
		if err := decodeJSON(r, &input); err != nil {
			h.logger.Warn().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, err)
			return
		}

		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		submission, err := h.store.CreateContactSubmission(input)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create contact submission", "contact submission", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, submission)

		go func(sub models.ContactSubmission) {
			if err := h.notify(sub); err != nil {
				h.logger.Error().Err(err).Str("submissionID", sub.ID).Msg("Failed to send contact notification")
			}
		}(*submission)
	}
}

// getAllSubmissions lists all contact submissions, newest first
func (h contactHandler) getAllSubmissions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissions, err := h.store.GetAllContactSubmissions()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact submissions", "contact submissions", err))
			return
		}

		h.responder.WriteJSON(w, submissions)
	}
}
