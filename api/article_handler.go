package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dalemartenxen/PECE-Portfolio/errs"
	"github.com/dalemartenxen/PECE-Portfolio/models"
	"github.com/dalemartenxen/PECE-Portfolio/storage"
)

type articleHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.Store
}

func newArticleHandler(store storage.Store) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	return articleHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// articleWithHTML is an article plus its content rendered to sanitized HTML.
type articleWithHTML struct {
	models.Article
	ContentHTML string `json:"contentHtml"`
}

// getAllArticles retrieves all articles, newest first
func (h articleHandler) getAllArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := h.store.GetAllArticles()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find articles", "articles", err))
			return
		}

		h.responder.WriteJSON(w, articles)
	}
}

// getArticle retrieves a specific article by ID. With ?format=html the
// markdown content is additionally rendered to sanitized HTML.
func (h articleHandler) getArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID := chi.URLParam(r, "articleID")
		if articleID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing articleID"))
			return
		}

		article, err := h.store.GetArticle(articleID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find article", "article", err))
			return
		}

		if article == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("article not found"))
			return
		}

		if r.URL.Query().Get("format") == "html" {
			html, err := renderMarkdown(article.Content)
			if err != nil {
				h.responder.WriteError(w, errs.NewInternalError("failed to render article content"))
				return
			}
			h.responder.WriteJSON(w, articleWithHTML{Article: *article, ContentHTML: html})
			return
		}

		h.responder.WriteJSON(w, article)
	}
}

// createArticle validates the payload and creates a new article
func (h articleHandler) createArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.InsertArticle
		if err := decodeJSON(r, &input); err != nil {
			h.logger.Warn().Err(err).Msg("Failed to decode article request body")
			h.responder.WriteError(w, err)
			return
		}

		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		article, err := h.store.CreateArticle(input)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create article", "article", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, article)
	}
}
