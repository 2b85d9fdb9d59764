package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dalemartenxen/PECE-Portfolio/models"
)

func TestListArticles(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/articles", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var articles []models.Article
	require.NoError(t, json.Unmarshal(body, &articles))
	require.Len(t, articles, 1)
	require.Equal(t, "article-1", articles[0].ID)
}

func TestGetArticleNotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/articles/missing", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateArticle(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/articles", map[string]any{
		"title":       "Grounding Techniques for Mixed-Signal PCBs",
		"description": "Keeping analog quiet next to fast digital.",
		"content":     "# Grounding\n\nStart with a *single* reference plane...",
		"imageUrl":    "http://example.com/pcb.png",
		"category":    "Technical Insights",
		"tags":        []string{"PCB", "EMC"},
		"readTime":    "6 min",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var article models.Article
	require.NoError(t, json.Unmarshal(body, &article))
	require.NotEmpty(t, article.ID)
	require.False(t, article.PublishedAt.IsZero())
	require.False(t, article.CreatedAt.IsZero())
}

func TestCreateArticleValidationFailure(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/articles", map[string]any{
		"title": "no content",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetArticleRenderedHTML(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/articles", map[string]any{
		"title":       "T",
		"description": "D",
		"content":     "# Heading\n\nSome **bold** text.\n\n<script>alert(1)</script>",
		"imageUrl":    "http://x",
		"category":    "C",
		"tags":        []string{"t"},
		"readTime":    "1 min",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Article
	require.NoError(t, json.Unmarshal(body, &created))

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/articles/"+created.ID+"?format=html", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rendered struct {
		models.Article
		ContentHTML string `json:"contentHtml"`
	}
	require.NoError(t, json.Unmarshal(body, &rendered))
	require.Contains(t, rendered.ContentHTML, "<h1")
	require.Contains(t, rendered.ContentHTML, "<strong>bold</strong>")
	require.NotContains(t, rendered.ContentHTML, "<script>")
	// The raw markdown is still present alongside the rendering.
	require.Contains(t, rendered.Content, "# Heading")
}
