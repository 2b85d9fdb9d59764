package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dalemartenxen/PECE-Portfolio/models"
)

func TestListProjects(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/projects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var projects []models.Project
	require.NoError(t, json.Unmarshal(body, &projects))
	require.Len(t, projects, 2)
	// Seed data comes back newest-first.
	require.Equal(t, "project-2", projects[0].ID)
	require.Equal(t, "project-1", projects[1].ID)
}

func TestGetProject(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/projects/project-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var project models.Project
	require.NoError(t, json.Unmarshal(body, &project))
	require.Equal(t, "Smart IoT Temperature Monitoring System", project.Title)
}

func TestGetProjectNotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/projects/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	require.NotEmpty(t, errResp.Error)
}

func TestCreateProject(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/projects", map[string]any{
		"title":        "T",
		"description":  "D",
		"imageUrl":     "http://x",
		"technologies": []string{"A"},
		"category":     "C",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var project models.Project
	require.NoError(t, json.Unmarshal(body, &project))
	require.NotEmpty(t, project.ID)
	require.False(t, project.CreatedAt.IsZero())
	require.Equal(t, "completed", project.Status)
	require.Equal(t, "T", project.Title)
	require.Equal(t, "D", project.Description)
	require.Equal(t, []string{"A"}, []string(project.Technologies))
	require.Equal(t, "C", project.Category)
}

func TestCreateProjectValidationFailure(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/projects", map[string]any{
		"description": "D",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp struct {
		Error  string `json:"error"`
		Status string `json:"status"`
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(body, &errResp))
	require.Equal(t, "validation_error", errResp.Status)
	require.NotEmpty(t, errResp.Fields)

	fieldNames := make([]string, 0, len(errResp.Fields))
	for _, f := range errResp.Fields {
		fieldNames = append(fieldNames, f.Field)
	}
	require.Contains(t, fieldNames, "title")
	require.NotContains(t, fieldNames, "description")
}

func TestCreateProjectTypeMismatch(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/projects", map[string]any{
		"title":        42,
		"description":  "D",
		"imageUrl":     "http://x",
		"technologies": []string{"A"},
		"category":     "C",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	require.Equal(t, "title", errResp.Field)
}

func TestUpdateProjectPartial(t *testing.T) {
	ts, store := newTestServer(t)

	before, err := store.GetProject("project-1")
	require.NoError(t, err)

	resp, body := doJSON(t, http.MethodPut, ts.URL+"/api/projects/project-1", map[string]any{
		"category": "NewCat",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var project models.Project
	require.NoError(t, json.Unmarshal(body, &project))
	require.Equal(t, "NewCat", project.Category)
	require.Equal(t, before.Title, project.Title)
	require.Equal(t, before.Description, project.Description)
	require.True(t, before.CreatedAt.Equal(project.CreatedAt))
}

func TestUpdateProjectExplicitNullClears(t *testing.T) {
	ts, store := newTestServer(t)

	before, err := store.GetProject("project-1")
	require.NoError(t, err)
	require.NotNil(t, before.LongDescription)
	require.NotEmpty(t, before.Gallery)

	resp, body := doJSON(t, http.MethodPut, ts.URL+"/api/projects/project-1", map[string]any{
		"longDescription": nil,
		"gallery":         nil,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var project models.Project
	require.NoError(t, json.Unmarshal(body, &project))
	require.Nil(t, project.LongDescription)
	require.Empty(t, project.Gallery)
	require.Equal(t, before.Title, project.Title)

	after, err := store.GetProject("project-1")
	require.NoError(t, err)
	require.Nil(t, after.LongDescription)
	require.Empty(t, after.Gallery)
}

func TestUpdateProjectNullRequiredField(t *testing.T) {
	ts, store := newTestServer(t)

	resp, body := doJSON(t, http.MethodPut, ts.URL+"/api/projects/project-1", map[string]any{
		"title": nil,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp struct {
		Status string `json:"status"`
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(body, &errResp))
	require.Equal(t, "validation_error", errResp.Status)
	require.Equal(t, "title", errResp.Fields[0].Field)

	// The rejected update must not have touched the record.
	after, err := store.GetProject("project-1")
	require.NoError(t, err)
	require.NotEmpty(t, after.Title)
}

func TestUpdateProjectNotFound(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPut, ts.URL+"/api/projects/missing", map[string]any{
		"category": "NewCat",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteProjectTwice(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodDelete, ts.URL+"/api/projects/project-1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Empty(t, body)

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/projects/project-1", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
