package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dalemartenxen/PECE-Portfolio/models"
)

// fakeAPI is a minimal stand-in for the real server that counts hits
// per path so caching behavior can be observed.
type fakeAPI struct {
	mu       sync.Mutex
	hits     map[string]int
	projects []models.Project
	delay    time.Duration
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		hits: make(map[string]int),
		projects: []models.Project{
			{ID: "p1", Title: "First", Status: "completed"},
		},
	}
}

func (f *fakeAPI) hitCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.hits[r.Method+" "+r.URL.Path]++
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/projects":
		f.mu.Lock()
		defer f.mu.Unlock()
		json.NewEncoder(w).Encode(f.projects)
	case r.Method == http.MethodPost && r.URL.Path == "/api/projects":
		var in models.InsertProject
		json.NewDecoder(r.Body).Decode(&in)
		p := models.Project{ID: "p-new", Title: in.Title, Status: "completed"}
		f.mu.Lock()
		f.projects = append(f.projects, p)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(p)
	case r.Method == http.MethodGet && r.URL.Path == "/api/articles":
		json.NewEncoder(w).Encode([]models.Article{})
	case r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "project not found"})
	default:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	}
}

func TestGetMemoization(t *testing.T) {
	api := newFakeAPI()
	ts := httptest.NewServer(api)
	defer ts.Close()

	c := New(ts.URL)

	first, err := c.Projects()
	if err != nil {
		t.Fatalf("Projects() error = %v", err)
	}
	second, err := c.Projects()
	if err != nil {
		t.Fatalf("Projects() second call error = %v", err)
	}

	if got := api.hitCount("GET /api/projects"); got != 1 {
		t.Errorf("server saw %d GETs, want 1 (second call should be cached)", got)
	}
	if len(first) != 1 || len(second) != 1 || first[0].ID != second[0].ID {
		t.Errorf("cached response differs: %v vs %v", first, second)
	}
}

func TestMutationInvalidatesCache(t *testing.T) {
	api := newFakeAPI()
	ts := httptest.NewServer(api)
	defer ts.Close()

	c := New(ts.URL)

	if _, err := c.Projects(); err != nil {
		t.Fatalf("Projects() error = %v", err)
	}
	if _, err := c.Articles(); err != nil {
		t.Fatalf("Articles() error = %v", err)
	}

	if _, err := c.CreateProject(models.InsertProject{Title: "New"}); err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	projects, err := c.Projects()
	if err != nil {
		t.Fatalf("Projects() after create error = %v", err)
	}
	if len(projects) != 2 {
		t.Errorf("Projects() after create returned %d, want 2 (stale cache?)", len(projects))
	}
	if got := api.hitCount("GET /api/projects"); got != 2 {
		t.Errorf("server saw %d project GETs, want 2 (create should evict)", got)
	}

	// An unrelated resource keeps its cache.
	if _, err := c.Articles(); err != nil {
		t.Fatalf("Articles() second call error = %v", err)
	}
	if got := api.hitCount("GET /api/articles"); got != 1 {
		t.Errorf("server saw %d article GETs, want 1", got)
	}
}

func TestConcurrentGetsCollapse(t *testing.T) {
	api := newFakeAPI()
	api.delay = 100 * time.Millisecond
	ts := httptest.NewServer(api)
	defer ts.Close()

	c := New(ts.URL)

	var errCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Projects(); err != nil {
				errCount.Add(1)
			}
		}()
	}
	wg.Wait()

	if errCount.Load() != 0 {
		t.Fatalf("%d concurrent Projects() calls failed", errCount.Load())
	}
	if got := api.hitCount("GET /api/projects"); got != 1 {
		t.Errorf("server saw %d GETs for 10 concurrent callers, want 1", got)
	}
}

func TestNotFoundError(t *testing.T) {
	api := newFakeAPI()
	ts := httptest.NewServer(api)
	defer ts.Close()

	c := New(ts.URL)

	err := c.DeleteProject("missing")
	if err == nil {
		t.Fatal("DeleteProject() on missing id = nil, want error")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}
