// Package client is a typed Go client for the portfolio API. GET
// responses are memoized by request path because the underlying content
// changes rarely; a successful mutation invalidates the cached entries
// for that resource, mirroring the site's data-hook behavior.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dalemartenxen/PECE-Portfolio/models"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 APIError.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	cache map[string][]byte
	group singleflight.Group
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		cache:      make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func decodeError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	var errBody struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Error != "" {
		apiErr.Message = errBody.Error
	}
	return apiErr
}

// get fetches path with memoization; concurrent identical requests are
// collapsed into one round trip.
func (c *Client) get(path string, out any) error {
	c.mu.Lock()
	cached, ok := c.cache[path]
	c.mu.Unlock()
	if ok {
		return json.Unmarshal(cached, out)
	}

	fetched, err, _ := c.group.Do(path, func() (any, error) {
		resp, err := c.httpClient.Get(c.baseURL + path)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, decodeError(resp, body)
		}

		c.mu.Lock()
		c.cache[path] = body
		c.mu.Unlock()
		return body, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(fetched.([]byte), out)
}

// do performs a mutation. A 2xx result invalidates the cached GETs for
// the same resource.
func (c *Client) do(method, path string, payload, out any) error {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp, body)
	}

	c.invalidate(path)

	if out != nil && len(body) > 0 {
		return json.Unmarshal(body, out)
	}
	return nil
}

// invalidate drops every cached GET under the mutated resource, e.g. a
// write to /api/projects/42 evicts /api/projects and /api/projects/42.
func (c *Client) invalidate(path string) {
	resource := path
	if idx := strings.Index(strings.TrimPrefix(path, "/api/"), "/"); idx >= 0 {
		resource = path[:len("/api/")+idx]
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.cache {
		if key == resource || strings.HasPrefix(key, resource+"/") {
			delete(c.cache, key)
		}
	}
}

// Projects

func (c *Client) Projects() ([]models.Project, error) {
	var projects []models.Project
	err := c.get("/api/projects", &projects)
	return projects, err
}

func (c *Client) Project(id string) (*models.Project, error) {
	var project models.Project
	if err := c.get("/api/projects/"+id, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) CreateProject(in models.InsertProject) (*models.Project, error) {
	var project models.Project
	if err := c.do(http.MethodPost, "/api/projects", in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProject(id string, in models.UpdateProject) (*models.Project, error) {
	var project models.Project
	if err := c.do(http.MethodPut, "/api/projects/"+id, in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(id string) error {
	return c.do(http.MethodDelete, "/api/projects/"+id, nil, nil)
}

// Articles

func (c *Client) Articles() ([]models.Article, error) {
	var articles []models.Article
	err := c.get("/api/articles", &articles)
	return articles, err
}

func (c *Client) Article(id string) (*models.Article, error) {
	var article models.Article
	if err := c.get("/api/articles/"+id, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (c *Client) CreateArticle(in models.InsertArticle) (*models.Article, error) {
	var article models.Article
	if err := c.do(http.MethodPost, "/api/articles", in, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// Contact

func (c *Client) SubmitContact(in models.InsertContactSubmission) (*models.ContactSubmission, error) {
	var submission models.ContactSubmission
	if err := c.do(http.MethodPost, "/api/contact", in, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

func (c *Client) ContactSubmissions() ([]models.ContactSubmission, error) {
	var submissions []models.ContactSubmission
	err := c.get("/api/contact", &submissions)
	return submissions, err
}
