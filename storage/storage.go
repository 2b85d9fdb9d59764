// Package storage defines the persistence contract shared by the
// ephemeral and database-backed stores. Exactly one implementation is
// constructed at startup and handed to the API server.
package storage

import (
	"github.com/dalemartenxen/PECE-Portfolio/models"
)

// Store is the backend contract. Both strategies must produce
// behaviorally identical results for the same sequence of operations.
//
// Read-by-id operations return (nil, nil) when the record is absent:
// not-found is an expected outcome, not an error. List operations
// return records newest-first by creation time.
type Store interface {
	// Kind names the backend strategy ("memory" or "postgres").
	Kind() string

	// Projects
	GetAllProjects() ([]models.Project, error)
	GetProject(id string) (*models.Project, error)
	CreateProject(in models.InsertProject) (*models.Project, error)
	// UpdateProject merges only the fields present in the partial input
	// (an explicit null clears a nullable field) and returns (nil, nil)
	// when id does not exist.
	UpdateProject(id string, in models.UpdateProject) (*models.Project, error)
	// DeleteProject reports whether a record existed and was removed.
	// A second call on the same id returns false, not an error.
	DeleteProject(id string) (bool, error)

	// Articles (create/read only)
	GetAllArticles() ([]models.Article, error)
	GetArticle(id string) (*models.Article, error)
	CreateArticle(in models.InsertArticle) (*models.Article, error)

	// Contact submissions (create/read-all only; status mutation is a
	// back-office concern)
	CreateContactSubmission(in models.InsertContactSubmission) (*models.ContactSubmission, error)
	GetAllContactSubmissions() ([]models.ContactSubmission, error)

	// Users
	GetUser(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(in models.InsertUser) (*models.User, error)
}
