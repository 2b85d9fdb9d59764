package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dalemartenxen/PECE-Portfolio/errs"
	"github.com/dalemartenxen/PECE-Portfolio/models"
)

// MemoryStore is the ephemeral backend: records live in process memory
// and are lost on restart. Unlike the database backend there is no
// statement-level atomicity to lean on, so a RWMutex guards every
// operation; handlers run on concurrent goroutines.
type MemoryStore struct {
	mu          sync.RWMutex
	projects    []models.Project
	articles    []models.Article
	submissions []models.ContactSubmission
	users       []models.User
}

// NewMemoryStore returns an empty in-memory backend.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewSeededMemoryStore returns an in-memory backend pre-populated with
// the demonstration portfolio content.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	s.projects = append(s.projects, seedProjects()...)
	s.articles = append(s.articles, seedArticles()...)
	return s
}

func (s *MemoryStore) Kind() string {
	return "memory"
}

func newID() string {
	return uuid.NewString()
}

// Projects

func (s *MemoryStore) GetAllProjects() ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Project, len(s.projects))
	// Reverse insertion order so records created in the same instant
	// still come back newest-first after the stable sort.
	for i, p := range s.projects {
		out[len(out)-1-i] = p
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) GetProject(id string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateProject(in models.InsertProject) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = models.DefaultProjectStatus
	}
	p := models.Project{
		ID:              newID(),
		Title:           in.Title,
		Description:     in.Description,
		LongDescription: in.LongDescription,
		ImageURL:        in.ImageURL,
		Technologies:    in.Technologies,
		Category:        in.Category,
		Status:          status,
		ProjectURL:      in.ProjectURL,
		GithubURL:       in.GithubURL,
		CreatedAt:       time.Now().UTC(),
		Gallery:         in.Gallery,
	}
	s.projects = append(s.projects, p)
	return &p, nil
}

func (s *MemoryStore) UpdateProject(id string, in models.UpdateProject) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
		if in.Title.Set {
			p.Title = in.Title.Value
		}
		if in.Description.Set {
			p.Description = in.Description.Value
		}
		if in.LongDescription.Set {
			// Ptr() is nil on explicit null, clearing the field.
			p.LongDescription = in.LongDescription.Ptr()
		}
		if in.ImageURL.Set {
			p.ImageURL = in.ImageURL.Value
		}
		if in.Technologies.Set {
			p.Technologies = in.Technologies.Value
		}
		if in.Category.Set {
			p.Category = in.Category.Value
		}
		if in.Status.Set {
			p.Status = in.Status.Value
		}
		if in.ProjectURL.Set {
			p.ProjectURL = in.ProjectURL.Ptr()
		}
		if in.GithubURL.Set {
			p.GithubURL = in.GithubURL.Ptr()
		}
		if in.Gallery.Set {
			p.Gallery = in.Gallery.Value
		}
		// CreatedAt is set once at creation and never touched here.
		updated := *p
		return &updated, nil
	}
	return nil, nil
}

func (s *MemoryStore) DeleteProject(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Articles

func (s *MemoryStore) GetAllArticles() ([]models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Article, len(s.articles))
	for i, a := range s.articles {
		out[len(out)-1-i] = a
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) GetArticle(id string) (*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.articles {
		if s.articles[i].ID == id {
			a := s.articles[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateArticle(in models.InsertArticle) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	a := models.Article{
		ID:          newID(),
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Tags:        in.Tags,
		ReadTime:    in.ReadTime,
		PublishedAt: now,
		CreatedAt:   now,
	}
	s.articles = append(s.articles, a)
	return &a, nil
}

// Contact submissions

func (s *MemoryStore) CreateContactSubmission(in models.InsertContactSubmission) (*models.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := models.ContactSubmission{
		ID:        newID(),
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Service:   in.Service,
		Message:   in.Message,
		Status:    models.DefaultSubmissionStatus,
		CreatedAt: time.Now().UTC(),
	}
	s.submissions = append(s.submissions, sub)
	return &sub, nil
}

func (s *MemoryStore) GetAllContactSubmissions() ([]models.ContactSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ContactSubmission, len(s.submissions))
	for i, sub := range s.submissions {
		out[len(out)-1-i] = sub
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Users

func (s *MemoryStore) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateUser(in models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == in.Username {
			return nil, errs.NewAlreadyExists("user")
		}
	}

	u := models.User{
		ID:       newID(),
		Username: in.Username,
	}
	if err := u.SetPassword(in.Password); err != nil {
		return nil, err
	}
	s.users = append(s.users, u)
	return &u, nil
}
