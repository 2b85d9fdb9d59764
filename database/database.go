package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/dalemartenxen/PECE-Portfolio/models"
)

// Database is the durable backend: each repository shares one GORM
// instance (and with it one connection pool, acquired at process start).
// It satisfies storage.Store, so the API server cannot tell it apart
// from the in-memory backend.
type Database struct {
	projectRepo *ProjectRepo
	articleRepo *ArticleRepo
	contactRepo *ContactSubmissionRepo
	userRepo    *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		articleRepo: NewArticleRepo(db),
		contactRepo: NewContactSubmissionRepo(db),
		userRepo:    NewUserRepo(db),
	}
}

// Migrate creates or updates the schema for every entity table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Article{},
		&models.ContactSubmission{},
		&models.User{},
	)
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ArticleRepo() *ArticleRepo {
	return d.articleRepo
}

func (d Database) ContactSubmissionRepo() *ContactSubmissionRepo {
	return d.contactRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

// storage.Store implementation

func (d Database) Kind() string {
	return "postgres"
}

func (d Database) GetAllProjects() ([]models.Project, error) {
	return d.projectRepo.FindAll()
}

func (d Database) GetProject(id string) (*models.Project, error) {
	return d.projectRepo.FindByID(id)
}

func (d Database) CreateProject(in models.InsertProject) (*models.Project, error) {
	status := in.Status
	if status == "" {
		status = models.DefaultProjectStatus
	}
	project := models.Project{
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
	if err := d.projectRepo.Add(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (d Database) UpdateProject(id string, in models.UpdateProject) (*models.Project, error) {
	return d.projectRepo.Update(id, in)
}

func (d Database) DeleteProject(id string) (bool, error) {
	return d.projectRepo.Delete(id)
}

func (d Database) GetAllArticles() ([]models.Article, error) {
	return d.articleRepo.FindAll()
}

func (d Database) GetArticle(id string) (*models.Article, error) {
	return d.articleRepo.FindByID(id)
}

func (d Database) CreateArticle(in models.InsertArticle) (*models.Article, error) {
	now := time.Now().UTC()
	article := models.Article{
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
	if err := d.articleRepo.Add(&article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (d Database) CreateContactSubmission(in models.InsertContactSubmission) (*models.ContactSubmission, error) {
	submission := models.ContactSubmission{
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Service:   in.Service,
		Message:   in.Message,
		Status:    models.DefaultSubmissionStatus,
		CreatedAt: time.Now().UTC(),
	}
	if err := d.contactRepo.Add(&submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

func (d Database) GetAllContactSubmissions() ([]models.ContactSubmission, error) {
	return d.contactRepo.FindAll()
}

func (d Database) GetUser(id string) (*models.User, error) {
	return d.userRepo.FindByID(id)
}

func (d Database) GetUserByUsername(username string) (*models.User, error) {
	return d.userRepo.FindByUsername(username)
}

func (d Database) CreateUser(in models.InsertUser) (*models.User, error) {
	user := models.User{Username: in.Username}
	if err := user.SetPassword(in.Password); err != nil {
		return nil, err
	}
	if err := d.userRepo.Add(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
