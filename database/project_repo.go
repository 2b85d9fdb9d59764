package database

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/dalemartenxen/PECE-Portfolio/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects, newest first
func (r *ProjectRepo) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when absent
func (r *ProjectRepo) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update applies a partial update and returns the full updated record,
// or nil when the id does not exist. Only fields present in the input
// are written; an explicit null writes SQL NULL to a nullable column,
// and created_at is never part of the update set.
func (r *ProjectRepo) Update(id string, in models.UpdateProject) (*models.Project, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}

	values := map[string]any{}
	if in.Title.Set {
		values["title"] = in.Title.Value
	}
	if in.Description.Set {
		values["description"] = in.Description.Value
	}
	if in.LongDescription.Set {
		values["long_description"] = in.LongDescription.Ptr()
	}
	if in.ImageURL.Set {
		values["image_url"] = in.ImageURL.Value
	}
	if in.Technologies.Set {
		values["technologies"] = datatypes.JSONSlice[string](in.Technologies.Value)
	}
	if in.Category.Set {
		values["category"] = in.Category.Value
	}
	if in.Status.Set {
		values["status"] = in.Status.Value
	}
	if in.ProjectURL.Set {
		values["project_url"] = in.ProjectURL.Ptr()
	}
	if in.GithubURL.Set {
		values["github_url"] = in.GithubURL.Ptr()
	}
	if in.Gallery.Set {
		if in.Gallery.Valid {
			values["gallery"] = datatypes.JSONSlice[string](in.Gallery.Value)
		} else {
			values["gallery"] = nil
		}
	}

	if len(values) == 0 {
		return existing, nil
	}

	if err := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(values).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes a project by id and reports whether a row was removed
func (r *ProjectRepo) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
