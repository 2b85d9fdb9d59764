package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Project represents a portfolio project or case study
type Project struct {
	ID              string                      `json:"id" db:"id" gorm:"type:varchar(36);primaryKey;default:gen_random_uuid();not null"`
	Title           string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string                      `json:"description" db:"description" gorm:"type:text;not null"`
	LongDescription *string                     `json:"longDescription,omitempty" db:"long_description" gorm:"type:text"`
	ImageURL        string                      `json:"imageUrl" db:"image_url" gorm:"type:text;not null"`
	Technologies    datatypes.JSONSlice[string] `json:"technologies" db:"technologies" gorm:"not null"`
	Category        string                      `json:"category" db:"category" gorm:"type:text;not null"`
	Status          string                      `json:"status" db:"status" gorm:"type:text;not null;default:completed"`
	ProjectURL      *string                     `json:"projectUrl,omitempty" db:"project_url" gorm:"type:text"`
	GithubURL       *string                     `json:"githubUrl,omitempty" db:"github_url" gorm:"type:text"`
	CreatedAt       time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	Gallery         datatypes.JSONSlice[string] `json:"gallery,omitempty" db:"gallery"`
}

// DefaultProjectStatus is applied when a create payload omits status.
const DefaultProjectStatus = "completed"

// InsertProject is the caller-supplied shape for creating a project.
// The id and creation timestamp are assigned by the storage backend.
type InsertProject struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription *string  `json:"longDescription"`
	ImageURL        string   `json:"imageUrl"`
	Technologies    []string `json:"technologies"`
	Category        string   `json:"category"`
	Status          string   `json:"status"`
	ProjectURL      *string  `json:"projectUrl"`
	GithubURL       *string  `json:"githubUrl"`
	Gallery         []string `json:"gallery"`
}

// UpdateProject carries a partial update. Absent fields leave the
// stored value untouched; an explicit null clears a nullable field.
type UpdateProject struct {
	Title           Optional[string]   `json:"title"`
	Description     Optional[string]   `json:"description"`
	LongDescription Optional[string]   `json:"longDescription"`
	ImageURL        Optional[string]   `json:"imageUrl"`
	Technologies    Optional[[]string] `json:"technologies"`
	Category        Optional[string]   `json:"category"`
	Status          Optional[string]   `json:"status"`
	ProjectURL      Optional[string]   `json:"projectUrl"`
	GithubURL       Optional[string]   `json:"githubUrl"`
	Gallery         Optional[[]string] `json:"gallery"`
}

// MarshalJSON emits only the fields that were set, so an UpdateProject
// sent by a client stays a partial update on the wire.
func (in UpdateProject) MarshalJSON() ([]byte, error) {
	out := make(map[string]any)
	putOptional(out, "title", in.Title)
	putOptional(out, "description", in.Description)
	putOptional(out, "longDescription", in.LongDescription)
	putOptional(out, "imageUrl", in.ImageURL)
	putOptional(out, "technologies", in.Technologies)
	putOptional(out, "category", in.Category)
	putOptional(out, "status", in.Status)
	putOptional(out, "projectUrl", in.ProjectURL)
	putOptional(out, "githubUrl", in.GithubURL)
	putOptional(out, "gallery", in.Gallery)
	return json.Marshal(out)
}
