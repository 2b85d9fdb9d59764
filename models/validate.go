package models

import (
	"regexp"
	"strings"

	"github.com/dalemartenxen/PECE-Portfolio/errs"
)

// Pragmatic format check, not full RFC 5322. Matches what the contact
// form itself enforces client-side.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func requireText(v *errs.ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

// Validate checks the create payload for a project. Pure function of the
// input; returns nil or a *errs.ValidationError with every failure.
func (in InsertProject) Validate() error {
	v := errs.NewValidationError()
	requireText(v, "title", in.Title)
	requireText(v, "description", in.Description)
	requireText(v, "imageUrl", in.ImageURL)
	requireText(v, "category", in.Category)
	if in.Technologies == nil {
		v.Add("technologies", "is required")
	}
	return v.OrNil()
}

// presentText flags a required column whose update value was nulled or
// blanked; explicit null only clears nullable columns.
func presentText(v *errs.ValidationError, field string, o Optional[string]) {
	if !o.Set {
		return
	}
	if !o.Valid {
		v.Add(field, "must not be null")
		return
	}
	if strings.TrimSpace(o.Value) == "" {
		v.Add(field, "must not be empty")
	}
}

// Validate checks a partial project update: every field is optional, but
// a required field that is present must still carry a usable value.
// Nullable fields (longDescription, projectUrl, githubUrl, gallery)
// accept explicit null, which clears them.
func (in UpdateProject) Validate() error {
	v := errs.NewValidationError()
	presentText(v, "title", in.Title)
	presentText(v, "description", in.Description)
	presentText(v, "imageUrl", in.ImageURL)
	presentText(v, "category", in.Category)
	presentText(v, "status", in.Status)
	if in.Technologies.Set && !in.Technologies.Valid {
		v.Add("technologies", "must not be null")
	}
	return v.OrNil()
}

// Validate checks the create payload for an article.
func (in InsertArticle) Validate() error {
	v := errs.NewValidationError()
	requireText(v, "title", in.Title)
	requireText(v, "description", in.Description)
	requireText(v, "content", in.Content)
	requireText(v, "imageUrl", in.ImageURL)
	requireText(v, "category", in.Category)
	requireText(v, "readTime", in.ReadTime)
	if in.Tags == nil {
		v.Add("tags", "is required")
	}
	return v.OrNil()
}

// Validate checks the contact form payload, including email format.
func (in InsertContactSubmission) Validate() error {
	v := errs.NewValidationError()
	requireText(v, "name", in.Name)
	requireText(v, "message", in.Message)
	if strings.TrimSpace(in.Email) == "" {
		v.Add("email", "is required")
	} else if !emailPattern.MatchString(in.Email) {
		v.Add("email", "must be a valid email address")
	}
	return v.OrNil()
}

// Validate checks the create payload for a user.
func (in InsertUser) Validate() error {
	v := errs.NewValidationError()
	requireText(v, "username", in.Username)
	requireText(v, "password", in.Password)
	return v.OrNil()
}
