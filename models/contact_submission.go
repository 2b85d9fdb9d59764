package models

import "time"

// ContactSubmission represents one contact-form submission. Status starts
// at "new" and is advanced by back-office tooling, not by this API.
type ContactSubmission struct {
	ID        string    `json:"id" db:"id" gorm:"type:varchar(36);primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Company   *string   `json:"company,omitempty" db:"company" gorm:"type:text"`
	Service   *string   `json:"service,omitempty" db:"service" gorm:"type:text"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	Status    string    `json:"status" db:"status" gorm:"type:text;not null;default:new"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// DefaultSubmissionStatus is stamped onto every new submission.
const DefaultSubmissionStatus = "new"

// InsertContactSubmission is the caller-supplied shape for submitting the
// contact form. Identifier, status and timestamp are server-assigned.
type InsertContactSubmission struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
	Service *string `json:"service"`
	Message string  `json:"message"`
}
