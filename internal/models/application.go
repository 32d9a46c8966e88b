package models

import (
	"time"

	"gorm.io/gorm"
)

// ApplicationStatus represents where an application sits in the review flow
type ApplicationStatus string

const (
	ApplicationDraft     ApplicationStatus = "draft"
	ApplicationSubmitted ApplicationStatus = "submitted"
	ApplicationReviewing ApplicationStatus = "reviewing"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// Application is one job application collected through the multi-tab form.
// The full field bag (personal info, addresses, education, work experience,
// documents map, emergency contact, medical rights) is kept as submitted in
// FormData; a few fields are promoted to columns for listing and filtering.
// Document rendering re-reads FormData every time, nothing derived from it is
// persisted.
type Application struct {
	ID              string            `gorm:"primaryKey" json:"id"`
	Prefix          string            `json:"prefix"`
	FirstName       string            `gorm:"index" json:"first_name"`
	LastName        string            `gorm:"index" json:"last_name"`
	IDNumber        string            `gorm:"type:varchar(13);index" json:"id_number"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	AppliedPosition string            `json:"applied_position"`
	DepartmentID    string            `gorm:"index" json:"department_id"`
	ExpectedSalary  string            `json:"expected_salary"`
	FormData        string            `gorm:"type:json" json:"form_data"` // full ApplicationRecord bag as submitted
	Status          ApplicationStatus `gorm:"type:varchar(20);default:'submitted'" json:"status"`
	SubmittedAt     *time.Time        `json:"submitted_at,omitempty"`
	ReviewedBy      string            `json:"reviewed_by,omitempty"`
	ReviewNote      string            `json:"review_note,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	DeletedAt       gorm.DeletedAt    `gorm:"index" json:"deleted_at,omitempty"`

	// Relations
	Department *Department         `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Documents  []GeneratedDocument `gorm:"foreignKey:ApplicationID" json:"documents,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}
