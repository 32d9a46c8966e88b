package models

import (
	"time"

	"gorm.io/gorm"
)

// DocumentStatus represents the rendering state of a generated document
type DocumentStatus string

const (
	DocumentPending   DocumentStatus = "pending"
	DocumentCompleted DocumentStatus = "completed"
	DocumentFailed    DocumentStatus = "failed"
)

// GeneratedDocument is one rendered official document: a template filled with
// the projected fields of an application, stored as DOCX and usually also as
// PDF.
type GeneratedDocument struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	ApplicationID string         `gorm:"not null;index" json:"application_id"`
	TemplateID    string         `gorm:"not null;index" json:"template_id"`
	DocxPath      string         `json:"docx_path"` // object name in storage
	PdfPath       string         `json:"pdf_path"`
	Status        DocumentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ErrorMessage  string         `json:"error_message,omitempty"`
	GeneratedAt   *time.Time     `json:"generated_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Template *OfficialTemplate `gorm:"foreignKey:TemplateID" json:"template,omitempty"`
}

func (GeneratedDocument) TableName() string {
	return "generated_documents"
}
