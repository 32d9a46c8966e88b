package models

import (
	"time"

	"gorm.io/gorm"
)

// OfficialTemplate is an uploaded DOCX template for one of the official
// documents (ใบสมัครงาน, สัญญาจ้าง, หนังสือรับรอง and so on). Placeholders is
// the JSON list of {{keys}} extracted from the file at upload time.
type OfficialTemplate struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	DocumentType string         `gorm:"type:varchar(50);index" json:"document_type"` // e.g. "job_application", "employment_contract"
	Description  string         `json:"description"`
	FilePath     string         `gorm:"not null" json:"file_path"` // object name in storage
	FileSize     int64          `json:"file_size"`
	Placeholders string         `gorm:"type:json" json:"placeholders"` // JSON array of placeholder keys
	Orientation  string         `gorm:"type:varchar(20)" json:"orientation"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (OfficialTemplate) TableName() string {
	return "official_templates"
}
