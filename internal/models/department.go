package models

import (
	"time"

	"gorm.io/gorm"
)

// Department is a hospital department. Departments with open positions are
// shown on the public job-listing page.
type Department struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	Code          string         `gorm:"type:varchar(50);uniqueIndex" json:"code"`
	Name          string         `gorm:"not null" json:"name"` // ชื่อหน่วยงาน
	NameEn        string         `json:"name_en"`
	Description   string         `json:"description"`
	OpenPositions int            `gorm:"default:0" json:"open_positions"`
	IsHiring      bool           `gorm:"default:false" json:"is_hiring"`
	SortOrder     int            `gorm:"default:0" json:"sort_order"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Department) TableName() string {
	return "hospital_departments"
}
