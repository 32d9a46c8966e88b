package models

import "time"

// Statistic event types
const (
	StatApplicationSubmit = "application_submit"
	StatDocumentGenerate  = "document_generate"
	StatDocumentDownload  = "document_download"
	StatMemberExport      = "member_export"
)

// Statistic is a per-day counter for one event type. Incremented with an
// upsert, one row per (event_type, date).
type Statistic struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	EventType string    `gorm:"type:varchar(50);uniqueIndex:idx_stat_event_date" json:"event_type"`
	Date      string    `gorm:"type:varchar(10);uniqueIndex:idx_stat_event_date" json:"date"` // YYYY-MM-DD
	Count     int64     `gorm:"default:0" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Statistic) TableName() string {
	return "statistics"
}
