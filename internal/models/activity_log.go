package models

import "time"

// ActivityLog records one API request handled by the server. Written by the
// logging middleware after the handler finishes.
type ActivityLog struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	Method     string    `gorm:"type:varchar(10)" json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	ClientIP   string    `gorm:"type:varchar(45)" json:"client_ip"`
	UserAgent  string    `json:"user_agent"`
	Latency    int64     `json:"latency_ms"` // milliseconds
	CreatedAt  time.Time `json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
