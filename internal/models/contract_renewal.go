package models

import (
	"time"

	"gorm.io/gorm"
)

// RenewalStatus represents the state of a contract-renewal case
type RenewalStatus string

const (
	RenewalPending  RenewalStatus = "pending"
	RenewalRenewed  RenewalStatus = "renewed"
	RenewalDeclined RenewalStatus = "declined"
)

// ContractRenewal tracks one contract period of a staff member and whether it
// was renewed when it ran out.
type ContractRenewal struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	MemberID      string         `gorm:"not null;index" json:"member_id"`
	ContractStart string         `gorm:"type:varchar(10)" json:"contract_start"` // ISO calendar date
	ContractEnd   string         `gorm:"type:varchar(10);index" json:"contract_end"`
	Status        RenewalStatus  `gorm:"type:varchar(20);default:'pending'" json:"status"`
	DecidedBy     string         `json:"decided_by,omitempty"`
	DecidedAt     *time.Time     `json:"decided_at,omitempty"`
	Note          string         `json:"note,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (ContractRenewal) TableName() string {
	return "contract_renewals"
}
