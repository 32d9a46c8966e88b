package models

import (
	"time"

	"gorm.io/gorm"
)

// EmploymentType represents the contract arrangement of a staff member
type EmploymentType string

const (
	EmploymentPermanent EmploymentType = "permanent"  // ข้าราชการ/ลูกจ้างประจำ
	EmploymentContract  EmploymentType = "contract"   // ลูกจ้างชั่วคราว (สัญญาจ้าง)
	EmploymentGovWorker EmploymentType = "gov_worker" // พนักงานราชการ
	EmploymentDailyWage EmploymentType = "daily_wage" // ลูกจ้างรายวัน
)

// MemberStatus represents the membership status of a staff member
type MemberStatus string

const (
	MemberActive    MemberStatus = "active"
	MemberOnLeave   MemberStatus = "on_leave"
	MemberResigned  MemberStatus = "resigned"
	MemberSuspended MemberStatus = "suspended"
)

// Member is a hospital staff member managed through the admin console.
type Member struct {
	ID               string         `gorm:"primaryKey" json:"id"`
	EmployeeCode     string         `gorm:"uniqueIndex" json:"employee_code"`
	Prefix           string         `json:"prefix"` // คำนำหน้า
	FirstName        string         `gorm:"not null" json:"first_name"`
	LastName         string         `gorm:"not null" json:"last_name"`
	IDNumber         string         `gorm:"type:varchar(13);index" json:"id_number"` // เลขบัตรประชาชน
	Email            string         `gorm:"index" json:"email"`
	Phone            string         `json:"phone"`
	Position         string         `json:"position"`
	DepartmentID     string         `gorm:"index" json:"department_id"`
	EmploymentType   EmploymentType `gorm:"type:varchar(20)" json:"employment_type"`
	StartDate        string         `gorm:"type:varchar(10)" json:"start_date"` // ISO calendar date
	Status           MemberStatus   `gorm:"type:varchar(20);default:'active'" json:"status"`
	ProfileImagePath string         `json:"profile_image_path"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Relations
	Department       *Department       `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	ContractRenewals []ContractRenewal `gorm:"foreignKey:MemberID" json:"contract_renewals,omitempty"`
}

func (Member) TableName() string {
	return "members"
}
