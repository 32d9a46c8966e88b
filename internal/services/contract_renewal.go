package services

import (
	"fmt"
	"time"

	"HSP-PORTAL/internal"
	"HSP-PORTAL/internal/models"

	"github.com/google/uuid"
)

type ContractRenewalService struct{}

func NewContractRenewalService() *ContractRenewalService {
	return &ContractRenewalService{}
}

type CreateRenewalRequest struct {
	MemberID      string `json:"member_id" binding:"required"`
	ContractStart string `json:"contract_start" binding:"required"`
	ContractEnd   string `json:"contract_end" binding:"required"`
	Note          string `json:"note"`
}

func (s *ContractRenewalService) Create(req *CreateRenewalRequest) (*models.ContractRenewal, error) {
	// Member must exist before a contract period can be tracked
	var member models.Member
	if err := internal.DB.Where("id = ?", req.MemberID).First(&member).Error; err != nil {
		return nil, fmt.Errorf("member not found: %w", err)
	}

	if err := validateContractPeriod(req.ContractStart, req.ContractEnd); err != nil {
		return nil, err
	}

	renewal := &models.ContractRenewal{
		ID:            uuid.New().String(),
		MemberID:      req.MemberID,
		ContractStart: req.ContractStart,
		ContractEnd:   req.ContractEnd,
		Status:        models.RenewalPending,
		Note:          req.Note,
	}

	if err := internal.DB.Create(renewal).Error; err != nil {
		return nil, fmt.Errorf("failed to create contract renewal: %w", err)
	}

	return renewal, nil
}

func (s *ContractRenewalService) GetByID(id string) (*models.ContractRenewal, error) {
	var renewal models.ContractRenewal
	if err := internal.DB.Preload("Member").
		Where("id = ?", id).
		First(&renewal).Error; err != nil {
		return nil, fmt.Errorf("contract renewal not found: %w", err)
	}
	return &renewal, nil
}

func (s *ContractRenewalService) ListByMember(memberID string) ([]models.ContractRenewal, error) {
	var renewals []models.ContractRenewal
	if err := internal.DB.Where("member_id = ?", memberID).
		Order("contract_end DESC").
		Find(&renewals).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch contract renewals: %w", err)
	}
	return renewals, nil
}

// ListExpiring returns pending renewals whose contract runs out within the
// given number of days, soonest first
func (s *ContractRenewalService) ListExpiring(days int) ([]models.ContractRenewal, error) {
	if days <= 0 {
		days = 30
	}

	today := time.Now().Format("2006-01-02")
	cutoff := time.Now().AddDate(0, 0, days).Format("2006-01-02")

	var renewals []models.ContractRenewal
	if err := internal.DB.Preload("Member").
		Where("status = ? AND contract_end >= ? AND contract_end <= ?",
			models.RenewalPending, today, cutoff).
		Order("contract_end ASC").
		Find(&renewals).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch expiring contracts: %w", err)
	}

	return renewals, nil
}

// validateContractPeriod checks both dates for the ISO form and their order.
func validateContractPeriod(start, end string) error {
	for _, dateStr := range []string{start, end} {
		if _, err := time.Parse("2006-01-02", dateStr); err != nil {
			return fmt.Errorf("invalid contract date %q, expected YYYY-MM-DD", dateStr)
		}
	}
	if end < start {
		return fmt.Errorf("contract end date is before start date")
	}
	return nil
}

// checkDecision validates a renewal decision. Only pending renewals can be
// decided, and only to renewed or declined.
func checkDecision(current, decision models.RenewalStatus) error {
	if decision != models.RenewalRenewed && decision != models.RenewalDeclined {
		return fmt.Errorf("invalid renewal decision: %s", decision)
	}
	if current != models.RenewalPending {
		return fmt.Errorf("contract renewal already decided (%s)", current)
	}
	return nil
}

// Decide records the renewal decision for a pending contract period
func (s *ContractRenewalService) Decide(id string, status models.RenewalStatus, decidedBy, note string) (*models.ContractRenewal, error) {
	renewal, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := checkDecision(renewal.Status, status); err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":     status,
		"decided_by": decidedBy,
		"decided_at": &now,
	}
	if note != "" {
		updates["note"] = note
	}

	if err := internal.DB.Model(renewal).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update contract renewal: %w", err)
	}

	return s.GetByID(id)
}
