package services

import (
	"fmt"

	"HSP-PORTAL/internal"
	"HSP-PORTAL/internal/models"

	"github.com/google/uuid"
)

type DepartmentService struct{}

func NewDepartmentService() *DepartmentService {
	return &DepartmentService{}
}

type CreateDepartmentRequest struct {
	Code          string `json:"code"`
	Name          string `json:"name" binding:"required"`
	NameEn        string `json:"name_en"`
	Description   string `json:"description"`
	OpenPositions int    `json:"open_positions"`
	IsHiring      bool   `json:"is_hiring"`
	SortOrder     int    `json:"sort_order"`
}

type UpdateDepartmentRequest struct {
	Code          *string `json:"code"`
	Name          *string `json:"name"`
	NameEn        *string `json:"name_en"`
	Description   *string `json:"description"`
	OpenPositions *int    `json:"open_positions"`
	IsHiring      *bool   `json:"is_hiring"`
	SortOrder     *int    `json:"sort_order"`
	IsActive      *bool   `json:"is_active"`
}

func (s *DepartmentService) Create(req *CreateDepartmentRequest) (*models.Department, error) {
	dept := &models.Department{
		ID:            uuid.New().String(),
		Code:          req.Code,
		Name:          req.Name,
		NameEn:        req.NameEn,
		Description:   req.Description,
		OpenPositions: req.OpenPositions,
		IsHiring:      req.IsHiring,
		SortOrder:     req.SortOrder,
		IsActive:      true,
	}

	if err := internal.DB.Create(dept).Error; err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	return dept, nil
}

// List returns departments ordered for display. When hiringOnly is set, only
// active departments currently accepting applications are returned.
func (s *DepartmentService) List(hiringOnly bool) ([]models.Department, error) {
	var departments []models.Department

	query := internal.DB.Order("sort_order ASC, name ASC")
	if hiringOnly {
		query = query.Where("is_active = ? AND is_hiring = ?", true, true)
	}

	if err := query.Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch departments: %w", err)
	}

	return departments, nil
}

func (s *DepartmentService) GetByID(id string) (*models.Department, error) {
	var dept models.Department
	if err := internal.DB.Where("id = ?", id).First(&dept).Error; err != nil {
		return nil, fmt.Errorf("department not found: %w", err)
	}
	return &dept, nil
}

func (s *DepartmentService) Update(id string, req *UpdateDepartmentRequest) (*models.Department, error) {
	dept, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Code != nil {
		updates["code"] = *req.Code
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.NameEn != nil {
		updates["name_en"] = *req.NameEn
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.OpenPositions != nil {
		updates["open_positions"] = *req.OpenPositions
	}
	if req.IsHiring != nil {
		updates["is_hiring"] = *req.IsHiring
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := internal.DB.Model(dept).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update department: %w", err)
		}
	}

	return s.GetByID(id)
}

func (s *DepartmentService) Delete(id string) error {
	result := internal.DB.Where("id = ?", id).Delete(&models.Department{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete department: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("department not found")
	}
	return nil
}
