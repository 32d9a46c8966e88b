package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"HSP-PORTAL/internal"
	"HSP-PORTAL/internal/models"
	"HSP-PORTAL/internal/storage"

	"github.com/google/uuid"
)

type MemberService struct {
	storageClient storage.StorageClient
}

func NewMemberService(storageClient storage.StorageClient) *MemberService {
	return &MemberService{storageClient: storageClient}
}

type CreateMemberRequest struct {
	EmployeeCode   string `json:"employee_code"`
	Prefix         string `json:"prefix"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	IDNumber       string `json:"id_number"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Position       string `json:"position"`
	DepartmentID   string `json:"department_id"`
	EmploymentType string `json:"employment_type"`
	StartDate      string `json:"start_date"`
}

type UpdateMemberRequest struct {
	EmployeeCode   *string `json:"employee_code"`
	Prefix         *string `json:"prefix"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	IDNumber       *string `json:"id_number"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Position       *string `json:"position"`
	DepartmentID   *string `json:"department_id"`
	EmploymentType *string `json:"employment_type"`
	StartDate      *string `json:"start_date"`
	Status         *string `json:"status"`
}

// MemberFilter narrows List results. Zero values mean "no filter".
type MemberFilter struct {
	DepartmentID   string
	Status         string
	EmploymentType string
	Search         string // matched against name, employee code and position
	Limit          int
	Offset         int
}

func (s *MemberService) Create(req *CreateMemberRequest) (*models.Member, error) {
	member := &models.Member{
		ID:             uuid.New().String(),
		EmployeeCode:   req.EmployeeCode,
		Prefix:         req.Prefix,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		IDNumber:       req.IDNumber,
		Email:          req.Email,
		Phone:          req.Phone,
		Position:       req.Position,
		DepartmentID:   req.DepartmentID,
		EmploymentType: models.EmploymentType(req.EmploymentType),
		StartDate:      req.StartDate,
		Status:         models.MemberActive,
	}

	if err := internal.DB.Create(member).Error; err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return member, nil
}

func (s *MemberService) List(filter *MemberFilter) ([]models.Member, int64, error) {
	var members []models.Member
	var total int64

	query := internal.DB.Model(&models.Member{})

	if filter.DepartmentID != "" {
		query = query.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.EmploymentType != "" {
		query = query.Where("employment_type = ?", filter.EmploymentType)
	}
	if filter.Search != "" {
		like := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR employee_code LIKE ? OR position LIKE ?",
			like, like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Preload("Department").
		Order("created_at DESC").
		Find(&members).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch members: %w", err)
	}

	return members, total, nil
}

func (s *MemberService) GetByID(id string) (*models.Member, error) {
	var member models.Member
	if err := internal.DB.Preload("Department").
		Preload("ContractRenewals").
		Where("id = ?", id).
		First(&member).Error; err != nil {
		return nil, fmt.Errorf("member not found: %w", err)
	}
	return &member, nil
}

func (s *MemberService) Update(id string, req *UpdateMemberRequest) (*models.Member, error) {
	member, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.EmployeeCode != nil {
		updates["employee_code"] = *req.EmployeeCode
	}
	if req.Prefix != nil {
		updates["prefix"] = *req.Prefix
	}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.IDNumber != nil {
		updates["id_number"] = *req.IDNumber
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.DepartmentID != nil {
		updates["department_id"] = *req.DepartmentID
	}
	if req.EmploymentType != nil {
		updates["employment_type"] = *req.EmploymentType
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := internal.DB.Model(member).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update member: %w", err)
		}
	}

	return s.GetByID(id)
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	member, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if member.ProfileImagePath != "" {
		if err := s.storageClient.DeleteFile(ctx, member.ProfileImagePath); err != nil {
			fmt.Printf("Warning: failed to delete profile image for member %s: %v\n", id, err)
		}
	}

	if err := internal.DB.Delete(member).Error; err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return nil
}

// UploadProfileImage stores a profile image and records its object name
func (s *MemberService) UploadProfileImage(ctx context.Context, id string, reader io.Reader, filename, contentType string) (*models.Member, error) {
	member, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	objectName := storage.GenerateProfileObjectName(id, filepath.Base(filename))
	result, err := s.storageClient.UploadFile(ctx, reader, objectName, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload profile image: %w", err)
	}

	// Replace the old image after a successful upload
	if member.ProfileImagePath != "" && member.ProfileImagePath != result.ObjectName {
		if err := s.storageClient.DeleteFile(ctx, member.ProfileImagePath); err != nil {
			fmt.Printf("Warning: failed to delete old profile image: %v\n", err)
		}
	}

	if err := internal.DB.Model(member).
		UpdateColumn("profile_image_path", result.ObjectName).Error; err != nil {
		return nil, fmt.Errorf("failed to save profile image path: %w", err)
	}

	member.ProfileImagePath = result.ObjectName
	return member, nil
}
