package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"HSP-PORTAL/internal"
	"HSP-PORTAL/internal/models"
	"HSP-PORTAL/internal/processor"
	"HSP-PORTAL/internal/storage"

	"github.com/google/uuid"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type TemplateService struct {
	storageClient storage.StorageClient
}

func NewTemplateService(storageClient storage.StorageClient) *TemplateService {
	return &TemplateService{storageClient: storageClient}
}

type UploadTemplateRequest struct {
	Name         string
	DocumentType string
	Description  string
	Filename     string
}

// Upload stores a DOCX template, extracting its placeholder list and page
// orientation on the way in
func (s *TemplateService) Upload(ctx context.Context, reader io.Reader, req *UploadTemplateRequest) (*models.OfficialTemplate, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read template upload: %w", err)
	}

	tempFile, err := os.CreateTemp("", "template_*.docx")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	tempFile.Close()

	dp := processor.NewDocxProcessor(tempFile.Name(), "")
	if err := dp.UnzipDocx(); err != nil {
		return nil, fmt.Errorf("uploaded file is not a valid DOCX: %w", err)
	}
	defer dp.Cleanup()

	placeholders, err := dp.ExtractPlaceholders()
	if err != nil {
		return nil, fmt.Errorf("failed to extract placeholders: %w", err)
	}

	landscape, err := dp.DetectOrientation()
	if err != nil {
		fmt.Printf("Warning: failed to detect orientation for %s: %v\n", req.Filename, err)
	}
	orientation := "portrait"
	if landscape {
		orientation = "landscape"
	}

	placeholdersJSON, err := json.Marshal(placeholders)
	if err != nil {
		return nil, fmt.Errorf("failed to encode placeholders: %w", err)
	}

	templateID := uuid.New().String()
	objectName := storage.GenerateTemplateObjectName(templateID, filepath.Base(req.Filename))

	result, err := s.storageClient.UploadFile(ctx, bytes.NewReader(data), objectName, docxContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload template file: %w", err)
	}

	template := &models.OfficialTemplate{
		ID:           templateID,
		Name:         req.Name,
		DocumentType: req.DocumentType,
		Description:  req.Description,
		FilePath:     result.ObjectName,
		FileSize:     result.Size,
		Placeholders: string(placeholdersJSON),
		Orientation:  orientation,
		IsActive:     true,
	}

	if err := internal.DB.Create(template).Error; err != nil {
		// Roll back the stored object so storage does not leak
		if delErr := s.storageClient.DeleteFile(ctx, result.ObjectName); delErr != nil {
			fmt.Printf("Warning: failed to clean up template object %s: %v\n", result.ObjectName, delErr)
		}
		return nil, fmt.Errorf("failed to create template record: %w", err)
	}

	return template, nil
}

func (s *TemplateService) List(documentType string, activeOnly bool) ([]models.OfficialTemplate, error) {
	var templates []models.OfficialTemplate

	query := internal.DB.Order("created_at DESC")
	if documentType != "" {
		query = query.Where("document_type = ?", documentType)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch templates: %w", err)
	}

	return templates, nil
}

func (s *TemplateService) GetByID(id string) (*models.OfficialTemplate, error) {
	var template models.OfficialTemplate
	if err := internal.DB.Where("id = ?", id).First(&template).Error; err != nil {
		return nil, fmt.Errorf("template not found: %w", err)
	}
	return &template, nil
}

// PlaceholderList decodes the stored placeholder JSON
func (s *TemplateService) PlaceholderList(template *models.OfficialTemplate) ([]string, error) {
	if template.Placeholders == "" {
		return nil, nil
	}
	var placeholders []string
	if err := json.Unmarshal([]byte(template.Placeholders), &placeholders); err != nil {
		return nil, fmt.Errorf("failed to decode placeholders for template %s: %w", template.ID, err)
	}
	return placeholders, nil
}

type UpdateTemplateRequest struct {
	Name         *string `json:"name"`
	DocumentType *string `json:"document_type"`
	Description  *string `json:"description"`
	IsActive     *bool   `json:"is_active"`
}

func (s *TemplateService) Update(id string, req *UpdateTemplateRequest) (*models.OfficialTemplate, error) {
	template, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.DocumentType != nil {
		updates["document_type"] = *req.DocumentType
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := internal.DB.Model(template).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update template: %w", err)
		}
	}

	return s.GetByID(id)
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	template, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := internal.DB.Delete(template).Error; err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	// Soft delete keeps the row, the file can go
	if err := s.storageClient.DeleteFile(ctx, template.FilePath); err != nil {
		fmt.Printf("Warning: failed to delete template file %s: %v\n", template.FilePath, err)
	}

	return nil
}

// Download opens the stored template file for streaming
func (s *TemplateService) Download(ctx context.Context, id string) (io.ReadCloser, *models.OfficialTemplate, error) {
	template, err := s.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := s.storageClient.ReadFile(ctx, template.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read template file: %w", err)
	}

	return reader, template, nil
}
