package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"HSP-PORTAL/internal"
	"HSP-PORTAL/internal/models"
	"HSP-PORTAL/internal/processor"
	"HSP-PORTAL/internal/projector"
	"HSP-PORTAL/internal/storage"

	"github.com/google/uuid"
)

const signedURLExpiry = 15 * time.Minute

type DocumentService struct {
	storageClient storage.StorageClient
	applications  *ApplicationService
	templates     *TemplateService
	pdf           *PDFService
	statistics    *StatisticsService
}

func NewDocumentService(
	storageClient storage.StorageClient,
	applications *ApplicationService,
	templates *TemplateService,
	pdf *PDFService,
	statistics *StatisticsService,
) *DocumentService {
	return &DocumentService{
		storageClient: storageClient,
		applications:  applications,
		templates:     templates,
		pdf:           pdf,
		statistics:    statistics,
	}
}

// Generate renders one official document: the application's form bag is
// projected to flat placeholder fields, filled into the template DOCX and the
// result stored as DOCX plus PDF. Projection happens from the stored bag on
// every call, so regenerating after a template fix picks up current data.
func (s *DocumentService) Generate(ctx context.Context, applicationID, templateID string) (*models.GeneratedDocument, error) {
	app, err := s.applications.GetByID(applicationID)
	if err != nil {
		return nil, err
	}

	template, err := s.templates.GetByID(templateID)
	if err != nil {
		return nil, err
	}
	if !template.IsActive {
		return nil, fmt.Errorf("template %s is not active", templateID)
	}

	rec, err := s.applications.FormDataRecord(app)
	if err != nil {
		return nil, err
	}
	fields := projector.Project(rec)

	doc := &models.GeneratedDocument{
		ID:            uuid.New().String(),
		ApplicationID: app.ID,
		TemplateID:    template.ID,
		Status:        models.DocumentPending,
	}
	if err := internal.DB.Create(doc).Error; err != nil {
		return nil, fmt.Errorf("failed to create document record: %w", err)
	}

	if err := s.render(ctx, doc, template, fields); err != nil {
		internal.DB.Model(doc).Updates(map[string]interface{}{
			"status":        models.DocumentFailed,
			"error_message": err.Error(),
		})
		return nil, err
	}

	s.statistics.RecordDocumentGenerate()

	return s.GetByID(doc.ID)
}

// render fills the template and uploads the DOCX and PDF results
func (s *DocumentService) render(ctx context.Context, doc *models.GeneratedDocument, template *models.OfficialTemplate, fields map[string]string) error {
	// Pull the template down to a temp file for the processor
	templateReader, err := s.storageClient.ReadFile(ctx, template.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read template file: %w", err)
	}
	defer templateReader.Close()

	tempDir, err := os.MkdirTemp("", "docgen_")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	inputPath := filepath.Join(tempDir, "template.docx")
	outputPath := filepath.Join(tempDir, "output.docx")

	inputFile, err := os.Create(inputPath)
	if err != nil {
		return fmt.Errorf("failed to create temp template file: %w", err)
	}
	if _, err := io.Copy(inputFile, templateReader); err != nil {
		inputFile.Close()
		return fmt.Errorf("failed to write temp template file: %w", err)
	}
	inputFile.Close()

	// Placeholders in documents are written as {{key}}
	placeholders := make(map[string]string, len(fields))
	for key, value := range fields {
		placeholders["{{"+key+"}}"] = value
	}

	dp := processor.NewDocxProcessor(inputPath, outputPath)
	if err := dp.UnzipDocx(); err != nil {
		return fmt.Errorf("failed to unzip template: %w", err)
	}
	defer dp.Cleanup()

	if err := dp.FindAndReplaceInDocument(placeholders); err != nil {
		return fmt.Errorf("failed to fill placeholders: %w", err)
	}

	if err := dp.ReZipDocx(); err != nil {
		return fmt.Errorf("failed to rebuild docx: %w", err)
	}

	filename := fmt.Sprintf("%s.docx", template.DocumentType)
	if template.DocumentType == "" {
		filename = "document.docx"
	}

	docxFile, err := os.Open(outputPath)
	if err != nil {
		return fmt.Errorf("failed to open rendered docx: %w", err)
	}
	docxObjectName := storage.GenerateDocumentObjectName(doc.ID, filename)
	docxResult, err := s.storageClient.UploadFile(ctx, docxFile, docxObjectName, docxContentType)
	docxFile.Close()
	if err != nil {
		return fmt.Errorf("failed to upload rendered docx: %w", err)
	}

	// PDF conversion via Gotenberg
	docxForPDF, err := os.Open(outputPath)
	if err != nil {
		return fmt.Errorf("failed to reopen rendered docx: %w", err)
	}
	pdfReader, err := s.pdf.ConvertDocxToPDFWithOrientation(ctx, docxForPDF, filename, template.Orientation == "landscape")
	docxForPDF.Close()
	if err != nil {
		return fmt.Errorf("failed to convert document to PDF: %w", err)
	}
	defer pdfReader.Close()

	pdfObjectName := storage.GenerateDocumentPDFObjectName(doc.ID, filename)
	pdfResult, err := s.storageClient.UploadFile(ctx, pdfReader, pdfObjectName, "application/pdf")
	if err != nil {
		return fmt.Errorf("failed to upload rendered PDF: %w", err)
	}

	now := time.Now()
	return internal.DB.Model(doc).Updates(map[string]interface{}{
		"docx_path":     docxResult.ObjectName,
		"pdf_path":      pdfResult.ObjectName,
		"status":        models.DocumentCompleted,
		"error_message": "",
		"generated_at":  &now,
	}).Error
}

// Regenerate re-renders an existing document from the application's current
// form data, replacing the stored files
func (s *DocumentService) Regenerate(ctx context.Context, documentID string) (*models.GeneratedDocument, error) {
	doc, err := s.GetByID(documentID)
	if err != nil {
		return nil, err
	}

	oldDocx, oldPDF := doc.DocxPath, doc.PdfPath

	app, err := s.applications.GetByID(doc.ApplicationID)
	if err != nil {
		return nil, err
	}
	template, err := s.templates.GetByID(doc.TemplateID)
	if err != nil {
		return nil, err
	}

	rec, err := s.applications.FormDataRecord(app)
	if err != nil {
		return nil, err
	}
	fields := projector.Project(rec)

	if err := s.render(ctx, doc, template, fields); err != nil {
		internal.DB.Model(doc).Updates(map[string]interface{}{
			"status":        models.DocumentFailed,
			"error_message": err.Error(),
		})
		return nil, err
	}

	// Old objects are replaced, clean them up
	for _, objectName := range []string{oldDocx, oldPDF} {
		if objectName == "" {
			continue
		}
		if err := s.storageClient.DeleteFile(ctx, objectName); err != nil {
			fmt.Printf("Warning: failed to delete old document object %s: %v\n", objectName, err)
		}
	}

	s.statistics.RecordDocumentGenerate()

	return s.GetByID(doc.ID)
}

func (s *DocumentService) GetByID(id string) (*models.GeneratedDocument, error) {
	var doc models.GeneratedDocument
	if err := internal.DB.Preload("Template").
		Where("id = ?", id).
		First(&doc).Error; err != nil {
		return nil, fmt.Errorf("document not found: %w", err)
	}
	return &doc, nil
}

func (s *DocumentService) ListByApplication(applicationID string) ([]models.GeneratedDocument, error) {
	var docs []models.GeneratedDocument
	if err := internal.DB.Preload("Template").
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}
	return docs, nil
}

// DownloadURL returns a signed URL for the document in the requested format
// ("docx" or "pdf")
func (s *DocumentService) DownloadURL(id, format string) (string, error) {
	doc, err := s.GetByID(id)
	if err != nil {
		return "", err
	}

	if doc.Status != models.DocumentCompleted {
		return "", fmt.Errorf("document %s is not ready (status %s)", id, doc.Status)
	}

	var objectName string
	switch format {
	case "docx":
		objectName = doc.DocxPath
	case "pdf", "":
		objectName = doc.PdfPath
	default:
		return "", fmt.Errorf("unknown download format: %s", format)
	}
	if objectName == "" {
		return "", fmt.Errorf("document %s has no %s file", id, format)
	}

	url, err := s.storageClient.GetSignedURL(objectName, signedURLExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to sign download URL: %w", err)
	}

	s.statistics.RecordDocumentDownload()

	return url, nil
}

func (s *DocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := internal.DB.Delete(doc).Error; err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	for _, objectName := range []string{doc.DocxPath, doc.PdfPath} {
		if objectName == "" {
			continue
		}
		if err := s.storageClient.DeleteFile(ctx, objectName); err != nil {
			fmt.Printf("Warning: failed to delete document object %s: %v\n", objectName, err)
		}
	}

	return nil
}
