package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"HSP-PORTAL/internal/config"
)

// StorageClient is the interface for file storage operations
// Both GCS and Local storage implementations must implement this interface
type StorageClient interface {
	UploadFile(ctx context.Context, reader io.Reader, objectName, contentType string) (*UploadResult, error)
	DeleteFile(ctx context.Context, objectName string) error
	ReadFile(ctx context.Context, objectName string) (io.ReadCloser, error)
	GetSignedURL(objectName string, expiry time.Duration) (string, error)
	Close() error
}

// UploadResult contains the result of an upload operation
type UploadResult struct {
	ObjectName string `json:"object_name"`
	PublicURL  string `json:"public_url"`
	Size       int64  `json:"size"`
}

// NewStorageClient builds the storage client selected by STORAGE_TYPE
func NewStorageClient(ctx context.Context, cfg *config.Config) (StorageClient, error) {
	switch cfg.Storage.Type {
	case "local":
		return NewLocalStorageClient(cfg.Storage.LocalPath, cfg.Storage.LocalURL, cfg.Storage.SecretKey)
	case "gcs":
		return NewGCSClient(ctx, cfg.GCS.BucketName, cfg.GCS.CredentialsPath)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Storage.Type)
	}
}

// Helper functions for generating object names
func GenerateTemplateObjectName(templateID, filename string) string {
	timestamp := time.Now().Unix()
	return fmt.Sprintf("templates/%s/%d_%s", templateID, timestamp, filename)
}

func GenerateDocumentObjectName(documentID, filename string) string {
	timestamp := time.Now().Unix()
	return fmt.Sprintf("documents/%s/%d_%s", documentID, timestamp, filename)
}

func GenerateDocumentPDFObjectName(documentID, filename string) string {
	timestamp := time.Now().Unix()
	pdfFilename := strings.TrimSuffix(filename, ".docx") + ".pdf"
	return fmt.Sprintf("documents/%s/%d_%s", documentID, timestamp, pdfFilename)
}

func GenerateProfileObjectName(memberID, filename string) string {
	timestamp := time.Now().Unix()
	return fmt.Sprintf("profiles/%s/%d_%s", memberID, timestamp, filename)
}

func GenerateAttachmentObjectName(applicationID, docType, filename string) string {
	timestamp := time.Now().Unix()
	return fmt.Sprintf("attachments/%s/%s/%d_%s", applicationID, docType, timestamp, filename)
}
