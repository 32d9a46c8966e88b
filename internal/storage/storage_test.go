package storage

import (
	"context"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HSP-PORTAL/internal/config"
)

func TestNewStorageClient(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()
	cfg.Storage.LocalURL = "http://localhost:8082/files"
	cfg.Storage.SecretKey = "test-secret"

	client, err := NewStorageClient(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close()

	_, ok := client.(*LocalStorageClient)
	assert.True(t, ok, "local storage type must yield the local client")

	cfg.Storage.Type = "ftp"
	_, err = NewStorageClient(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage type")
}

func TestGenerateObjectNames(t *testing.T) {
	name := GenerateTemplateObjectName("tmpl-1", "contract.docx")
	assert.True(t, strings.HasPrefix(name, "templates/tmpl-1/"))
	assert.True(t, strings.HasSuffix(name, "_contract.docx"))

	docName := GenerateDocumentObjectName("doc-1", "output.docx")
	assert.True(t, strings.HasPrefix(docName, "documents/doc-1/"))

	pdfName := GenerateDocumentPDFObjectName("doc-1", "output.docx")
	assert.True(t, strings.HasPrefix(pdfName, "documents/doc-1/"))
	assert.True(t, strings.HasSuffix(pdfName, "_output.pdf"))

	profileName := GenerateProfileObjectName("member-1", "photo.jpg")
	assert.True(t, strings.HasPrefix(profileName, "profiles/member-1/"))

	attachmentName := GenerateAttachmentObjectName("app-1", "id_card", "scan.pdf")
	assert.True(t, strings.HasPrefix(attachmentName, "attachments/app-1/id_card/"))
}

func TestLocalStorageRoundtrip(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir(), "http://localhost:8082/files", "test-secret")
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	content := "hello from storage"

	result, err := client.UploadFile(ctx, strings.NewReader(content), "documents/abc/1_test.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "documents/abc/1_test.txt", result.ObjectName)
	assert.Equal(t, int64(len(content)), result.Size)

	reader, err := client.ReadFile(ctx, "documents/abc/1_test.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	reader.Close()
	assert.Equal(t, content, string(data))

	require.NoError(t, client.DeleteFile(ctx, "documents/abc/1_test.txt"))

	_, err = client.ReadFile(ctx, "documents/abc/1_test.txt")
	assert.Error(t, err)

	// Deleting an already absent object is not an error
	assert.NoError(t, client.DeleteFile(ctx, "documents/abc/1_test.txt"))
}

func TestLocalStorageSignedURL(t *testing.T) {
	client, err := NewLocalStorageClient(t.TempDir(), "http://localhost:8082/files", "test-secret")
	require.NoError(t, err)

	url, err := client.GetSignedURL("documents/abc/file.pdf", time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "documents/abc/file.pdf?expires=")
	assert.Contains(t, url, "&signature=")

	// Extract expires and signature back out of the URL
	parts := strings.Split(url, "expires=")
	require.Len(t, parts, 2)
	rest := strings.Split(parts[1], "&signature=")
	require.Len(t, rest, 2)

	expiresAt, err := strconv.ParseInt(rest[0], 10, 64)
	require.NoError(t, err)

	assert.True(t, client.VerifySignedURL("documents/abc/file.pdf", expiresAt, rest[1]))
	assert.False(t, client.VerifySignedURL("documents/abc/other.pdf", expiresAt, rest[1]))
	assert.False(t, client.VerifySignedURL("documents/abc/file.pdf", expiresAt, "bad-signature"))

	// Expired timestamps are rejected even with a valid signature shape
	expired := time.Now().Add(-time.Hour).Unix()
	assert.False(t, client.VerifySignedURL("documents/abc/file.pdf", expired, rest[1]))
}
