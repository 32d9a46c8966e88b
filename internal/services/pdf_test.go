package services

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertDocxToPDF_RetryResendsFullDocument(t *testing.T) {
	docx := bytes.Repeat([]byte("docx-content-"), 64)

	var calls int32
	var retryBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, _, err := r.FormFile("files")
		require.NoError(t, err)
		defer file.Close()

		retryBody, err = io.ReadAll(file)
		require.NoError(t, err)

		w.Write([]byte("%PDF-1.7 converted"))
	}))
	defer server.Close()

	svc, err := NewPDFService(server.URL, "10s")
	require.NoError(t, err)

	out, err := svc.ConvertDocxToPDF(context.Background(), bytes.NewReader(docx), "application.docx")
	require.NoError(t, err)
	defer out.Close()

	pdf, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 converted", string(pdf))

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, docx, retryBody, "second attempt must carry the whole document")
}

func TestConvertDocxToPDF_FailsAfterAllAttempts(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc, err := NewPDFService(server.URL, "10s")
	require.NoError(t, err)

	_, err = svc.convertWithRetry(context.Background(), bytes.NewReader([]byte("doc")), "application.docx", false, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
