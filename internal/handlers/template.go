package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"HSP-PORTAL/internal/services"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	templateService *services.TemplateService
}

func NewTemplateHandler(templateService *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// Upload accepts a DOCX template as multipart form data
// POST /api/v1/templates
func (h *TemplateHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".docx") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .docx templates are supported"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	name := c.PostForm("name")
	if name == "" {
		name = fileHeader.Filename
	}

	template, err := h.templateService.Upload(c.Request.Context(), file, &services.UploadTemplateRequest{
		Name:         name,
		DocumentType: c.PostForm("document_type"),
		Description:  c.PostForm("description"),
		Filename:     fileHeader.Filename,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, template)
}

// List returns templates, optionally by document type
// GET /api/v1/templates?document_type=&active=true
func (h *TemplateHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	templates, err := h.templateService.List(c.Query("document_type"), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// Get returns one template with its placeholder list decoded
// GET /api/v1/templates/:id
func (h *TemplateHandler) Get(c *gin.Context) {
	template, err := h.templateService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	placeholders, err := h.templateService.PlaceholderList(template)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"template":     template,
		"placeholders": placeholders,
	})
}

// Update changes template metadata
// PUT /api/v1/templates/:id
func (h *TemplateHandler) Update(c *gin.Context) {
	var req services.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.Update(c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, template)
}

// Delete removes a template
// DELETE /api/v1/templates/:id
func (h *TemplateHandler) Delete(c *gin.Context) {
	if err := h.templateService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "template deleted"})
}

// Download streams the original template file
// GET /api/v1/templates/:id/download
func (h *TemplateHandler) Download(c *gin.Context) {
	reader, template, err := h.templateService.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.docx"`, template.Name))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	c.DataFromReader(http.StatusOK, template.FileSize, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", reader, nil)
}
