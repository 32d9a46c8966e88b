package handlers

import (
	"net/http"

	"HSP-PORTAL/internal/models"
	"HSP-PORTAL/internal/services"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
	documentService    *services.DocumentService
}

func NewApplicationHandler(applicationService *services.ApplicationService, documentService *services.DocumentService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		documentService:    documentService,
	}
}

// Submit accepts the full multi-tab application form as a JSON bag
// POST /api/v1/applications
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var formData map[string]interface{}
	if err := c.ShouldBindJSON(&formData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.applicationService.Submit(formData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, app)
}

// List returns applications with optional filters
// GET /api/v1/applications?status=&department_id=&search=&limit=&offset=
func (h *ApplicationHandler) List(c *gin.Context) {
	limit, offset := parsePagination(c)
	filter := &services.ApplicationFilter{
		Status:       c.Query("status"),
		DepartmentID: c.Query("department_id"),
		Search:       c.Query("search"),
		Limit:        limit,
		Offset:       offset,
	}

	apps, total, err := h.applicationService.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        total,
	})
}

// Get returns one application with its generated documents
// GET /api/v1/applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.applicationService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app)
}

type updateStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	ReviewedBy string `json:"reviewed_by"`
	Note       string `json:"note"`
}

// UpdateStatus moves an application through the review flow
// PATCH /api/v1/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.applicationService.UpdateStatus(
		c.Param("id"), models.ApplicationStatus(req.Status), req.ReviewedBy, req.Note)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app)
}

// Delete removes an application
// DELETE /api/v1/applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.applicationService.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "application deleted"})
}

type generateDocumentRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}

// GenerateDocument renders an official document for the application
// POST /api/v1/applications/:id/documents
func (h *ApplicationHandler) GenerateDocument(c *gin.Context) {
	var req generateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.documentService.Generate(c.Request.Context(), c.Param("id"), req.TemplateID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// ListDocuments returns the generation history for an application
// GET /api/v1/applications/:id/documents
func (h *ApplicationHandler) ListDocuments(c *gin.Context) {
	docs, err := h.documentService.ListByApplication(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}
