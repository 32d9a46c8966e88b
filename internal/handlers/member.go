package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"HSP-PORTAL/internal/services"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *services.MemberService
	exportService *services.ExportService
}

func NewMemberHandler(memberService *services.MemberService, exportService *services.ExportService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		exportService: exportService,
	}
}

func parsePagination(c *gin.Context) (limit, offset int) {
	limit = 50
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}
	if o := c.Query("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}

func memberFilterFromQuery(c *gin.Context) *services.MemberFilter {
	limit, offset := parsePagination(c)
	return &services.MemberFilter{
		DepartmentID:   c.Query("department_id"),
		Status:         c.Query("status"),
		EmploymentType: c.Query("employment_type"),
		Search:         c.Query("search"),
		Limit:          limit,
		Offset:         offset,
	}
}

// Create adds a staff member
// POST /api/v1/members
func (h *MemberHandler) Create(c *gin.Context) {
	var req services.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, member)
}

// List returns members with optional filters
// GET /api/v1/members?department_id=&status=&employment_type=&search=&limit=&offset=
func (h *MemberHandler) List(c *gin.Context) {
	members, total, err := h.memberService.List(memberFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"total":   total,
	})
}

// Get returns one member with department and contract history
// GET /api/v1/members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.memberService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, member)
}

// Update changes member fields
// PUT /api/v1/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	var req services.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.Update(c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, member)
}

// Delete removes a member and their profile image
// DELETE /api/v1/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.memberService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "member deleted"})
}

// UploadProfileImage stores a member profile picture
// POST /api/v1/members/:id/profile-image
func (h *MemberHandler) UploadProfileImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	member, err := h.memberService.UploadProfileImage(
		c.Request.Context(), c.Param("id"), file, fileHeader.Filename, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, member)
}

// Export streams the filtered member list as an Excel workbook
// GET /api/v1/members/export
func (h *MemberHandler) Export(c *gin.Context) {
	f, err := h.exportService.ExportMembers(memberFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("members_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		fmt.Printf("Warning: failed to stream member export: %v\n", err)
	}
}
