package handlers

import (
	"net/http"

	"HSP-PORTAL/internal/utils"

	"github.com/gin-gonic/gin"
)

type OptionsHandler struct{}

func NewOptionsHandler() *OptionsHandler {
	return &OptionsHandler{}
}

// GetFormOptions returns the option lists the application form renders
// (name prefixes, provinces, education levels and so on)
// GET /api/v1/form-options
func (h *OptionsHandler) GetFormOptions(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetFormOptions())
}
