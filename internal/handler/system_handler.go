package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/school-helper-backend/internal/response"
	"github.com/stemsi/school-helper-backend/internal/service"
)

// SystemHandler serves the liveness and diagnostic endpoints.
type SystemHandler struct {
	systemService *service.SystemService
}

func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

// Root godoc
// GET /
func (h *SystemHandler) Root(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": "School Helper Backend running"})
}

// Diagnose godoc
// GET /test
// Always 200; store problems are described in the body.
func (h *SystemHandler) Diagnose(c *gin.Context) {
	response.Success(c, http.StatusOK, h.systemService.Diagnose(c.Request.Context()))
}
