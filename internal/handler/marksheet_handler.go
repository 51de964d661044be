package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/school-helper-backend/internal/model"
	"github.com/stemsi/school-helper-backend/internal/response"
	"github.com/stemsi/school-helper-backend/internal/service"
	"github.com/stemsi/school-helper-backend/internal/validator"
)

type MarksheetHandler struct {
	marksheetService *service.MarksheetService
	log              zerolog.Logger
}

func NewMarksheetHandler(marksheetService *service.MarksheetService, log zerolog.Logger) *MarksheetHandler {
	return &MarksheetHandler{
		marksheetService: marksheetService,
		log:              log.With().Str("component", "marksheet_handler").Logger(),
	}
}

// Create godoc
// POST /marksheets
// Totals, percentage and grade are always computed server-side.
func (h *MarksheetHandler) Create(c *gin.Context) {
	var req model.CreateMarksheetRequest
	if fields := validator.Bind(c, &req); fields != nil {
		bindFailed(c, fields)
		return
	}

	id, err := h.marksheetService.Create(c.Request.Context(), &req)
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Created(c, id)
}

// List godoc
// GET /marksheets?student_id=&exam_name=
func (h *MarksheetHandler) List(c *gin.Context) {
	f, ok := examFilter(c)
	if !ok {
		return
	}

	sheets, err := h.marksheetService.List(c.Request.Context(), f)
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, sheets)
}

func examFilter(c *gin.Context) (model.ExamFilter, bool) {
	limit, ok := parseLimit(c)
	if !ok {
		return model.ExamFilter{}, false
	}
	return model.ExamFilter{
		StudentID: c.Query("student_id"),
		ExamName:  c.Query("exam_name"),
		Limit:     limit,
	}, true
}
