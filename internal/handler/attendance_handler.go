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

type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	log               zerolog.Logger
}

func NewAttendanceHandler(attendanceService *service.AttendanceService, log zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		log:               log.With().Str("component", "attendance_handler").Logger(),
	}
}

// Mark godoc
// POST /attendance
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req model.CreateAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		bindFailed(c, fields)
		return
	}

	id, err := h.attendanceService.Mark(c.Request.Context(), &req)
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Created(c, id)
}

// List godoc
// GET /attendance?student_id=&date=&status=
// The status filter is not validated; an unknown value simply matches nothing.
func (h *AttendanceHandler) List(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	records, err := h.attendanceService.List(c.Request.Context(), model.AttendanceFilter{
		StudentID: c.Query("student_id"),
		Date:      c.Query("date"),
		Status:    c.Query("status"),
		Limit:     limit,
	})
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}
