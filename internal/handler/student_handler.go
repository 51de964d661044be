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

// StudentHandler handles student registration and lookup.
type StudentHandler struct {
	studentService *service.StudentService
	log            zerolog.Logger
}

func NewStudentHandler(studentService *service.StudentService, log zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		log:            log.With().Str("component", "student_handler").Logger(),
	}
}

// Create godoc
// POST /students
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		bindFailed(c, fields)
		return
	}

	id, err := h.studentService.Create(c.Request.Context(), &req)
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Created(c, id)
}

// List godoc
// GET /students?class_name=&section=
func (h *StudentHandler) List(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	students, err := h.studentService.List(c.Request.Context(), model.StudentFilter{
		ClassName: c.Query("class_name"),
		Section:   c.Query("section"),
		Limit:     limit,
	})
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, students)
}

// GetByID godoc
// GET /students/:id
func (h *StudentHandler) GetByID(c *gin.Context) {
	student, err := h.studentService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, student)
}
