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

type AdmitCardHandler struct {
	admitCardService *service.AdmitCardService
	log              zerolog.Logger
}

func NewAdmitCardHandler(admitCardService *service.AdmitCardService, log zerolog.Logger) *AdmitCardHandler {
	return &AdmitCardHandler{
		admitCardService: admitCardService,
		log:              log.With().Str("component", "admit_card_handler").Logger(),
	}
}

// POST /admit-cards
func (h *AdmitCardHandler) Create(c *gin.Context) {
	var req model.CreateAdmitCardRequest
	if fields := validator.Bind(c, &req); fields != nil {
		bindFailed(c, fields)
		return
	}

	id, err := h.admitCardService.Create(c.Request.Context(), &req)
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Created(c, id)
}

// GET /admit-cards?student_id=&exam_name=
func (h *AdmitCardHandler) List(c *gin.Context) {
	f, ok := examFilter(c)
	if !ok {
		return
	}

	cards, err := h.admitCardService.List(c.Request.Context(), f)
	if err != nil {
		failStore(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, cards)
}
