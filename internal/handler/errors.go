package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/school-helper-backend/internal/database"
	"github.com/stemsi/school-helper-backend/internal/response"
	"github.com/stemsi/school-helper-backend/internal/service"
)

// failStore maps a service or store error onto the HTTP error envelope.
func failStore(c *gin.Context, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		response.Fail(c, http.StatusServiceUnavailable, response.ErrDatabaseNotConfigured)
	case errors.Is(err, service.ErrDuplicateRollNo):
		response.Fail(c, http.StatusConflict, response.ErrRollNoTaken)
	case errors.Is(err, database.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		log.Error().
			Err(err).
			Str("request_id", response.RequestID(c)).
			Str("path", c.FullPath()).
			Msg("Store operation failed")
		response.FailWithDetail(c, http.StatusInternalServerError, response.ErrStore, err.Error())
	}
}

// bindFailed answers 422 with the offending fields.
func bindFailed(c *gin.Context, fields map[string]string) {
	response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrValidation, fields)
}

// parseLimit reads the optional ?limit= query parameter. Zero means unlimited.
func parseLimit(c *gin.Context) (int64, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		bindFailed(c, map[string]string{"limit": "limit must be a positive integer"})
		return 0, false
	}
	return n, true
}
