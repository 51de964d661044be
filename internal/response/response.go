package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxDetailLen caps the diagnostic text echoed back for store failures.
const maxDetailLen = 120

// ErrorResponse is the error envelope. Successful responses carry the bare payload.
type ErrorResponse struct {
	Data     interface{} `json:"data"`
	Error    *ErrorBody  `json:"error"`
	Metadata Metadata    `json:"metadata"`
}

// ErrorBody represents a structured error response.
type ErrorBody struct {
	Code    ErrCode           `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Detail  string            `json:"detail,omitempty"`
}

// Metadata includes request tracing and timing.
type Metadata struct {
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// Success sends data as the JSON body with the given status code.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Created sends 201 with the new document id.
func Created(c *gin.Context, id string) {
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Fail sends an error response with an error code and no field-level details.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	send(c, statusCode, &ErrorBody{Code: code, Message: GetMessage(code)})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	send(c, statusCode, &ErrorBody{Code: code, Message: GetMessage(code), Fields: fields})
}

// FailWithDetail sends an error response with a diagnostic message,
// truncated to a fixed length.
func FailWithDetail(c *gin.Context, statusCode int, code ErrCode, detail string) {
	send(c, statusCode, &ErrorBody{Code: code, Message: GetMessage(code), Detail: Truncate(detail, maxDetailLen)})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error:    &ErrorBody{Code: code, Message: GetMessage(code)},
		Metadata: buildMetadata(c),
	})
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func send(c *gin.Context, statusCode int, body *ErrorBody) {
	c.JSON(statusCode, ErrorResponse{
		Error:    body,
		Metadata: buildMetadata(c),
	})
}

func buildMetadata(c *gin.Context) Metadata {
	reqID, _ := c.Get(ContextKeyRequestID)
	id, ok := reqID.(string)
	if !ok || id == "" {
		id = uuid.New().String() // Fallback if middleware not applied
	}
	return Metadata{
		RequestID: id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
