package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/grimoire-service/internal/domain/dto"
	"github.com/guttosm/grimoire-service/internal/i18n"
	"github.com/guttosm/grimoire-service/internal/middleware"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	resp.TraceID = ""
	errorResponsePool.Put(resp)
}

// Validator is implemented by request DTOs that can validate themselves.
type Validator interface {
	Validate() error
}

// BuildRequest binds the JSON body of the request into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildRequestAndValidate binds the request and validates it if T implements Validator.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if validator, ok := any(req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// ResponseBuilder writes enveloped JSON responses using pooled DTOs.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Gin serializes synchronously, so the DTO can go back to the pool right after.
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// NoContent sends a 204 with an empty body.
func (b *ResponseBuilder) NoContent() {
	b.c.Status(http.StatusNoContent)
}

// Error sends a translated error response for messageKey.
// Validation errors are reported field by field in Details.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	locale := i18n.GetLocale(b.c)
	b.write(statusCode, i18n.GetTranslator().Translate(messageKey, locale), err)
}

// ErrorWithMessage sends an error response with a custom message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.write(statusCode, message, err)
}

func (b *ResponseBuilder) write(statusCode int, message string, err error) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	var vErr *dto.ValidationError
	if errors.As(err, &vErr) {
		resp.Details = map[string]string{vErr.Field: vErr.Message}
	}

	// Recorded on the context so ErrorHandler can log it.
	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}
