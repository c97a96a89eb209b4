package utils

import (
	"github.com/gin-gonic/gin"
)

// APIError is the error block of the response envelope
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Meta carries pagination info for list responses
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Response is the uniform envelope every endpoint returns
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// SendSuccess sends a success envelope
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// SendSuccessWithMeta sends a success envelope with pagination meta
func SendSuccessWithMeta(c *gin.Context, statusCode int, data interface{}, meta *Meta) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// SendError sends an error envelope
func SendError(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   &APIError{Code: code, Message: message},
	})
}

// SendAppError sends an AppError through the envelope
func SendAppError(c *gin.Context, err *AppError) {
	c.JSON(err.Status, Response{
		Success: false,
		Error:   &APIError{Code: err.Code, Message: err.Message, Details: err.Details},
	})
}

// ValidateRequestBody binds the JSON body into obj and sends a validation
// error envelope when it does not bind. Returns false when the request has
// already been answered.
func ValidateRequestBody(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		SendAppError(c, NewValidationError("Invalid request body", err.Error()))
		return false
	}
	return true
}
