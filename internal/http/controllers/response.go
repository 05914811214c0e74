package controllers

import (
	"net/http"

	"atlas_inventory_server/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error payload shared by all controllers
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// SuccessResponse is the success payload shared by all controllers
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Count   int         `json:"count,omitempty"`
}

// respondError maps a service error onto the HTTP taxonomy: NotFound to
// 404, Conflict to 409 (with a retryable hint for stale versions),
// anything else to 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "NOT_FOUND",
			Message: err.Error(),
			Code:    "NOT_FOUND",
		})
	case errs.IsStaleVersion(err):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "STALE_VERSION",
			Message: "Concurrent update detected, re-read and retry",
			Code:    "STALE_VERSION",
		})
	case errs.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "CONFLICT",
			Message: err.Error(),
			Code:    "CONFLICT",
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "INTERNAL_ERROR",
			Message: err.Error(),
			Code:    "INTERNAL_ERROR",
		})
	}
}

// respondBadRequest reports a malformed request body or parameter
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "BAD_REQUEST",
		Message: message,
		Code:    "BAD_REQUEST",
	})
}

// respondSuccess writes the shared success payload
func respondSuccess(c *gin.Context, statusCode int, message string, data interface{}, count int) {
	response := SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
	if count > 0 {
		response.Count = count
	}
	c.JSON(statusCode, response)
}
