package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service errors onto HTTP responses. Validation and
// AI errors carry their message through; storage errors are hidden.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidRating), errors.Is(err, ErrIndexOutOfRange):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNoCurrentItinerary), errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrSupersededRequest):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidDocument):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrUnexpectedBehaviorOfAI):
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrTooManyRequests):
		RespondError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, ErrDatabaseError):
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
