package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/service"
)

// HandleServiceError translates the domain error taxonomy into HTTP
// responses. Every core-component error is recovered here; nothing
// propagates past the controller as a panic or a bare 500 without a
// human-readable message.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err):
		Error(c, http.StatusBadRequest, "validation failed", err.Error())
	case service.IsNotFound(err):
		Error(c, http.StatusNotFound, "not found", err.Error())
	case service.IsFormat(err):
		Error(c, http.StatusUnprocessableEntity, "unusable file", err.Error())
	default:
		// IOError and anything unexpected: transient, retryable
		Error(c, http.StatusInternalServerError, "something went wrong, please try again", err.Error())
	}
}
