package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-propfi-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-propfi-ledger/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errorResponse{apierrors.NewBadRequestError(message, details...)})
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, errorResponse{apierrors.NewNotFoundError(message, details...)})
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{apierrors.NewValidationError(message)})
}

// respondUnauthorized responds when no authenticated signer is present
func respondUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, errorResponse{apierrors.NewUnauthorizedError(message)})
}

// respondError maps err to its status: ledger rejections become 4xx responses with their
// code, anything else is logged and reported as an internal error. Debug mode exposes the
// underlying error in details.
func (h *handler) respondError(c *gin.Context, err error, message string) {
	status, apiErr := apierrors.FromError(err, message)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
		if h.debug && apiErr.Details == "" {
			apiErr.Details = err.Error()
		}
	} else {
		logger.DebugCtx(c.Request.Context(), "Request rejected",
			zap.String("code", string(apiErr.Code)),
			zap.String("path", c.Request.URL.Path))
	}
	c.JSON(status, errorResponse{apiErr})
}
