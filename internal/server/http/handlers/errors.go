package handlers

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/logging"
	"github.com/dmitrijs2005/skillboard/internal/server/http/response"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service error to its HTTP status. Unexpected
// errors are logged and hidden behind a generic message.
func respondServiceError(c *gin.Context, log logging.Logger, err error) {
	switch {
	case errors.Is(err, common.ErrDuplicateAccount):
		response.RespondError(c, http.StatusConflict, "duplicate_account", err)
	case errors.Is(err, common.ErrInvalidCredentials):
		response.RespondError(c, http.StatusUnauthorized, "invalid_credentials", err)
	case errors.Is(err, common.ErrInvalidToken):
		response.RespondError(c, http.StatusUnauthorized, "invalid_token", err)
	case errors.Is(err, common.ErrProfileNotFound):
		response.RespondError(c, http.StatusNotFound, "profile_not_found", err)
	case errors.Is(err, common.ErrStorageNotConfigured):
		response.RespondError(c, http.StatusServiceUnavailable, "storage_not_configured", err)
	default:
		log.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err.Error())
		response.RespondError(c, http.StatusInternalServerError, "internal", common.ErrorInternal)
	}
}
