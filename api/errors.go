package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dlevchenko/airagency/internal/domain"
)

// writeError maps domain rejections to status codes: field errors and
// self-conflicts are 400 with a {field: message} body, duplicate keys are 409,
// missing ids are 404. Anything else is a 500 with no internal detail.
func writeError(c *gin.Context, log zerolog.Logger, err error) {
	var fieldErrs domain.FieldErrors
	var selfConflict *domain.SelfConflictError
	var duplicate *domain.DuplicateKeyError

	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, fieldErrs)
	case errors.As(err, &selfConflict):
		c.JSON(http.StatusBadRequest, gin.H{selfConflict.Field: selfConflict.Message})
	case errors.As(err, &duplicate):
		c.JSON(http.StatusConflict, gin.H{duplicate.Field: duplicate.Message})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
