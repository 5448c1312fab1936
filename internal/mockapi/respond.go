package mockapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/AssoGestion/asso_gestion_app/internal/apperrors"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
)

// errorBody is the uniform error response the client's normalization layer
// expects: {message, errors?}.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// respondError writes the error body and aborts the gin chain, so helpers
// that respond on behalf of a handler leave c.IsAborted() observable.
func respondError(c *gin.Context, status int, message string, fieldErrors map[string][]string) {
	c.AbortWithStatusJSON(status, errorBody{Message: message, Errors: fieldErrors})
}

// respondBindingError maps gin binding failures to a 400 with a per-field
// errors map where possible.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := map[string][]string{}
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], "failed on "+fe.Tag())
		}
		respondError(c, http.StatusBadRequest, "validation failed", fields)
		return
	}
	respondError(c, http.StatusBadRequest, err.Error(), nil)
}

// respondDomainError maps sentinel errors to HTTP statuses.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, apperrors.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, err.Error(), nil)
	default:
		LoggerFrom(c).Error("Unhandled error", "error", err)
		respondError(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// listParams reads page/limit/sort from the query string. Absent page/limit
// default to the first page of ten, matching the client's expectations.
func listParams(c *gin.Context) dto.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return dto.ListParams{Page: page, Limit: limit, Sort: c.Query("sort")}
}
