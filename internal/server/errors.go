package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/practice-sem-2/chat-service/internal/models"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type httpError struct {
	status int
	code   string
}

var errorMapper = []struct {
	from error
	to   httpError
}{
	{models.ErrNotFound, httpError{http.StatusNotFound, "NOT_FOUND"}},
	{models.ErrConflict, httpError{http.StatusConflict, "CONFLICT"}},
	{models.ErrForbidden, httpError{http.StatusForbidden, "FORBIDDEN"}},
	{models.ErrInvalidArgument, httpError{http.StatusBadRequest, "INVALID_ARGUMENT"}},
	{models.ErrUnauthorized, httpError{http.StatusUnauthorized, "UNAUTHORIZED"}},
}

func wrapError(err error) httpError {
	for _, mapping := range errorMapper {
		if errors.Is(err, mapping.from) {
			return mapping.to
		}
	}
	return httpError{http.StatusInternalServerError, "INTERNAL"}
}

// abortWithError writes the error envelope. Internal errors are attached to
// the gin context for the access log and hidden from the client.
func abortWithError(c *gin.Context, err error) {
	mapped := wrapError(err)
	message := err.Error()
	if mapped.status == http.StatusInternalServerError {
		_ = c.Error(err)
		message = "internal error"
	}
	c.AbortWithStatusJSON(mapped.status, ErrorResponse{Error: message, Code: mapped.code})
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: "INVALID_ARGUMENT"})
}
