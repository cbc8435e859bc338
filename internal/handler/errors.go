package handler

import (
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/storage"
	"backend/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status and renders the
// standard envelope.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrNotVerified):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrSelfDelete):
		status = http.StatusForbidden
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, service.ErrNoPendingEmail):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrDepartmentInUse):
		status = http.StatusConflict
	case errors.Is(err, storage.ErrPersist):
		status = http.StatusInternalServerError
	}
	c.JSON(status, response.Error(status, err.Error()))
}
