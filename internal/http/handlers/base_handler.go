// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DHARAV-9/EzySafar/internal/modules/account"
	"github.com/DHARAV-9/EzySafar/internal/modules/geo"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Message: msg})
}

func writeAccountError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, account.ErrBadRequest):
		writeError(c, http.StatusBadRequest, "User ID is required")
	case errors.Is(err, account.ErrValidation):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, account.ErrUserExists):
		writeError(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, account.ErrNotFound):
		writeError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, account.ErrBadCredentials):
		writeError(c, http.StatusUnauthorized, "Authentication failed")
	default:
		writeError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func writeGeoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, geo.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, geo.ErrUpstream):
		writeError(c, http.StatusBadGateway, "Failed to reach location service. Please try again.")
	default:
		writeError(c, http.StatusInternalServerError, "Internal server error")
	}
}
