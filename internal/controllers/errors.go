package controllers

import (
	"errors"
	"net/http"

	"github.com/setoran/backend/internal/access"
	"github.com/setoran/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, access.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, access.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrReferentialConflict):
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errYearNotSetInQuery = errors.New("the year query parameter must be set")
	errExportFormat      = errors.New("the export format must be one of xlsx, csv or json")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
