package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/setoran/backend/internal/access"
	"github.com/setoran/backend/internal/models"
	ez_uuid "github.com/setoran/backend/internal/uuid"
	"gorm.io/gorm"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

// Reference identifies a related resource in request bodies.
type Reference struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the referenced resource
}

// id returns the referenced ID or uuid.Nil for a missing reference.
func (r *Reference) id() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.ID
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// requestDB returns the database handle bound to the request context.
func requestDB(c *gin.Context) *gorm.DB {
	return models.DB.WithContext(c.Request.Context())
}

// session returns the session of the caller.
func session(c *gin.Context) (access.Session, error) {
	s, ok := access.FromContext(c)
	if !ok {
		return access.Session{}, access.ErrUnauthenticated
	}
	return s, nil
}

// admin returns the session of the caller if it belongs to the unrestricted role.
func admin(c *gin.Context) (access.Session, error) {
	s, err := session(c)
	if err != nil {
		return s, err
	}

	return s, access.RequireUnrestricted(s)
}

// hide reports missing resources as forbidden to scoped sessions so that
// they cannot probe for resources outside of their source.
func hide(s access.Session, err error) error {
	if !s.Unrestricted() && errors.Is(err, models.ErrResourceNotFound) {
		return access.ErrForbidden
	}
	return err
}

// baseURL returns the base URL of the API.
func baseURL(c *gin.Context) string {
	return c.GetString(string(models.ContextURL))
}
