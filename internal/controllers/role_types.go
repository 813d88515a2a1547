package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/setoran/backend/internal/models"
)

type RoleEditable struct {
	Name   string     `json:"roleName" example:"Operator Bea Cukai"` // Name of the role. The role "AM PPN" is unrestricted
	Source *Reference `json:"source"`                                // Source the role is bound to. Must be empty for the unrestricted role
}

// model returns the database resource for the editable fields
func (editable RoleEditable) model() models.Role {
	role := models.Role{
		Name: editable.Name,
	}

	if id := editable.Source.id(); id != uuid.Nil {
		role.SourceID = &id
	}

	return role
}

type RoleLinks struct {
	Self string `json:"self" example:"https://example.com/api/roles/0c7d6b0f-5f1a-4b1e-9d3b-2a4b3f7f8e11"` // The role itself
}

// Role is the API representation of a role.
type Role struct {
	models.DefaultModel
	Name         string           `json:"roleName" example:"Operator Bea Cukai"` // Name of the role
	Source       *SourceReference `json:"source"`                                // Source the role is bound to, null for the unrestricted role
	Unrestricted bool             `json:"unrestricted" example:"false"`          // Can the role see and manage everything?
	Links        RoleLinks        `json:"links"`
}

// newRole returns the API representation. The source must be loaded.
func newRole(c *gin.Context, model models.Role) Role {
	role := Role{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Unrestricted: model.Unrestricted(),
		Links: RoleLinks{
			Self: fmt.Sprintf("%s/roles/%s", baseURL(c), model.ID),
		},
	}

	if model.SourceID != nil {
		role.Source = &SourceReference{ID: *model.SourceID}
		if model.Source != nil {
			role.Source.Name = model.Source.Name
		}
	}

	return role
}

// RoleReference is a role embedded in other resources.
type RoleReference struct {
	ID   uuid.UUID `json:"id" example:"0c7d6b0f-5f1a-4b1e-9d3b-2a4b3f7f8e11"` // ID of the role
	Name string    `json:"roleName" example:"Operator Bea Cukai"`             // Name of the role
}

type RoleListResponse struct {
	Data  []Role  `json:"data"`                                                          // List of roles
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RoleResponse struct {
	Data  *Role   `json:"data"`                                                          // Data for the role
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
