package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/setoran/backend/internal/models"
)

type UserEditable struct {
	FullName string    `json:"fullName" example:"Siti Rahmawati"`                  // Full name of the user
	Username string    `json:"username" example:"srahmawati"`                      // Username, exactly 10 characters
	Password string    `json:"password,omitempty" example:"correct horse battery"` // Password. Required on creation, an empty password on update keeps the current one
	Role     Reference `json:"role"`                                               // Role of the user
}

// model returns the database resource for the editable fields.
// The password is not part of it.
func (editable UserEditable) model() models.User {
	return models.User{
		FullName: editable.FullName,
		Username: editable.Username,
		RoleID:   editable.Role.ID,
	}
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/users/5d1c8f3e-7f5e-4a4b-8d1a-9c2b1e4f6a77"` // The user itself
}

// User is the API representation of a user. The password is never returned.
type User struct {
	models.DefaultModel
	FullName string        `json:"fullName" example:"Siti Rahmawati"` // Full name of the user
	Username string        `json:"username" example:"srahmawati"`     // Username
	Role     RoleReference `json:"role"`                              // Role of the user
	Links    UserLinks     `json:"links"`
}

// newUser returns the API representation. The role must be loaded.
func newUser(c *gin.Context, model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		FullName:     model.FullName,
		Username:     model.Username,
		Role: RoleReference{
			ID:   model.RoleID,
			Name: model.Role.Name,
		},
		Links: UserLinks{
			Self: fmt.Sprintf("%s/users/%s", baseURL(c), model.ID),
		},
	}
}

type UserListResponse struct {
	Data  []User  `json:"data"`                                                          // List of users
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the user
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
