package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/setoran/backend/internal/models"
)

type CategoryEditable struct {
	Name string `json:"categoryName" example:"Pajak Daerah"` // Name of the category
}

// model returns the database resource for the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name: editable.Name,
	}
}

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/categories/a0909e84-e8f9-4cb6-82a5-025dff105ff2"` // The category itself
}

// Category is the API representation of a category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name: model.Name,
		},
		Links: CategoryLinks{
			Self: fmt.Sprintf("%s/categories/%s", baseURL(c), model.ID),
		},
	}
}

// CategoryReference is a category embedded in other resources.
type CategoryReference struct {
	ID   uuid.UUID `json:"id" example:"a0909e84-e8f9-4cb6-82a5-025dff105ff2"` // ID of the category
	Name string    `json:"categoryName" example:"Pajak Daerah"`               // Name of the category
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
