package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/setoran/backend/internal/models"
)

type RegionEditable struct {
	Name string `json:"regionName" example:"Jawa Barat"` // Name of the region
}

// model returns the database resource for the editable fields
func (editable RegionEditable) model() models.Region {
	return models.Region{
		Name: editable.Name,
	}
}

type RegionLinks struct {
	Self string `json:"self" example:"https://example.com/api/regions/3b1ea324-d438-4419-882a-2fc91d71772f"` // The region itself
}

// Region is the API representation of a region.
type Region struct {
	models.DefaultModel
	RegionEditable
	Links RegionLinks `json:"links"`
}

func newRegion(c *gin.Context, model models.Region) Region {
	return Region{
		DefaultModel: model.DefaultModel,
		RegionEditable: RegionEditable{
			Name: model.Name,
		},
		Links: RegionLinks{
			Self: fmt.Sprintf("%s/regions/%s", baseURL(c), model.ID),
		},
	}
}

// RegionReference is a region embedded in other resources.
type RegionReference struct {
	ID   uuid.UUID `json:"id" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the region
	Name string    `json:"regionName" example:"Jawa Barat"`                   // Name of the region
}

type RegionListResponse struct {
	Data  []Region `json:"data"`                                                          // List of regions
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RegionResponse struct {
	Data  *Region `json:"data"`                                                          // Data for the region
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
