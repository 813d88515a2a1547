package controllers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/setoran/backend/internal/models"
	"github.com/shopspring/decimal"
)

// AllocationEditable is an allocation in a source request. Allocations
// with an ID update the existing allocation of the source, all others are
// created.
type AllocationEditable struct {
	ID         *uuid.UUID      `json:"id,omitempty" example:"e5a3dd8b-9d52-4c0d-9e80-5b1b12b7c3a1"`                        // ID of an existing allocation of the source
	Percentage decimal.Decimal `json:"percentage" example:"40" minimum:"0.00000001" maximum:"100" multipleOf:"0.00000001"` // Share of the source revenue the region receives
	Region     Reference       `json:"region"`                                                                             // The region receiving the share
}

func (editable AllocationEditable) input() models.AllocationInput {
	if editable.ID != nil && *editable.ID != uuid.Nil {
		return models.ExistingAllocation{
			ID:         *editable.ID,
			Percentage: editable.Percentage,
			RegionID:   editable.Region.ID,
		}
	}

	return models.NewAllocation{
		Percentage: editable.Percentage,
		RegionID:   editable.Region.ID,
	}
}

type SourceEditable struct {
	Name        string               `json:"sourceName" example:"Bea Cukai"`                            // Name of the source
	CategoryID  uuid.UUID            `json:"categoryId" example:"a0909e84-e8f9-4cb6-82a5-025dff105ff2"` // ID of the category of the source
	Allocations []AllocationEditable `json:"allocations"`                                               // Regions the revenue is split across. Percentages must sum up to 100
}

// model returns the source and the allocation inputs for the editable fields
func (editable SourceEditable) model() (models.Source, []models.AllocationInput) {
	inputs := make([]models.AllocationInput, 0, len(editable.Allocations))
	for _, a := range editable.Allocations {
		inputs = append(inputs, a.input())
	}

	return models.Source{
		Name:       editable.Name,
		CategoryID: editable.CategoryID,
	}, inputs
}

// Allocation is the API representation of an allocation.
type Allocation struct {
	ID         uuid.UUID       `json:"id" example:"e5a3dd8b-9d52-4c0d-9e80-5b1b12b7c3a1"` // ID of the allocation
	Percentage decimal.Decimal `json:"percentage" example:"40"`                           // Share of the source revenue the region receives
	Region     RegionReference `json:"region"`                                            // The region receiving the share
}

type SourceLinks struct {
	Self     string `json:"self" example:"https://example.com/api/sources/1a9ae8e6-0b0f-4d9f-b5b8-3d3c1bd4c6c4"`             // The source itself
	Deposits string `json:"deposits" example:"https://example.com/api/deposits?source=1a9ae8e6-0b0f-4d9f-b5b8-3d3c1bd4c6c4"` // Deposits of the source
}

// Source is the API representation of a source.
type Source struct {
	models.DefaultModel
	Name        string            `json:"sourceName" example:"Bea Cukai"` // Name of the source
	Category    CategoryReference `json:"category"`                       // Category of the source
	Allocations []Allocation      `json:"allocations"`                    // Allocations in their order
	Complete    bool              `json:"complete" example:"true"`        // Do the allocations sum up to 100? Only complete sources can be used by deposits and roles
	Links       SourceLinks       `json:"links"`
}

// newSource returns the API representation. The category, allocations and
// their regions must be loaded.
func newSource(c *gin.Context, model models.Source) Source {
	allocations := make([]Allocation, 0, len(model.Allocations))
	for _, a := range model.Allocations {
		allocations = append(allocations, Allocation{
			ID:         a.ID,
			Percentage: a.Percentage,
			Region: RegionReference{
				ID:   a.RegionID,
				Name: a.Region.Name,
			},
		})
	}

	return Source{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Category: CategoryReference{
			ID:   model.CategoryID,
			Name: model.Category.Name,
		},
		Allocations: allocations,
		Complete:    model.Complete(),
		Links: SourceLinks{
			Self:     fmt.Sprintf("%s/sources/%s", baseURL(c), model.ID),
			Deposits: fmt.Sprintf("%s/deposits?source=%s", baseURL(c), model.ID),
		},
	}
}

// SourceReference is a source embedded in other resources.
type SourceReference struct {
	ID   uuid.UUID `json:"id" example:"1a9ae8e6-0b0f-4d9f-b5b8-3d3c1bd4c6c4"` // ID of the source
	Name string    `json:"sourceName" example:"Bea Cukai"`                    // Name of the source
}

type SourceListResponse struct {
	Data  []Source `json:"data"`                                                          // List of sources
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SourceResponse struct {
	Data  *Source `json:"data"`                                                          // Data for the source
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SourceQueryFilter struct {
	Name string `form:"name"` // Shell style glob for the source name, e.g. "Pajak*". Matched case-insensitive
}

// matches reports if the name of the source matches the filter.
func (f SourceQueryFilter) matches(source models.Source) bool {
	if f.Name == "" {
		return true
	}

	return glob.Glob(strings.ToLower(f.Name), strings.ToLower(source.Name))
}
