package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Allocation is the share of a source's revenue that a region receives.
type Allocation struct {
	DefaultModel
	SourceID   uuid.UUID       `gorm:"type:uuid;uniqueIndex:allocation_source_region"`
	RegionID   uuid.UUID       `gorm:"type:uuid;uniqueIndex:allocation_source_region"`
	Region     Region          `json:"-"`
	Percentage decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Position   int             // Index in the ordered allocations of the source
}

func (Allocation) Self() string {
	return "Allocation"
}

// AllocationInput is an allocation as submitted for a source save.
// It is either a NewAllocation or an ExistingAllocation.
type AllocationInput interface {
	regionID() uuid.UUID
	percentage() decimal.Decimal
}

// NewAllocation is an allocation that does not exist yet.
type NewAllocation struct {
	Percentage decimal.Decimal
	RegionID   uuid.UUID
}

func (a NewAllocation) regionID() uuid.UUID         { return a.RegionID }
func (a NewAllocation) percentage() decimal.Decimal { return a.Percentage }

// ExistingAllocation updates an allocation already owned by the source.
type ExistingAllocation struct {
	ID         uuid.UUID
	Percentage decimal.Decimal
	RegionID   uuid.UUID
}

func (a ExistingAllocation) regionID() uuid.UUID         { return a.RegionID }
func (a ExistingAllocation) percentage() decimal.Decimal { return a.Percentage }

// resolveAllocations turns the inputs into the complete set of allocations
// for a source whose currently stored allocations are passed in.
func resolveAllocations(stored []Allocation, inputs []AllocationInput) ([]Allocation, error) {
	byID := make(map[uuid.UUID]Allocation, len(stored))
	for _, a := range stored {
		byID[a.ID] = a
	}

	used := make(map[uuid.UUID]bool, len(inputs))
	allocations := make([]Allocation, 0, len(inputs))
	for i, input := range inputs {
		allocation := Allocation{
			RegionID:   input.regionID(),
			Percentage: input.percentage(),
			Position:   i,
		}

		if existing, ok := input.(ExistingAllocation); ok {
			current, found := byID[existing.ID]
			if !found {
				return nil, invalidAllocation(fmt.Sprintf("allocations[%d].id", i), "does not identify an allocation of this source")
			}

			if used[current.ID] {
				return nil, invalidAllocation(fmt.Sprintf("allocations[%d].id", i), "is used more than once")
			}
			used[current.ID] = true

			allocation.ID = current.ID
			allocation.CreatedAt = current.CreatedAt
		}

		allocations = append(allocations, allocation)
	}

	return allocations, nil
}

// percentageSum returns the sum of all percentages.
func percentageSum(allocations []Allocation) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range allocations {
		sum = sum.Add(a.Percentage)
	}
	return sum
}
