package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// percentageTolerance is the accepted deviation of the allocation sum from 100.
var percentageTolerance = decimal.New(1, -6)

var hundred = decimal.NewFromInt(100)

// Source is a revenue source whose deposits are split across regions.
type Source struct {
	DefaultModel
	Name        string
	CategoryID  uuid.UUID    `gorm:"type:uuid"`
	Category    Category     `json:"-"`
	Allocations []Allocation `gorm:"constraint:OnDelete:CASCADE"`
}

func (Source) Self() string {
	return "Source"
}

func (s *Source) BeforeSave(_ *gorm.DB) error {
	s.Name = cleanName(s.Name)
	return nil
}

// BeforeDelete rejects the deletion of sources that deposits or roles reference.
func (s *Source) BeforeDelete(tx *gorm.DB) error {
	referenced, err := s.referenced(tx)
	if err != nil {
		return err
	}

	if referenced {
		return ErrSourceInUse
	}

	return nil
}

func (s Source) referenced(tx *gorm.DB) (bool, error) {
	var deposits, roles int64
	err := tx.Model(&Deposit{}).Where(&Deposit{SourceID: s.ID}).Count(&deposits).Error
	if err != nil {
		return false, err
	}

	err = tx.Model(&Role{}).Where("source_id = ?", s.ID).Count(&roles).Error
	if err != nil {
		return false, err
	}

	return deposits+roles > 0, nil
}

// Complete reports if the source has allocations and they sum up to 100.
func (s Source) Complete() bool {
	return len(s.Allocations) > 0 && sumsToHundred(s.Allocations)
}

func sumsToHundred(allocations []Allocation) bool {
	return percentageSum(allocations).Sub(hundred).Abs().LessThanOrEqual(percentageTolerance)
}

// Validate checks the source and its allocations. The first failing rule is reported.
func (s Source) Validate(tx *gorm.DB) error {
	if cleanName(s.Name) == "" {
		return invalidAllocation("sourceName", "must not be blank")
	}

	var categories int64
	err := tx.Model(&Category{}).Where("id = ?", s.CategoryID).Count(&categories).Error
	if err != nil {
		return err
	}
	if categories == 0 {
		return invalidAllocation("categoryId", "does not identify an existing category")
	}

	regionIDs := make([]uuid.UUID, 0, len(s.Allocations))
	for _, a := range s.Allocations {
		regionIDs = append(regionIDs, a.RegionID)
	}

	var existing []uuid.UUID
	if len(regionIDs) > 0 {
		err = tx.Model(&Region{}).Where("id IN ?", regionIDs).Pluck("id", &existing).Error
		if err != nil {
			return err
		}
	}

	seen := make(map[uuid.UUID]bool, len(s.Allocations))
	for i, a := range s.Allocations {
		if !slices.Contains(existing, a.RegionID) {
			return invalidAllocation(fmt.Sprintf("allocations[%d].region", i), "does not identify an existing region")
		}

		if seen[a.RegionID] {
			return invalidAllocation(fmt.Sprintf("allocations[%d].region", i), "is already allocated for this source")
		}
		seen[a.RegionID] = true
	}

	for i, a := range s.Allocations {
		if !a.Percentage.IsPositive() || a.Percentage.GreaterThan(hundred) {
			return invalidAllocation(fmt.Sprintf("allocations[%d].percentage", i), "must be greater than 0 and at most 100")
		}

		if !fitsScale(a.Percentage) {
			return invalidAllocation(fmt.Sprintf("allocations[%d].percentage", i), "must not have more than 8 decimal places")
		}
	}

	if len(s.Allocations) > 0 && !sumsToHundred(s.Allocations) {
		return invalidAllocation("allocations", fmt.Sprintf("percentages must sum up to 100, but sum up to %s", percentageSum(s.Allocations)))
	}

	// Sources without allocations can only exist until something references them
	if len(s.Allocations) == 0 && s.ID != uuid.Nil {
		referenced, err := s.referenced(tx)
		if err != nil {
			return err
		}

		if referenced {
			return invalidAllocation("allocations", "must not be empty while deposits or roles reference the source")
		}
	}

	return nil
}

// SaveSource validates the source together with its allocations and writes
// both in a single transaction. Stored allocations of the source that are not
// part of inputs are removed. Nothing is written if validation fails.
func SaveSource(db *gorm.DB, source *Source, inputs []AllocationInput) error {
	return Transaction(db, func(tx *gorm.DB) error {
		var stored []Allocation
		if source.ID != uuid.Nil {
			err := tx.Where(&Allocation{SourceID: source.ID}).Find(&stored).Error
			if err != nil {
				return err
			}
		}

		allocations, err := resolveAllocations(stored, inputs)
		if err != nil {
			return err
		}
		source.Allocations = allocations

		err = source.Validate(tx)
		if err != nil {
			return err
		}

		if source.ID == uuid.Nil {
			err = tx.Omit(clause.Associations).Create(source).Error
		} else {
			err = tx.Omit(clause.Associations).Save(source).Error
		}
		if err != nil {
			return err
		}

		// Allocations are re-created so that regions can move between
		// allocations without violating the unique index
		err = tx.Where(&Allocation{SourceID: source.ID}).Delete(&Allocation{}).Error
		if err != nil {
			return err
		}

		if len(source.Allocations) == 0 {
			return nil
		}

		for i := range source.Allocations {
			source.Allocations[i].SourceID = source.ID
		}

		return tx.Omit(clause.Associations).Create(&source.Allocations).Error
	})
}

// WithAllocations preloads the allocations of sources in their order
// together with their regions.
func WithAllocations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Allocations", func(db *gorm.DB) *gorm.DB {
			return db.Order("allocations.position ASC")
		}).
		Preload("Allocations.Region")
}

// requireCompleteSource verifies that the source exists and can be referenced.
func requireCompleteSource(tx *gorm.DB, id uuid.UUID) error {
	var sources []Source
	err := tx.Scopes(WithAllocations).Where("id = ?", id).Limit(1).Find(&sources).Error
	if err != nil {
		return err
	}

	if len(sources) == 0 {
		return ValidationError{Field: "source", Reason: "does not identify an existing source"}
	}

	if !sources[0].Complete() {
		return ValidationError{Field: "source", Reason: "the allocations of the source must sum up to 100 before it can be used"}
	}

	return nil
}
