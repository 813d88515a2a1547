package models

import (
	"gorm.io/gorm"
)

// Region is a geographic area that receives a share of the revenue of sources.
type Region struct {
	DefaultModel
	Name string `gorm:"uniqueIndex:region_name"`
}

func (Region) Self() string {
	return "Region"
}

func (r *Region) BeforeSave(_ *gorm.DB) error {
	r.Name = cleanName(r.Name)
	if r.Name == "" {
		return ValidationError{Field: "regionName", Reason: "must not be blank"}
	}

	return nil
}

// BeforeDelete rejects the deletion of regions that allocations still reference.
func (r *Region) BeforeDelete(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&Allocation{}).Where(&Allocation{RegionID: r.ID}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrRegionInUse
	}

	return nil
}
