package models

import (
	"gorm.io/gorm"
)

// Category classifies sources.
type Category struct {
	DefaultModel
	Name string `gorm:"uniqueIndex:category_name"`
}

func (Category) Self() string {
	return "Category"
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = cleanName(c.Name)
	if c.Name == "" {
		return ValidationError{Field: "categoryName", Reason: "must not be blank"}
	}

	return nil
}

func (c *Category) BeforeDelete(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&Source{}).Where(&Source{CategoryID: c.ID}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrCategoryInUse
	}

	return nil
}
