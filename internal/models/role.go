package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnrestrictedRole is the name of the role that can see and manage everything.
const UnrestrictedRole = "AM PPN"

// Role is a set of permissions. Every role except UnrestrictedRole is bound to one source.
type Role struct {
	DefaultModel
	Name     string     `gorm:"uniqueIndex:role_name"`
	SourceID *uuid.UUID `gorm:"type:uuid"`
	Source   *Source    `json:"-"`
}

func (Role) Self() string {
	return "Role"
}

// Unrestricted reports if the role has unrestricted visibility.
func (r Role) Unrestricted() bool {
	return r.Name == UnrestrictedRole
}

func (r *Role) BeforeSave(tx *gorm.DB) error {
	r.Name = cleanName(r.Name)
	if r.Name == "" {
		return ValidationError{Field: "roleName", Reason: "must not be blank"}
	}

	if r.SourceID != nil && *r.SourceID == uuid.Nil {
		r.SourceID = nil
	}

	if r.Unrestricted() {
		if r.SourceID != nil {
			return ValidationError{Field: "source", Reason: "must not be set for the unrestricted role"}
		}
		return nil
	}

	if r.SourceID == nil {
		return ValidationError{Field: "source", Reason: "must be set for roles scoped to a source"}
	}

	return requireCompleteSource(tx, *r.SourceID)
}

func (r *Role) BeforeDelete(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&User{}).Where(&User{RoleID: r.ID}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrRoleInUse
	}

	return nil
}
