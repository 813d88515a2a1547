package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrValidation          = errors.New("validation failed")
	ErrInvalidAllocation   = errors.New("the allocations of the source are invalid")
	ErrReferentialConflict = errors.New("the resource is still referenced")
	ErrInvalidReference    = ValidationError{Field: "id", Reason: "a resource ID you specified does not identify an existing resource"}
)

var (
	ErrRegionNameNotUnique   = ValidationError{Field: "regionName", Reason: "a region with this name already exists"}
	ErrCategoryNameNotUnique = ValidationError{Field: "categoryName", Reason: "a category with this name already exists"}
	ErrRoleNameNotUnique     = ValidationError{Field: "roleName", Reason: "a role with this name already exists"}
	ErrUsernameNotUnique     = ValidationError{Field: "username", Reason: "a user with this username already exists"}
	ErrRegionAllocatedTwice  = ValidationError{Field: "allocations", Reason: "a region can only be allocated once per source"}
)

var (
	ErrRegionInUse   = fmt.Errorf("%w: the region is used by allocations of at least one source", ErrReferentialConflict)
	ErrCategoryInUse = fmt.Errorf("%w: the category is used by at least one source", ErrReferentialConflict)
	ErrSourceInUse   = fmt.Errorf("%w: the source is used by deposits or roles", ErrReferentialConflict)
	ErrRoleInUse     = fmt.Errorf("%w: the role is assigned to at least one user", ErrReferentialConflict)
)

// ValidationError is a rejected field value. It matches ErrValidation
// with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// invalidAllocation wraps a validation failure of the allocation checker.
func invalidAllocation(field, reason string) error {
	return fmt.Errorf("%w: %w", ErrInvalidAllocation, ValidationError{Field: field, Reason: reason})
}
