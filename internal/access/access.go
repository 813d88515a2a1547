// Package access decides which sources and deposits a caller can see and change.
//
// Every caller carries a Session. Sessions of the unrestricted role can do
// everything, all other sessions are bound to exactly one source.
package access

import (
	"errors"

	"github.com/google/uuid"
	"github.com/setoran/backend/internal/models"
	"gorm.io/gorm"
)

// UnrestrictedRole is the name of the role without source scope.
const UnrestrictedRole = models.UnrestrictedRole

var (
	ErrForbidden       = errors.New("you are not allowed to perform this operation")
	ErrUnauthenticated = errors.New("a valid bearer token is required")
	ErrSessionUnbound  = errors.New("sessions of scoped roles must be bound to a source")
)

// Operation is what a caller wants to do with a resource.
type Operation int

const (
	Read Operation = iota
	Create
	Update
	Delete
	// Manage covers all changes to reference data: regions, categories,
	// sources, roles and users.
	Manage
)

func (o Operation) String() string {
	switch o {
	case Read:
		return "read"
	case Create:
		return "create"
	case Update:
		return "update"
	case Delete:
		return "delete"
	case Manage:
		return "manage"
	}
	return "unknown"
}

// Session is the authenticated caller.
type Session struct {
	RoleName string
	SourceID uuid.UUID // Source the role is bound to, uuid.Nil for the unrestricted role
}

// Unrestricted reports if the session belongs to the unrestricted role.
func (s Session) Unrestricted() bool {
	return s.RoleName == UnrestrictedRole
}

// Validate checks that scoped sessions are bound to a source.
func (s Session) Validate() error {
	if s.Unrestricted() {
		return nil
	}

	if s.RoleName == "" || s.SourceID == uuid.Nil {
		return ErrSessionUnbound
	}

	return nil
}

// Scope decides if the session may perform op on data of the source.
// It returns nil or ErrForbidden.
func Scope(s Session, op Operation, sourceID uuid.UUID) error {
	if s.Unrestricted() {
		return nil
	}

	if op == Manage || s.SourceID == uuid.Nil || sourceID != s.SourceID {
		return ErrForbidden
	}

	return nil
}

// RequireUnrestricted returns ErrForbidden for scoped sessions.
func RequireUnrestricted(s Session) error {
	return Scope(s, Manage, uuid.Nil)
}

// AssignSource returns the source a new deposit is created for.
//
// Scoped sessions always create deposits for their own source, requesting a
// different one is forbidden. The unrestricted role needs to name the source.
func AssignSource(s Session, requested uuid.UUID) (uuid.UUID, error) {
	if s.Unrestricted() {
		if requested == uuid.Nil {
			return uuid.Nil, models.ValidationError{Field: "source", Reason: "must be set"}
		}
		return requested, nil
	}

	if requested != uuid.Nil && requested != s.SourceID {
		return uuid.Nil, ErrForbidden
	}

	if err := Scope(s, Create, s.SourceID); err != nil {
		return uuid.Nil, err
	}

	return s.SourceID, nil
}

// Visible returns the deposits of the session's source.
func (s Session) Visible(deposits []models.Deposit) []models.Deposit {
	visible := make([]models.Deposit, 0, len(deposits))
	for _, d := range deposits {
		if Scope(s, Read, d.SourceID) == nil {
			visible = append(visible, d)
		}
	}
	return visible
}

// Deposits is a gorm scope that limits a deposit query to the session.
func (s Session) Deposits(db *gorm.DB) *gorm.DB {
	if s.Unrestricted() {
		return db
	}
	return db.Where("deposits.source_id = ?", s.SourceID)
}

// Sources is a gorm scope that limits a source query to the session.
func (s Session) Sources(db *gorm.DB) *gorm.DB {
	if s.Unrestricted() {
		return db
	}
	return db.Where("sources.id = ?", s.SourceID)
}

// Roles is a gorm scope that limits a role query to the roles bound
// to the source of the session.
func (s Session) Roles(db *gorm.DB) *gorm.DB {
	if s.Unrestricted() {
		return db
	}
	return db.Where("roles.source_id = ?", s.SourceID)
}
