package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MinimumYear is the earliest year a deposit can be recorded for.
const MinimumYear = 2000

// Deposit is revenue received by a source for one month.
type Deposit struct {
	DefaultModel
	Month    int             `gorm:"index:deposit_period"`
	Year     int             `gorm:"index:deposit_period"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SourceID uuid.UUID       `gorm:"type:uuid;index"`
	Source   Source          `json:"-"`
	Note     string
}

func (Deposit) Self() string {
	return "Deposit"
}

func (d *Deposit) BeforeSave(tx *gorm.DB) error {
	d.Note = strings.TrimSpace(d.Note)

	if d.Month < 1 || d.Month > 12 {
		return ValidationError{Field: "month", Reason: "must be between 1 and 12"}
	}

	if d.Year < MinimumYear {
		return ValidationError{Field: "year", Reason: "must be 2000 or later"}
	}

	if !d.Amount.IsPositive() {
		return ValidationError{Field: "amount", Reason: "must be greater than 0"}
	}

	if !fitsScale(d.Amount) {
		return ValidationError{Field: "amount", Reason: "must not have more than 8 decimal places"}
	}

	if d.SourceID == uuid.Nil {
		return ValidationError{Field: "source", Reason: "must be set"}
	}

	return requireCompleteSource(tx, d.SourceID)
}

// UpdateDeposit replaces the editable fields of the stored deposit with the
// ones of update. The source of a deposit cannot be changed, update.SourceID
// must either be empty or equal to the stored one.
func UpdateDeposit(db *gorm.DB, deposit *Deposit, update Deposit) error {
	if update.SourceID != uuid.Nil && update.SourceID != deposit.SourceID {
		return ValidationError{Field: "source", Reason: "cannot be changed after the deposit has been created"}
	}

	deposit.Month = update.Month
	deposit.Year = update.Year
	deposit.Amount = update.Amount
	deposit.Note = update.Note

	return Transaction(db, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(deposit).Error
	})
}

// DepositOrder orders deposits by their period, then by creation.
func DepositOrder(db *gorm.DB) *gorm.DB {
	return db.Order("deposits.year ASC, deposits.month ASC, deposits.created_at ASC, deposits.id ASC")
}

// WithSource preloads the source of deposits together with its allocations
// and their regions.
func WithSource(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Source").
		Preload("Source.Allocations", func(db *gorm.DB) *gorm.DB {
			return db.Order("allocations.position ASC")
		}).
		Preload("Source.Allocations.Region")
}
