// Package report aggregates deposits into per-region breakdowns and projects
// them into tabular exports.
package report

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/setoran/backend/internal/access"
	"github.com/setoran/backend/internal/models"
	"github.com/setoran/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// NotAvailable replaces the breakdown of sources without allocations.
const NotAvailable = "N/A"

// Filter restricts a report to a period. Nil fields match everything.
type Filter = types.Period

// RegionShare is the part of a deposit a region receives.
type RegionShare struct {
	RegionID   uuid.UUID
	RegionName string
	Percentage decimal.Decimal
	Amount     decimal.Decimal // Rounded to two decimal places
}

// Line is the breakdown of a single deposit.
type Line struct {
	DepositID  uuid.UUID
	Month      int
	Year       int
	SourceID   uuid.UUID
	SourceName string
	Shares     []RegionShare
	Amount     decimal.Decimal
}

// Breakdown formats the shares as "RegionA: 40% = 400.00, RegionB: 60% = 600.00".
func (l Line) Breakdown() string {
	return l.join(func(s RegionShare) string {
		return fmt.Sprintf("%s: %s%% = %s", s.RegionName, s.Percentage, s.Amount.StringFixed(2))
	})
}

// Allocations formats the shares without amounts as "RegionA: 40%, RegionB: 60%".
func (l Line) Allocations() string {
	return l.join(func(s RegionShare) string {
		return fmt.Sprintf("%s: %s%%", s.RegionName, s.Percentage)
	})
}

func (l Line) join(format func(RegionShare) string) string {
	if len(l.Shares) == 0 {
		return NotAvailable
	}

	parts := make([]string, 0, len(l.Shares))
	for _, s := range l.Shares {
		parts = append(parts, format(s))
	}
	return strings.Join(parts, ", ")
}

// Report is the breakdown of all deposits in a period.
type Report struct {
	Filter      Filter
	Lines       []Line
	TotalAmount decimal.Decimal // Sum of the raw deposit amounts
}

// Aggregate builds the report for the deposits visible to the session.
//
// The deposits need their source with its allocations and their regions
// loaded. Lines keep the order of the deposits. The total is the sum of the
// raw amounts, it can differ from the sum of the rounded region amounts.
func Aggregate(s access.Session, deposits []models.Deposit, filter Filter) Report {
	r := Report{
		Filter:      filter,
		Lines:       []Line{},
		TotalAmount: decimal.Zero,
	}

	for _, d := range s.Visible(deposits) {
		if !filter.Contains(d.Month, d.Year) {
			continue
		}

		line := Line{
			DepositID:  d.ID,
			Month:      d.Month,
			Year:       d.Year,
			SourceID:   d.SourceID,
			SourceName: d.Source.Name,
			Shares:     make([]RegionShare, 0, len(d.Source.Allocations)),
			Amount:     d.Amount,
		}

		for _, a := range d.Source.Allocations {
			line.Shares = append(line.Shares, RegionShare{
				RegionID:   a.RegionID,
				RegionName: a.Region.Name,
				Percentage: a.Percentage,
				Amount:     RegionAmount(d.Amount, a.Percentage),
			})
		}

		r.Lines = append(r.Lines, line)
		r.TotalAmount = r.TotalAmount.Add(d.Amount)
	}

	return r
}

// RegionAmount is amount * percentage / 100, rounded half up to two decimal places.
func RegionAmount(amount, percentage decimal.Decimal) decimal.Decimal {
	return amount.Mul(percentage).Div(decimal.NewFromInt(100)).Round(2)
}

// RegionTotal is the sum of the rounded amounts a region receives in a report.
type RegionTotal struct {
	RegionID   uuid.UUID
	RegionName string
	Amount     decimal.Decimal
}

// RegionTotals sums up the region amounts of the report. Regions are
// listed in the order they first appear in.
func RegionTotals(r Report) []RegionTotal {
	totals := []RegionTotal{}
	index := map[uuid.UUID]int{}

	for _, l := range r.Lines {
		for _, s := range l.Shares {
			i, ok := index[s.RegionID]
			if !ok {
				i = len(totals)
				index[s.RegionID] = i
				totals = append(totals, RegionTotal{RegionID: s.RegionID, RegionName: s.RegionName, Amount: decimal.Zero})
			}
			totals[i].Amount = totals[i].Amount.Add(s.Amount)
		}
	}

	return totals
}

// Years returns the distinct years of the deposits visible to the session in ascending order.
func Years(s access.Session, deposits []models.Deposit) []int {
	years := []int{}
	for _, d := range s.Visible(deposits) {
		if !slices.Contains(years, d.Year) {
			years = append(years, d.Year)
		}
	}

	slices.Sort(years)
	return years
}

// MonthTotal is the sum of the deposits of one month.
type MonthTotal struct {
	Month  int
	Amount decimal.Decimal
}

// MonthlyTotals returns the deposit totals for each month of the year.
// Months without deposits have a total of zero.
func MonthlyTotals(s access.Session, deposits []models.Deposit, year int) []MonthTotal {
	totals := make([]MonthTotal, 12)
	for i := range totals {
		totals[i] = MonthTotal{Month: i + 1, Amount: decimal.Zero}
	}

	filter := types.Year(year)
	for _, d := range s.Visible(deposits) {
		if !filter.Contains(d.Month, d.Year) || d.Month < 1 || d.Month > 12 {
			continue
		}
		totals[d.Month-1].Amount = totals[d.Month-1].Amount.Add(d.Amount)
	}

	return totals
}
