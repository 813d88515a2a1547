// Package types implements special types for the backend.
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMonthInvalid = errors.New("the month must be a number between 1 and 12")
	ErrYearInvalid  = errors.New("the year must be a number")
)

// Period is a month and year filter. A nil month or year matches all months or years.
type Period struct {
	Month *int
	Year  *int
}

// Year returns a period covering all months of a year.
func Year(year int) Period {
	return Period{Year: &year}
}

// ParsePeriod parses the month and year query parameters. Empty
// strings leave the corresponding part unrestricted.
func ParsePeriod(month, year string) (Period, error) {
	var p Period

	if month = strings.TrimSpace(month); month != "" {
		m, err := strconv.Atoi(month)
		if err != nil || m < 1 || m > 12 {
			return Period{}, ErrMonthInvalid
		}
		p.Month = &m
	}

	if year = strings.TrimSpace(year); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			return Period{}, ErrYearInvalid
		}
		p.Year = &y
	}

	return p, nil
}

// Contains reports if month and year are in the period.
func (p Period) Contains(month, year int) bool {
	if p.Month != nil && *p.Month != month {
		return false
	}

	if p.Year != nil && *p.Year != year {
		return false
	}

	return true
}

// String returns the period formatted as YYYY-MM, with "*" for unrestricted parts.
func (p Period) String() string {
	year, month := "*", "*"
	if p.Year != nil {
		year = fmt.Sprintf("%04d", *p.Year)
	}

	if p.Month != nil {
		month = fmt.Sprintf("%02d", *p.Month)
	}

	return year + "-" + month
}
