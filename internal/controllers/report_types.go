package controllers

import (
	"github.com/google/uuid"
	"github.com/setoran/backend/internal/report"
	"github.com/shopspring/decimal"
)

type ReportQuery struct {
	Month string `form:"month"` // Month to report on, all months when empty
	Year  string `form:"year"`  // Year to report on, all years when empty
}

// RegionShare is the part of a deposit a region receives.
type RegionShare struct {
	Region     RegionReference `json:"region"`                  // The region
	Percentage decimal.Decimal `json:"percentage" example:"40"` // Share of the region
	Amount     decimal.Decimal `json:"amount" example:"400"`    // Amount of the region, rounded half up to two decimal places
}

// ReportLine is the breakdown of one deposit.
type ReportLine struct {
	DepositID uuid.UUID       `json:"depositId" example:"7e2f3b8a-51c4-4b46-a1c5-0f0d1e2c3b4a"`         // ID of the deposit
	Month     int             `json:"month" example:"3"`                                                // Month of the deposit
	Year      int             `json:"year" example:"2024"`                                              // Year of the deposit
	Source    SourceReference `json:"source"`                                                           // Source of the deposit
	Shares    []RegionShare   `json:"shares"`                                                           // Amounts per region
	Breakdown string          `json:"breakdown" example:"Jawa Barat: 40% = 400.00, Bali: 60% = 600.00"` // The shares as text, N/A for sources without allocations
	Amount    decimal.Decimal `json:"amount" example:"1000"`                                            // Amount of the deposit
}

// RegionTotal is the sum of all amounts of a region in the report.
type RegionTotal struct {
	Region RegionReference `json:"region"`                // The region
	Amount decimal.Decimal `json:"amount" example:"1200"` // Sum of the rounded amounts
}

type Report struct {
	Month        *int            `json:"month" example:"3"`          // Month the report is filtered on
	Year         *int            `json:"year" example:"2024"`        // Year the report is filtered on
	Lines        []ReportLine    `json:"lines"`                      // One line per deposit
	RegionTotals []RegionTotal   `json:"regionTotals"`               // Totals per region
	TotalAmount  decimal.Decimal `json:"totalAmount" example:"3000"` // Sum of the deposit amounts
}

func newReport(r report.Report) Report {
	lines := make([]ReportLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		shares := make([]RegionShare, 0, len(l.Shares))
		for _, s := range l.Shares {
			shares = append(shares, RegionShare{
				Region:     RegionReference{ID: s.RegionID, Name: s.RegionName},
				Percentage: s.Percentage,
				Amount:     s.Amount,
			})
		}

		lines = append(lines, ReportLine{
			DepositID: l.DepositID,
			Month:     l.Month,
			Year:      l.Year,
			Source:    SourceReference{ID: l.SourceID, Name: l.SourceName},
			Shares:    shares,
			Breakdown: l.Breakdown(),
			Amount:    l.Amount,
		})
	}

	totals := make([]RegionTotal, 0)
	for _, t := range report.RegionTotals(r) {
		totals = append(totals, RegionTotal{
			Region: RegionReference{ID: t.RegionID, Name: t.RegionName},
			Amount: t.Amount,
		})
	}

	return Report{
		Month:        r.Filter.Month,
		Year:         r.Filter.Year,
		Lines:        lines,
		RegionTotals: totals,
		TotalAmount:  r.TotalAmount,
	}
}

type ReportResponse struct {
	Data  *Report `json:"data"`                                                        // The report
	Error *string `json:"error" example:"the month must be a number between 1 and 12"` // The error, if any occurred
}

type YearsResponse struct {
	Data  []int   `json:"data" example:"2023,2024"`                                            // Years with deposits, ascending
	Error *string `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// MonthTotal is the sum of the deposits of a month.
type MonthTotal struct {
	Month  int             `json:"month" example:"3"`     // The month
	Amount decimal.Decimal `json:"amount" example:"1000"` // Sum of the deposit amounts
}

type SummaryResponse struct {
	Data  []MonthTotal `json:"data"`                                                 // Totals for all twelve months
	Error *string      `json:"error" example:"the year query parameter must be set"` // The error, if any occurred
}

type ExportQuery struct {
	ReportQuery
	Format string `form:"format"` // One of xlsx, csv or json. Defaults to xlsx
}

// ExportData is the JSON representation of an export.
type ExportData struct {
	Header []string `json:"header" example:"No,Month,Year,Source,Allocations,Amount"` // Column names
	Rows   [][]any  `json:"rows"`                                                     // Rows, the last row contains the total amount
}

type ExportResponse struct {
	Data  *ExportData `json:"data"`                                                               // The export
	Error *string     `json:"error" example:"the export format must be one of xlsx, csv or json"` // The error, if any occurred
}
