package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/setoran/backend/internal/access"
	"github.com/setoran/backend/internal/models"
	"github.com/setoran/backend/internal/report"
	ez_uuid "github.com/setoran/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type DepositEditable struct {
	Month  int             `json:"month" example:"3" minimum:"1" maximum:"12"`                                                         // Month of the deposit
	Year   int             `json:"year" example:"2024" minimum:"2000"`                                                                 // Year of the deposit
	Amount decimal.Decimal `json:"amount" example:"1000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount received
	Source *Reference      `json:"source"`                                                                                             // Source of the deposit. Scoped callers can omit it. Cannot be changed after creation
	Note   string          `json:"note" example:"Transfer from the customs office" default:""`                                         // A note for the deposit
}

// model returns the database resource for the editable fields
func (editable DepositEditable) model() models.Deposit {
	return models.Deposit{
		Month:    editable.Month,
		Year:     editable.Year,
		Amount:   editable.Amount,
		SourceID: editable.Source.id(),
		Note:     editable.Note,
	}
}

type DepositLinks struct {
	Self string `json:"self" example:"https://example.com/api/deposits/7e2f3b8a-51c4-4b46-a1c5-0f0d1e2c3b4a"` // The deposit itself
}

// Deposit is the API representation of a deposit.
type Deposit struct {
	models.DefaultModel
	Month     int             `json:"month" example:"3"`                                                // Month of the deposit
	Year      int             `json:"year" example:"2024"`                                              // Year of the deposit
	Amount    decimal.Decimal `json:"amount" example:"1000"`                                            // Amount received
	Source    SourceReference `json:"source"`                                                           // Source of the deposit
	Note      string          `json:"note" example:"Transfer from the customs office"`                  // A note for the deposit
	Breakdown string          `json:"breakdown" example:"Jawa Barat: 40% = 400.00, Bali: 60% = 600.00"` // Amounts the regions receive
	Links     DepositLinks    `json:"links"`
}

// newDeposit returns the API representation. The source with its allocations
// and their regions must be loaded.
func newDeposit(c *gin.Context, s access.Session, model models.Deposit) Deposit {
	breakdown := report.NotAvailable
	if r := report.Aggregate(s, []models.Deposit{model}, report.Filter{}); len(r.Lines) == 1 {
		breakdown = r.Lines[0].Breakdown()
	}

	return Deposit{
		DefaultModel: model.DefaultModel,
		Month:        model.Month,
		Year:         model.Year,
		Amount:       model.Amount,
		Source: SourceReference{
			ID:   model.SourceID,
			Name: model.Source.Name,
		},
		Note:      model.Note,
		Breakdown: breakdown,
		Links: DepositLinks{
			Self: fmt.Sprintf("%s/deposits/%s", baseURL(c), model.ID),
		},
	}
}

type DepositListResponse struct {
	Data       []Deposit   `json:"data"`                                                          // List of deposits
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DepositResponse struct {
	Data  *Deposit `json:"data"`                                                          // Data for the deposit
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DepositQueryFilter struct {
	Month    int          `form:"month"`                      // By month
	Year     int          `form:"year"`                       // By year
	SourceID ez_uuid.UUID `form:"source"`                     // By source ID
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first Deposit returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of Deposits to return. Defaults to 50.
}

func (f DepositQueryFilter) model() models.Deposit {
	return models.Deposit{
		Month:    f.Month,
		Year:     f.Year,
		SourceID: f.SourceID.UUID,
	}
}
