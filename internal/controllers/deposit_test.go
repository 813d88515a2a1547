package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/setoran/backend/internal/controllers"
	"github.com/setoran/backend/internal/models"
	"github.com/setoran/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestDeposit creates a deposit as the unrestricted role. Unset
// fields default to January 2024, an amount of 1000 and a new source.
func createTestDeposit(t *testing.T, d controllers.DepositEditable, expectedStatus ...int) controllers.DepositResponse {
	if d.Source == nil {
		d.Source = &controllers.Reference{ID: createTestSource(t, controllers.SourceEditable{}).Data.ID}
	}

	if d.Month == 0 {
		d.Month = 1
	}

	if d.Year == 0 {
		d.Year = 2024
	}

	if d.Amount.IsZero() {
		d.Amount = decimal.NewFromInt(1000)
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	recorder := test.Request(t, http.MethodPost, baseURL+"/deposits", d, test.AdminHeader(t))
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var deposit controllers.DepositResponse
	test.DecodeResponse(t, &recorder, &deposit)

	return deposit
}

func (suite *TestSuiteStandard) TestDepositsCreate() {
	source := createTestSource(suite.T(), controllers.SourceEditable{
		Name: "Customs",
		Allocations: []controllers.AllocationEditable{
			allocation(suite.T(), "North", 40),
			allocation(suite.T(), "South", 60),
		},
	})

	deposit := createTestDeposit(suite.T(), controllers.DepositEditable{
		Month:  3,
		Year:   2024,
		Amount: decimal.NewFromInt(1000),
		Source: &controllers.Reference{ID: source.Data.ID},
		Note:   "  Transfer  ",
	})

	assert.Equal(suite.T(), "Customs", deposit.Data.Source.Name)
	assert.Equal(suite.T(), "Transfer", deposit.Data.Note)
	assert.Equal(suite.T(), "North: 40% = 400.00, South: 60% = 600.00", deposit.Data.Breakdown)
	assert.Equal(suite.T(), fmt.Sprintf("%s/deposits/%s", baseURL, deposit.Data.ID), deposit.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestDepositsCreateInvalid() {
	source := createTestSource(suite.T(), controllers.SourceEditable{})
	ref := &controllers.Reference{ID: source.Data.ID}

	tests := []struct {
		name    string
		deposit controllers.DepositEditable
		err     string
	}{
		{"Month 13", controllers.DepositEditable{Month: 13, Year: 2024, Amount: decimal.NewFromInt(1), Source: ref}, "month: must be between 1 and 12"},
		{"Year 1999", controllers.DepositEditable{Month: 1, Year: 1999, Amount: decimal.NewFromInt(1), Source: ref}, "year: must be 2000 or later"},
		{"Amount 0", controllers.DepositEditable{Month: 1, Year: 2024, Source: ref}, "amount: must be greater than 0"},
		{"Negative amount", controllers.DepositEditable{Month: 1, Year: 2024, Amount: decimal.NewFromInt(-5), Source: ref}, "amount: must be greater than 0"},
		{"Too many decimal places", controllers.DepositEditable{Month: 1, Year: 2024, Amount: decimal.RequireFromString("0.000000001"), Source: ref}, "amount: must not have more than 8 decimal places"},
		{"No source", controllers.DepositEditable{Month: 1, Year: 2024, Amount: decimal.NewFromInt(1)}, "source: must be set"},
		{"Unknown source", controllers.DepositEditable{Month: 1, Year: 2024, Amount: decimal.NewFromInt(1), Source: &controllers.Reference{ID: uuid.New()}}, "does not identify an existing source"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, baseURL+"/deposits", tt.deposit, test.AdminHeader(t))
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestDepositsCreateScoped() {
	own := createTestSource(suite.T(), controllers.SourceEditable{})
	other := createTestSource(suite.T(), controllers.SourceEditable{})
	header := test.ScopedHeader(suite.T(), own.Data.ID)

	// Deposits without source are created for the source of the role
	recorder := test.Request(suite.T(), http.MethodPost, baseURL+"/deposits", controllers.DepositEditable{
		Month:  2,
		Year:   2024,
		Amount: decimal.NewFromInt(250),
	}, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.DepositResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), own.Data.ID, response.Data.Source.ID)

	recorder = test.Request(suite.T(), http.MethodPost, baseURL+"/deposits", controllers.DepositEditable{
		Month:  2,
		Year:   2024,
		Amount: decimal.NewFromInt(250),
		Source: &controllers.Reference{ID: other.Data.ID},
	}, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestDepositsScoped() {
	own := createTestSource(suite.T(), controllers.SourceEditable{})
	mine := createTestDeposit(suite.T(), controllers.DepositEditable{Source: &controllers.Reference{ID: own.Data.ID}})
	foreign := createTestDeposit(suite.T(), controllers.DepositEditable{})
	header := test.ScopedHeader(suite.T(), own.Data.ID)

	recorder := test.Request(suite.T(), http.MethodGet, baseURL+"/deposits", "", header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list controllers.DepositListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	require.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), mine.Data.ID, list.Data[0].ID)
	assert.Equal(suite.T(), int64(1), list.Pagination.Total)

	tests := []struct {
		name   string
		method string
		body   any
	}{
		{"GET", http.MethodGet, ""},
		{"PUT", http.MethodPut, controllers.DepositEditable{Month: 5, Year: 2024, Amount: decimal.NewFromInt(1)}},
		{"DELETE", http.MethodDelete, ""},
		{"OPTIONS", http.MethodOptions, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, tt.method, foreign.Data.Links.Self, tt.body, header)
			test.AssertHTTPStatus(t, &recorder, http.StatusForbidden)

			recorder = test.Request(t, tt.method, fmt.Sprintf("%s/deposits/%s", baseURL, uuid.New()), tt.body, header)
			test.AssertHTTPStatus(t, &recorder, http.StatusForbidden)
		})
	}

	// The foreign deposit is unchanged
	recorder = test.Request(suite.T(), http.MethodGet, foreign.Data.Links.Self, "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.DepositResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), 1, response.Data.Month)

	recorder = test.Request(suite.T(), http.MethodDelete, mine.Data.Links.Self, "", header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestDepositsUpdate() {
	deposit := createTestDeposit(suite.T(), controllers.DepositEditable{Note: "First"})

	update := controllers.DepositEditable{
		Month:  12,
		Year:   2023,
		Amount: decimal.NewFromFloat(99.99),
		Source: &controllers.Reference{ID: deposit.Data.Source.ID},
		Note:   "Corrected",
	}

	recorder := test.Request(suite.T(), http.MethodPut, deposit.Data.Links.Self, update, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.DepositResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), 12, response.Data.Month)
	assert.Equal(suite.T(), 2023, response.Data.Year)
	assert.True(suite.T(), decimal.NewFromFloat(99.99).Equal(response.Data.Amount))
	assert.Equal(suite.T(), "Corrected", response.Data.Note)

	// The source cannot be changed
	other := createTestSource(suite.T(), controllers.SourceEditable{})
	update.Source = &controllers.Reference{ID: other.Data.ID}
	recorder = test.Request(suite.T(), http.MethodPut, deposit.Data.Links.Self, update, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), recorder.Body.Bytes()), "source: cannot be changed")

	// Invalid values are rejected and nothing is written
	update.Source = nil
	update.Month = 0
	recorder = test.Request(suite.T(), http.MethodPut, deposit.Data.Links.Self, update, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodGet, deposit.Data.Links.Self, "", test.AdminHeader(suite.T()))
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), 12, response.Data.Month)
}

func (suite *TestSuiteStandard) TestDepositsList() {
	a := createTestSource(suite.T(), controllers.SourceEditable{})
	b := createTestSource(suite.T(), controllers.SourceEditable{})

	createTestDeposit(suite.T(), controllers.DepositEditable{Month: 3, Year: 2024, Source: &controllers.Reference{ID: a.Data.ID}})
	createTestDeposit(suite.T(), controllers.DepositEditable{Month: 1, Year: 2024, Source: &controllers.Reference{ID: b.Data.ID}})
	createTestDeposit(suite.T(), controllers.DepositEditable{Month: 3, Year: 2023, Source: &controllers.Reference{ID: a.Data.ID}})

	tests := []struct {
		name   string
		query  string
		months []int
		total  int64
	}{
		{"All in period order", "", []int{3, 1, 3}, 3},
		{"Month", "month=3", []int{3, 3}, 2},
		{"Year", "year=2024", []int{1, 3}, 2},
		{"Source", fmt.Sprintf("source=%s", a.Data.ID), []int{3, 3}, 2},
		{"Limit", "limit=1", []int{3}, 3},
		{"Offset", "offset=2", []int{3}, 3},
		{"Nothing", "year=2000", []int{}, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("%s/deposits?%s", baseURL, tt.query), "", test.AdminHeader(t))
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response controllers.DepositListResponse
			test.DecodeResponse(t, &recorder, &response)

			months := make([]int, 0)
			for _, d := range response.Data {
				months = append(months, d.Month)
			}
			assert.Equal(t, tt.months, months)
			assert.Equal(t, tt.total, response.Pagination.Total)
			assert.Equal(t, len(tt.months), response.Pagination.Count)
		})
	}

	recorder := test.Request(suite.T(), http.MethodGet, baseURL+"/deposits?source=NotAUUID", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDepositsDBClosed() {
	source := createTestSource(suite.T(), controllers.SourceEditable{})
	suite.CloseDB()

	createTestDeposit(suite.T(), controllers.DepositEditable{Source: &controllers.Reference{ID: source.Data.ID}}, http.StatusInternalServerError)

	recorder := test.Request(suite.T(), http.MethodGet, baseURL+"/deposits", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))
}
