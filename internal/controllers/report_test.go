package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/setoran/backend/internal/controllers"
	"github.com/setoran/backend/internal/types"
	"github.com/setoran/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createCustoms creates the source "Customs" split 40/60 between North and South.
func createCustoms(t *testing.T) controllers.SourceResponse {
	return createTestSource(t, controllers.SourceEditable{
		Name: "Customs",
		Allocations: []controllers.AllocationEditable{
			allocation(t, "North", 40),
			allocation(t, "South", 60),
		},
	})
}

func getReport(t *testing.T, query string, headers map[string]string, expectedStatus int) controllers.ReportResponse {
	recorder := test.Request(t, http.MethodGet, fmt.Sprintf("%s/deposits/report?%s", baseURL, query), "", headers)
	test.AssertHTTPStatus(t, &recorder, expectedStatus)

	var response controllers.ReportResponse
	test.DecodeResponse(t, &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestReportCustoms() {
	customs := createCustoms(suite.T())
	createTestDeposit(suite.T(), controllers.DepositEditable{Month: 3, Year: 2024, Amount: decimal.NewFromInt(1000), Source: &controllers.Reference{ID: customs.Data.ID}})

	r := getReport(suite.T(), "month=3&year=2024", test.AdminHeader(suite.T()), http.StatusOK)

	require.NotNil(suite.T(), r.Data.Month)
	assert.Equal(suite.T(), 3, *r.Data.Month)
	require.Len(suite.T(), r.Data.Lines, 1)

	line := r.Data.Lines[0]
	assert.Equal(suite.T(), "Customs", line.Source.Name)
	assert.Equal(suite.T(), "North: 40% = 400.00, South: 60% = 600.00", line.Breakdown)
	require.Len(suite.T(), line.Shares, 2)
	assert.True(suite.T(), decimal.NewFromInt(400).Equal(line.Shares[0].Amount))
	assert.True(suite.T(), decimal.NewFromInt(600).Equal(line.Shares[1].Amount))

	require.Len(suite.T(), r.Data.RegionTotals, 2)
	assert.Equal(suite.T(), "North", r.Data.RegionTotals[0].Region.Name)
	assert.True(suite.T(), decimal.NewFromInt(1000).Equal(r.Data.TotalAmount))
}

func (suite *TestSuiteStandard) TestReportRounding() {
	source := createTestSource(suite.T(), controllers.SourceEditable{
		Allocations: []controllers.AllocationEditable{
			allocation(suite.T(), "A", 33.33),
			allocation(suite.T(), "B", 33.33),
			allocation(suite.T(), "C", 33.34),
		},
	})
	createTestDeposit(suite.T(), controllers.DepositEditable{Amount: decimal.NewFromInt(100), Source: &controllers.Reference{ID: source.Data.ID}})
	createTestDeposit(suite.T(), controllers.DepositEditable{Amount: decimal.RequireFromString("0.05"), Source: &controllers.Reference{ID: source.Data.ID}})

	r := getReport(suite.T(), "", test.AdminHeader(suite.T()), http.StatusOK)
	require.Len(suite.T(), r.Data.Lines, 2)

	// 0.05 * 33.33% = 0.0166650 rounds to 0.02
	assert.Equal(suite.T(), "A: 33.33% = 33.33, B: 33.33% = 33.33, C: 33.34% = 33.34", r.Data.Lines[0].Breakdown)
	assert.Equal(suite.T(), "A: 33.33% = 0.02, B: 33.33% = 0.02, C: 33.34% = 0.02", r.Data.Lines[1].Breakdown)

	// The total is the sum of the raw amounts, not of the rounded shares
	assert.True(suite.T(), decimal.RequireFromString("100.05").Equal(r.Data.TotalAmount))
}

func (suite *TestSuiteStandard) TestReportFilters() {
	customs := createCustoms(suite.T())
	ref := &controllers.Reference{ID: customs.Data.ID}
	createTestDeposit(suite.T(), controllers.DepositEditable{Month: 1, Year: 2023, Amount: decimal.NewFromInt(10), Source: ref})
	createTestDeposit(suite.T(), controllers.DepositEditable{Month: 1, Year: 2024, Amount: decimal.NewFromInt(20), Source: ref})
	createTestDeposit(suite.T(), controllers.DepositEditable{Month: 2, Year: 2024, Amount: decimal.NewFromInt(30), Source: ref})

	tests := []struct {
		query string
		lines int
		total int64
	}{
		{"", 3, 60},
		{"year=2024", 2, 50},
		{"month=1", 2, 30},
		{"month=1&year=2024", 1, 20},
		{"month=12&year=2024", 0, 0},
		{"year=1999", 0, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := getReport(t, tt.query, test.AdminHeader(t), http.StatusOK)
			assert.Len(t, r.Data.Lines, tt.lines)
			assert.True(t, decimal.NewFromInt(tt.total).Equal(r.Data.TotalAmount), "total is %s", r.Data.TotalAmount)
		})
	}
}

func (suite *TestSuiteStandard) TestReportInvalidQuery() {
	tests := []struct {
		query string
		err   error
	}{
		{"month=13", types.ErrMonthInvalid},
		{"month=0", types.ErrMonthInvalid},
		{"month=march", types.ErrMonthInvalid},
		{"year=twenty", types.ErrYearInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := getReport(t, tt.query, test.AdminHeader(t), http.StatusBadRequest)
			assert.Equal(t, tt.err.Error(), *r.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestReportScoped() {
	customs := createCustoms(suite.T())
	createTestDeposit(suite.T(), controllers.DepositEditable{Amount: decimal.NewFromInt(1000), Source: &controllers.Reference{ID: customs.Data.ID}})
	createTestDeposit(suite.T(), controllers.DepositEditable{Amount: decimal.NewFromInt(5)})

	r := getReport(suite.T(), "", test.ScopedHeader(suite.T(), customs.Data.ID), http.StatusOK)
	require.Len(suite.T(), r.Data.Lines, 1)
	assert.Equal(suite.T(), customs.Data.ID, r.Data.Lines[0].Source.ID)
	assert.True(suite.T(), decimal.NewFromInt(1000).Equal(r.Data.TotalAmount))

	r = getReport(suite.T(), "", test.AdminHeader(suite.T()), http.StatusOK)
	assert.Len(suite.T(), r.Data.Lines, 2)
	assert.True(suite.T(), decimal.NewFromInt(1005).Equal(r.Data.TotalAmount))
}

func (suite *TestSuiteStandard) TestYears() {
	customs := createCustoms(suite.T())
	ref := &controllers.Reference{ID: customs.Data.ID}
	createTestDeposit(suite.T(), controllers.DepositEditable{Year: 2024, Source: ref})
	createTestDeposit(suite.T(), controllers.DepositEditable{Year: 2021, Source: ref})
	createTestDeposit(suite.T(), controllers.DepositEditable{Year: 2024, Source: ref})
	createTestDeposit(suite.T(), controllers.DepositEditable{Year: 2019})

	tests := []struct {
		name    string
		headers map[string]string
		years   []int
	}{
		{"Unrestricted", test.AdminHeader(suite.T()), []int{2019, 2021, 2024}},
		{"Scoped", test.ScopedHeader(suite.T(), customs.Data.ID), []int{2021, 2024}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, baseURL+"/deposits/years", "", tt.headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response controllers.YearsResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, tt.years, response.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestSummary() {
	customs := createCustoms(suite.T())
	ref := &controllers.Reference{ID: customs.Data.ID}
	createTestDeposit(suite.T(), controllers.DepositEditable{Month: 2, Year: 2024, Amount: decimal.NewFromInt(100), Source: ref})
	createTestDeposit(suite.T(), controllers.DepositEditable{Month: 2, Year: 2024, Amount: decimal.NewFromInt(50), Source: ref})
	createTestDeposit(suite.T(), controllers.DepositEditable{Month: 7, Year: 2024, Amount: decimal.NewFromInt(7), Source: ref})
	createTestDeposit(suite.T(), controllers.DepositEditable{Month: 2, Year: 2023, Amount: decimal.NewFromInt(1000), Source: ref})

	recorder := test.Request(suite.T(), http.MethodGet, baseURL+"/deposits/summary?year=2024", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 12)

	for _, m := range response.Data {
		expected := decimal.Zero
		switch m.Month {
		case 2:
			expected = decimal.NewFromInt(150)
		case 7:
			expected = decimal.NewFromInt(7)
		}
		assert.True(suite.T(), expected.Equal(m.Amount), "month %d is %s", m.Month, m.Amount)
	}

	recorder = test.Request(suite.T(), http.MethodGet, baseURL+"/deposits/summary", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), "the year query parameter must be set", test.DecodeError(suite.T(), recorder.Body.Bytes()))

	recorder = test.Request(suite.T(), http.MethodGet, baseURL+"/deposits/summary?year=soon", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestReportDBClosed() {
	suite.CloseDB()

	for _, path := range []string{"/deposits/report", "/deposits/years", "/deposits/summary?year=2024", "/deposits/export"} {
		suite.T().Run(path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, baseURL+path, "", test.AdminHeader(t))
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
		})
	}
}
