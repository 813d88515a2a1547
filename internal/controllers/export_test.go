package controllers_test

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"testing"

	"github.com/setoran/backend/internal/controllers"
	"github.com/setoran/backend/internal/report"
	"github.com/setoran/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// createExportData creates one Customs deposit of 1000 in March 2024 and
// one of 500 in April 2024.
func (suite *TestSuiteStandard) createExportData() {
	customs := createCustoms(suite.T())
	ref := &controllers.Reference{ID: customs.Data.ID}
	createTestDeposit(suite.T(), controllers.DepositEditable{Month: 3, Year: 2024, Amount: decimal.NewFromInt(1000), Source: ref})
	createTestDeposit(suite.T(), controllers.DepositEditable{Month: 4, Year: 2024, Amount: decimal.NewFromInt(500), Source: ref})
}

func (suite *TestSuiteStandard) TestExportCSV() {
	suite.createExportData()

	recorder := test.Request(suite.T(), http.MethodGet, baseURL+"/deposits/export?format=csv&month=3&year=2024", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.Equal(suite.T(), `attachment; filename="deposits_report.csv"`, recorder.Header().Get("Content-Disposition"))
	assert.Contains(suite.T(), recorder.Header().Get("Content-Type"), "text/csv")

	records, err := csv.NewReader(recorder.Body).ReadAll()
	require.Nil(suite.T(), err)
	require.Len(suite.T(), records, 3)

	assert.Equal(suite.T(), report.Header, records[0])
	assert.Equal(suite.T(), []string{"1", "3", "2024", "Customs", "North: 40%, South: 60%", "1000"}, records[1])
	assert.Equal(suite.T(), []string{"", "", "", "", "", "Total Amount: 1000"}, records[2])
}

func (suite *TestSuiteStandard) TestExportJSON() {
	suite.createExportData()

	recorder := test.Request(suite.T(), http.MethodGet, baseURL+"/deposits/export?format=JSON&year=2024", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.Equal(suite.T(), `attachment; filename="deposits_report.json"`, recorder.Header().Get("Content-Disposition"))

	var response controllers.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), report.Header, response.Data.Header)
	require.Len(suite.T(), response.Data.Rows, 3)

	// Numbers are JSON numbers, amounts are decimal strings
	assert.Equal(suite.T(), []any{float64(2), float64(4), float64(2024), "Customs", "North: 40%, South: 60%", "500"}, response.Data.Rows[1])
	assert.Equal(suite.T(), "Total Amount: 1500", response.Data.Rows[2][5])
}

func (suite *TestSuiteStandard) TestExportXLSX() {
	suite.createExportData()

	// XLSX is the default format
	recorder := test.Request(suite.T(), http.MethodGet, baseURL+"/deposits/export", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.Equal(suite.T(), `attachment; filename="deposits_report.xlsx"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(suite.T(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", recorder.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(recorder.Body.Bytes()))
	require.Nil(suite.T(), err)
	defer f.Close()

	rows, err := f.GetRows(report.SheetName)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), rows, 4)

	assert.Equal(suite.T(), report.Header, rows[0])
	assert.Equal(suite.T(), []string{"1", "3", "2024", "Customs", "North: 40%, South: 60%", "1000"}, rows[1])
	assert.Equal(suite.T(), "Total Amount: 1500", rows[3][5])
}

func (suite *TestSuiteStandard) TestExportEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, baseURL+"/deposits/export?format=csv", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	records, err := csv.NewReader(recorder.Body).ReadAll()
	require.Nil(suite.T(), err)
	require.Len(suite.T(), records, 2)
	assert.Equal(suite.T(), "Total Amount: 0", records[1][5])
}

func (suite *TestSuiteStandard) TestExportInvalid() {
	tests := []struct {
		name  string
		query string
	}{
		{"Unknown format", "format=pdf"},
		{"Invalid month", "format=csv&month=13"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, baseURL+"/deposits/export?"+tt.query, "", test.AdminHeader(t))
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Empty(t, recorder.Header().Get("Content-Disposition"))
		})
	}
}
