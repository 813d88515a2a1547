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

// allocation returns an allocation for a new region with the name.
func allocation(t *testing.T, region string, percentage float64) controllers.AllocationEditable {
	r := createTestRegion(t, controllers.RegionEditable{Name: region})

	return controllers.AllocationEditable{
		Percentage: decimal.NewFromFloat(percentage),
		Region:     controllers.Reference{ID: r.Data.ID},
	}
}

// createTestSource creates a source. Without a category, a new one is used.
// Without allocations, the source is split 40/60 across two new regions.
// Pass an empty, non-nil slice for a source without allocations.
func createTestSource(t *testing.T, s controllers.SourceEditable, expectedStatus ...int) controllers.SourceResponse {
	if s.Name == "" {
		s.Name = uuid.NewString()
	}

	if s.CategoryID == uuid.Nil {
		s.CategoryID = createTestCategory(t, controllers.CategoryEditable{}).Data.ID
	}

	if s.Allocations == nil {
		s.Allocations = []controllers.AllocationEditable{
			allocation(t, uuid.NewString(), 40),
			allocation(t, uuid.NewString(), 60),
		}
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	recorder := test.Request(t, http.MethodPost, baseURL+"/sources", s, test.AdminHeader(t))
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var source controllers.SourceResponse
	test.DecodeResponse(t, &recorder, &source)

	return source
}

func (suite *TestSuiteStandard) TestSourcesCreate() {
	source := createTestSource(suite.T(), controllers.SourceEditable{
		Name: "Customs",
		Allocations: []controllers.AllocationEditable{
			allocation(suite.T(), "North", 40),
			allocation(suite.T(), "South", 60),
		},
	})

	assert.Equal(suite.T(), "Customs", source.Data.Name)
	assert.True(suite.T(), source.Data.Complete)
	assert.Equal(suite.T(), fmt.Sprintf("%s/deposits?source=%s", baseURL, source.Data.ID), source.Data.Links.Deposits)

	// Allocations keep the order of the request
	require.Len(suite.T(), source.Data.Allocations, 2)
	assert.Equal(suite.T(), "North", source.Data.Allocations[0].Region.Name)
	assert.True(suite.T(), decimal.NewFromInt(40).Equal(source.Data.Allocations[0].Percentage))
	assert.Equal(suite.T(), "South", source.Data.Allocations[1].Region.Name)
}

func (suite *TestSuiteStandard) TestSourcesCreateInvalid() {
	category := createTestCategory(suite.T(), controllers.CategoryEditable{})
	region := allocation(suite.T(), "Bali", 50)

	tests := []struct {
		name   string
		source controllers.SourceEditable
		err    string
	}{
		{
			"Sum is 99",
			controllers.SourceEditable{Allocations: []controllers.AllocationEditable{
				allocation(suite.T(), "Aceh", 49),
				allocation(suite.T(), "Riau", 50),
			}},
			"percentages must sum up to 100, but sum up to 99",
		},
		{
			"Region twice",
			controllers.SourceEditable{Allocations: []controllers.AllocationEditable{region, region}},
			"allocations[1].region: is already allocated for this source",
		},
		{
			"Unknown region",
			controllers.SourceEditable{Allocations: []controllers.AllocationEditable{
				{Percentage: decimal.NewFromInt(100), Region: controllers.Reference{ID: uuid.New()}},
			}},
			"allocations[0].region: does not identify an existing region",
		},
		{
			"Zero percentage",
			controllers.SourceEditable{Allocations: []controllers.AllocationEditable{
				allocation(suite.T(), "Jambi", 100),
				allocation(suite.T(), "Lampung", 0),
			}},
			"allocations[1].percentage: must be greater than 0 and at most 100",
		},
		{
			"Unknown category",
			controllers.SourceEditable{CategoryID: uuid.New(), Allocations: []controllers.AllocationEditable{}},
			"categoryId: does not identify an existing category",
		},
		{
			"Blank name",
			controllers.SourceEditable{Name: " ", CategoryID: category.Data.ID, Allocations: []controllers.AllocationEditable{}},
			"sourceName: must not be blank",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			if tt.source.Name == "" {
				tt.source.Name = uuid.NewString()
			}

			if tt.source.CategoryID == uuid.Nil {
				tt.source.CategoryID = category.Data.ID
			}

			recorder := test.Request(t, http.MethodPost, baseURL+"/sources", tt.source, test.AdminHeader(t))
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), tt.err)
		})
	}

	// Nothing is written for rejected sources
	recorder := test.Request(suite.T(), http.MethodGet, baseURL+"/sources", "", test.AdminHeader(suite.T()))
	var response controllers.SourceListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestSourcesWithoutAllocations() {
	source := createTestSource(suite.T(), controllers.SourceEditable{Allocations: []controllers.AllocationEditable{}})
	assert.False(suite.T(), source.Data.Complete)
	assert.Len(suite.T(), source.Data.Allocations, 0)

	// Incomplete sources cannot be used for deposits
	recorder := test.Request(suite.T(), http.MethodPost, baseURL+"/deposits", controllers.DepositEditable{
		Month:  1,
		Year:   2024,
		Amount: decimal.NewFromInt(100),
		Source: &controllers.Reference{ID: source.Data.ID},
	}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), recorder.Body.Bytes()), "must sum up to 100 before it can be used")
}

func (suite *TestSuiteStandard) TestSourcesUpdate() {
	source := createTestSource(suite.T(), controllers.SourceEditable{Name: "Customs"})
	first := source.Data.Allocations[0]
	second := source.Data.Allocations[1]
	third := allocation(suite.T(), "Papua", 10)

	// Keep the first allocation with a new percentage, drop the second one
	update := controllers.SourceEditable{
		Name:       "Customs and Excise",
		CategoryID: source.Data.Category.ID,
		Allocations: []controllers.AllocationEditable{
			third,
			{ID: &first.ID, Percentage: decimal.NewFromInt(90), Region: controllers.Reference{ID: first.Region.ID}},
		},
	}

	recorder := test.Request(suite.T(), http.MethodPut, source.Data.Links.Self, update, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.SourceResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Customs and Excise", response.Data.Name)
	require.Len(suite.T(), response.Data.Allocations, 2)
	assert.Equal(suite.T(), "Papua", response.Data.Allocations[0].Region.Name)
	assert.Equal(suite.T(), first.ID, response.Data.Allocations[1].ID)
	assert.True(suite.T(), decimal.NewFromInt(90).Equal(response.Data.Allocations[1].Percentage))

	// The removed allocation cannot be referenced anymore
	update.Allocations[1].ID = &second.ID
	recorder = test.Request(suite.T(), http.MethodPut, source.Data.Links.Self, update, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), recorder.Body.Bytes()), "does not identify an allocation of this source")

	// A failed update leaves the source untouched
	recorder = test.Request(suite.T(), http.MethodGet, source.Data.Links.Self, "", test.AdminHeader(suite.T()))
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Customs and Excise", response.Data.Name)
	assert.Len(suite.T(), response.Data.Allocations, 2)
}

func (suite *TestSuiteStandard) TestSourcesScoped() {
	own := createTestSource(suite.T(), controllers.SourceEditable{Name: "Pajak Kendaraan"})
	other := createTestSource(suite.T(), controllers.SourceEditable{Name: "Pajak Hotel"})
	header := test.ScopedHeader(suite.T(), own.Data.ID)

	recorder := test.Request(suite.T(), http.MethodGet, baseURL+"/sources", "", header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list controllers.SourceListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	require.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), own.Data.ID, list.Data[0].ID)

	recorder = test.Request(suite.T(), http.MethodGet, other.Data.Links.Self, "", header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	// Unknown sources look the same as foreign ones
	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s/sources/%s", baseURL, uuid.New()), "", header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)

	recorder = test.Request(suite.T(), http.MethodPut, own.Data.Links.Self, controllers.SourceEditable{Name: "Mine"}, header)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestSourcesFilterByName() {
	createTestSource(suite.T(), controllers.SourceEditable{Name: "Pajak Hotel"})
	createTestSource(suite.T(), controllers.SourceEditable{Name: "Pajak Restoran"})
	createTestSource(suite.T(), controllers.SourceEditable{Name: "Retribusi Parkir"})

	tests := []struct {
		query string
		len   int
	}{
		{"", 3},
		{"pajak*", 2},
		{"*parkir", 1},
		{"*a*", 3},
		{"Hotel", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("%s/sources?name=%s", baseURL, tt.query), "", test.AdminHeader(t))
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response controllers.SourceListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestSourcesDelete() {
	used := createTestSource(suite.T(), controllers.SourceEditable{})
	createTestDeposit(suite.T(), controllers.DepositEditable{Source: &controllers.Reference{ID: used.Data.ID}})
	unused := createTestSource(suite.T(), controllers.SourceEditable{})

	recorder := test.Request(suite.T(), http.MethodDelete, used.Data.Links.Self, "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
	assert.Equal(suite.T(), models.ErrSourceInUse.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))

	recorder = test.Request(suite.T(), http.MethodDelete, unused.Data.Links.Self, "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The regions of the deleted allocations can be deleted now
	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("%s/regions/%s", baseURL, unused.Data.Allocations[0].Region.ID), "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}
