package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/setoran/backend/internal/controllers"
	"github.com/setoran/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{baseURL + "/", "OPTIONS, GET, DELETE"},
		{baseURL + "/version", "OPTIONS, GET"},
		{baseURL + "/healthz", "OPTIONS, GET"},
		{baseURL + "/regions", "OPTIONS, GET, POST"},
		{baseURL + "/categories", "OPTIONS, GET, POST"},
		{baseURL + "/sources", "OPTIONS, GET, POST"},
		{baseURL + "/roles", "OPTIONS, GET, POST"},
		{baseURL + "/users", "OPTIONS, GET, POST"},
		{baseURL + "/deposits", "OPTIONS, GET, POST"},
		{baseURL + "/deposits/report", "OPTIONS, GET"},
		{baseURL + "/deposits/years", "OPTIONS, GET"},
		{baseURL + "/deposits/summary", "OPTIONS, GET"},
		{baseURL + "/deposits/export", "OPTIONS, GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "", test.AdminHeader(t))

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsDetail() {
	deposit := createTestDeposit(suite.T(), controllers.DepositEditable{})
	role := createTestRole(suite.T(), controllers.RoleEditable{})
	user := createTestUser(suite.T(), controllers.UserEditable{Role: controllers.Reference{ID: role.Data.ID}})
	region := createTestRegion(suite.T(), controllers.RegionEditable{})
	category := createTestCategory(suite.T(), controllers.CategoryEditable{})

	resources := map[string]string{
		"regions":    region.Data.ID.String(),
		"categories": category.Data.ID.String(),
		"sources":    deposit.Data.Source.ID.String(),
		"roles":      role.Data.ID.String(),
		"users":      user.Data.ID.String(),
		"deposits":   deposit.Data.ID.String(),
	}

	for resource, id := range resources {
		tests := []struct {
			name   string
			id     string
			status int
		}{
			{"Existing", id, http.StatusNoContent},
			{"Unknown", uuid.NewString(), http.StatusNotFound},
			{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		}

		for _, tt := range tests {
			suite.T().Run(fmt.Sprintf("%s/%s", resource, tt.name), func(t *testing.T) {
				recorder := test.Request(t, http.MethodOptions, fmt.Sprintf("%s/%s/%s", baseURL, resource, tt.id), "", test.AdminHeader(t))
				test.AssertHTTPStatus(t, &recorder, tt.status)

				if tt.status == http.StatusNoContent {
					assert.Equal(t, "OPTIONS, GET, PUT, DELETE", recorder.Header().Get("allow"))
				}
			})
		}
	}
}
