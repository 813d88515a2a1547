package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/setoran/backend/internal/controllers"
	"github.com/setoran/backend/internal/models"
	"github.com/setoran/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestCategory(t *testing.T, c controllers.CategoryEditable, expectedStatus ...int) controllers.CategoryResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	recorder := test.Request(t, http.MethodPost, baseURL+"/categories", c, test.AdminHeader(t))
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var category controllers.CategoryResponse
	test.DecodeResponse(t, &recorder, &category)

	return category
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Pajak Daerah"})

	recorder := test.Request(suite.T(), http.MethodPost, baseURL+"/categories", controllers.CategoryEditable{Name: "Pajak Daerah"}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrCategoryNameNotUnique.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))

	recorder = test.Request(suite.T(), http.MethodPost, baseURL+"/categories", controllers.CategoryEditable{Name: "Retribusi"}, test.ScopedHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestCategoriesGetAndUpdate() {
	c := createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Cukai"})

	recorder := test.Request(suite.T(), http.MethodPut, c.Data.Links.Self, controllers.CategoryEditable{Name: "Bea dan Cukai"}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, c.Data.Links.Self, "", test.ScopedHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Bea dan Cukai", response.Data.Name)

	recorder = test.Request(suite.T(), http.MethodGet, baseURL+"/categories", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list controllers.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	assert.Len(suite.T(), list.Data, 1)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	source := createTestSource(suite.T(), controllers.SourceEditable{})
	unused := createTestCategory(suite.T(), controllers.CategoryEditable{})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("%s/categories/%s", baseURL, source.Data.Category.ID), "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), recorder.Body.Bytes()), models.ErrCategoryInUse.Error())

	recorder = test.Request(suite.T(), http.MethodDelete, unused.Data.Links.Self, "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	suite.CloseDB()
	createTestCategory(suite.T(), controllers.CategoryEditable{}, http.StatusInternalServerError)
}
