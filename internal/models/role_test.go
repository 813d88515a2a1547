package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/setoran/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoleValidation() {
	source := suite.createTestSource(100)

	tests := []struct {
		name  string
		role  models.Role
		err   error
		field string
	}{
		{"Unrestricted without source", models.Role{Name: models.UnrestrictedRole}, nil, ""},
		{"Scoped with source", models.Role{Name: "Customs office", SourceID: &source.ID}, nil, ""},
		{"Blank name", models.Role{Name: "   ", SourceID: &source.ID}, models.ErrValidation, "roleName"},
		{"Unrestricted with source", models.Role{Name: " AM PPN ", SourceID: &source.ID}, models.ErrValidation, "source"},
		{"Scoped without source", models.Role{Name: "Tax office"}, models.ErrValidation, "source"},
		{"Scoped with unknown source", models.Role{Name: "Excise office", SourceID: func() *uuid.UUID { id := uuid.New(); return &id }()}, models.ErrValidation, "source"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.role).Error
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)

			var validationErr models.ValidationError
			if assert.ErrorAs(t, err, &validationErr) {
				assert.Equal(t, tt.field, validationErr.Field)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestRoleNameUnique() {
	suite.Require().Nil(models.DB.Create(&models.Role{Name: models.UnrestrictedRole}).Error)

	err := models.DB.Create(&models.Role{Name: models.UnrestrictedRole}).Error
	suite.Assert().ErrorIs(err, models.ErrRoleNameNotUnique)
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestRoleDelete() {
	role := models.Role{Name: models.UnrestrictedRole}
	suite.Require().Nil(models.DB.Create(&role).Error)

	user := models.User{FullName: "Ani", Username: "ani.sutomo", RoleID: role.ID}
	suite.Require().Nil(user.SetPassword("secret"))
	suite.Require().Nil(models.DB.Create(&user).Error)

	err := models.DB.Delete(&role).Error
	suite.Assert().ErrorIs(err, models.ErrRoleInUse)
	suite.Assert().ErrorIs(err, models.ErrReferentialConflict)

	suite.Require().Nil(models.DB.Delete(&user).Error)
	suite.Assert().Nil(models.DB.Delete(&role).Error)
}
