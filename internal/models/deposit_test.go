package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/setoran/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDepositValidation() {
	source := suite.createTestSource(100)

	tests := []struct {
		name    string
		deposit models.Deposit
		field   string
	}{
		{"Month 0", models.Deposit{Month: 0, Year: 2024, Amount: decimal.NewFromInt(1), SourceID: source.ID}, "month"},
		{"Month 13", models.Deposit{Month: 13, Year: 2024, Amount: decimal.NewFromInt(1), SourceID: source.ID}, "month"},
		{"Year 1999", models.Deposit{Month: 1, Year: 1999, Amount: decimal.NewFromInt(1), SourceID: source.ID}, "year"},
		{"Amount 0", models.Deposit{Month: 1, Year: 2024, Amount: decimal.Zero, SourceID: source.ID}, "amount"},
		{"Negative amount", models.Deposit{Month: 1, Year: 2024, Amount: decimal.NewFromFloat(-0.01), SourceID: source.ID}, "amount"},
		{"Too many decimal places", models.Deposit{Month: 1, Year: 2024, Amount: decimal.RequireFromString("0.000000001"), SourceID: source.ID}, "amount"},
		{"No source", models.Deposit{Month: 1, Year: 2024, Amount: decimal.NewFromInt(1)}, "source"},
		{"Unknown source", models.Deposit{Month: 1, Year: 2024, Amount: decimal.NewFromInt(1), SourceID: uuid.New()}, "source"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.deposit).Error

			var validationErr models.ValidationError
			if assert.ErrorAs(t, err, &validationErr) {
				assert.Equal(t, tt.field, validationErr.Field)
			}
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}

	var count int64
	models.DB.Model(&models.Deposit{}).Count(&count)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestDepositBoundaries() {
	source := suite.createTestSource(100)

	for _, d := range []models.Deposit{
		{Month: 1, Year: 2000, Amount: decimal.RequireFromString("0.01"), SourceID: source.ID},
		{Month: 12, Year: 2999, Amount: decimal.RequireFromString("123456789.12345678"), SourceID: source.ID},
		{Month: 6, Year: 2024, Amount: decimal.RequireFromString("0.00000001"), SourceID: source.ID},
		{Month: 7, Year: 2024, Amount: decimal.RequireFromString("1.500000000000"), SourceID: source.ID},
	} {
		suite.Assert().Nil(models.DB.Create(&d).Error)
	}
}

func (suite *TestSuiteStandard) TestDepositUpdate() {
	deposit := suite.createTestDeposit(models.Deposit{Note: "  March  "})
	suite.Assert().Equal("March", deposit.Note)

	err := models.UpdateDeposit(models.DB, &deposit, models.Deposit{Month: 4, Year: 2025, Amount: decimal.NewFromInt(250)})
	suite.Require().Nil(err)

	var stored models.Deposit
	suite.Require().Nil(models.DB.First(&stored, "id = ?", deposit.ID).Error)
	suite.Assert().Equal(4, stored.Month)
	suite.Assert().Equal(2025, stored.Year)
	suite.Assert().True(decimal.NewFromInt(250).Equal(stored.Amount))
	suite.Assert().Equal(deposit.SourceID, stored.SourceID)
}

func (suite *TestSuiteStandard) TestDepositSourceImmutable() {
	deposit := suite.createTestDeposit(models.Deposit{})
	other := suite.createTestSource(100)
	original := deposit.SourceID

	err := models.UpdateDeposit(models.DB, &deposit, models.Deposit{Month: 2, Year: 2024, Amount: decimal.NewFromInt(1), SourceID: other.ID})
	suite.Assert().ErrorIs(err, models.ErrValidation)

	var stored models.Deposit
	suite.Require().Nil(models.DB.First(&stored, "id = ?", deposit.ID).Error)
	suite.Assert().Equal(original, stored.SourceID)
	suite.Assert().Equal(1, stored.Month, "A rejected update changed the deposit")

	// Passing the same source is fine
	err = models.UpdateDeposit(models.DB, &deposit, models.Deposit{Month: 2, Year: 2024, Amount: decimal.NewFromInt(1), SourceID: original})
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestDepositUpdateInvalid() {
	deposit := suite.createTestDeposit(models.Deposit{})

	err := models.UpdateDeposit(models.DB, &deposit, models.Deposit{Month: 14, Year: 2024, Amount: decimal.NewFromInt(1)})
	suite.Assert().ErrorIs(err, models.ErrValidation)

	var stored models.Deposit
	suite.Require().Nil(models.DB.First(&stored, "id = ?", deposit.ID).Error)
	suite.Assert().Equal(1, stored.Month)
}

func (suite *TestSuiteStandard) TestDepositOrder() {
	source := suite.createTestSource(100)
	suite.createTestDeposit(models.Deposit{Month: 3, Year: 2024, SourceID: source.ID})
	suite.createTestDeposit(models.Deposit{Month: 1, Year: 2024, SourceID: source.ID})
	suite.createTestDeposit(models.Deposit{Month: 12, Year: 2023, SourceID: source.ID})

	var deposits []models.Deposit
	suite.Require().Nil(models.DB.Scopes(models.DepositOrder).Find(&deposits).Error)
	suite.Require().Len(deposits, 3)
	suite.Assert().Equal([]int{2023, 2024, 2024}, []int{deposits[0].Year, deposits[1].Year, deposits[2].Year})
	suite.Assert().Equal([]int{12, 1, 3}, []int{deposits[0].Month, deposits[1].Month, deposits[2].Month})
}

func (suite *TestSuiteStandard) TestDepositNotFound() {
	var deposit models.Deposit
	err := models.DB.First(&deposit, "id = ?", uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no deposit matching your query", err.Error())
}
