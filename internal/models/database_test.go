package models_test

import (
	"github.com/budgetpilot/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/this/path/does/not/exist/db.sqlite")
	suite.Assert().NotNil(err)
}

func (suite *TestSuiteStandard) TestResourceNotFound() {
	var expense models.FixedExpense
	err := models.DB.First(&expense).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "fixed expense")
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	err := models.DB.Create(&models.Subscription{Name: "Streaming", AmountMonthly: decimal.NewFromInt(10)}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestTimestampsUTC() {
	expense := suite.createTestFixedExpense(models.FixedExpense{Name: "Rent", AmountMonthly: decimal.NewFromInt(1000), Enabled: true})

	var reread models.FixedExpense
	err := models.DB.First(&reread, expense.ID).Error
	suite.Require().Nil(err)

	suite.Assert().Equal("UTC", reread.CreatedAt.Location().String())
	suite.Assert().Equal("UTC", reread.UpdatedAt.Location().String())
}
