package models_test

import (
	"path/filepath"

	"github.com/expense-tracker/backend/internal/models"
)

func (suite *TestSuiteStandard) TestConnectCreatesDirectory() {
	path := filepath.Join(suite.T().TempDir(), "nested", "dir", "expenses.db")

	err := models.Connect(path)
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestNotFoundMessage() {
	_, err := models.ExpenseByID(models.DB, 1)

	suite.Require().NotNil(err)
	suite.Assert().Equal("there is no expense matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	_, err := models.Expenses(models.DB, models.ExpenseFilter{})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
