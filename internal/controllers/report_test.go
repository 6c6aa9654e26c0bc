package controllers_test

import (
	"net/http"
	"testing"

	"github.com/SuHyeon515/wky-report/internal/controllers"
	"github.com/SuHyeon515/wky-report/internal/models"
	"github.com/SuHyeon515/wky-report/internal/report"
	"github.com/SuHyeon515/wky-report/internal/types"
	"github.com/SuHyeon515/wky-report/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestReport() {
	food := createTestCategory(suite.T(), controllers.CategoryEditable{Name: "식비"})
	rent := createTestCategory(suite.T(), controllers.CategoryEditable{Name: "월세", IsFixed: true})
	salary := createTestCategory(suite.T(), controllers.CategoryEditable{Name: "급여"})

	createTestTransaction(suite.T(), models.BankTransaction{Description: "급여", Amount: amount(3000000), TxDate: types.NewDate(2024, 3, 10)}, &salary.ID)
	rentTransaction := createTestTransaction(suite.T(), models.BankTransaction{Description: "월세", Amount: amount(-500000), TxDate: types.NewDate(2024, 3, 1)}, nil)
	suite.Require().Nil(models.UpsertTags(models.DB, []uint{rentTransaction.ID}, &rent.ID, true, nil))
	createTestTransaction(suite.T(), models.BankTransaction{Description: "김밥천국", Amount: amount(-10000), TxDate: types.NewDate(2024, 3, 2)}, &food.ID)
	createTestTransaction(suite.T(), models.BankTransaction{Description: "편의점", Amount: amount(-5000), TxDate: types.NewDate(2024, 3, 3)}, nil)

	// Outside of the report
	createTestTransaction(suite.T(), models.BankTransaction{Description: "김밥천국", Amount: amount(-3000), TxDate: types.NewDate(2024, 4, 1)}, &food.ID)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/reports", report.Query{Year: 2024, StartMonth: 3, EndMonth: 3})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response report.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(amount(3000000).Equal(response.Summary.TotalIn.Decimal))
	suite.Assert().True(amount(515000).Equal(response.Summary.TotalOut.Decimal))
	suite.Assert().True(amount(2485000).Equal(response.Summary.Net.Decimal))

	suite.Require().Len(response.ByCategory, 4)
	suite.Assert().Equal("급여", response.ByCategory[0].Category)
	suite.Assert().Equal("월세", response.ByCategory[1].Category)

	suite.Require().Len(response.IncomeDetails, 1)
	suite.Assert().Nil(response.IncomeDetails[0].IsFixed)

	suite.Require().Len(response.ExpenseDetails, 3)
	suite.Assert().Equal("월세", response.ExpenseDetails[0].Category)
	suite.Assert().True(*response.ExpenseDetails[0].IsFixed)
	suite.Assert().Equal(types.Uncategorized, response.ExpenseDetails[2].Category)
	suite.Assert().False(*response.ExpenseDetails[2].IsFixed)
}

func (suite *TestSuiteStandard) TestReportEmpty() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/reports", report.Query{Year: 2023, StartMonth: 1, EndMonth: 12})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().JSONEq(`{
		"summary": {"total_in": 0, "total_out": 0, "net": 0},
		"by_category": [],
		"income_details": [],
		"expense_details": []
	}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestReportErrors() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"No body", "", http.StatusBadRequest, "request body must not be empty"},
		{"Broken body", `{"year": 2024`, http.StatusBadRequest, ""},
		{"No year", report.Query{StartMonth: 1, EndMonth: 12}, http.StatusBadRequest, "year required"},
		{"Start after end", report.Query{Year: 2024, StartMonth: 6, EndMonth: 5}, http.StatusBadRequest, types.ErrInvalidMonthRange.Error()},
		{"Month thirteen", report.Query{Year: 2024, StartMonth: 1, EndMonth: 13}, http.StatusBadRequest, types.ErrInvalidMonthRange.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/reports", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != "" {
				assert.Contains(t, test.DecodeError(t, &r), tt.err)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestReportDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/reports", report.Query{Year: 2024, StartMonth: 1, EndMonth: 12})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
