package report_test

import (
	"context"
	"fmt"

	"github.com/SuHyeon515/wky-report/internal/models"
	"github.com/SuHyeon515/wky-report/internal/report"
	"github.com/SuHyeon515/wky-report/internal/types"
	"github.com/shopspring/decimal"
)

type fixture struct {
	date     types.Date
	desc     string
	amount   int64
	branch   string
	category *models.Category
	isFixed  bool
	memo     string
	untagged bool
}

func (suite *TestSuiteStandard) createFixtures(fixtures []fixture) {
	batch := models.UploadBatch{Filename: "export.xlsx"}
	suite.Require().Nil(models.DB.Create(&batch).Error)

	for i, f := range fixtures {
		transaction := models.BankTransaction{
			BatchID:     batch.ID,
			TxDate:      f.date,
			Description: f.desc,
			Amount:      decimal.NewFromInt(f.amount),
			TxType:      models.TxTypeOf(decimal.NewFromInt(f.amount)),
			Fingerprint: fmt.Sprintf("fixture-%d", i),
		}
		if f.branch != "" {
			transaction.Branch = &f.branch
		}
		suite.Require().Nil(models.DB.Create(&transaction).Error)

		if f.untagged {
			continue
		}

		var categoryID *uint
		if f.category != nil {
			categoryID = &f.category.ID
		}

		var memo *string
		if f.memo != "" {
			memo = &f.memo
		}

		suite.Require().Nil(models.UpsertTags(models.DB, []uint{transaction.ID}, categoryID, f.isFixed, memo))
	}
}

func (suite *TestSuiteStandard) createCategory(name string, isFixed bool) *models.Category {
	category := models.Category{Name: name, IsFixed: isFixed}
	suite.Require().Nil(models.DB.Create(&category).Error)
	return &category
}

func (suite *TestSuiteStandard) TestBuild() {
	food := suite.createCategory("식비", false)
	rent := suite.createCategory("월세", true)
	salary := suite.createCategory("급여", false)

	suite.createFixtures([]fixture{
		{date: types.NewDate(2024, 1, 5), desc: "급여", amount: 3000000, branch: "역삼", category: salary, memo: "1월"},
		{date: types.NewDate(2024, 1, 10), desc: "김밥천국", amount: -10000, branch: "역삼", category: food},
		{date: types.NewDate(2024, 1, 3), desc: "월세", amount: -500000, branch: "역삼", category: rent, isFixed: true},
		{date: types.NewDate(2024, 2, 1), desc: "편의점", amount: -5000, branch: "본점", untagged: true},
		{date: types.NewDate(2024, 2, 28), desc: "식당", amount: -3000, branch: "본점", category: food},
		{date: types.NewDate(2024, 3, 1), desc: "3월 월세", amount: -500000, branch: "역삼", category: rent, isFixed: true},
		{date: types.NewDate(2023, 12, 31), desc: "작년", amount: -1, branch: "역삼", category: food},
	})

	r, err := report.Build(context.Background(), models.DB, report.Query{Year: 2024, StartMonth: 1, EndMonth: 2})
	suite.Require().Nil(err)

	suite.Assert().True(decimal.NewFromInt(3000000).Equal(r.Summary.TotalIn.Decimal), r.Summary.TotalIn.String())
	suite.Assert().True(decimal.NewFromInt(518000).Equal(r.Summary.TotalOut.Decimal), r.Summary.TotalOut.String())
	suite.Assert().True(decimal.NewFromInt(2482000).Equal(r.Summary.Net.Decimal), r.Summary.Net.String())

	suite.Require().Len(r.ByCategory, 4)
	suite.Assert().Equal("급여", r.ByCategory[0].Category)
	suite.Assert().Equal("월세", r.ByCategory[1].Category)
	suite.Assert().Equal("식비", r.ByCategory[2].Category)
	suite.Assert().True(decimal.NewFromInt(-13000).Equal(r.ByCategory[2].Sum.Decimal), r.ByCategory[2].Sum.String())
	suite.Assert().Equal(types.Uncategorized, r.ByCategory[3].Category)

	suite.Require().Len(r.IncomeDetails, 1)
	suite.Assert().Equal("급여", r.IncomeDetails[0].Category)
	suite.Assert().Equal("1월", *r.IncomeDetails[0].Memo)
	suite.Assert().Nil(r.IncomeDetails[0].IsFixed)
	suite.Assert().Equal(types.NewDate(2024, 1, 5), r.IncomeDetails[0].TxDate)

	suite.Require().Len(r.ExpenseDetails, 4)
	suite.Assert().Equal("월세", r.ExpenseDetails[0].Description, "Details are ordered by date")
	suite.Assert().True(*r.ExpenseDetails[0].IsFixed)
	suite.Assert().Equal("김밥천국", r.ExpenseDetails[1].Description)
	suite.Assert().False(*r.ExpenseDetails[1].IsFixed)
	suite.Assert().Equal(types.Uncategorized, r.ExpenseDetails[2].Category)
	suite.Assert().False(*r.ExpenseDetails[2].IsFixed)
	suite.Assert().Nil(r.ExpenseDetails[2].Memo)

	charts := report.BuildCharts(r)
	suite.Require().Len(charts.Fixed, 1)
	suite.Assert().True(decimal.NewFromInt(500000).Equal(charts.Fixed[0].Amount.Decimal))
	suite.Require().Len(charts.Variable, 2)
	suite.Assert().Equal("식비", charts.Variable[0].Category)
	suite.Assert().Equal(types.Uncategorized, charts.Variable[1].Category)
}

func (suite *TestSuiteStandard) TestBuildBranch() {
	food := suite.createCategory("식비", false)

	suite.createFixtures([]fixture{
		{date: types.NewDate(2024, 5, 1), desc: "a", amount: -1000, branch: "역삼", category: food},
		{date: types.NewDate(2024, 5, 2), desc: "b", amount: -2000, branch: "본점", category: food},
		{date: types.NewDate(2024, 5, 3), desc: "c", amount: -4000},
	})

	r, err := report.Build(context.Background(), models.DB, report.Query{Year: 2024, Branch: " 본점 ", StartMonth: 5, EndMonth: 5})
	suite.Require().Nil(err)
	suite.Require().Len(r.ExpenseDetails, 1)
	suite.Assert().Equal("b", r.ExpenseDetails[0].Description)
	suite.Assert().True(decimal.NewFromInt(2000).Equal(r.Summary.TotalOut.Decimal))

	r, err = report.Build(context.Background(), models.DB, report.Query{Year: 2024, StartMonth: 5, EndMonth: 5})
	suite.Require().Nil(err)
	suite.Assert().Len(r.ExpenseDetails, 3)
}

func (suite *TestSuiteStandard) TestBuildDecember() {
	suite.createFixtures([]fixture{
		{date: types.NewDate(2024, 12, 31), desc: "last day", amount: -1000, untagged: true},
		{date: types.NewDate(2025, 1, 1), desc: "next year", amount: -1000, untagged: true},
	})

	r, err := report.Build(context.Background(), models.DB, report.Query{Year: 2024, StartMonth: 12, EndMonth: 12})
	suite.Require().Nil(err)
	suite.Require().Len(r.ExpenseDetails, 1)
	suite.Assert().Equal("last day", r.ExpenseDetails[0].Description)
}

func (suite *TestSuiteStandard) TestBuildEmpty() {
	r, err := report.Build(context.Background(), models.DB, report.Query{Year: 2024, StartMonth: 1, EndMonth: 12})
	suite.Require().Nil(err)
	suite.Assert().True(r.Summary.Net.IsZero())
	suite.Assert().NotNil(r.ByCategory)
	suite.Assert().Empty(r.ByCategory)
	suite.Assert().NotNil(r.IncomeDetails)
	suite.Assert().NotNil(r.ExpenseDetails)
}

func (suite *TestSuiteStandard) TestBuildInvalidRange() {
	tests := []report.Query{
		{Year: 2024, StartMonth: 0, EndMonth: 3},
		{Year: 2024, StartMonth: 5, EndMonth: 4},
		{Year: 2024, StartMonth: 1, EndMonth: 13},
	}

	for _, q := range tests {
		_, err := report.Build(context.Background(), models.DB, q)
		suite.Assert().ErrorIs(err, types.ErrInvalidMonthRange, "%+v", q)
	}
}

func (suite *TestSuiteStandard) TestBuildYearRequired() {
	_, err := report.Build(context.Background(), models.DB, report.Query{StartMonth: 1, EndMonth: 3})
	suite.Assert().ErrorIs(err, report.ErrYearRequired)
}

func (suite *TestSuiteStandard) TestBuildDBError() {
	suite.CloseDB()

	_, err := report.Build(context.Background(), models.DB, report.Query{Year: 2024, StartMonth: 1, EndMonth: 1})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
