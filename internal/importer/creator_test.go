package importer_test

import (
	"github.com/SuHyeon515/wky-report/internal/importer"
	"github.com/SuHyeon515/wky-report/internal/importer/types"
	"github.com/SuHyeon515/wky-report/internal/models"
	wkytypes "github.com/SuHyeon515/wky-report/internal/types"
	"github.com/shopspring/decimal"
)

func testRows() []types.Row {
	return []types.Row{
		{Date: wkytypes.NewDate(2024, 1, 2), Description: " 스타벅스 역삼 ", Amount: decimal.NewFromInt(-5500), Balance: decimal.NewNullDecimal(decimal.NewFromInt(94500)), Branch: "역삼"},
		{Date: wkytypes.NewDate(2024, 1, 3), Description: "3월 월세", Amount: decimal.NewFromInt(-500000), Branch: "역삼"},
		{Date: wkytypes.NewDate(2024, 1, 5), Description: "급여", Amount: decimal.NewFromInt(3000000), Branch: "역삼"},
		{Description: "합계", Amount: decimal.NewFromInt(2494500)},
	}
}

func (suite *TestSuiteStandard) TestCreate() {
	cafe := models.Category{Name: "카페"}
	suite.Require().Nil(models.DB.Create(&cafe).Error)

	rent := models.Category{Name: "월세", IsFixed: true}
	suite.Require().Nil(models.DB.Create(&rent).Error)

	uncategorized := models.Category{Name: wkytypes.Uncategorized}
	suite.Require().Nil(models.DB.Create(&uncategorized).Error)

	suite.Require().Nil(models.DB.Create(&models.CategoryRule{Keyword: "스타벅스", Target: models.TargetVendor, IsEnabled: true, CategoryID: cafe.ID}).Error)
	suite.Require().Nil(models.DB.Create(&models.CategoryRule{Keyword: "월세", Target: models.TargetDescription, IsFixed: true, IsEnabled: true, CategoryID: rent.ID}).Error)

	result, err := importer.Create(models.DB, importer.Upload{Filename: "woori.xlsx", BankHint: "woori"}, testRows())
	suite.Require().Nil(err)
	suite.Assert().Equal(3, result.RowCount, "Rows without date are dropped")
	suite.Assert().Equal(3, result.Inserted)
	suite.Assert().Equal(0, result.SkippedDuplicates)

	var batch models.UploadBatch
	suite.Require().Nil(models.DB.First(&batch, result.BatchID).Error)
	suite.Assert().Equal("woori.xlsx", batch.Filename)
	suite.Assert().Equal("woori", *batch.BankHint)
	suite.Assert().Nil(batch.Branch)
	suite.Assert().Equal(3, batch.RowCount)

	var transactions []models.BankTransaction
	suite.Require().Nil(models.DB.Order("tx_date").Find(&transactions).Error)
	suite.Require().Len(transactions, 3)
	suite.Assert().Equal("스타벅스 역삼", transactions[0].Description)
	suite.Assert().Equal("스타벅스", transactions[0].VendorNormalized)
	suite.Assert().Equal(models.TxOut, transactions[0].TxType)
	suite.Assert().Equal(models.TxIn, transactions[2].TxType)
	suite.Assert().Equal("역삼", *transactions[0].Branch)
	suite.Assert().True(decimal.NewFromInt(94500).Equal(transactions[0].Balance.Decimal))
	suite.Assert().False(transactions[1].Balance.Valid)

	var tags []models.TransactionTag
	suite.Require().Nil(models.DB.Order("transaction_id").Find(&tags).Error)
	suite.Require().Len(tags, 3)
	suite.Assert().Equal(cafe.ID, *tags[0].CategoryID)
	suite.Assert().False(tags[0].IsFixed)
	suite.Assert().Equal(rent.ID, *tags[1].CategoryID)
	suite.Assert().True(tags[1].IsFixed)
	suite.Assert().Equal(uncategorized.ID, *tags[2].CategoryID, "Transactions without matching rule are uncategorized")
}

func (suite *TestSuiteStandard) TestCreateSkipsDuplicates() {
	first, err := importer.Create(models.DB, importer.Upload{Filename: "january.xlsx"}, testRows())
	suite.Require().Nil(err)
	suite.Assert().Equal(3, first.Inserted)

	// The same export uploaded again with one new row
	rows := append(testRows(), types.Row{Date: wkytypes.NewDate(2024, 1, 6), Description: "편의점", Amount: decimal.NewFromInt(-1200), Branch: "역삼"})

	second, err := importer.Create(models.DB, importer.Upload{Filename: "january-2.xlsx"}, rows)
	suite.Require().Nil(err)
	suite.Assert().NotEqual(first.BatchID, second.BatchID)
	suite.Assert().Equal(4, second.RowCount)
	suite.Assert().Equal(1, second.Inserted)
	suite.Assert().Equal(3, second.SkippedDuplicates)

	var count int64
	models.DB.Model(&models.BankTransaction{}).Count(&count)
	suite.Assert().Equal(int64(4), count)
}

func (suite *TestSuiteStandard) TestCreateBranchOverride() {
	result, err := importer.Create(models.DB, importer.Upload{Filename: "x.csv", Branch: " 본점 "}, testRows())
	suite.Require().Nil(err)

	var transactions []models.BankTransaction
	suite.Require().Nil(models.DB.Where("batch_id = ?", result.BatchID).Find(&transactions).Error)
	suite.Require().Len(transactions, 3)
	for _, transaction := range transactions {
		suite.Assert().Equal("본점", *transaction.Branch)
	}

	var batch models.UploadBatch
	suite.Require().Nil(models.DB.First(&batch, result.BatchID).Error)
	suite.Assert().Equal("본점", *batch.Branch)
}

func (suite *TestSuiteStandard) TestCreateMissingUncategorizedCategory() {
	_, err := importer.Create(models.DB, importer.Upload{Filename: "x.csv"}, testRows()[:1])
	suite.Require().Nil(err)

	var tag models.TransactionTag
	suite.Require().Nil(models.DB.First(&tag).Error)
	suite.Assert().Nil(tag.CategoryID)
}

func (suite *TestSuiteStandard) TestCreateDBError() {
	sqlDB, _ := models.DB.DB()
	sqlDB.Close()

	_, err := importer.Create(models.DB, importer.Upload{Filename: "x.csv"}, testRows())
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestCreateMemoRules() {
	transfer := models.Category{Name: "이체"}
	suite.Require().Nil(models.DB.Create(&transfer).Error)
	suite.Require().Nil(models.DB.Create(&models.CategoryRule{Keyword: "이체", Target: models.TargetMemo, IsEnabled: true, CategoryID: transfer.ID}).Error)

	rows := []types.Row{
		{Date: wkytypes.NewDate(2024, 1, 2), Description: "홍길동", Memo: "인터넷이체", Amount: decimal.NewFromInt(-20000)},
		{Date: wkytypes.NewDate(2024, 1, 3), Description: "이체 수수료", Amount: decimal.NewFromInt(-500)},
	}

	_, err := importer.Create(models.DB, importer.Upload{Filename: "woori.xlsx"}, rows)
	suite.Require().Nil(err)

	var transactions []models.BankTransaction
	suite.Require().Nil(models.DB.Order("tx_date").Find(&transactions).Error)
	suite.Require().Len(transactions, 2)
	suite.Require().NotNil(transactions[0].Memo)
	suite.Assert().Equal("인터넷이체", *transactions[0].Memo)
	suite.Assert().Nil(transactions[1].Memo)

	var tags []models.TransactionTag
	suite.Require().Nil(models.DB.Order("transaction_id").Find(&tags).Error)
	suite.Require().Len(tags, 2)
	suite.Assert().Equal(transfer.ID, *tags[0].CategoryID, "Memo rules match the memo column of the export")
	suite.Assert().Nil(tags[1].CategoryID, "Memo rules ignore the description")
}
