package models_test

import (
	"github.com/SuHyeon515/wky-report/internal/models"
)

func (suite *TestSuiteStandard) TestUpsertTags() {
	food := suite.createTestCategory(models.Category{Name: "식비"})
	rent := suite.createTestCategory(models.Category{Name: "월세", IsFixed: true})

	a := suite.createTestTransaction(models.BankTransaction{Amount: amount(-12000)})
	b := suite.createTestTransaction(models.BankTransaction{Amount: amount(-500000)})

	suite.Require().Nil(models.UpsertTags(models.DB, []uint{a.ID, b.ID}, &food.ID, false, nil))

	memo := "관리비 포함"
	suite.Require().Nil(models.UpsertTags(models.DB, []uint{b.ID}, &rent.ID, true, &memo))

	var tags []models.TransactionTag
	suite.Require().Nil(models.DB.Order("transaction_id").Find(&tags).Error)
	suite.Require().Len(tags, 2)

	suite.Assert().Equal(food.ID, *tags[0].CategoryID)
	suite.Assert().False(tags[0].IsFixed)
	suite.Assert().Nil(tags[0].Memo)

	suite.Assert().Equal(rent.ID, *tags[1].CategoryID)
	suite.Assert().True(tags[1].IsFixed)
	suite.Assert().Equal(memo, *tags[1].Memo)
}

func (suite *TestSuiteStandard) TestUpsertTagsEmpty() {
	suite.Assert().Nil(models.UpsertTags(models.DB, nil, nil, false, nil))
}

func (suite *TestSuiteStandard) TestTagCategorySetNullOnDelete() {
	food := suite.createTestCategory(models.Category{Name: "식비"})
	transaction := suite.createTestTransaction(models.BankTransaction{Amount: amount(-1000)})
	suite.Require().Nil(models.UpsertTags(models.DB, []uint{transaction.ID}, &food.ID, false, nil))

	suite.Require().Nil(models.DB.Delete(&food).Error)

	var tag models.TransactionTag
	suite.Require().Nil(models.DB.First(&tag).Error)
	suite.Assert().Nil(tag.CategoryID)
}

func (suite *TestSuiteStandard) TestTxTypeOf() {
	suite.Assert().Equal(models.TxIn, models.TxTypeOf(amount(1)))
	suite.Assert().Equal(models.TxOut, models.TxTypeOf(amount(0)))
	suite.Assert().Equal(models.TxOut, models.TxTypeOf(amount(-1)))
}
