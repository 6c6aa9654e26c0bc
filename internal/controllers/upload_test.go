package controllers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/SuHyeon515/wky-report/internal/controllers"
	"github.com/SuHyeon515/wky-report/internal/models"
	"github.com/SuHyeon515/wky-report/test"
)

func (suite *TestSuiteStandard) uploadFile(path string, fields ...map[string]string) controllers.UploadFileResponse {
	body, headers := test.LoadTestFile(suite.T(), path, fields...)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/uploads/file", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.UploadFileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestUploadFile() {
	cafe := createTestCategory(suite.T(), controllers.CategoryEditable{Name: "카페"})
	suite.Require().Nil(models.DB.Create(&models.CategoryRule{Keyword: "스타벅스", Target: models.TargetVendor, CategoryID: cafe.ID, IsEnabled: true}).Error)

	response := suite.uploadFile("woori.csv", map[string]string{"bank_hint": "woori"})
	suite.Assert().True(response.OK)
	suite.Assert().NotZero(response.BatchID)
	suite.Assert().Equal(3, response.RowCount)
	suite.Assert().Equal(3, response.Inserted)
	suite.Assert().Equal(0, response.SkippedDuplicates)

	var batch models.UploadBatch
	suite.Require().Nil(models.DB.First(&batch, response.BatchID).Error)
	suite.Assert().Equal("woori.csv", batch.Filename)
	suite.Assert().Equal("woori", *batch.BankHint)
	suite.Assert().Nil(batch.Branch)

	var transactions []models.BankTransaction
	suite.Require().Nil(models.DB.Order("tx_date").Find(&transactions).Error)
	suite.Require().Len(transactions, 3)
	suite.Assert().Equal("강남지점", *transactions[0].Branch)
	suite.Assert().Equal("스타벅스", transactions[0].VendorNormalized)

	var tag models.TransactionTag
	suite.Require().Nil(models.DB.Where(&models.TransactionTag{TransactionID: transactions[0].ID}).First(&tag).Error)
	suite.Assert().Equal(cafe.ID, *tag.CategoryID)

	// The same file again only contains duplicates
	response = suite.uploadFile("woori.csv")
	suite.Assert().Equal(3, response.RowCount)
	suite.Assert().Equal(0, response.Inserted)
	suite.Assert().Equal(3, response.SkippedDuplicates)

	// Two unclassified transactions remain
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/transactions/unclassified", "")
	var unclassified []controllers.UnclassifiedTransaction
	test.DecodeResponse(suite.T(), &r, &unclassified)
	suite.Assert().Len(unclassified, 2)
}

func (suite *TestSuiteStandard) TestUploadFileBranch() {
	response := suite.uploadFile("generic.csv", map[string]string{"branch": " 역삼 "})
	suite.Assert().Equal(2, response.Inserted)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/meta/branches", "")
	var branches []string
	test.DecodeResponse(suite.T(), &r, &branches)
	suite.Assert().Equal([]string{"역삼"}, branches)

	var transaction models.BankTransaction
	suite.Require().Nil(models.DB.Where("description = ?", "GS25 역삼").First(&transaction).Error)
	suite.Assert().True(amount(-1200).Equal(transaction.Amount))
	suite.Assert().True(amount(98800).Equal(transaction.Balance.Decimal))
	suite.Assert().Equal(models.TxOut, transaction.TxType)
}

func (suite *TestSuiteStandard) TestUploadFileNoFile() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/uploads/file", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("file required", test.DecodeError(suite.T(), &r))
}

func (suite *TestSuiteStandard) TestUploadFileUnparseable() {
	body, headers := test.LoadTestFile(suite.T(), "invalid.csv")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/uploads/file", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().True(strings.HasPrefix(test.DecodeError(suite.T(), &r), "parse failed"))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.UploadBatch{}).Count(&count).Error)
	suite.Assert().Zero(count, "Failed uploads must not create batches")
}

func (suite *TestSuiteStandard) TestUploadFileTooLarge() {
	// The test suite limits uploads to 1MB
	content := bytes.Repeat([]byte("a"), 1024*1024+1)
	body, headers := test.MultipartFile(suite.T(), "large.csv", bytes.NewReader(content))

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/uploads/file", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("file too large (max 1MB)", test.DecodeError(suite.T(), &r))
}

func (suite *TestSuiteStandard) TestUploadFileDBClosed() {
	body, headers := test.LoadTestFile(suite.T(), "generic.csv")
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/uploads/file", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestUploads() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/uploads", controllers.UploadEditable{Filename: " manual.xlsx ", Branch: "본점"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created controllers.Upload
	test.DecodeResponse(suite.T(), &r, &created)
	suite.Assert().Equal("manual.xlsx", created.Filename)
	suite.Assert().Equal("본점", *created.Branch)
	suite.Assert().Zero(created.RowCount)

	uploaded := suite.uploadFile("generic.csv")

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/uploads", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var uploads []controllers.Upload
	test.DecodeResponse(suite.T(), &r, &uploads)
	suite.Require().Len(uploads, 2)
	suite.Assert().Equal(uploaded.BatchID, uploads[0].ID, "Newest upload must be first")
	suite.Assert().Equal(2, uploads[0].RowCount)
	suite.Assert().Equal(created.ID, uploads[1].ID)
}

func (suite *TestSuiteStandard) TestCreateUploadNoFilename() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/uploads", controllers.UploadEditable{Filename: "   "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("filename required", test.DecodeError(suite.T(), &r))
}

func (suite *TestSuiteStandard) TestDeleteUpload() {
	category := createTestCategory(suite.T(), controllers.CategoryEditable{})
	uploaded := suite.uploadFile("woori.csv")

	var ids []uint
	suite.Require().Nil(models.DB.Model(&models.BankTransaction{}).Pluck("id", &ids).Error)
	suite.Require().Nil(models.UpsertTags(models.DB, ids, &category.ID, false, nil))

	path := fmt.Sprintf("http://example.com/uploads/%d", uploaded.BatchID)

	r := test.Request(suite.T(), http.MethodOptions, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.UploadDeleteResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(uploaded.BatchID, response.Deleted)

	var transactions, tags int64
	suite.Require().Nil(models.DB.Model(&models.BankTransaction{}).Count(&transactions).Error)
	suite.Require().Nil(models.DB.Model(&models.TransactionTag{}).Count(&tags).Error)
	suite.Assert().Zero(transactions)
	suite.Assert().Zero(tags)

	// The category is kept
	suite.Require().Nil(models.DB.First(&models.Category{}, category.ID).Error)

	for _, method := range []string{http.MethodDelete, http.MethodOptions} {
		r = test.Request(suite.T(), method, path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
		suite.Assert().Equal("there is no upload batch matching your query", test.DecodeError(suite.T(), &r))
	}
}

func (suite *TestSuiteStandard) TestDeleteUploadInvalidID() {
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/uploads/-1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
