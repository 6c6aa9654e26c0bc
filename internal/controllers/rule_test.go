package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/SuHyeon515/wky-report/internal/controllers"
	"github.com/SuHyeon515/wky-report/internal/models"
	"github.com/SuHyeon515/wky-report/test"
	"github.com/stretchr/testify/assert"
)

func createTestRule(t *testing.T, r controllers.RuleEditable, expectedStatus ...int) controllers.Rule {
	if r.Keyword == "" {
		r.Keyword = "스타벅스"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	resp := test.Request(t, http.MethodPost, "http://example.com/rules", r)
	test.AssertHTTPStatus(t, &resp, expectedStatus...)

	var rule controllers.Rule
	if resp.Code == http.StatusCreated {
		test.DecodeResponse(t, &resp, &rule)
	}

	return rule
}

func (suite *TestSuiteStandard) TestCreateRule() {
	category := createTestCategory(suite.T(), controllers.CategoryEditable{Name: "카페"})

	rule := createTestRule(suite.T(), controllers.RuleEditable{Keyword: "  커피* ", CategoryID: category.ID, Priority: 3})
	suite.Assert().NotZero(rule.ID)
	suite.Assert().Equal("커피*", rule.Keyword)
	suite.Assert().Equal(models.TargetAny, rule.Target)
	suite.Assert().Equal("카페", rule.Category)
	suite.Assert().True(rule.IsEnabled, "Rules are enabled by default")

	disabled := createTestRule(suite.T(), controllers.RuleEditable{Target: models.TargetMemo, CategoryID: category.ID, IsEnabled: ptr(false), IsFixed: true})
	suite.Assert().Equal(models.TargetMemo, disabled.Target)
	suite.Assert().False(disabled.IsEnabled)
	suite.Assert().True(disabled.IsFixed)
}

func (suite *TestSuiteStandard) TestCreateRuleTargetCase() {
	category := createTestCategory(suite.T(), controllers.CategoryEditable{Name: "카페"})

	rule := createTestRule(suite.T(), controllers.RuleEditable{Target: " Vendor ", CategoryID: category.ID})
	suite.Assert().Equal(models.TargetVendor, rule.Target)

	rule = createTestRule(suite.T(), controllers.RuleEditable{Target: "MEMO", CategoryID: category.ID})
	suite.Assert().Equal(models.TargetMemo, rule.Target)
}

func (suite *TestSuiteStandard) TestCreateRuleErrors() {
	category := createTestCategory(suite.T(), controllers.CategoryEditable{})

	tests := []struct {
		name string
		rule controllers.RuleEditable
		err  string
	}{
		{"Blank keyword", controllers.RuleEditable{Keyword: "  ", CategoryID: category.ID}, "keyword required"},
		{"Unknown target", controllers.RuleEditable{Keyword: "a", Target: "amount", CategoryID: category.ID}, "target must be one of"},
		{"No category", controllers.RuleEditable{Keyword: "a"}, "category_id required"},
		{"Unknown category", controllers.RuleEditable{Keyword: "a", CategoryID: 4711}, models.ErrReferenceNotFound.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/rules", tt.rule)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, &r), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestGetRules() {
	category := createTestCategory(suite.T(), controllers.CategoryEditable{})

	late := createTestRule(suite.T(), controllers.RuleEditable{Keyword: "late", CategoryID: category.ID, Priority: 10})
	first := createTestRule(suite.T(), controllers.RuleEditable{Keyword: "first", CategoryID: category.ID, Priority: 1})
	second := createTestRule(suite.T(), controllers.RuleEditable{Keyword: "second", CategoryID: category.ID, Priority: 10})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/rules", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rules []controllers.Rule
	test.DecodeResponse(suite.T(), &r, &rules)
	suite.Require().Len(rules, 3)
	suite.Assert().Equal(first.ID, rules[0].ID)
	suite.Assert().Equal(late.ID, rules[1].ID, "Rules with equal priority are ordered by creation")
	suite.Assert().Equal(second.ID, rules[2].ID)
}

func (suite *TestSuiteStandard) TestDeleteRule() {
	category := createTestCategory(suite.T(), controllers.CategoryEditable{})
	rule := createTestRule(suite.T(), controllers.RuleEditable{CategoryID: category.ID})
	path := fmt.Sprintf("http://example.com/rules/%d", rule.ID)

	r := test.Request(suite.T(), http.MethodOptions, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no category rule matching your query", test.DecodeError(suite.T(), &r))

	// The category is kept
	suite.Require().Nil(models.DB.First(&models.Category{}, category.ID).Error)
}

func (suite *TestSuiteStandard) TestRulesDeletedWithCategory() {
	category := createTestCategory(suite.T(), controllers.CategoryEditable{})
	createTestRule(suite.T(), controllers.RuleEditable{CategoryID: category.ID})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/categories/%d", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/rules", "")
	suite.Assert().JSONEq("[]", r.Body.String())
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/categories", "OPTIONS, GET, POST"},
		{"/rules", "OPTIONS, GET, POST"},
		{"/uploads", "OPTIONS, GET, POST"},
		{"/uploads/file", "OPTIONS, POST"},
		{"/transactions/unclassified", "OPTIONS, GET"},
		{"/categorize/manual", "OPTIONS, POST"},
		{"/meta/branches", "OPTIONS, GET"},
		{"/reports", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsDetailNotFound() {
	for _, path := range []string{"/categories/17", "/rules/17", "/uploads/17"} {
		r := test.Request(suite.T(), http.MethodOptions, "http://example.com"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}
}
