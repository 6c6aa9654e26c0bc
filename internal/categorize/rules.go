// Package categorize assigns categories to bank transactions.
package categorize

import (
	"strings"

	"github.com/SuHyeon515/wky-report/internal/models"
	"github.com/SuHyeon515/wky-report/internal/types"
	"github.com/ryanuber/go-glob"
)

// Subject holds the fields of a transaction that rules are matched against.
type Subject struct {
	Description string
	Memo        string
	Vendor      string
}

// Match is the result of applying rules to a Subject.
type Match struct {
	Category string
	IsFixed  bool
	RuleID   uint // 0 if no rule matched
}

// Uncategorized is the result if no rule matches.
var Uncategorized = Match{Category: types.Uncategorized}

// Apply returns the category of the first rule matching the subject.
//
// Rules are checked in the order they are passed in, see models.EnabledRules.
// Matching is case-insensitive. A keyword matches if it is contained in the
// target field. Keywords containing "*" must match the whole field as glob
// pattern instead.
func Apply(rules []models.CategoryRule, s Subject) Match {
	description := strings.ToLower(s.Description)
	memo := strings.ToLower(s.Memo)
	vendor := strings.ToLower(s.Vendor)

	for _, rule := range rules {
		keyword := strings.ToLower(strings.TrimSpace(rule.Keyword))
		if keyword == "" || !rule.IsEnabled {
			continue
		}

		var hit bool
		switch rule.Target {
		case models.TargetDescription:
			hit = matches(keyword, description)
		case models.TargetMemo:
			hit = matches(keyword, memo)
		case models.TargetVendor:
			hit = matches(keyword, vendor)
		case models.TargetAny, "":
			hit = matches(keyword, description) || matches(keyword, memo) || matches(keyword, vendor)
		}

		if hit {
			return Match{
				Category: types.CategoryName(rule.Category.Name),
				IsFixed:  rule.IsFixed,
				RuleID:   rule.ID,
			}
		}
	}

	return Uncategorized
}

func matches(keyword, text string) bool {
	if strings.Contains(keyword, "*") {
		return glob.Glob(keyword, text)
	}
	return strings.Contains(text, keyword)
}
