package dashboard

import (
	"fmt"
	"strings"

	"github.com/SuHyeon515/wky-report/internal/report"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

type Styles struct {
	Title   lipgloss.Style
	Summary lipgloss.Style
	Income  lipgloss.Style
	Expense lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Number  lipgloss.Style
	Empty   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).MarginTop(1),
		Summary: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2),
		Income:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00af5f")),
		Expense: lipgloss.NewStyle().Foreground(lipgloss.Color("#d70000")),
		Header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:    lipgloss.NewStyle().Padding(0, 1),
		Number:  lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		Empty:   lipgloss.NewStyle().Faint(true),
	}
}

// Renderer renders reports as text.
type Renderer struct {
	Styles Styles
}

func NewRenderer() Renderer {
	return Renderer{Styles: DefaultStyles()}
}

// Render renders the summary, the charts and the details of a report.
func (r Renderer) Render(res Result) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.title(res.Query),
		r.summary(res.Response.Summary),
		r.Styles.Title.Render("수입"),
		r.chart(res.Charts.Income),
		r.Styles.Title.Render("고정 지출"),
		r.chart(res.Charts.Fixed),
		r.Styles.Title.Render("변동 지출"),
		r.chart(res.Charts.Variable),
		r.Styles.Title.Render("수입 내역"),
		r.details(res.Response.IncomeDetails, false),
		r.Styles.Title.Render("지출 내역"),
		r.details(res.Response.ExpenseDetails, true),
	)
}

func (r Renderer) title(q report.Query) string {
	branch := strings.TrimSpace(q.Branch)
	if branch == "" {
		branch = "전체 지점"
	}

	return r.Styles.Title.Render(fmt.Sprintf("%d년 %d월 - %d월 · %s", q.Year, q.StartMonth, q.EndMonth, branch))
}

func (r Renderer) summary(s report.Summary) string {
	return r.Styles.Summary.Render(lipgloss.JoinVertical(lipgloss.Left,
		"총 수입  "+r.Styles.Income.Render(FormatAmount(s.TotalIn.Decimal)),
		"총 지출  "+r.Styles.Expense.Render(FormatAmount(s.TotalOut.Decimal)),
		"순이익  "+r.signed(s.Net.Decimal),
	))
}

func (r Renderer) signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return r.Styles.Expense.Render(FormatAmount(d))
	}
	return r.Styles.Income.Render(FormatAmount(d))
}

// chart renders the entries with their share of the total.
func (r Renderer) chart(entries []report.ChartEntry) string {
	if len(entries) == 0 {
		return r.Styles.Empty.Render("데이터 없음")
	}

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount.Decimal)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		share := "-"
		if total.IsPositive() {
			share = e.Amount.Div(total).Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
		}
		rows = append(rows, []string{e.Category, FormatAmount(e.Amount.Decimal), share})
	}

	return r.table([]string{"카테고리", "금액", "비율"}, rows, 1, 2)
}

func (r Renderer) details(records []report.TxRecord, expenses bool) string {
	if len(records) == 0 {
		return r.Styles.Empty.Render("데이터 없음")
	}

	headers := []string{"날짜", "내용", "카테고리", "금액", "메모"}
	if expenses {
		headers = append(headers, "고정")
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		memo := ""
		if record.Memo != nil {
			memo = *record.Memo
		}

		row := []string{record.TxDate.String(), record.Description, record.Category, FormatAmount(record.Amount.Decimal), memo}
		if expenses {
			fixed := ""
			if record.IsFixed != nil && *record.IsFixed {
				fixed = "✓"
			}
			row = append(row, fixed)
		}
		rows = append(rows, row)
	}

	return r.table(headers, rows, 3)
}

// table renders rows below the headers. The columns listed in numeric are
// right-aligned.
func (r Renderer) table(headers []string, rows [][]string, numeric ...int) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.Styles.Header
			}
			for _, n := range numeric {
				if col == n {
					return r.Styles.Number
				}
			}
			return r.Styles.Cell
		}).
		String()
}
