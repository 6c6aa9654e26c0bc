package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/SuHyeon515/wky-report/internal/client"
	"github.com/SuHyeon515/wky-report/internal/dashboard"
	"github.com/SuHyeon515/wky-report/internal/report"
	"github.com/spf13/pflag"
)

type command func(ctx context.Context, c *client.Client, args []string, out io.Writer) error

var commands = map[string]command{
	"branches":     branches,
	"categories":   categories,
	"category-add": categoryAdd,
	"unclassified": unclassified,
	"categorize":   categorize,
	"upload":       upload,
	"report":       showReport,
}

func newFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	return flags
}

func branches(ctx context.Context, c *client.Client, _ []string, out io.Writer) error {
	names, err := c.Branches(ctx)
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}

func categories(ctx context.Context, c *client.Client, _ []string, out io.Writer) error {
	list, err := c.Categories(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tFIXED")
	for _, category := range list {
		fmt.Fprintf(w, "%d\t%s\t%t\n", category.ID, category.Name, category.IsFixed)
	}
	return w.Flush()
}

func categoryAdd(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	flags := newFlagSet("category-add")
	fixed := flags.Bool("fixed", false, "expenses of the category are fixed")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() != 1 {
		return errors.New("category-add takes exactly one name")
	}

	if _, err := c.CreateCategory(ctx, flags.Arg(0), *fixed); err != nil {
		return err
	}

	return categories(ctx, c, nil, out)
}

func unclassified(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	flags := newFlagSet("unclassified")
	limit := flags.Int("limit", 0, "maximum number of transactions")
	branch := flags.String("branch", "", "only transactions of this branch")
	suggest := flags.Bool("suggest", false, "suggest categories")
	if err := flags.Parse(args); err != nil {
		return err
	}

	transactions, err := c.Unclassified(ctx, client.UnclassifiedQuery{Limit: *limit, Branch: *branch, Suggest: *suggest})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ID\tDATE\tAMOUNT\tBRANCH\tDESCRIPTION\tSUGGESTION\t")
	for _, t := range transactions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n", t.ID, t.TxDate, dashboard.FormatAmount(t.Amount.Decimal), deref(t.Branch), t.Description, deref(t.SuggestedCategory))
	}
	return w.Flush()
}

func categorize(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	flags := newFlagSet("categorize")
	categoryID := flags.Uint("category", 0, "category ID")
	fixed := flags.Bool("fixed", false, "the transactions are fixed expenses")
	memo := flags.String("memo", "", "memo for the transactions")
	if err := flags.Parse(args); err != nil {
		return err
	}

	ids := make([]uint, 0, flags.NArg())
	for _, arg := range flags.Args() {
		id, err := strconv.ParseUint(arg, 10, 0)
		if err != nil {
			return fmt.Errorf("invalid transaction ID %q", arg)
		}
		ids = append(ids, uint(id))
	}

	r := client.CategorizeRequest{TransactionIDs: ids, CategoryID: *categoryID, IsFixed: *fixed}
	if flags.Changed("memo") {
		r.Memo = memo
	}

	updated, err := c.Categorize(ctx, r)
	if err != nil {
		return err
	}

	remaining, err := c.Unclassified(ctx, client.UnclassifiedQuery{})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "updated %d transactions, %d unclassified remaining\n", updated, len(remaining))
	return nil
}

func upload(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	flags := newFlagSet("upload")
	branch := flags.String("branch", "", "branch of all transactions")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() != 1 {
		return errors.New("upload takes exactly one file")
	}

	f, err := os.Open(flags.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := c.Upload(ctx, filepath.Base(f.Name()), f, *branch)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "batch %d: %d rows, %d inserted, %d duplicates skipped\n", result.BatchID, result.RowCount, result.Inserted, result.SkippedDuplicates)
	return nil
}

func showReport(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	flags := newFlagSet("report")
	year := flags.Int("year", 0, "year of the report")
	from := flags.Int("from", 1, "first month")
	to := flags.Int("to", 12, "last month")
	branch := flags.String("branch", "", "only transactions of this branch")
	if err := flags.Parse(args); err != nil {
		return err
	}

	view := dashboard.NewReportView(c)
	result, err := view.Load(ctx, report.Query{Year: *year, Branch: *branch, StartMonth: *from, EndMonth: *to})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, dashboard.NewRenderer().Render(result))
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
