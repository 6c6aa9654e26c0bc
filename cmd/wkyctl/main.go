// wkyctl is a terminal client for the wky-report API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/SuHyeon515/wky-report/internal/client"
	"github.com/SuHyeon515/wky-report/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const usage = `Usage: wkyctl [--api URL] [--debug] <command> [arguments]

Commands:
  branches                          List branches
  categories                        List categories
  category-add NAME [--fixed]       Create a category
  unclassified [--limit N] [--branch B] [--suggest]
                                    List transactions without category
  categorize --category ID [--fixed] [--memo M] TRANSACTION_ID...
                                    Assign a category to transactions
  upload FILE [--branch B]          Upload a bank export
  report --year Y [--from M] [--to M] [--branch B]
                                    Show the report for the months of a year

The API URL defaults to WKY_API_URL.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	flags := pflag.NewFlagSet("wkyctl", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.SetInterspersed(false)
	flags.Usage = func() { fmt.Fprint(stderr, usage) }

	api := flags.String("api", cfg.APIURL, "base URL of the API")
	debug := flags.Bool("debug", false, "log requests")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	level := zerolog.WarnLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).Level(level).With().Timestamp().Logger()

	cmd, ok := commands[flags.Arg(0)]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", flags.Arg(0))
		flags.Usage()
		return 2
	}

	err := cmd(ctx, client.New(*api, logger), flags.Args()[1:], stdout)
	if errors.Is(err, pflag.ErrHelp) {
		flags.Usage()
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}
