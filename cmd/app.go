// Package cmd implements the CLI application to manage a household ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/grana-app/grana"
)

// Environment variables recognized by the application. Flags take precedence.
const (
	EnvLedgerFile = "GRANA_LEDGER_FILE"
	EnvNoColor    = "GRANA_NO_COLOR"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&summaryCmd{},
	&cardsCmd{},
	&accountsCmd{},
	&payersCmd{},
	&addCmd{},
	&payCmd{},
	&fmtCmd{},
	&importCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", defaultLedgerFile(), "Path to the ledger file (JSONL format)")

func defaultLedgerFile() string {
	if v := os.Getenv(EnvLedgerFile); v != "" {
		return v
	}
	return "ledger.jsonl"
}

// LedgerPath returns the ledger file path currently in effect.
func LedgerPath() string { return *ledgerFile }

// loadLedger reads the application ledger. A missing file yields an empty
// ledger so first use needs no setup step.
func loadLedger() (*grana.Ledger, error) {
	ledger, err := grana.LoadLedger(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger file %q does not exist, starting empty", *ledgerFile)
		ledger = grana.NewLedger()
		ledger.SetName(strings.TrimSuffix(filepath.Base(*ledgerFile), ".jsonl"))
		return ledger, nil
	}
	return ledger, err
}

// openStore loads the ledger and wraps it in a store persisting back to the
// same file.
func openStore() (*grana.Store, error) {
	ledger, err := loadLedger()
	if err != nil {
		return nil, err
	}
	return grana.NewStore(ledger, grana.FilePersister{Path: *ledgerFile}), nil
}

// printMarkdown renders markdown for the terminal. When rendering is not
// possible (or disabled) the raw markdown is printed as-is, still legible.
func printMarkdown(markdown string) {
	if os.Getenv(EnvNoColor) != "" {
		fmt.Print(markdown)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

// rangeFlags is the date scoping shared by the reporting subcommands: either
// a predefined period around an anchor date, or a custom start/end pair.
type rangeFlags struct {
	period string
	start  string
	date   string
}

func (r *rangeFlags) register(f *flag.FlagSet) {
	f.StringVar(&r.period, "p", "month", "Predefined period (month, quarter, year).")
	f.StringVar(&r.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&r.date, "d", "", "The end date for the range (defaults to today).")
}

// parse resolves the flags into a Range. An explicit empty period ("") with no
// start yields the unbounded range.
func (r *rangeFlags) parse() (grana.Range, error) {
	if r.period == "" && r.start == "" && r.date == "" {
		return grana.Range{}, nil
	}
	endStr := r.date
	if endStr == "" {
		endStr = grana.Today().String()
	}
	end, err := grana.ParseDate(endStr)
	if err != nil {
		return grana.Range{}, fmt.Errorf("parsing end date: %w", err)
	}
	if r.start != "" {
		start, err := grana.ParseDate(r.start)
		if err != nil {
			return grana.Range{}, fmt.Errorf("parsing start date: %w", err)
		}
		return grana.NewRange(start, end), nil
	}
	period, err := grana.ParsePeriod(r.period)
	if err != nil {
		return grana.Range{}, err
	}
	return period.Range(end), nil
}
