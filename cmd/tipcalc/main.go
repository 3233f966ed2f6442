package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/console"
	"github.com/mmynk/tipcalc/internal/currency"
	"github.com/mmynk/tipcalc/internal/engine"
	"github.com/mmynk/tipcalc/internal/tui"
	"github.com/mmynk/tipcalc/internal/view"
	"github.com/mmynk/tipcalc/pkg/logging"
)

const version = "1.0.0"

func main() {
	bill := flag.Float64("bill", calculator.DefaultBillAmount, "Bill amount (0-1000)")
	tip := flag.Float64("tip", calculator.DefaultTipPercentage, "Tip percentage (0-30)")
	people := flag.Int("people", calculator.DefaultPartySize, "Number of people (1-10)")
	code := flag.String("currency", currency.Default.String(), "Currency label: USD, EUR, GBP, AUD, INR")
	plain := flag.Bool("plain", false, "Line-oriented console instead of the interactive screen")
	once := flag.Bool("once", false, "Print the results for the given values and exit")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `tipcalc - tip and bill splitting calculator

Usage:
  tipcalc                                  interactive screen
  tipcalc --plain                          line commands (type help)
  tipcalc --once --bill 100 --tip 20 --people 4 --currency EUR

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  LOG_LEVEL    debug, info, warn, error (default: info)
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("tipcalc %s\n", version)
		os.Exit(0)
	}

	e := engine.New()
	e.SetBillAmount(*bill)
	e.SetTipPercentage(*tip)
	e.SetPartySize(*people)
	if err := e.SetCurrency(*code); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	switch {
	case *once:
		logging.Setup()
		e.ToggleResultsVisible()
		fmt.Print(view.Render(e.Snapshot()).String())

	case *plain:
		logging.Setup()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := console.New(e, os.Stdin, os.Stdout).Run(ctx); err != nil {
			slog.Error("Console failed", "error", err)
			os.Exit(1)
		}

	default:
		// Log lines would tear the full-screen UI.
		logging.SetupWriter(io.Discard, logging.LevelFromEnv())
		if _, err := tea.NewProgram(tui.New(e), tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
