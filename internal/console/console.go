// Package console drives the calculator from line commands and re-renders
// the screen after every change.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mmynk/tipcalc/internal/currency"
	"github.com/mmynk/tipcalc/internal/engine"
	"github.com/mmynk/tipcalc/internal/models"
	"github.com/mmynk/tipcalc/internal/view"
)

const prompt = "> "

const usage = `Commands:
  bill <amount>      set the bill amount (0-1000)
  tip <percent>      set the tip percentage (0-30)
  people <n>         set the number of people (1-10)
  currency <code>    select USD, EUR, GBP, AUD or INR
  calc               show or hide the results
  show               print the screen
  currencies         list supported currencies
  reset              restore defaults
  help               print this help
  quit               exit
`

// Console reads commands from in and writes screens to out.
type Console struct {
	engine *engine.Engine
	in     io.Reader
	out    io.Writer
}

// New creates a console driving e.
func New(e *engine.Engine, in io.Reader, out io.Writer) *Console {
	return &Console{engine: e, in: in, out: out}
}

// Run processes commands until quit, end of input, or ctx is done.
// Bad commands are reported and skipped; only read errors are returned.
// A pending read is abandoned on cancellation; its goroutine exits at the
// next line or end of input.
func (c *Console) Run(ctx context.Context) error {
	unsubscribe := c.engine.Subscribe(func(s models.Session) {
		fmt.Fprint(c.out, view.Render(s).String())
	})
	defer unsubscribe()

	fmt.Fprint(c.out, view.Render(c.engine.Snapshot()).String())

	done := make(chan struct{})
	defer close(done)
	lines, readErr := c.readLines(done)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(c.out, prompt)
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.out)
				return <-readErr
			}
			line = l
		}

		quit, err := c.execute(line)
		if err != nil {
			slog.Debug("Command rejected", "line", line, "error", err)
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// readLines scans c.in on its own goroutine. lines is closed at end of
// input, after the scan error (possibly nil) is sent on the error channel.
func (c *Console) readLines(done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// execute runs one command line and reports whether the console should stop.
func (c *Console) execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "bill":
		v, err := floatArg(cmd, args)
		if err != nil {
			return false, err
		}
		c.engine.SetBillAmount(v)
	case "tip":
		v, err := floatArg(cmd, args)
		if err != nil {
			return false, err
		}
		c.engine.SetTipPercentage(v)
	case "people":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: people <n>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("people: %q is not a whole number", args[0])
		}
		c.engine.SetPartySize(n)
	case "currency":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: currency <code>")
		}
		return false, c.engine.SetCurrency(args[0])
	case "calc", "calculate":
		c.engine.ToggleResultsVisible()
	case "show":
		fmt.Fprint(c.out, view.Render(c.engine.Snapshot()).String())
	case "currencies":
		for _, code := range currency.All() {
			fmt.Fprintf(c.out, "  %s  %s\n", code, code.Name())
		}
	case "reset":
		c.engine.Reset()
	case "help", "?":
		fmt.Fprint(c.out, usage)
	case "quit", "exit", "q":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return false, nil
}

func floatArg(cmd string, args []string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s <number>", cmd)
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", cmd, args[0])
	}
	return v, nil
}
