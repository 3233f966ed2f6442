// Package tui is the interactive terminal screen of the tip calculator.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/tipcalc/internal/engine"
	"github.com/mmynk/tipcalc/internal/view"
)

// Control identifies a focusable element of the screen.
type Control int

const (
	ControlCurrency Control = iota
	ControlBillAmount
	ControlTipPercentage
	ControlPartySize
	ControlCalculate

	controlCount
)

// bigStep is how many steps pgup/pgdown move a slider.
const bigStep = 10

const helpText = "↑/↓ move • ←/→ adjust • pgup/pgdn ×10 • enter calculate • q quit"

// Model is the Bubble Tea model wrapping an Engine.
type Model struct {
	engine *engine.Engine
	focus  Control
}

// New creates a model driving e, with focus on the currency selector.
func New(e *engine.Engine) *Model {
	return &Model{engine: e}
}

// Focus returns the focused control.
func (m *Model) Focus() Control {
	return m.focus
}

// Engine returns the engine the model drives.
func (m *Model) Engine() *engine.Engine {
	return m.engine
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "shift+tab", "k":
		m.moveFocus(-1)
	case "down", "tab", "j":
		m.moveFocus(1)
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "pgdown":
		m.adjust(-bigStep)
	case "pgup":
		m.adjust(bigStep)
	case "enter", " ":
		if m.focus == ControlCalculate {
			m.engine.ToggleResultsVisible()
		}
	case "c":
		m.engine.ToggleResultsVisible()
	case "r":
		m.engine.Reset()
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	m.focus = Control((int(m.focus) + delta + int(controlCount)) % int(controlCount))
}

func (m *Model) adjust(steps int) {
	switch m.focus {
	case ControlCurrency:
		// Currency cycles one place per key press regardless of step size.
		if steps < 0 {
			m.engine.CycleCurrency(-1)
		} else {
			m.engine.CycleCurrency(1)
		}
	case ControlBillAmount:
		m.engine.NudgeBillAmount(steps)
	case ControlTipPercentage:
		m.engine.NudgeTipPercentage(steps)
	case ControlPartySize:
		m.engine.NudgePartySize(steps)
	}
}

func (m *Model) View() string {
	screen := view.Render(m.engine.Snapshot())

	var b strings.Builder
	b.WriteString(screen.Title + "\n\n")
	m.line(&b, ControlCurrency, "Currency", screen.CurrencySelector())
	m.line(&b, ControlBillAmount, "Bill Amount", screen.BillAmount)
	m.line(&b, ControlTipPercentage, "Tip Percentage", screen.TipPercentage)
	m.line(&b, ControlPartySize, "Number of People", screen.PartySize)
	b.WriteString("\n")
	m.line(&b, ControlCalculate, "[ Calculate ]", "")

	if lines := screen.Results.Lines(); len(lines) > 0 {
		b.WriteString("\n")
		for _, l := range lines {
			b.WriteString("  " + l + "\n")
		}
	}

	b.WriteString("\n" + helpText + "\n")
	return b.String()
}

func (m *Model) line(b *strings.Builder, c Control, label, value string) {
	cursor := "  "
	if m.focus == c {
		cursor = "> "
	}
	b.WriteString(cursor + label)
	if value != "" {
		b.WriteString(": " + value)
	}
	b.WriteString("\n")
}
