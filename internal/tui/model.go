package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwlog "github.com/msto63/numfmt/foundation/core/log"
	"github.com/msto63/numfmt/foundation/utils/numx"
)

// Setting selects which value the up/down keys change
type Setting int

const (
	SettingPrecision Setting = iota
	SettingDigits
)

// Bounds for the adjustable settings
const (
	MinPrecision = -20
	MaxPrecision = 100
	MaxDigits    = 100
	maxHistory   = 10
)

// Options configure the explorer
type Options struct {
	Precision         int
	SignificantDigits int
	Epsilon           float64
	Logger            *mdwlog.Logger
}

// Model is the explorer TUI model
type Model struct {
	// State
	width  int
	height int
	focus  Setting

	// Components
	input textinput.Model

	opts    Options
	result  Result
	history []Result
}

// NewModel creates a new explorer model
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = mdwlog.Discard()
	}

	ti := textinput.New()
	ti.Placeholder = "Zahl eingeben, z.B. -0.00123 oder 1.5e10"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return Model{
		input:   ti,
		opts:    opts,
		history: []Result{},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.focus = (m.focus + 1) % 2
			return m, nil

		case "up":
			m.adjust(1)
			return m, nil

		case "down":
			m.adjust(-1)
			return m, nil

		case "enter":
			if m.result.Valid() {
				m.record()
				m.input.Reset()
				m.result = Result{}
			}
			return m, nil

		case "ctrl+l":
			m.history = []Result{}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Width > 10 {
			m.input.Width = msg.Width - 10
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.result = Evaluate(m.input.Value(), m.opts)
	return m, cmd
}

// adjust changes the focused setting by delta and re-evaluates the input
func (m *Model) adjust(delta int) {
	switch m.focus {
	case SettingPrecision:
		m.opts.Precision = clamp(m.opts.Precision+delta, MinPrecision, MaxPrecision)
	case SettingDigits:
		m.opts.SignificantDigits = clamp(m.opts.SignificantDigits+delta, 0, MaxDigits)
	}
	m.result = Evaluate(m.input.Value(), m.opts)
}

func (m *Model) record() {
	m.opts.Logger.Debug("numeral recorded", mdwlog.Fields{
		"input": m.result.Input,
		"fixed": m.result.Fixed,
	})
	m.history = append([]Result{m.result}, m.history...)
	if len(m.history) > maxHistory {
		m.history = m.history[:maxHistory]
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(RenderTitle("numfmt"))
	s.WriteString("\n")
	s.WriteString(m.renderSettings())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")

	if !m.result.Empty() {
		s.WriteString(BoxStyle.Render(m.renderResult()))
		s.WriteString("\n")
	}

	if len(m.history) > 0 {
		s.WriteString(m.renderHistory())
		s.WriteString("\n")
	}

	s.WriteString(RenderHelp("Tab: Einstellung wählen • ↑/↓: ändern • Enter: merken • Ctrl+L: Verlauf leeren • Esc: Beenden"))
	return s.String()
}

func (m Model) renderSettings() string {
	tabs := []string{
		fmt.Sprintf("Nachkommastellen: %d", m.opts.Precision),
		fmt.Sprintf("Signifikante Stellen: %d", m.opts.SignificantDigits),
	}

	var rendered []string
	for i, tab := range tabs {
		if Setting(i) == m.focus {
			rendered = append(rendered, ActiveTabStyle.Render(tab))
		} else {
			rendered = append(rendered, TabStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderResult() string {
	r := m.result
	var rows []string

	if r.SplitErr != nil {
		rows = append(rows, RenderError(r.SplitErr.Error()))
	} else {
		sign := r.Split.Sign
		if sign == "" {
			sign = "+"
		}
		rows = append(rows,
			renderRow("Vorzeichen", sign),
			renderRow("Ziffern", fmt.Sprint(r.Split.Coefficients)),
			renderRow("Exponent", fmt.Sprint(r.Split.Exponent)),
			renderRow(fmt.Sprintf("Gerundet(%d)", m.opts.SignificantDigits), HighlightStyle.Render(r.Rounded.String())),
		)
	}

	if r.ValueErr != nil {
		if r.SplitErr == nil {
			rows = append(rows, RenderError(r.ValueErr.Error()))
		}
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	rows = append(rows,
		renderRow(fmt.Sprintf("Fest(%d)", m.opts.Precision), HighlightStyle.Render(r.Fixed)),
		renderRow("Ganzzahl", fmt.Sprint(r.Integer)),
		renderRow("Signum", fmt.Sprint(r.Sign)),
	)
	if r.Log2Err != nil {
		rows = append(rows, renderRow("log2", ErrorMessageStyle.Render(r.Log2Err.Error())))
	} else {
		rows = append(rows, renderRow("log2", numx.FormatNumber(r.Log2)))
	}

	if len(m.history) > 0 && m.history[0].Valid() {
		last := m.history[0]
		equal := numx.NearlyEqual(r.Value, last.Value, m.opts.Epsilon)
		rows = append(rows, renderRow("≈ "+last.Input, fmt.Sprint(equal)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderHistory() string {
	lines := []string{SubtitleStyle.Render("Verlauf")}
	for _, r := range m.history {
		lines = append(lines, HistoryStyle.Render(fmt.Sprintf("%s → %s", r.Input, r.Fixed)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Precision returns the current fixed notation precision
func (m Model) Precision() int {
	return m.opts.Precision
}

// SignificantDigits returns the current significant digit precision
func (m Model) SignificantDigits() int {
	return m.opts.SignificantDigits
}

// History returns the recorded results, newest first
func (m Model) History() []Result {
	return m.history
}

// Current returns the result for the text currently typed
func (m Model) Current() Result {
	return m.result
}
