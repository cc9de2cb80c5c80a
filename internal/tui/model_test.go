package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	mdwerror "github.com/msto63/numfmt/foundation/core/error"
	mdwlog "github.com/msto63/numfmt/foundation/core/log"
	"github.com/msto63/numfmt/foundation/utils/numx"
)

func testOptions() Options {
	return Options{Precision: 2, SignificantDigits: 3, Epsilon: 1e-9}
}

func typeText(m Model, text string) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

func press(m Model, key tea.KeyType) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	return updated.(Model), cmd
}

func TestEvaluate(t *testing.T) {
	t.Run("negative fraction", func(t *testing.T) {
		r := Evaluate("-0.00123", testOptions())
		if r.SplitErr != nil || r.ValueErr != nil {
			t.Fatalf("Evaluate() errors = %v, %v", r.SplitErr, r.ValueErr)
		}
		if r.Split.Sign != "-" || r.Split.Exponent != -3 {
			t.Errorf("Split = %+v", r.Split)
		}
		if got := r.Rounded.String(); got != "-0.00123" {
			t.Errorf("Rounded = %q", got)
		}
		if r.Fixed != "0.00" {
			t.Errorf("Fixed = %q, want 0.00", r.Fixed)
		}
		if r.Sign != -1 || r.Integer {
			t.Errorf("Sign = %d, Integer = %v", r.Sign, r.Integer)
		}
		if !errors.Is(r.Log2Err, numx.ErrInvalidArgument) {
			t.Errorf("Log2Err = %v", r.Log2Err)
		}
	})

	t.Run("power of two", func(t *testing.T) {
		r := Evaluate("  8 ", testOptions())
		if r.Input != "8" || r.Log2 != 3 || !r.Integer || r.Fixed != "8.00" {
			t.Errorf("Evaluate() = %+v", r)
		}
	})

	t.Run("not a numeral", func(t *testing.T) {
		r := Evaluate("abc", testOptions())
		if !errors.Is(r.SplitErr, numx.ErrSyntax) {
			t.Errorf("SplitErr = %v", r.SplitErr)
		}
		if !mdwerror.HasCode(r.ValueErr, mdwerror.CodeInvalidInput) {
			t.Errorf("ValueErr = %v", r.ValueErr)
		}
		if r.Valid() {
			t.Error("Valid() = true")
		}
	})

	t.Run("numeral beyond float range", func(t *testing.T) {
		r := Evaluate("1e400", testOptions())
		if r.SplitErr != nil || r.Split.Exponent != 400 {
			t.Errorf("Split = %+v, %v", r.Split, r.SplitErr)
		}
		if r.ValueErr == nil {
			t.Error("ValueErr = nil, want range error")
		}
	})

	t.Run("exponent out of range", func(t *testing.T) {
		m := typeText(NewModel(testOptions()), "1e1000000000000000")
		r := m.Current()
		if !errors.Is(r.SplitErr, numx.ErrRange) {
			t.Errorf("SplitErr = %v", r.SplitErr)
		}
		if !strings.Contains(m.View(), "Invalid number 1e1000000000000000") {
			t.Errorf("View() missing range error:\n%s", m.View())
		}
	})

	t.Run("infinity parses but does not split", func(t *testing.T) {
		r := Evaluate("Inf", testOptions())
		if r.SplitErr == nil || r.ValueErr != nil || r.Fixed != "Infinity" {
			t.Errorf("Evaluate() = %+v", r)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if r := Evaluate("   ", testOptions()); !r.Empty() || r.Valid() {
			t.Errorf("Evaluate() = %+v", r)
		}
	})
}

func TestModelTypingEvaluates(t *testing.T) {
	m := typeText(NewModel(testOptions()), "-0.00123")

	if m.Current().Input != "-0.00123" {
		t.Fatalf("Current().Input = %q", m.Current().Input)
	}

	view := m.View()
	for _, want := range []string{"numfmt", "[1 2 3]", "-3", "-0.00123", "0.00"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModelEnterRecordsHistory(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions()
	opts.Logger = mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatLogfmt, Output: &buf})

	m := typeText(NewModel(opts), "1.5")
	m, _ = press(m, tea.KeyEnter)

	if len(m.History()) != 1 || m.History()[0].Input != "1.5" {
		t.Fatalf("History() = %+v", m.History())
	}
	if !m.Current().Empty() {
		t.Errorf("input not reset: %+v", m.Current())
	}
	if !strings.Contains(buf.String(), "numeral recorded") {
		t.Errorf("log output = %q", buf.String())
	}

	m = typeText(m, "1.5000000000001")
	if !strings.Contains(m.View(), "≈ 1.5") {
		t.Error("View() missing comparison with last entry")
	}

	m, _ = press(m, tea.KeyCtrlL)
	if len(m.History()) != 0 {
		t.Errorf("History() after Ctrl+L = %+v", m.History())
	}
}

func TestModelEnterIgnoresInvalidInput(t *testing.T) {
	m := typeText(NewModel(testOptions()), "abc")
	m, _ = press(m, tea.KeyEnter)

	if len(m.History()) != 0 {
		t.Errorf("History() = %+v", m.History())
	}
	if !strings.Contains(m.View(), "Invalid number abc") {
		t.Error("View() missing syntax error")
	}
}

func TestModelHistoryIsBounded(t *testing.T) {
	m := NewModel(testOptions())
	for i := 0; i < maxHistory+3; i++ {
		m = typeText(m, "7")
		m, _ = press(m, tea.KeyEnter)
	}
	if len(m.History()) != maxHistory {
		t.Errorf("len(History()) = %d, want %d", len(m.History()), maxHistory)
	}
}

func TestModelAdjustSettings(t *testing.T) {
	m := typeText(NewModel(testOptions()), "123.456")

	m, _ = press(m, tea.KeyUp)
	if m.Precision() != 3 || m.Current().Fixed != "123.456" {
		t.Errorf("Precision() = %d, Fixed = %q", m.Precision(), m.Current().Fixed)
	}

	m, _ = press(m, tea.KeyTab)
	m, _ = press(m, tea.KeyDown)
	if m.SignificantDigits() != 2 || m.Current().Rounded.String() != "120" {
		t.Errorf("SignificantDigits() = %d, Rounded = %s", m.SignificantDigits(), m.Current().Rounded)
	}

	for i := 0; i < 10; i++ {
		m, _ = press(m, tea.KeyDown)
	}
	if m.SignificantDigits() != 0 {
		t.Errorf("SignificantDigits() = %d, want clamped to 0", m.SignificantDigits())
	}
}

func TestModelQuit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := press(NewModel(testOptions()), key)
		if cmd == nil {
			t.Fatalf("%v: no command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: command did not quit", key)
		}
	}
}

func TestClamp(t *testing.T) {
	if clamp(5, 0, 3) != 3 || clamp(-1, 0, 3) != 0 || clamp(2, 0, 3) != 2 {
		t.Error("clamp() bounds wrong")
	}
}
