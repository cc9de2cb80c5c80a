package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/numfmt/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet die interaktive TUI",
	Long: `Startet den interaktiven Zahlen-Explorer. Zur eingegebenen Zahl werden
Zerlegung, Rundung, Festkommadarstellung, Signum und log2 live angezeigt.

Navigation:
  Tab       - Einstellung wählen (Nachkommastellen / signifikante Stellen)
  ↑/↓       - Einstellung ändern
  Enter     - Zahl in den Verlauf übernehmen
  Ctrl+L    - Verlauf leeren
  Esc       - Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	model := tui.NewModel(tui.Options{
		Precision:         settings.Format.Precision,
		SignificantDigits: settings.Format.SignificantDigits,
		Epsilon:           settings.Format.Epsilon,
		Logger:            logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.ErrorWithErr("TUI failed", err)
		return err
	}
	return nil
}
