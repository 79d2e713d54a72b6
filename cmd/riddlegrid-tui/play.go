package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"riddlegrid/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the board",
	Long: `Mount a fresh board in this terminal.

Controls:
  Arrows/hjkl  - Move between tiles
  Enter/Space  - Open the riddle on a locked tile
  Enter        - Submit an answer
  Esc          - Close the riddle
  Q/Ctrl+C     - Quit

Examples:
  riddlegrid-tui play
  riddlegrid-tui play --deck ./configs/deck.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	d, err := loadDeck()
	if err != nil {
		return err
	}

	handedOff := false
	model, err := tui.NewModel(d, func() { handedOff = true })
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		go program.Send(tea.WindowSizeMsg{Width: w, Height: h})
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}

	if handedOff {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", d.CompleteTitle, d.CompleteMessage)
	}
	return nil
}
