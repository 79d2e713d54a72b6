// riddlegrid-tui plays the nine-tile riddle board in a terminal.
//
// Usage:
//
//	riddlegrid-tui play     - Play the board in this terminal
//	riddlegrid-tui serve    - Start SSH server for remote play
//
// Global flags:
//
//	--deck <path>  - Riddle deck YAML (default: ./configs/deck.yaml, then built-in)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"riddlegrid/internal/deck"
)

var flagDeckPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "riddlegrid-tui",
	Short: "Riddle Grid - Unlock the map one riddle at a time",
	Long: `Riddle Grid hides a picture behind nine locked tiles. Each tile
opens a riddle; answer it to reveal that piece of the picture.

Available commands:
  play     - Play the board in this terminal
  serve    - Start SSH server for remote play

Examples:
  riddlegrid-tui play
  riddlegrid-tui play --deck ./my-deck.yaml
  riddlegrid-tui serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDeckPath, "deck", "", "Path to riddle deck YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

func loadDeck() (deck.Deck, error) {
	d, err := deck.Load(flagDeckPath)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("load deck: %w", err)
	}
	return d, nil
}
