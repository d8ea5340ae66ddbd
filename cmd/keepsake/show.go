package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/core"
	"github.com/avoskres/tui-keepsake/internal/platform/tui"
	"github.com/avoskres/tui-keepsake/internal/storage"
)

var flagRecipient string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Open the card in this terminal",
	Long: `Play the card's scenes in order in the current terminal.

Controls:
  Arrows/WASD  - Move / browse
  Enter/Space  - Confirm / advance
  B            - Blow at the candles
  Tab          - Skip the current scene
  Mouse        - Scratch the card, chase the button
  Q/Ctrl+C     - Quit

Examples:
  keepsake show
  keepsake show --deck ./for-sam.yaml
  keepsake show --recipient Sam`,
	Run: runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagRecipient, "recipient", "", "Recipient name (skips the name prompt)")
}

func runShow(_ *cobra.Command, _ []string) {
	deck, err := card.Load(flagDeckPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading deck: %v\n", err)
		os.Exit(1)
	}
	if flagRecipient != "" {
		deck.Recipient = flagRecipient
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open storage; the card still plays if this fails
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(&deck, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running card: %v\n", err)
		os.Exit(1)
	}
}
