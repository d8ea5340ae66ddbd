package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avoskres/tui-keepsake/internal/platform/tui"
	"github.com/avoskres/tui-keepsake/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Browse recorded card openings",
	Long: `Shows who opened the card, how far they got, and the survey answers
they picked along the way.`,
	Run: runProgress,
}

func runProgress(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunProgress(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running progress view: %v\n", err)
		os.Exit(1)
	}
}
