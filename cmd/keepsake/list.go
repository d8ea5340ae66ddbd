package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avoskres/tui-keepsake/internal/card"
	"github.com/avoskres/tui-keepsake/internal/scene"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the scenes a deck contains",
	Long:  `Loads the deck and prints its scenes in play order.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	deck, err := card.Load(flagDeckPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading deck: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Deck: %s\n", deck.Title)
	if deck.Recipient != "" {
		fmt.Printf("For:  %s\n", deck.Recipient)
	}
	fmt.Println()

	order := deck.SceneOrder()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, id := range order {
		if len(id) > maxIDLen {
			maxIDLen = len(id)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, id := range order {
		title := "(not registered)"
		if s, createErr := scene.Create(id, &deck); createErr == nil {
			title = s.Title()
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, id, title)
	}

	fmt.Println()
	fmt.Println("Run 'keepsake show' to open the card.")
}
