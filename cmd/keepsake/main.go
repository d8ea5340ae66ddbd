// keepsake is a terminal birthday card: an interactive sequence of scenes
// played in the terminal or served over SSH.
//
// Usage:
//
//	keepsake show              - Open the card in this terminal
//	keepsake list              - List the scenes a deck contains
//	keepsake serve             - Start SSH server for remote viewing
//	keepsake progress          - Browse recorded card openings
//	keepsake thumbs <dir>      - Generate photo thumbnails for a media dir
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible animation
//	--deck <path>   - Set deck file path (default lookup chain)
//	--db <path>     - Set database path (default: ~/.keepsake/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/avoskres/tui-keepsake/internal/scenes/candle"
	_ "github.com/avoskres/tui-keepsake/internal/scenes/finale"
	_ "github.com/avoskres/tui-keepsake/internal/scenes/quiz"
	_ "github.com/avoskres/tui-keepsake/internal/scenes/reasons"
	_ "github.com/avoskres/tui-keepsake/internal/scenes/scratch"
	_ "github.com/avoskres/tui-keepsake/internal/scenes/survey"
	_ "github.com/avoskres/tui-keepsake/internal/scenes/timeline"
	_ "github.com/avoskres/tui-keepsake/internal/scenes/unveil"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDeckPath string
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keepsake",
	Short: "A birthday card that lives in the terminal",
	Long: `keepsake plays an interactive birthday card in your terminal: a short
survey, a reveal, a photo timeline, a stubborn little quiz, candles to blow
out, and a scratch card at the end.

Available commands:
  show       - Open the card in this terminal
  list       - Show the scenes a deck contains
  serve      - Start SSH server so someone can open the card remotely
  progress   - Browse who opened the card and how far they got
  thumbs     - Generate thumbnails for a photo directory

Examples:
  keepsake show
  keepsake show --deck ./for-sam.yaml
  keepsake serve --ssh :2222
  keepsake progress
  keepsake thumbs ./photos`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDeckPath, "deck", "", "Path to deck YAML (default: ~/.keepsake/deck.yaml, ./deck.yaml, then built-in)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.keepsake/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(thumbsCmd)
}
