// chomper is a terminal chase arcade: steer the chomper through a maze,
// clear the pickups, dodge (or hunt) the ghosts.
//
// Usage:
//
//	chomper list              - List available games
//	chomper play [game]       - Play a round (defaults to chomper)
//	chomper menu              - Start menu to pick games interactively
//	chomper serve             - Start SSH server for remote play
//	chomper scores [game]     - Show high scores and the round log
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.chomper/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-chomper/internal/games/chomper"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chomper",
	Short: "Chomper - a maze chase arcade in your terminal",
	Long: `Chomper is a terminal maze chase. Collect every pickup while ghosts
hunt you; grab a power pickup to turn the tables for a few seconds.

Available commands:
  list     - Show all available games
  play     - Play a round directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and the round log

Examples:
  chomper play
  chomper play --mode versus --board tunnels
  chomper menu
  chomper serve --ssh :2222
  chomper scores`,
}

// localPlayer names storage rows for local runs. SSH sessions use the
// SSH username instead.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chomper/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
