package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chomper/internal/core"
	"github.com/vovakirdan/tui-chomper/internal/games/chomper"
	"github.com/vovakirdan/tui-chomper/internal/platform/tui"
	"github.com/vovakirdan/tui-chomper/internal/registry"
	"github.com/vovakirdan/tui-chomper/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBoard      string
	flagMode       string
	flagBoardDir   string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a round",
	Long: `Start playing. Without --board and --mode an interactive selector
runs first; with either flag the round starts immediately.

Controls:
  Arrows     - Steer (primary seat)
  WASD       - Steer (second seat, versus mode)
  P          - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Modes:
  solo   - You drive the chomper, all ghosts are AI
  versus - Arrows drive the chomper, WASD drives the first ghost
  ghost  - You drive the first ghost against an AI chomper

Difficulty presets:
  easy   - 1 ghost, long power windows
  normal - 2 ghosts, standard power windows
  hard   - 4 ghosts, short power windows
  fixed  - Exactly what the config file says

Examples:
  chomper play
  chomper play --mode versus
  chomper play --board tunnels --difficulty hard
  chomper play --boards-dir ./boards --board loop
  chomper play --config ./my-chomper.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Board ID (skips the selector)")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Play mode: solo, versus, ghost (skips the selector)")
	playCmd.Flags().StringVar(&flagBoardDir, "boards-dir", "", "Directory with custom board YAML files")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "chomper"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chomper list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for the selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Wire the knobs the game reads at Reset
	chomper.SetConfigPath(flagConfig)
	chomper.SetDifficultyPreset(flagDifficulty)
	chomper.SetBoardDir(flagBoardDir)
	if flagBoard != "" {
		chomper.SetBoardID(flagBoard)
	}
	if flagMode != "" {
		chomper.SetMode(flagMode)
	}

	// Explicit flags skip the selector
	interactive := gameID == "chomper" && flagBoard == "" && flagMode == ""

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	// One session groups every round of this run in the match log
	sessionID := uuid.NewString()

	for {
		if interactive {
			selection, selErr := tui.RunChomperSelector(cfg, flagBoardDir)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}
			// User pressed back or quit
			if selection == nil {
				return
			}
			chomper.SetMode(selection.Mode.String())
			chomper.SetBoardID(selection.BoardID)
		}

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}

		backToMenu, runErr := tui.Run(game, store, cfg, localPlayer(), sessionID)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}

		// Backing out of a round reopens the selector; without one
		// there is nothing to go back to.
		if !backToMenu || !interactive {
			return
		}
	}
}
