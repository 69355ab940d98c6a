package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chomper/internal/registry"
	"github.com/vovakirdan/tui-chomper/internal/storage"
)

var (
	flagScoresLimit   int
	flagScoresMatches int
	flagScoresSession string
	flagScoresClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and the round log",
	Long: `Without arguments, shows per-game statistics plus the latest rounds.
With a game ID, shows its top scores.

Examples:
  chomper scores
  chomper scores chomper
  chomper scores chomper --limit 25
  chomper scores --matches 20
  chomper scores --session 8f14e45f-ce22-4f6c-9b3c-1c1d9a6adf10
  chomper scores chomper --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "How many top scores to show")
	scoresCmd.Flags().IntVar(&flagScoresMatches, "matches", 0, "Show the last N rounds instead of scores")
	scoresCmd.Flags().StringVar(&flagScoresSession, "session", "", "Show the rounds of one session ID")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the given game")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a game ID")
			os.Exit(1)
		}
		if err := store.ClearScores(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %q.\n", args[0])
		return
	}

	if flagScoresSession != "" {
		entries, err := store.SessionMatches(flagScoresSession, maxLogRows(flagScoresMatches))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Rounds in session %s\n\n", flagScoresSession)
		printMatchLog(entries)
		return
	}

	if flagScoresMatches > 0 {
		entries, err := store.RecentMatches(flagScoresMatches)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Last %d rounds\n\n", flagScoresMatches)
		printMatchLog(entries)
		return
	}

	if len(args) == 0 {
		printOverview(store)
		return
	}

	printGameScores(store, args[0])
}

// maxLogRows keeps session listings bounded when --matches was not given.
func maxLogRows(n int) int {
	if n > 0 {
		return n
	}
	return 50
}

// printOverview shows aggregated stats for every game plus the latest rounds.
func printOverview(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'chomper play' to set the first high score!")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Game statistics:")
	fmt.Println()
	fmt.Printf("  %-12s  %-7s  %-8s  %-8s  %s\n", "Game", "Rounds", "Best", "Avg", "Last played")
	fmt.Printf("  %-12s  %-7s  %-8s  %-8s  %s\n", "----", "------", "----", "---", "-----------")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-12s  %-7d  %-8d  %-8.0f  %s\n",
			st.GameID, st.GamesCount, st.HighScore, st.AvgScore,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}

	matches, err := store.RecentMatches(5)
	if err != nil || len(matches) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Latest rounds:")
	fmt.Println()
	printMatchLog(matches)
}

// printGameScores shows the top scores for one game.
func printGameScores(store *storage.Store, gameID string) {
	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chomper list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'chomper play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if st, err := store.GetGameStats(gameID); err == nil && st.GamesCount > 0 {
		fmt.Printf("Best: %d  |  Rounds: %d  |  Avg: %.0f\n", st.HighScore, st.GamesCount, st.AvgScore)
	}
}

// printMatchLog prints round records in a fixed-width table.
func printMatchLog(entries []storage.MatchEntry) {
	if len(entries) == 0 {
		fmt.Println("No rounds recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-10s  %-7s  %-8s  %-10s  %s\n", "Date", "Board", "Mode", "Outcome", "Player", "Score")
	fmt.Printf("  %-16s  %-10s  %-7s  %-8s  %-10s  %s\n", "----", "-----", "----", "-------", "------", "-----")
	for _, e := range entries {
		fmt.Printf("  %-16s  %-10s  %-7s  %-8s  %-10s  %d\n",
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.BoardID, e.Mode, e.Outcome, e.Player, e.Score)
	}
}
