package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/piggyhop/internal/game"
	"github.com/vovakirdan/piggyhop/internal/platform/tui"
	"github.com/vovakirdan/piggyhop/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best finished runs, ranked by coins and level reached.

Examples:
  piggyhop scores
  piggyhop scores --limit 25
  piggyhop scores --interactive
  piggyhop scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Player for the 'mine' filter (default: OS user)")
}

func runScores(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	exitOnError("loading config", err)
	maxStars := gameCfg.Progression.MaxStars

	store, err := storage.Open(flagDBPath)
	exitOnError("opening runs database", err)
	defer store.Close()

	if flagClear {
		exitOnError("clearing runs", store.ClearRuns())
		fmt.Println("All runs deleted.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		exitOnError("running scoreboard", tui.RunScoreboard(store, playerName(), maxStars, width, height))
		return
	}

	runs, err := store.TopRuns(flagLimit)
	exitOnError("retrieving runs", err)

	fmt.Println("Top Runs - Piggy Hop")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'piggyhop play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-6s  %-5s  %-*s  %-9s  %s\n", "Rank", "Player", "Coins", "Level", maxStars, "Stars", "Outcome", "Date")
	fmt.Printf("  %-4s  %-14s  %-6s  %-5s  %-*s  %-9s  %s\n", "----", "------", "-----", "-----", maxStars, "-----", "-------", "----")

	for i, r := range runs {
		stars := "-"
		if r.Stars > 0 {
			stars = game.RatingText(r.Stars, maxStars)
		}
		fmt.Printf("  %-4d  %-14s  %-6d  %-5d  %-*s  %-9s  %s\n",
			i+1, r.Player, r.Coins, r.Level, maxStars, stars, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, statsErr := store.Stats(); statsErr == nil {
		fmt.Printf("Best: %d coins  |  Runs: %d  |  Completed: %d  |  Avg coins: %.1f\n",
			stats.HighScore, stats.Runs, stats.Completed, stats.AvgCoins)
	}
}
