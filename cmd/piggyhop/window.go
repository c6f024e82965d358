package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/piggyhop/internal/platform/desktop"
	"github.com/vovakirdan/piggyhop/internal/storage"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a native window rendered with ebiten.

The window uses the same controls as the terminal. Keys are read while
held, so movement is smooth on every keyboard.

Examples:
  piggyhop window
  piggyhop window --scale 1.5 --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale")
	windowCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your runs (default: OS user)")
}

func runWindow(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	exitOnError("loading config", err)

	logger, closeLog, err := newLogger("piggyhop", false)
	exitOnError("creating logger", err)
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	runErr := desktop.Run(desktop.Options{
		Game:   gameCfg,
		Seed:   flagSeed,
		Scale:  flagScale,
		Store:  store,
		Logger: logger,
		Player: playerName(),
	})

	if store != nil {
		store.Close()
	}
	exitOnError("running window", runErr)
}
