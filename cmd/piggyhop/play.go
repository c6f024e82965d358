package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/piggyhop/internal/audio"
	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/core"
	"github.com/vovakirdan/piggyhop/internal/platform/tui"
	"github.com/vovakirdan/piggyhop/internal/storage"
)

var (
	flagPlayer string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Move
  Space/Up/W       - Jump
  1 / 2            - Buy jump force / speed in the shop
  Enter            - Continue to the next level
  P/Esc            - Pause
  R                - Restart
  M / N            - Toggle music / sound
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, 30 extra seconds per level
  normal - 3 lives
  hard   - 2 lives, 15 fewer seconds per level

Without --difficulty a start menu asks for one.

Examples:
  piggyhop play
  piggyhop play --difficulty hard
  piggyhop play --config ./my-piggyhop.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your runs (default: OS user)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the audio device")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	exitOnError("loading config", err)

	logger, closeLog, err := newLogger("piggyhop", true)
	exitOnError("creating logger", err)
	defer closeLog()

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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Without --difficulty the start menu picks the preset
	if flagDifficulty == "" {
		preset, ok := pickDifficulty(store, gameCfg, width, height)
		if !ok {
			if store != nil {
				store.Close()
			}
			return
		}
		config.ApplyPreset(&gameCfg, preset)
	}

	var svc audio.Service
	if flagMute {
		svc = audio.NewSilent(gameCfg.Audio)
	} else {
		svc = audio.Open(gameCfg.Audio, logger)
	}

	runErr := tui.Run(tui.Options{
		Game:    gameCfg,
		Runtime: cfg,
		Store:   store,
		Audio:   svc,
		Logger:  logger,
		Player:  playerName(),
	})

	svc.Close()
	if store != nil {
		store.Close()
	}

	exitOnError("running game", runErr)
}

// pickDifficulty runs the start menu until a preset is chosen or the
// player quits. The scoreboard returns to the menu.
func pickDifficulty(store *storage.Store, base config.GameConfig, width, height int) (config.DifficultyPreset, bool) {
	for {
		res, err := tui.RunMenu(store, base, width, height)
		exitOnError("running menu", err)

		switch {
		case res.Quit:
			return "", false
		case res.WantsScoreboard:
			if store == nil {
				continue
			}
			exitOnError("running scoreboard", tui.RunScoreboard(store, playerName(), base.Progression.MaxStars, width, height))
		default:
			return res.Preset, true
		}
	}
}

// playerName returns the --player flag or the OS user name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "anonymous"
}
