package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/piggyhop/internal/config"
	"github.com/vovakirdan/piggyhop/internal/game"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Describe the level catalog",
	Long: `Shows every level of the catalog: coins, trampolines, moving platform
speed and time limit. Random coin and trampoline positions depend on --seed.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	exitOnError("loading config", err)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	catalog := game.BuildCatalog(cfg, rand.New(rand.NewSource(seed))) //#nosec G404 -- level layout, not security
	scaling := config.NewScaling(cfg)

	fmt.Printf("Levels (seed %d):\n", seed)
	fmt.Println()
	fmt.Printf("  %-5s  %-5s  %-11s  %-5s  %s\n", "Level", "Coins", "Trampolines", "Speed", "Time")
	fmt.Printf("  %-5s  %-5s  %-11s  %-5s  %s\n", "-----", "-----", "-----------", "-----", "----")

	for n := 1; n <= catalog.Len(); n++ {
		t, _ := catalog.Template(n)
		fmt.Printf("  %-5d  %-5d  %-11d  %-5s  %ds\n",
			t.Number, len(t.Collectibles), len(t.Trampolines),
			fmt.Sprintf("%.2f", scaling.PlatformSpeed(n)), t.TimeLimit)
	}

	fmt.Println()
	fmt.Printf("Lives: %d  |  Upgrade base cost: %d (x%g per purchase)\n",
		cfg.Progression.Lives, cfg.Upgrades.BaseCost, cfg.Upgrades.CostGrowth)
}
