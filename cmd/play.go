package cmd

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/pairs/internal/config"
	"github.com/idilsaglam/pairs/internal/game"
	"github.com/idilsaglam/pairs/internal/store"
	"github.com/idilsaglam/pairs/internal/tui"
)

var (
	playSeed  int64
	playPairs int
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a new game",
	Long: `Play starts an interactive board. Move with the arrow keys or hjkl,
flip with space, restart with r and quit with q. Finished games are recorded
so 'pairs scores' has something to brag about.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		symbols := make([]game.Symbol, 0, len(cfg.Symbols))
		for _, s := range cfg.Symbols {
			symbols = append(symbols, game.Symbol(s))
		}
		if playPairs > 0 && playPairs < len(symbols) {
			symbols = symbols[:playPairs]
		}

		opts := []game.Option{
			game.WithThresholds(game.Thresholds{
				ThreeStars: cfg.ThreeStarMoves,
				TwoStars:   cfg.TwoStarMoves,
			}),
		}
		if cmd.Flags().Changed("seed") {
			opts = append(opts, game.WithSeed(playSeed))
		}

		return tui.Run(game.NewSession(symbols, opts...), tui.Options{
			RevealFor: cfg.RevealWindow(),
			Record:    store.Record,
		})
	},
}

func init() {
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "shuffle seed for a reproducible board")
	playCmd.Flags().IntVar(&playPairs, "pairs", 0, "play only the first N configured symbols")
	RootCmd.AddCommand(playCmd)
}
