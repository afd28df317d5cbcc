package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/pairs/internal/store"
)

var scoresClear bool

// scoresCmd represents the scores command
var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded best results",
	RunE: func(cmd *cobra.Command, args []string) error {
		if scoresClear {
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Println("scores cleared")
			return nil
		}

		entries, err := store.Load()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No games recorded yet. Run 'pairs play' to get on the board.")
			return nil
		}

		bold := color.New(color.Bold)
		stars := color.New(color.FgYellow)
		faint := color.New(color.Faint)

		bold.Println("    RATING  MOVES  PAIRS  TIME  PLAYED")
		for i, e := range entries {
			fmt.Printf("%2d. %s  %5d  %5d  %3ds  %s\n",
				i+1,
				stars.Sprint(starString(e.Stars)),
				e.Moves,
				e.Pairs,
				e.Seconds,
				faint.Sprint(e.PlayedAt.Local().Format(time.DateOnly)),
			)
		}
		return nil
	},
}

func starString(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 3 {
		n = 3
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 3-n)
}

func init() {
	scoresCmd.Flags().BoolVar(&scoresClear, "clear", false, "delete all recorded results")
	RootCmd.AddCommand(scoresCmd)
}
