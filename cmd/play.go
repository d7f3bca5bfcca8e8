package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/trivia/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game. With --category the splash and category menu are skipped
and the game starts straight away.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("category")
		var sel session.Selection
		if raw != "" {
			var err error
			sel, err = session.ParseSelection(raw)
			if err != nil {
				return err
			}
		}
		return runApp(cmd, sel)
	},
}

func init() {
	playCmd.Flags().StringP("category", "c", "", "Category to play: geography, history or all")
}
