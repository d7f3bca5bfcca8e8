package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trivia",
	Short: "Terminal trivia quiz",
	Long: `Trivia is a terminal quiz game. Pick a category, answer multiple-choice
questions against a per-question countdown and get a score at the end.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (overrides TRIVIA_CONFIG env var)")
	rootCmd.PersistentFlags().String("log", "", "Write session logs to this file (overrides TRIVIA_LOG env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}
