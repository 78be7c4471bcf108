package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathtrainer",
	Short: "Multiplication and division drills in the terminal",
	Long: "Math Trainer: pick the times tables to practice, then answer multiple-choice\n" +
		"multiplication and division problems while accuracy, streaks and time are tracked.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides MATHTRAINER_DB env var)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text or json")
	pf.String("log-file", "", "Log file used while the TUI runs (default $XDG_STATE_HOME/mathtrainer/mathtrainer.log)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
