package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizbox",
	Short: "Multiple-choice quiz in your terminal",
	Long:  "Quizbox is a small terminal quiz. Answer random multiple-choice questions and see your score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default ./config/config.yaml or $XDG_CONFIG_HOME/quizbox/config.yaml)")
	flags.Int64("seed", 0, "Random seed for question order (0 = seed from clock; overrides QUIZBOX_SEED)")
	flags.String("log-file", "", "Write debug logs to this file (overrides QUIZBOX_LOG_FILE)")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}
