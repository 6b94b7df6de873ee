package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizbox/internal/app"
	"github.com/abhisek/quizbox/internal/config"
	"github.com/abhisek/quizbox/internal/logger"
	"github.com/abhisek/quizbox/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp loads config, builds the quiz machine and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	machine, err := quiz.New(quiz.DefaultQuestions(),
		quiz.WithSource(quiz.NewSource(cfg.Seed)),
		quiz.WithLogger(log.Named("quiz")),
	)
	if err != nil {
		return fmt.Errorf("build quiz: %w", err)
	}

	log.Info("starting quizbox",
		zap.String("version", version),
		zap.String("env", cfg.Env),
		zap.Int64("seed", cfg.Seed))

	return app.Run(app.Options{
		Machine: machine,
		Logger:  log.Named("ui"),
	})
}
