package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/solution-quest/internal/errors"
	"github.com/KirkDiggler/solution-quest/internal/tui"
)

var logFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the quest in the terminal",
	Long: `Play runs the full-screen quest: character questionnaire, events, route
transitions and the ending. Logs go to --log-file so they do not disturb the screen.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&logFile, "log-file", "quest.log", "file receiving logs while playing")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to open log file").
			WithMeta("path", logFile)
	}
	defer func() {
		_ = f.Close() // nolint:errcheck // safe to ignore in cleanup
	}()
	setupLogging(cfg, f)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	return tui.Run(tui.New(ctx, a.orchestrator))
}
