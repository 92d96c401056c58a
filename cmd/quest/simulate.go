package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/solution-quest/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/solution-quest/internal/errors"
	"github.com/KirkDiggler/solution-quest/internal/simulation"
)

var (
	simulateRuns   int
	simulateFormat string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Auto-play sessions with random answers",
	Long: `Simulate plays sessions with random characters, answers and destinations
and reports the route paths, final stats and endings reached.

  Example: quest simulate --runs 100 --seed 42 --format yaml`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simulateRuns, "runs", 10, "number of sessions to play")
	simulateCmd.Flags().StringVar(&simulateFormat, "format", "text", "report format: text or yaml")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if simulateFormat != "text" && simulateFormat != "yaml" {
		return errors.InvalidArgumentf("unknown format %q, want text or yaml", simulateFormat)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogging(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer a.Close()

	runner, err := simulation.New(&simulation.Config{
		Service:  a.orchestrator,
		EventBus: a.bus,
		Roller:   rpgtoolkit.NewSeededRoller(a.seed ^ 0x5bd1e995),
	})
	if err != nil {
		return err
	}

	report, err := runner.Run(ctx, &simulation.RunInput{Runs: simulateRuns})
	if err != nil {
		return err
	}
	report.Seed = a.seed

	if simulateFormat == "yaml" {
		return report.WriteYAML(cmd.OutOrStdout())
	}
	return report.WriteText(cmd.OutOrStdout())
}
