// Package main is the entry point for the quest command
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "SOLution quest narrative quiz",
	Long: `Quest builds a character from a short questionnaire, walks it through
randomly drawn events on each visa route and reveals the ending its stats earn.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", "", "dotenv file to load (default .env when present)")
	flags.StringVar(&contentDir, "content-dir", "", "directory of content CSV files (overrides QUEST_CONTENT_DIR)")
	flags.StringVar(&contentDB, "content-db", "", "SQLite content database (overrides QUEST_CONTENT_DB)")
	flags.StringVar(&redisAddr, "redis-addr", "", "Redis address for the shared content cache (overrides QUEST_REDIS_ADDR)")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides QUEST_LOG_LEVEL)")
	flags.Uint64Var(&seed, "seed", 0, "seed for reproducible draws (overrides QUEST_SEED)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(cacheCmd)
}
