package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/solution-quest/internal/repositories/content"
)

var (
	importFrom string
	importTo   string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import content CSV files into a SQLite database",
	Long: `Import copies every dataset (events, endings and character options) from a
directory of CSV files into a SQLite database usable with --content-db.
Without --from the built-in content is imported.

  Example: quest import --from ./content --to quest.db`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFrom, "from", "", "directory of <dataset>.csv files (default built-in content)")
	importCmd.Flags().StringVar(&importTo, "to", "quest.db", "SQLite database to write")
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogging(cfg, os.Stderr)

	ctx := context.Background()

	fsys := content.DefaultFS()
	if importFrom != "" {
		fsys = os.DirFS(importFrom)
	}

	csv, err := content.NewCSVSource(&content.CSVConfig{FS: fsys})
	if err != nil {
		return err
	}

	db, err := content.OpenSQLite(ctx, &content.SQLiteConfig{Path: importTo})
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	for _, dataset := range content.AllDatasets() {
		rows, err := csv.Rows(ctx, dataset)
		if err != nil {
			return err
		}
		if err := db.ReplaceDataset(ctx, dataset, rows); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %d rows\n", dataset, len(rows))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d datasets into %s\n", len(content.AllDatasets()), importTo)
	return nil
}
