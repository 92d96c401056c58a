package content

import (
	"context"
	"embed"
	"encoding/csv"
	"io"
	"io/fs"
	"strings"

	"github.com/KirkDiggler/solution-quest/internal/errors"
)

//go:embed data/*.csv
var defaultData embed.FS

// DefaultFS returns the content bundled with the binary
func DefaultFS() fs.FS {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory exists
	}
	return sub
}

// CSVSource reads <dataset>.csv files from a file system. The first record of
// every file is a header and is skipped.
type CSVSource struct {
	fsys fs.FS
}

// CSVConfig contains configuration for a CSV source
type CSVConfig struct {
	FS fs.FS
}

// Validate validates the CSVConfig
func (cfg *CSVConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.FS == nil {
		return errors.InvalidArgument("file system is required")
	}
	return nil
}

// NewCSVSource creates a CSV-backed row source
func NewCSVSource(cfg *CSVConfig) (*CSVSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &CSVSource{fsys: cfg.FS}, nil
}

// Rows returns the trimmed rows of a dataset, without the header and
// without blank lines.
func (s *CSVSource) Rows(ctx context.Context, dataset string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "read canceled")
	}

	f, err := s.fsys.Open(dataset + ".csv")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open dataset").
			WithMeta("dataset", dataset)
	}
	defer func() { _ = f.Close() }()

	return readCSV(f, dataset)
}

func readCSV(r io.Reader, dataset string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to parse dataset").
			WithMeta("dataset", dataset)
	}

	if len(records) == 0 {
		return nil, nil
	}

	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]string, len(record))
		blank := true
		for i, v := range record {
			row[i] = strings.TrimSpace(v)
			if row[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
