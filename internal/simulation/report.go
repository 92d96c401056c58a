package simulation

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
)

// Report summarizes a batch of simulated sessions
type Report struct {
	Seed    uint64         `yaml:"seed,omitempty"`
	Runs    []Run          `yaml:"runs"`
	Endings map[string]int `yaml:"endings"`
	Failed  int            `yaml:"failed"`
}

// Run is the outcome of one simulated session
type Run struct {
	SessionID   string              `yaml:"session_id"`
	Character   *quest.Character    `yaml:"character"`
	Card        quest.CharacterCard `yaml:"card"`
	RoutePath   []string            `yaml:"route_path"`
	Stats       quest.Stats         `yaml:"stats"`
	Events      int                 `yaml:"events"`
	EndingID    string              `yaml:"ending_id,omitempty"`
	EndingTitle string              `yaml:"ending_title,omitempty"`
	StatType    string              `yaml:"stat_type,omitempty"`
	Journal     []string            `yaml:"journal,omitempty"`
	Error       string              `yaml:"error,omitempty"`
}

func (r *Run) capture(s *quest.Session) {
	r.RoutePath = slices.Clone(s.RoutePath)
	r.Stats = s.Stats
	r.Events = len(s.History)
}

// WriteYAML writes the report as a YAML document
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "failed to encode report")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "failed to encode report")
	}
	return nil
}

// WriteText writes one line per run followed by the ending distribution
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	for i, run := range r.Runs {
		fmt.Fprintf(&b, "%3d  %-24s K%d C%d L%d  ", i+1, strings.Join(run.RoutePath, " > "),
			run.Stats.Knowledge, run.Stats.Courage, run.Stats.Luck)
		if run.Error != "" {
			fmt.Fprintf(&b, "failed: %s\n", run.Error)
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", run.EndingID, run.EndingTitle)
	}

	ids := make([]string, 0, len(r.Endings))
	for id := range r.Endings {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	b.WriteString("\nEndings:\n")
	for _, id := range ids {
		fmt.Fprintf(&b, "  %-6s %d\n", id, r.Endings[id])
	}
	if r.Failed > 0 {
		fmt.Fprintf(&b, "  failed %d\n", r.Failed)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "failed to write report")
	}
	return nil
}
