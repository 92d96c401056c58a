package content

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
)

// Minimum field counts. Shorter rows are dropped.
const (
	minEventFields  = 9
	minEndingFields = 8
	minOptionFields = 3
)

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parsePriority treats missing, zero and unparsable values as 1
func parsePriority(s string) int {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || p == 0 {
		return 1
	}
	return p
}

func parseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func parseCategory(s string) quest.Category {
	switch {
	case s == "":
		return quest.CategoryRoute
	case strings.EqualFold(s, string(quest.CategoryLocal)):
		return quest.CategoryLocal
	case strings.EqualFold(s, string(quest.CategoryRoute)):
		return quest.CategoryRoute
	default:
		return quest.Category(s)
	}
}

// decodeEvents converts rows to events and reports how many rows were dropped
func decodeEvents(rows [][]string) ([]quest.EventRecord, int) {
	events := make([]quest.EventRecord, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		if len(row) < minEventFields {
			dropped++
			continue
		}

		courseType := field(row, 9)
		if courseType == "" {
			courseType = quest.CourseTypeAll
		}

		events = append(events, quest.EventRecord{
			ID:          field(row, 0),
			Title:       field(row, 1),
			Description: field(row, 2),
			Options: [3]quest.Option{
				{Text: field(row, 3), Effect: field(row, 4)},
				{Text: field(row, 5), Effect: field(row, 6)},
				{Text: field(row, 7), Effect: field(row, 8)},
			},
			CourseType: courseType,
			Tags:       parseTags(field(row, 10)),
			Category:   parseCategory(field(row, 11)),
			Priority:   parsePriority(field(row, 12)),
		})
	}

	return events, dropped
}

func decodeEndings(rows [][]string) ([]quest.EndingRecord, int) {
	endings := make([]quest.EndingRecord, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		if len(row) < minEndingFields {
			dropped++
			continue
		}

		endings = append(endings, quest.EndingRecord{
			ID:            field(row, 0),
			Title:         field(row, 1),
			Description:   field(row, 2),
			StatCondition: field(row, 3),
			StatType:      field(row, 4),
			Route:         field(row, 5),
			Priority:      parsePriority(field(row, 6)),
			CTA:           field(row, 7),
		})
	}

	return endings, dropped
}

func decodeOptions(rows [][]string) ([]quest.CharacterOption, int) {
	options := make([]quest.CharacterOption, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		if len(row) < minOptionFields {
			dropped++
			continue
		}

		options = append(options, quest.CharacterOption{
			Type:         quest.OptionType(field(row, 0)),
			ID:           field(row, 1),
			Text:         field(row, 2),
			StatModifier: field(row, 3),
			Description:  field(row, 4),
		})
	}

	return options, dropped
}
