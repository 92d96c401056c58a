package testutils

import (
	"fmt"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/testutils/builders"
)

// TestContent is a content set held in memory, keyed by bucket
type TestContent struct {
	Events  map[quest.BucketID][]quest.EventRecord
	Endings []quest.EndingRecord
	Options []quest.CharacterOption
}

// CreateTestContent returns enough content for three full routes. Every event
// has no-op effects, so stats only change through character bonuses unless a
// test rewrites an effect.
func CreateTestContent() *TestContent {
	return &TestContent{
		Events: map[quest.BucketID][]quest.EventRecord{
			quest.BucketCommon:         CreateTestEvents("C", 6),
			quest.BucketFun:            CreateTestEvents("F", 3),
			quest.BucketOffshore:       createRouteEvents("O"),
			quest.BucketStudent:        createRouteEvents("S"),
			quest.BucketWorkingHoliday: createRouteEvents("W"),
			quest.BucketGraduate:       createRouteEvents("G"),
		},
		Endings: []quest.EndingRecord{
			builders.NewEndingBuilder("E01").
				WithCondition("Knowledge >= 4").WithStatType("Strategic").WithPriority(1).Build(),
			builders.NewEndingBuilder("E02").
				WithCondition("Balanced").WithStatType("Harmonious").WithPriority(2).Build(),
			builders.NewEndingBuilder("E03").
				WithCondition("Luck >= 4").WithStatType("Serendipity").WithRoute(quest.RouteWorkingHoliday).Build(),
		},
		Options: CreateTestCharacterOptions(),
	}
}

// CreateTestEvents returns n Route events with ids <prefix>01..
func CreateTestEvents(prefix string, n int) []quest.EventRecord {
	events := make([]quest.EventRecord, n)
	for i := range n {
		events[i] = builders.NewEventBuilder(fmt.Sprintf("%s%02d", prefix, i+1)).Build()
	}
	return events
}

// createRouteEvents returns three Route events followed by one Local event
func createRouteEvents(prefix string) []quest.EventRecord {
	return append(CreateTestEvents(prefix, 3), builders.NewEventBuilder(prefix+"L1").AsLocal().Build())
}

// CreateTestCharacterOptions returns the option table with the default bonuses
func CreateTestCharacterOptions() []quest.CharacterOption {
	opt := func(t quest.OptionType, id, text, modifier string) quest.CharacterOption {
		return quest.CharacterOption{Type: t, ID: id, Text: text, StatModifier: modifier}
	}

	return []quest.CharacterOption{
		opt(quest.OptionTypeTitle, "high_school", "High School: Novice", ""),
		opt(quest.OptionTypeTitle, "bachelor", "Bachelor: Apprentice", "K+2"),
		opt(quest.OptionTypeTitle, "master", "Master: Adept", "K+3"),
		opt(quest.OptionTypeTitle, "phd", "PhD: Sage", "K+4"),
		opt(quest.OptionTypeSpecies, "business", "Business: Merchant", "C+1"),
		opt(quest.OptionTypeSpecies, "arts", "Arts: Bard", "L+1"),
		opt(quest.OptionTypeSpecies, "science", "Science: Alchemist", "K+1"),
		opt(quest.OptionTypeSpecies, "other", "Other: Wanderer", ""),
		opt(quest.OptionTypeGuild, "retail", "Retail: Trader", ""),
		opt(quest.OptionTypeEnglishLevel, "none", "None: Silent", ""),
		opt(quest.OptionTypeEnglishLevel, "basic", "Basic: Speaker", "C+1"),
		opt(quest.OptionTypeEnglishLevel, "strong", "Strong: Orator", "K+1"),
		opt(quest.OptionTypeEnglishLevel, "excellent", "Excellent: Linguist", "K+1"),
	}
}
