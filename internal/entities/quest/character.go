package quest

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/solution-quest/internal/errors"
)

// DefaultLevel is used when the questionnaire leaves the level blank
const DefaultLevel = 18

// Status values from the questionnaire
const (
	StatusOutside  = "outside"
	StatusStudent  = "student"
	StatusWHV      = "whv"
	StatusGraduate = "graduate"
)

// Allowed questionnaire answers
var (
	Titles         = []string{"high_school", "diploma", "bachelor", "master", "phd"}
	Species        = []string{"business", "engineering", "it", "arts", "music", "health", "education", "science", "other"}
	Guilds         = []string{"admin_sales", "healthcare", "engineering", "retail", "hospitality", "teaching", "government", "other"}
	Statuses       = []string{StatusOutside, StatusStudent, StatusWHV, StatusGraduate}
	EnglishLevels  = []string{"none", "basic", "strong", "excellent"}
	WorkExperience = []int{0, 1, 2, 3, 5, 10}
)

// Character is the player's answers to the nine creation questions
type Character struct {
	Name           string `json:"name" yaml:"name"`
	Level          int    `json:"level" yaml:"level"`
	Title          string `json:"title" yaml:"title"`
	Species        string `json:"species" yaml:"species"`
	WorkExperience int    `json:"work_experience" yaml:"work_experience"`
	WorkRelated    bool   `json:"work_related" yaml:"work_related"`
	Guild          string `json:"guild,omitempty" yaml:"guild,omitempty"`
	Status         string `json:"status" yaml:"status"`
	EnglishLevel   string `json:"english_level" yaml:"english_level"`
}

// AsksGuild reports whether the guild question applies to this character.
// Only unrelated work experience earns a guild.
func (c *Character) AsksGuild() bool {
	return c.WorkExperience > 0 && !c.WorkRelated
}

// EffectiveGuild returns the guild when it applies, empty otherwise
func (c *Character) EffectiveGuild() string {
	if !c.AsksGuild() {
		return ""
	}
	return c.Guild
}

// StartingRoute maps the questionnaire status to the first route
func (c *Character) StartingRoute() Route {
	switch c.Status {
	case StatusStudent:
		return RouteStudent
	case StatusWHV:
		return RouteWorkingHoliday
	case StatusGraduate:
		return RouteGraduate
	default:
		return RouteOffshore
	}
}

// Validate checks every answer against the allowed option sets
func (c *Character) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", c.Name, vb)
	errors.ValidateMaxLength("name", c.Name, 40, vb)
	errors.ValidateRange("level", c.Level, 1, 100, vb)
	errors.ValidateEnum("title", c.Title, Titles, vb)
	errors.ValidateEnum("species", c.Species, Species, vb)
	if !slices.Contains(WorkExperience, c.WorkExperience) {
		vb.Fieldf("workExperience", "must be one of: %s", joinInts(WorkExperience))
	}
	if c.AsksGuild() {
		errors.ValidateEnum("guild", c.Guild, Guilds, vb)
	}
	errors.ValidateEnum("status", c.Status, Statuses, vb)
	errors.ValidateEnum("englishLevel", c.EnglishLevel, EnglishLevels, vb)

	return vb.Build()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// OptionType names the questionnaire attribute an option belongs to
type OptionType string

// Option types carrying stat modifiers or card text
const (
	OptionTypeTitle        OptionType = "title"
	OptionTypeSpecies      OptionType = "species"
	OptionTypeGuild        OptionType = "guild"
	OptionTypeEnglishLevel OptionType = "englishLevel"
)

// CharacterOption is one row of the character option table
type CharacterOption struct {
	Type         OptionType `json:"type" yaml:"type"`
	ID           string     `json:"id" yaml:"id"`
	Text         string     `json:"text" yaml:"text"`
	StatModifier string     `json:"stat_modifier,omitempty" yaml:"stat_modifier,omitempty"`
	Description  string     `json:"description,omitempty" yaml:"description,omitempty"`
}

// FindOption returns the option of the given type and id
func FindOption(options []CharacterOption, optionType OptionType, id string) (CharacterOption, bool) {
	for _, opt := range options {
		if opt.Type == optionType && opt.ID == id {
			return opt, true
		}
	}
	return CharacterOption{}, false
}

// SelectedOptions returns the option records matching the character's answers,
// in title, species, guild, englishLevel order. Unknown answers are skipped.
func (c *Character) SelectedOptions(options []CharacterOption) []CharacterOption {
	wanted := []struct {
		optionType OptionType
		id         string
	}{
		{OptionTypeTitle, c.Title},
		{OptionTypeSpecies, c.Species},
		{OptionTypeGuild, c.EffectiveGuild()},
		{OptionTypeEnglishLevel, c.EnglishLevel},
	}

	var selected []CharacterOption
	for _, w := range wanted {
		if w.id == "" {
			continue
		}
		if opt, ok := FindOption(options, w.optionType, w.id); ok {
			selected = append(selected, opt)
		}
	}
	return selected
}

// CharacterCard is the descriptive summary shown after creation
type CharacterCard struct {
	Name       string   `json:"name" yaml:"name"`
	Rank       string   `json:"rank" yaml:"rank"`
	Archetypes []string `json:"archetypes" yaml:"archetypes"`
	Experience string   `json:"experience" yaml:"experience"`
	Journey    string   `json:"journey" yaml:"journey"`
}

// NewCharacterCard builds the card text from the character and the option table
func NewCharacterCard(c *Character, options []CharacterOption) CharacterCard {
	card := CharacterCard{
		Name:       c.Name,
		Rank:       rankForLevel(c.Level),
		Experience: experienceText(c.WorkExperience),
		Journey:    journeyText(c.Status),
	}

	for _, opt := range c.SelectedOptions(options) {
		line := opt.Text
		if opt.Description != "" {
			line = fmt.Sprintf("%s: %s", opt.Text, opt.Description)
		}
		card.Archetypes = append(card.Archetypes, line)
	}

	return card
}

func rankForLevel(level int) string {
	switch {
	case level <= 20:
		return "Bronze Adventurer"
	case level <= 25:
		return "Silver Explorer"
	case level <= 30:
		return "Gold Pathfinder"
	case level <= 35:
		return "Platinum Challenger"
	default:
		return "Diamond Voyager"
	}
}

func experienceText(years int) string {
	switch years {
	case 0:
		return "fresh adventurer spirit, ready to learn"
	case 1:
		return "one season of experience gained"
	case 2:
		return "two seasons of growing skill"
	case 3:
		return "three seasons of proven experience"
	case 5:
		return "five seasons of mastery"
	default:
		return "ten seasons of legendary skill"
	}
}

func journeyText(status string) string {
	switch status {
	case StatusOutside:
		return "planning their journey from afar"
	case StatusStudent:
		return "currently studying in the realm"
	case StatusWHV:
		return "exploring while working in the realm"
	default:
		return "completed studies, seeking new paths"
	}
}
