package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
)

type questionKind int

const (
	kindText questionKind = iota
	kindChoice
)

type choice struct {
	label string
	value string
}

type question struct {
	key     string
	prompt  string
	kind    questionKind
	choices []choice
	// skip hides the question for characters it does not apply to
	skip func(c *quest.Character) bool
}

// questionnaire walks the nine character questions in order
type questionnaire struct {
	questions []question
	current   int
	character quest.Character
}

var statusLabels = map[string]string{
	quest.StatusOutside:  "I'm outside Australia",
	quest.StatusStudent:  "I'm on a student visa",
	quest.StatusWHV:      "I'm on a working holiday visa",
	quest.StatusGraduate: "I'm on a graduate visa",
}

func newQuestionnaire(options []quest.CharacterOption) *questionnaire {
	fromTable := func(optionType quest.OptionType, ids []string) []choice {
		choices := make([]choice, len(ids))
		for i, id := range ids {
			label := id
			if opt, ok := quest.FindOption(options, optionType, id); ok {
				label = opt.Text
			}
			choices[i] = choice{label: label, value: id}
		}
		return choices
	}

	experience := make([]choice, len(quest.WorkExperience))
	for i, years := range quest.WorkExperience {
		label := "None"
		switch {
		case years == 1:
			label = "1 year"
		case years > 1:
			label = fmt.Sprintf("%d+ years", years)
		}
		experience[i] = choice{label: label, value: strconv.Itoa(years)}
	}

	statuses := make([]choice, len(quest.Statuses))
	for i, status := range quest.Statuses {
		statuses[i] = choice{label: statusLabels[status], value: status}
	}

	return &questionnaire{
		character: quest.Character{Level: quest.DefaultLevel},
		questions: []question{
			{key: "name", prompt: "What is your adventurer's name?", kind: kindText},
			{key: "level", prompt: fmt.Sprintf("How old are you? (blank for %d)", quest.DefaultLevel), kind: kindText},
			{key: "title", prompt: "Your highest education", kind: kindChoice,
				choices: fromTable(quest.OptionTypeTitle, quest.Titles)},
			{key: "species", prompt: "Your field of study", kind: kindChoice,
				choices: fromTable(quest.OptionTypeSpecies, quest.Species)},
			{key: "workExperience", prompt: "Years of work experience", kind: kindChoice, choices: experience},
			{key: "workRelated", prompt: "Is your work related to your study?", kind: kindChoice,
				choices: []choice{{label: "Yes", value: "yes"}, {label: "No", value: "no"}},
				skip:    func(c *quest.Character) bool { return c.WorkExperience == 0 }},
			{key: "guild", prompt: "Which industry did you work in?", kind: kindChoice,
				choices: fromTable(quest.OptionTypeGuild, quest.Guilds),
				skip:    func(c *quest.Character) bool { return !c.AsksGuild() }},
			{key: "status", prompt: "Where are you on your journey?", kind: kindChoice, choices: statuses},
			{key: "englishLevel", prompt: "Your English level", kind: kindChoice,
				choices: fromTable(quest.OptionTypeEnglishLevel, quest.EnglishLevels)},
		},
	}
}

// question returns the current question; ok is false once every question is answered
func (q *questionnaire) question() (question, bool) {
	for q.current < len(q.questions) {
		next := q.questions[q.current]
		if next.skip == nil || !next.skip(&q.character) {
			return next, true
		}
		q.current++
	}
	return question{}, false
}

func (q *questionnaire) done() bool {
	_, ok := q.question()
	return !ok
}

// answer records the answer to the current question and advances
func (q *questionnaire) answer(value string) error {
	current, ok := q.question()
	if !ok {
		return errors.FailedPrecondition("questionnaire is complete")
	}

	value = strings.TrimSpace(value)
	c := &q.character

	switch current.key {
	case "name":
		if value == "" {
			return errors.InvalidArgument("a name is required")
		}
		c.Name = value
	case "level":
		if value == "" {
			c.Level = quest.DefaultLevel
			break
		}
		level, err := strconv.Atoi(value)
		if err != nil || level < 1 || level > 100 {
			return errors.InvalidArgument("enter an age between 1 and 100")
		}
		c.Level = level
	case "title":
		c.Title = value
	case "species":
		c.Species = value
	case "workExperience":
		years, err := strconv.Atoi(value)
		if err != nil {
			return errors.InvalidArgumentf("invalid work experience %q", value)
		}
		c.WorkExperience = years
		c.WorkRelated = false
		c.Guild = ""
	case "workRelated":
		c.WorkRelated = value == "yes"
	case "guild":
		c.Guild = value
	case "status":
		c.Status = value
	case "englishLevel":
		c.EnglishLevel = value
	}

	q.current++
	return nil
}

func (q *questionnaire) result() *quest.Character {
	c := q.character
	return &c
}
