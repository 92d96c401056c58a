package builders

import (
	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character quest.Character
}

// NewCharacterBuilder creates a builder with valid answers and no stat bonuses
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: quest.Character{
			Name:         "Mia",
			Level:        quest.DefaultLevel,
			Title:        "high_school",
			Species:      "other",
			Status:       quest.StatusOutside,
			EnglishLevel: "none",
		},
	}
}

// WithName sets the name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithLevel sets the level (age)
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithTitle sets the education title
func (b *CharacterBuilder) WithTitle(title string) *CharacterBuilder {
	b.character.Title = title
	return b
}

// WithSpecies sets the field of study
func (b *CharacterBuilder) WithSpecies(species string) *CharacterBuilder {
	b.character.Species = species
	return b
}

// WithStatus sets the visa status, which decides the starting route
func (b *CharacterBuilder) WithStatus(status string) *CharacterBuilder {
	b.character.Status = status
	return b
}

// WithEnglishLevel sets the English level
func (b *CharacterBuilder) WithEnglishLevel(level string) *CharacterBuilder {
	b.character.EnglishLevel = level
	return b
}

// WithWork sets work experience; the guild only counts for unrelated work
func (b *CharacterBuilder) WithWork(years int, related bool, guild string) *CharacterBuilder {
	b.character.WorkExperience = years
	b.character.WorkRelated = related
	b.character.Guild = guild
	return b
}

// Build returns a pointer to a copy of the built character
func (b *CharacterBuilder) Build() *quest.Character {
	c := b.character
	return &c
}
