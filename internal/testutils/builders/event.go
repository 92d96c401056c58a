// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
)

// EventBuilder provides a fluent interface for building test EventRecord instances
type EventBuilder struct {
	event quest.EventRecord
}

// NewEventBuilder creates a builder for a Route event whose options have no effect
func NewEventBuilder(id string) *EventBuilder {
	return &EventBuilder{
		event: quest.EventRecord{
			ID:          id,
			Title:       "Event " + id,
			Description: "Something happens",
			Options: [3]quest.Option{
				{Text: "First", Effect: "none"},
				{Text: "Second", Effect: "none"},
				{Text: "Third", Effect: "none"},
			},
			CourseType: quest.CourseTypeAll,
			Category:   quest.CategoryRoute,
			Priority:   1,
		},
	}
}

// WithTitle sets the title
func (b *EventBuilder) WithTitle(title string) *EventBuilder {
	b.event.Title = title
	return b
}

// WithEffects sets the effects of the three options in order
func (b *EventBuilder) WithEffects(first, second, third string) *EventBuilder {
	b.event.Options[0].Effect = first
	b.event.Options[1].Effect = second
	b.event.Options[2].Effect = third
	return b
}

// WithCourseType restricts the event to a course
func (b *EventBuilder) WithCourseType(course string) *EventBuilder {
	b.event.CourseType = course
	return b
}

// AsLocal marks the event as its route's closing event
func (b *EventBuilder) AsLocal() *EventBuilder {
	b.event.Category = quest.CategoryLocal
	return b
}

// WithTags sets the tags
func (b *EventBuilder) WithTags(tags ...string) *EventBuilder {
	b.event.Tags = tags
	return b
}

// Build returns the built event
func (b *EventBuilder) Build() quest.EventRecord {
	return b.event
}
