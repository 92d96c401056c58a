package quest

import (
	"fmt"
	"strings"
)

// BucketID names a pool of events
type BucketID string

// Event buckets
const (
	BucketCommon         BucketID = "common"
	BucketFun            BucketID = "fun"
	BucketStudent        BucketID = "student"
	BucketWorkingHoliday BucketID = "workingHoliday"
	BucketGraduate       BucketID = "graduate"
	BucketOffshore       BucketID = "offshore"
)

// AllBuckets lists every event bucket
func AllBuckets() []BucketID {
	return []BucketID{
		BucketCommon,
		BucketFun,
		BucketStudent,
		BucketWorkingHoliday,
		BucketGraduate,
		BucketOffshore,
	}
}

// Category separates regular route events from the closing Local event
type Category string

// Event categories
const (
	CategoryRoute Category = "Route"
	CategoryLocal Category = "Local"
)

// CourseTypeAll marks an event available to every course
const CourseTypeAll = "All"

// EndingRouteAll marks an ending available on every route
const EndingRouteAll = "All"

// Option is one of the three answers of an event
type Option struct {
	Text   string `json:"text" yaml:"text"`
	Effect string `json:"effect" yaml:"effect"`
}

// EventRecord is a single narrative event. IDs are unique within a bucket only.
type EventRecord struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Options     [3]Option `json:"options" yaml:"options"`
	CourseType  string    `json:"course_type" yaml:"course_type"`
	Tags        []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Category    Category  `json:"category" yaml:"category"`
	Priority    int       `json:"priority" yaml:"priority"`
}

// IsLocal reports whether choosing any option of this event ends the route
func (e *EventRecord) IsLocal() bool {
	return e.Category == CategoryLocal
}

// EndingRecord is one possible outcome of the quest
type EndingRecord struct {
	ID            string `json:"id" yaml:"id"`
	Title         string `json:"title" yaml:"title"`
	Description   string `json:"description" yaml:"description"`
	StatCondition string `json:"stat_condition" yaml:"stat_condition"`
	StatType      string `json:"stat_type" yaml:"stat_type"`
	Route         string `json:"route" yaml:"route"`
	Priority      int    `json:"priority" yaml:"priority"`
	CTA           string `json:"cta" yaml:"cta"`
}

// ArtKey returns the image asset name for the ending, e.g. ending_strategic.png
func (e *EndingRecord) ArtKey() string {
	return fmt.Sprintf("ending_%s.png", strings.ToLower(e.StatType))
}

// Emblem returns the badge shown next to the ending's stat type
func (e *EndingRecord) Emblem() string {
	switch strings.ToLower(e.StatType) {
	case "strategic":
		return "🧠"
	case "adventurous":
		return "🔥"
	case "serendipity":
		return "🍀"
	case "harmonious":
		return "⚖️"
	default:
		return "⭐"
	}
}
