// Package content loads quest events, endings and character options from a
// tabular row source and caches them for the life of the process.
package content

//go:generate mockgen -destination=mock/mock_repository.go -package=contentmock github.com/KirkDiggler/solution-quest/internal/repositories/content Repository,Source

import (
	"context"

	"github.com/KirkDiggler/solution-quest/internal/entities/quest"
	"github.com/KirkDiggler/solution-quest/internal/errors"
)

// Dataset names. Each is one table of positional rows.
const (
	DatasetCommonEvents         = "events_common"
	DatasetFunEvents            = "events_fun"
	DatasetStudentEvents        = "events_student"
	DatasetWorkingHolidayEvents = "events_working_holiday"
	DatasetGraduateEvents       = "events_graduate"
	DatasetOffshoreEvents       = "events_offshore"
	DatasetEndings              = "endings"
	DatasetCharacterOptions     = "character_options"
)

// AllDatasets lists every dataset in import order
func AllDatasets() []string {
	return []string{
		DatasetCommonEvents,
		DatasetFunEvents,
		DatasetStudentEvents,
		DatasetWorkingHolidayEvents,
		DatasetGraduateEvents,
		DatasetOffshoreEvents,
		DatasetEndings,
		DatasetCharacterOptions,
	}
}

// DatasetForBucket returns the dataset holding a bucket's events
func DatasetForBucket(bucket quest.BucketID) (string, error) {
	switch bucket {
	case quest.BucketCommon:
		return DatasetCommonEvents, nil
	case quest.BucketFun:
		return DatasetFunEvents, nil
	case quest.BucketStudent:
		return DatasetStudentEvents, nil
	case quest.BucketWorkingHoliday:
		return DatasetWorkingHolidayEvents, nil
	case quest.BucketGraduate:
		return DatasetGraduateEvents, nil
	case quest.BucketOffshore:
		return DatasetOffshoreEvents, nil
	default:
		return "", errors.InvalidArgumentf("unknown bucket %q", bucket)
	}
}

// Source provides raw rows for a dataset. Header rows are not returned.
type Source interface {
	Rows(ctx context.Context, dataset string) ([][]string, error)
}

// Repository defines the read interface for quest content
type Repository interface {
	// LoadEvents returns every event of a bucket
	LoadEvents(ctx context.Context, input *LoadEventsInput) (*LoadEventsOutput, error)

	// LoadEndings returns every ending in file order
	LoadEndings(ctx context.Context, input *LoadEndingsInput) (*LoadEndingsOutput, error)

	// LoadCharacterOptions returns the character option table
	LoadCharacterOptions(ctx context.Context, input *LoadCharacterOptionsInput) (*LoadCharacterOptionsOutput, error)
}

// LoadEventsInput defines the request for loading a bucket
type LoadEventsInput struct {
	Bucket quest.BucketID
}

// LoadEventsOutput defines the response for loading a bucket
type LoadEventsOutput struct {
	Events []quest.EventRecord
}

// LoadEndingsInput defines the request for loading endings
type LoadEndingsInput struct{}

// LoadEndingsOutput defines the response for loading endings
type LoadEndingsOutput struct {
	Endings []quest.EndingRecord
}

// LoadCharacterOptionsInput defines the request for loading character options
type LoadCharacterOptionsInput struct{}

// LoadCharacterOptionsOutput defines the response for loading character options
type LoadCharacterOptionsOutput struct {
	Options []quest.CharacterOption
}
