// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/solution-quest/internal/repositories/content"
	contentmock "github.com/KirkDiggler/solution-quest/internal/repositories/content/mock"
	"github.com/KirkDiggler/solution-quest/internal/testutils"
)

// ExpectContent serves every content load from the given test content
func ExpectContent(mockRepo *contentmock.MockRepository, c *testutils.TestContent) {
	ExpectEvents(mockRepo, c)

	mockRepo.EXPECT().
		LoadEndings(gomock.Any(), gomock.Any()).
		Return(&content.LoadEndingsOutput{Endings: c.Endings}, nil).
		AnyTimes()

	ExpectCharacterOptions(mockRepo, c)
}

// ExpectEvents serves event loads by bucket. Unknown buckets load empty.
func ExpectEvents(mockRepo *contentmock.MockRepository, c *testutils.TestContent) {
	mockRepo.EXPECT().
		LoadEvents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *content.LoadEventsInput) (*content.LoadEventsOutput, error) {
			return &content.LoadEventsOutput{Events: c.Events[input.Bucket]}, nil
		}).
		AnyTimes()
}

// ExpectCharacterOptions serves the character option table
func ExpectCharacterOptions(mockRepo *contentmock.MockRepository, c *testutils.TestContent) {
	mockRepo.EXPECT().
		LoadCharacterOptions(gomock.Any(), gomock.Any()).
		Return(&content.LoadCharacterOptionsOutput{Options: c.Options}, nil).
		AnyTimes()
}
