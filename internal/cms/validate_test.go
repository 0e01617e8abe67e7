package cms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		article Article
		errors  []string
	}{
		{
			name:    "Draft",
			article: Article{Title: "T", Content: "C"},
		},
		{
			name:    "Published",
			article: Article{Title: "T", Content: "C", PublishedAt: "2024-01-15 10:00:00"},
		},
		{
			name:    "EmptyTitle",
			article: Article{Content: "C"},
			errors:  []string{ErrTitleRequired},
		},
		{
			name:    "EmptyContent",
			article: Article{Title: "T"},
			errors:  []string{ErrContentRequired},
		},
		{
			name:    "AllRulesAccumulate",
			article: Article{PublishedAt: "yesterday"},
			errors:  []string{ErrTitleRequired, ErrContentRequired, ErrInvalidPublishedAt},
		},
		{
			name:    "DayOutOfRange",
			article: Article{Title: "T", Content: "C", PublishedAt: "2024-01-32 10:00:00"},
			errors:  []string{ErrInvalidPublishedAt},
		},
		{
			name:    "FebruaryThirtieth",
			article: Article{Title: "T", Content: "C", PublishedAt: "2024-02-30 10:00:00"},
			errors:  []string{ErrInvalidPublishedAt},
		},
		{
			name:    "HourOutOfRange",
			article: Article{Title: "T", Content: "C", PublishedAt: "2024-01-15 25:00:00"},
			errors:  []string{ErrInvalidPublishedAt},
		},
		{
			name:    "MissingSeconds",
			article: Article{Title: "T", Content: "C", PublishedAt: "2024-01-15 10:00"},
			errors:  []string{ErrInvalidPublishedAt},
		},
		{
			name:    "ISOSeparator",
			article: Article{Title: "T", Content: "C", PublishedAt: "2024-01-15T10:00:00"},
			errors:  []string{ErrInvalidPublishedAt},
		},
		{
			name:    "FractionalSeconds",
			article: Article{Title: "T", Content: "C", PublishedAt: "2024-01-15 10:00:00.999999"},
			errors:  []string{ErrInvalidPublishedAt},
		},
		{
			name:    "CommaFraction",
			article: Article{Title: "T", Content: "C", PublishedAt: "2024-01-15 10:00:00,5"},
			errors:  []string{ErrInvalidPublishedAt},
		},
		{
			name:    "TrailingText",
			article: Article{Title: "T", Content: "C", PublishedAt: "2024-01-15 10:00:00Z"},
			errors:  []string{ErrInvalidPublishedAt},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article := tt.article
			ok := article.Validate()

			assert.Equal(t, len(tt.errors) == 0, ok)
			assert.Equal(t, tt.errors, article.Errors)
		})
	}
}

func TestArticle_Validate_ResetsErrors(t *testing.T) {
	article := Article{}
	require.False(t, article.Validate())
	require.False(t, article.Validate())
	assert.Len(t, article.Errors, 2)

	article.Title, article.Content = "T", "C"
	assert.True(t, article.Validate())
	assert.Empty(t, article.Errors)
}

func TestPublishedAt_RoundTrip(t *testing.T) {
	parsed, err := ParsePublishedAt("2024-01-15 10:30:45")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC), parsed)
	assert.Equal(t, "2024-01-15 10:30:45", FormatPublishedAt(&parsed))

	assert.Empty(t, FormatPublishedAt(nil))

	local := time.Date(2024, 1, 15, 12, 0, 0, 0, time.FixedZone("UTC+2", 2*60*60))
	assert.Equal(t, "2024-01-15 10:00:00", FormatPublishedAt(&local))
}

func TestArticle_IsPublished(t *testing.T) {
	assert.False(t, (&Article{}).IsPublished())
	assert.True(t, (&Article{PublishedAt: "2024-01-15 10:00:00"}).IsPublished())
}
