package cms

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/cms/internal/db"
)

func TestProjectionColumns(t *testing.T) {
	columns, err := projectionColumns(ProjectionFull)
	require.NoError(t, err)
	assert.Nil(t, columns)

	columns, err = projectionColumns(ProjectionSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "title", "published_at"}, columns)

	columns, err = projectionColumns(ProjectionID)
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, columns)

	_, err = projectionColumns(Projection(42))
	assert.True(t, errors.Is(err, ErrUnknownProjection))
}

func TestArticle_ToDB(t *testing.T) {
	draft := Article{ID: 7, Title: "T", Content: "C", ImageFile: ptr("a.png")}
	dbArticle, err := draft.ToDB()
	require.NoError(t, err)
	assert.Equal(t, &db.Article{ID: 7, Title: "T", Content: "C", ImageFile: ptr("a.png")}, dbArticle)

	published := Article{Title: "T", Content: "C", PublishedAt: "2024-01-15 10:00:00"}
	dbArticle, err = published.ToDB()
	require.NoError(t, err)
	require.NotNil(t, dbArticle.PublishedAt)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), *dbArticle.PublishedAt)

	assert.Equal(t, published.PublishedAt, NewArticle(dbArticle).PublishedAt)

	_, err = (&Article{PublishedAt: "bad"}).ToDB()
	assert.Error(t, err)

	_, err = (&Article{PublishedAt: "2024-01-15 10:00:00.999999"}).ToDB()
	assert.Error(t, err, "fractional seconds must not reach the store")
}
