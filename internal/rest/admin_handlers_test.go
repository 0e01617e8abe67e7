package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/cms/internal/cms"
)

func TestHandler_AdminRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	for _, tt := range []struct{ method, target string }{
		{http.MethodGet, "/api/v1/admin/articles"},
		{http.MethodPost, "/api/v1/admin/articles"},
		{http.MethodPut, "/api/v1/admin/articles/1"},
		{http.MethodDelete, "/api/v1/admin/articles/1"},
		{http.MethodPost, "/api/v1/admin/articles/1/publish"},
		{http.MethodPost, "/api/v1/admin/articles/1/image"},
	} {
		rec := env.do(t, tt.method, tt.target, "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tt.method, tt.target)
	}
}

func TestHandler_AdminArticles(t *testing.T) {
	env := newTestEnv(t)

	var gotPublishedOnly = true
	env.manager.pageFunc = func(_ context.Context, _, _ int, publishedOnly bool) (cms.ListedArticles, error) {
		gotPublishedOnly = publishedOnly
		return cms.ListedArticles{}, nil
	}

	rec := env.do(t, http.MethodGet, "/api/v1/admin/articles", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, gotPublishedOnly, "admin listing includes drafts")
}

func TestHandler_AdminArticleByID(t *testing.T) {
	env := newTestEnv(t)
	env.manager.byIDFunc = func(_ context.Context, articleID int, projection cms.Projection) (*cms.Article, error) {
		if articleID != 1 {
			return nil, nil
		}
		return articleFixture(1), nil
	}
	env.manager.categoryIDsFunc = func(context.Context, int) ([]int, error) {
		return []int{1, 2}, nil
	}

	rec := env.do(t, http.MethodGet, "/api/v1/admin/articles/1", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var form ArticleForm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &form))
	assert.Equal(t, "Content", form.Content)
	assert.Equal(t, []int{1, 2}, form.CategoryIDs)

	rec = env.do(t, http.MethodGet, "/api/v1/admin/articles/2", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CreateArticle(t *testing.T) {
	t.Run("WithCategories", func(t *testing.T) {
		env := newTestEnv(t)

		var gotIDs []int
		env.manager.createWithCategoriesFunc = func(_ context.Context, article *cms.Article, categoryIDs []int) error {
			gotIDs = categoryIDs
			article.ID = 10
			return nil
		}

		rec := env.do(t, http.MethodPost, "/api/v1/admin/articles",
			`{"title":"T","content":"C","publishedAt":"2024-01-15 10:00:00","categoryIds":[1,3]}`, true)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, []int{1, 3}, gotIDs)

		var article Article
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &article))
		assert.Equal(t, 10, article.ID)
		assert.Equal(t, "2024-01-15 10:00:00", article.PublishedAt)
	})

	t.Run("WithoutCategories", func(t *testing.T) {
		env := newTestEnv(t)

		created := false
		env.manager.createFunc = func(_ context.Context, article *cms.Article) error {
			created = true
			article.ID = 11
			return nil
		}

		rec := env.do(t, http.MethodPost, "/api/v1/admin/articles", `{"title":"T","content":"C"}`, true)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, created)
	})

	t.Run("ValidationErrors", func(t *testing.T) {
		env := newTestEnv(t)
		env.manager.createFunc = func(_ context.Context, article *cms.Article) error {
			article.Validate()
			return cms.ErrInvalidArticle
		}

		rec := env.do(t, http.MethodPost, "/api/v1/admin/articles", `{"title":"","content":"","publishedAt":"2024-01-32 10:00:00"}`, true)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp ErrorsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{cms.ErrTitleRequired, cms.ErrContentRequired, cms.ErrInvalidPublishedAt}, resp.Errors)
	})

	t.Run("StoreError", func(t *testing.T) {
		env := newTestEnv(t)
		env.manager.createFunc = func(context.Context, *cms.Article) error {
			return errStore
		}

		rec := env.do(t, http.MethodPost, "/api/v1/admin/articles", `{"title":"T","content":"C"}`, true)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/v1/admin/articles", `{"title":`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_UpdateArticle(t *testing.T) {
	env := newTestEnv(t)

	image := "cover.png"
	env.manager.byIDFunc = func(_ context.Context, articleID int, _ cms.Projection) (*cms.Article, error) {
		if articleID != 1 {
			return nil, nil
		}
		article := articleFixture(1)
		article.ImageFile = &image
		return article, nil
	}

	var updated *cms.Article
	env.manager.updateFunc = func(_ context.Context, article *cms.Article) error {
		updated = article
		return nil
	}

	rec := env.do(t, http.MethodPut, "/api/v1/admin/articles/1", `{"title":"New","content":"C","publishedAt":""}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, updated)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "New", updated.Title)
	assert.Empty(t, updated.PublishedAt)
	assert.Equal(t, &image, updated.ImageFile)

	var categoryIDs []int
	env.manager.updateWithCategoriesFunc = func(_ context.Context, _ *cms.Article, ids []int) error {
		categoryIDs = ids
		return nil
	}

	rec = env.do(t, http.MethodPut, "/api/v1/admin/articles/1", `{"title":"New","content":"C","categoryIds":[]}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, categoryIDs)
	assert.Empty(t, categoryIDs, "an empty list clears the categories")

	rec = env.do(t, http.MethodPut, "/api/v1/admin/articles/2", `{"title":"New","content":"C"}`, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_DeleteArticle(t *testing.T) {
	env := newTestEnv(t)

	image := "old.png"
	imagePath := filepath.Join(env.uploads, image)
	require.NoError(t, os.WriteFile(imagePath, []byte("png"), 0o644))

	env.manager.byIDFunc = func(_ context.Context, articleID int, _ cms.Projection) (*cms.Article, error) {
		if articleID != 1 {
			return nil, nil
		}
		article := articleFixture(1)
		article.ImageFile = &image
		return article, nil
	}

	var deleted int
	env.manager.deleteFunc = func(_ context.Context, articleID int) error {
		deleted = articleID
		return nil
	}

	rec := env.do(t, http.MethodDelete, "/api/v1/admin/articles/1", "", true)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, deleted)
	assert.NoFileExists(t, imagePath)

	rec = env.do(t, http.MethodDelete, "/api/v1/admin/articles/2", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_PublishArticle(t *testing.T) {
	env := newTestEnv(t)
	env.manager.byIDFunc = func(_ context.Context, articleID int, projection cms.Projection) (*cms.Article, error) {
		assert.Equal(t, cms.ProjectionID, projection)
		if articleID != 5 {
			return nil, nil
		}
		return &cms.Article{ID: 5}, nil
	}
	env.manager.publishFunc = func(context.Context, int) (string, error) {
		return "2024-03-01 09:30:15", nil
	}

	rec := env.do(t, http.MethodPost, "/api/v1/admin/articles/5/publish", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"publishedAt":"2024-03-01 09:30:15"}`, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/v1/admin/articles/6/publish", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_PublishArticle_DeletedMeanwhile(t *testing.T) {
	env := newTestEnv(t)
	env.manager.byIDFunc = func(context.Context, int, cms.Projection) (*cms.Article, error) {
		return &cms.Article{ID: 5}, nil
	}
	env.manager.publishFunc = func(context.Context, int) (string, error) {
		return "", cms.ErrArticleNotFound
	}

	rec := env.do(t, http.MethodPost, "/api/v1/admin/articles/5/publish", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "publishedAt")
}
