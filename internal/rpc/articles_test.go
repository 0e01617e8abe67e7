package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/cms/internal/cms"
	"github.com/daniilsolovey/cms/internal/db"
)

// stubManager serves a fixed set of published articles.
type stubManager struct {
	articles cms.ListedArticles
	err      error
}

var _ cms.IManager = (*stubManager)(nil)

func (s *stubManager) Page(_ context.Context, limit, offset int, _ bool) (cms.ListedArticles, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < 1 || offset < 0 {
		return nil, fmt.Errorf("invalid limit=%d offset=%d", limit, offset)
	}
	if offset >= len(s.articles) {
		return cms.ListedArticles{}, nil
	}
	end := min(offset+limit, len(s.articles))
	return s.articles[offset:end], nil
}

func (s *stubManager) Total(context.Context, bool) (int, error) {
	return len(s.articles), s.err
}

func (s *stubManager) Listed(_ context.Context, articleID int, _ bool) (*cms.ListedArticle, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.articles {
		if s.articles[i].ID == articleID {
			return &s.articles[i], nil
		}
	}
	return nil, nil
}

func (s *stubManager) AllCategories(context.Context) ([]cms.Category, error) {
	return []cms.Category{{ID: 1, Name: "News"}, {ID: 2, Name: "Tutorials"}}, s.err
}

func (s *stubManager) All(context.Context) ([]cms.Article, error) { return nil, nil }
func (s *stubManager) ByID(context.Context, int, cms.Projection) (*cms.Article, error) {
	return nil, nil
}
func (s *stubManager) WithCategories(context.Context, int, bool) ([]db.ArticleCategoryRow, error) {
	return nil, nil
}
func (s *stubManager) Categories(context.Context, int) ([]cms.Category, error) { return nil, nil }
func (s *stubManager) CategoryIDs(context.Context, int) ([]int, error) { return nil, nil }
func (s *stubManager) Create(context.Context, *cms.Article) error { return nil }
func (s *stubManager) CreateWithCategories(context.Context, *cms.Article, []int) error {
	return nil
}
func (s *stubManager) Update(context.Context, *cms.Article) error { return nil }
func (s *stubManager) UpdateWithCategories(context.Context, *cms.Article, []int) error {
	return nil
}
func (s *stubManager) Delete(context.Context, int) error { return nil }
func (s *stubManager) SetImageFile(context.Context, int, *string) error { return nil }
func (s *stubManager) Publish(context.Context, int) (string, error) { return "", nil }
func (s *stubManager) SetCategories(context.Context, int, []int) error { return nil }

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func call(t *testing.T, handler http.Handler, method, params string) rpcResponse {
	t.Helper()

	body := `{"jsonrpc":"2.0","id":1,"method":"` + method + `","params":` + params + `}`
	req := httptest.NewRequest(http.MethodPost, "/rpc/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func newTestServer(manager *stubManager) http.Handler {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), manager)
}

func testArticles() cms.ListedArticles {
	return cms.ListedArticles{
		{Article: cms.Article{ID: 1, Title: "One", Content: "A", PublishedAt: "2024-01-11 12:00:00"}, CategoryNames: []string{"News", "Tutorials"}},
		{Article: cms.Article{ID: 2, Title: "Two", Content: "B", PublishedAt: "2024-01-12 12:00:00"}, CategoryNames: []string{"Opinion"}},
		{Article: cms.Article{ID: 3, Title: "Three", Content: "C", PublishedAt: "2024-01-13 12:00:00"}, CategoryNames: []string{}},
	}
}

func TestArticleService_List(t *testing.T) {
	server := newTestServer(&stubManager{articles: testArticles()})

	resp := call(t, server, "articles.list", `{"page":2,"perPage":2}`)
	require.Nil(t, resp.Error)

	var page ArticlesPage
	require.NoError(t, json.Unmarshal(resp.Result, &page))
	require.Len(t, page.Articles, 1)
	assert.Equal(t, 3, page.Articles[0].ID)
	assert.Equal(t, Paginator{Page: 2, PerPage: 2, Previous: 1, TotalPages: 2, Total: 3}, page.Paginator)

	resp = call(t, server, "articles.list", `{}`)
	require.Nil(t, resp.Error)
	require.NoError(t, json.Unmarshal(resp.Result, &page))
	assert.Len(t, page.Articles, 3)
	assert.Equal(t, 10, page.Paginator.PerPage)

	resp = call(t, server, "articles.list", `{"page":1844674407370955161}`)
	require.Nil(t, resp.Error)

	var last ArticlesPage
	require.NoError(t, json.Unmarshal(resp.Result, &last))
	assert.Empty(t, last.Articles)
	assert.Equal(t, Paginator{Page: 2, PerPage: 10, Previous: 1, TotalPages: 1, Total: 3}, last.Paginator)
}

func TestArticleService_Count(t *testing.T) {
	server := newTestServer(&stubManager{articles: testArticles()})

	resp := call(t, server, "articles.count", `{}`)
	require.Nil(t, resp.Error)
	assert.JSONEq(t, `3`, string(resp.Result))
}

func TestArticleService_ByID(t *testing.T) {
	server := newTestServer(&stubManager{articles: testArticles()})

	resp := call(t, server, "articles.byid", `{"id":1}`)
	require.Nil(t, resp.Error)

	var article Article
	require.NoError(t, json.Unmarshal(resp.Result, &article))
	assert.Equal(t, "One", article.Title)
	assert.Equal(t, []string{"News", "Tutorials"}, article.Categories)

	resp = call(t, server, "articles.byid", `{"id":42}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, 404, resp.Error.Code)

	resp = call(t, server, "articles.byid", `{"id":0}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, 400, resp.Error.Code)

	resp = call(t, server, "articles.byid", `{"id":2147483648}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, 400, resp.Error.Code)
}

func TestArticleService_Categories(t *testing.T) {
	server := newTestServer(&stubManager{})

	resp := call(t, server, "articles.categories", `{}`)
	require.Nil(t, resp.Error)

	var categories []Category
	require.NoError(t, json.Unmarshal(resp.Result, &categories))
	assert.Equal(t, []Category{{ID: 1, Name: "News"}, {ID: 2, Name: "Tutorials"}}, categories)
}

func TestArticleService_StoreError(t *testing.T) {
	server := newTestServer(&stubManager{err: errors.New("store is down")})

	resp := call(t, server, "articles.count", `{}`)
	require.NotNil(t, resp.Error)
}
