package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/daniilsolovey/cms/internal/auth"
	"github.com/daniilsolovey/cms/internal/cms"
	"github.com/daniilsolovey/cms/internal/db"
	"github.com/daniilsolovey/cms/internal/mailer"
)

var errStore = errors.New("store is down")

// stubManager implements cms.IManager with overridable funcs. Unset funcs
// return zero values.
type stubManager struct {
	pageFunc                 func(ctx context.Context, limit, offset int, publishedOnly bool) (cms.ListedArticles, error)
	totalFunc                func(ctx context.Context, publishedOnly bool) (int, error)
	byIDFunc                 func(ctx context.Context, articleID int, projection cms.Projection) (*cms.Article, error)
	listedFunc               func(ctx context.Context, articleID int, onlyPublished bool) (*cms.ListedArticle, error)
	categoryIDsFunc          func(ctx context.Context, articleID int) ([]int, error)
	allCategoriesFunc        func(ctx context.Context) ([]cms.Category, error)
	createFunc               func(ctx context.Context, article *cms.Article) error
	createWithCategoriesFunc func(ctx context.Context, article *cms.Article, categoryIDs []int) error
	updateFunc               func(ctx context.Context, article *cms.Article) error
	updateWithCategoriesFunc func(ctx context.Context, article *cms.Article, categoryIDs []int) error
	deleteFunc               func(ctx context.Context, articleID int) error
	setImageFileFunc         func(ctx context.Context, articleID int, filename *string) error
	publishFunc              func(ctx context.Context, articleID int) (string, error)
}

var _ cms.IManager = (*stubManager)(nil)

func (s *stubManager) All(context.Context) ([]cms.Article, error) {
	return nil, nil
}

func (s *stubManager) Page(ctx context.Context, limit, offset int, publishedOnly bool) (cms.ListedArticles, error) {
	if s.pageFunc != nil {
		return s.pageFunc(ctx, limit, offset, publishedOnly)
	}
	return cms.ListedArticles{}, nil
}

func (s *stubManager) Total(ctx context.Context, publishedOnly bool) (int, error) {
	if s.totalFunc != nil {
		return s.totalFunc(ctx, publishedOnly)
	}
	return 0, nil
}

func (s *stubManager) ByID(ctx context.Context, articleID int, projection cms.Projection) (*cms.Article, error) {
	if s.byIDFunc != nil {
		return s.byIDFunc(ctx, articleID, projection)
	}
	return nil, nil
}

func (s *stubManager) WithCategories(context.Context, int, bool) ([]db.ArticleCategoryRow, error) {
	return nil, nil
}

func (s *stubManager) Listed(ctx context.Context, articleID int, onlyPublished bool) (*cms.ListedArticle, error) {
	if s.listedFunc != nil {
		return s.listedFunc(ctx, articleID, onlyPublished)
	}
	return nil, nil
}

func (s *stubManager) Categories(context.Context, int) ([]cms.Category, error) {
	return nil, nil
}

func (s *stubManager) CategoryIDs(ctx context.Context, articleID int) ([]int, error) {
	if s.categoryIDsFunc != nil {
		return s.categoryIDsFunc(ctx, articleID)
	}
	return []int{}, nil
}

func (s *stubManager) AllCategories(ctx context.Context) ([]cms.Category, error) {
	if s.allCategoriesFunc != nil {
		return s.allCategoriesFunc(ctx)
	}
	return nil, nil
}

func (s *stubManager) Create(ctx context.Context, article *cms.Article) error {
	if s.createFunc != nil {
		return s.createFunc(ctx, article)
	}
	return nil
}

func (s *stubManager) CreateWithCategories(ctx context.Context, article *cms.Article, categoryIDs []int) error {
	if s.createWithCategoriesFunc != nil {
		return s.createWithCategoriesFunc(ctx, article, categoryIDs)
	}
	return nil
}

func (s *stubManager) Update(ctx context.Context, article *cms.Article) error {
	if s.updateFunc != nil {
		return s.updateFunc(ctx, article)
	}
	return nil
}

func (s *stubManager) UpdateWithCategories(ctx context.Context, article *cms.Article, categoryIDs []int) error {
	if s.updateWithCategoriesFunc != nil {
		return s.updateWithCategoriesFunc(ctx, article, categoryIDs)
	}
	return nil
}

func (s *stubManager) Delete(ctx context.Context, articleID int) error {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, articleID)
	}
	return nil
}

func (s *stubManager) SetImageFile(ctx context.Context, articleID int, filename *string) error {
	if s.setImageFileFunc != nil {
		return s.setImageFileFunc(ctx, articleID, filename)
	}
	return nil
}

func (s *stubManager) Publish(ctx context.Context, articleID int) (string, error) {
	if s.publishFunc != nil {
		return s.publishFunc(ctx, articleID)
	}
	return "", nil
}

func (s *stubManager) SetCategories(context.Context, int, []int) error {
	return nil
}

type stubUserStore struct {
	users map[string]*db.User
}

func (s *stubUserStore) UserByUsername(_ context.Context, username string) (*db.User, error) {
	return s.users[username], nil
}

func (s *stubUserStore) InsertUser(context.Context, *db.User) error {
	return nil
}

type stubSender struct {
	sent []mailer.Message
	err  error
}

func (s *stubSender) Send(_ context.Context, msg mailer.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

type testEnv struct {
	echo    *echo.Echo
	manager *stubManager
	sender  *stubSender
	auth    *auth.Service
	uploads string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &stubUserStore{users: map[string]*db.User{
		"admin": {ID: 1, Username: "admin", PasswordHash: string(hash)},
	}}

	env := &testEnv{
		echo:    echo.New(),
		manager: &stubManager{},
		sender:  &stubSender{},
		auth:    auth.NewService(store, "test-secret-key-with-at-least-32-characters", time.Hour),
		uploads: t.TempDir(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(env.manager, env.auth, env.sender,
		UploadsConfig{Dir: env.uploads, MaxSize: 1 << 20}, logger)
	handler.RegisterRoutes(env.echo)

	return env
}

// do sends a request, adding a valid admin token when admin is set.
func (env *testEnv) do(t *testing.T, method, target, body string, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if admin {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+env.token(t))
	}

	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) token(t *testing.T) string {
	t.Helper()

	token, err := env.auth.IssueToken("admin")
	require.NoError(t, err)
	return token
}

func articleFixture(id int) *cms.Article {
	return &cms.Article{
		ID:          id,
		Title:       "Title",
		Content:     "Content",
		PublishedAt: "2024-01-15 10:00:00",
	}
}
