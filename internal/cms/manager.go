package cms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/daniilsolovey/cms/internal/db"
)

type Manager struct {
	db     *db.Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewManager(repo *db.Repository, logger *slog.Logger) *Manager {
	return &Manager{
		db:     repo,
		logger: logger,
		now:    time.Now,
	}
}

// All returns every article, drafts last.
func (m *Manager) All(ctx context.Context) ([]Article, error) {
	list, err := m.db.Articles(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get articles: %w", err)
	}

	return NewArticles(list), nil
}

// Page returns up to limit articles starting at offset with their category names.
func (m *Manager) Page(ctx context.Context, limit, offset int, publishedOnly bool) (ListedArticles, error) {
	rows, err := m.db.ArticlesPage(ctx, limit, offset, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("db get articles page: %w", err)
	}

	return FoldRows(rows), nil
}

func (m *Manager) Total(ctx context.Context, publishedOnly bool) (int, error) {
	count, err := m.db.ArticlesCount(ctx, publishedOnly)
	if err != nil {
		return 0, fmt.Errorf("db get articles count: %w", err)
	}

	return count, nil
}

// ByID loads the article columns named by projection. Returns nil, nil when
// the article does not exist.
func (m *Manager) ByID(ctx context.Context, articleID int, projection Projection) (*Article, error) {
	columns, err := projectionColumns(projection)
	if err != nil {
		return nil, err
	}

	dbArticle, err := m.db.ArticleByID(ctx, articleID, columns...)
	if err != nil {
		return nil, fmt.Errorf("db get article by id: %w", err)
	} else if dbArticle == nil {
		return nil, nil
	}

	article := NewArticle(dbArticle)
	return &article, nil
}

// WithCategories returns the flat article rows joined to categories.
func (m *Manager) WithCategories(ctx context.Context, articleID int, onlyPublished bool) ([]db.ArticleCategoryRow, error) {
	rows, err := m.db.ArticleWithCategories(ctx, articleID, onlyPublished)
	if err != nil {
		return nil, fmt.Errorf("db get article with categories: %w", err)
	}

	return rows, nil
}

// Listed returns a single article folded with its category names, or nil
// when it does not exist or is a hidden draft.
func (m *Manager) Listed(ctx context.Context, articleID int, onlyPublished bool) (*ListedArticle, error) {
	rows, err := m.WithCategories(ctx, articleID, onlyPublished)
	if err != nil {
		return nil, err
	}

	list := FoldRows(rows)
	if len(list) == 0 {
		return nil, nil
	}

	return &list[0], nil
}

// Categories returns the categories linked to the article ordered by name.
func (m *Manager) Categories(ctx context.Context, articleID int) ([]Category, error) {
	list, err := m.db.ArticleCategories(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get article categories: %w", err)
	}

	return NewCategories(list), nil
}

func (m *Manager) CategoryIDs(ctx context.Context, articleID int) ([]int, error) {
	ids, err := m.db.ArticleCategoryIDs(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("db get article category ids: %w", err)
	}

	return ids, nil
}

func (m *Manager) AllCategories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// Create validates and inserts the article, setting its ID.
// On validation failure the store is untouched and ErrInvalidArticle is returned.
func (m *Manager) Create(ctx context.Context, article *Article) error {
	return m.create(ctx, m.db, article)
}

// CreateWithCategories inserts the article and links it to categoryIDs in one transaction.
func (m *Manager) CreateWithCategories(ctx context.Context, article *Article, categoryIDs []int) error {
	if !article.Validate() {
		return ErrInvalidArticle
	}

	err := m.db.RunInTransaction(ctx, func(repo *db.Repository) error {
		if err := m.create(ctx, repo, article); err != nil {
			return err
		}
		return m.setCategories(ctx, repo, article.ID, categoryIDs)
	})
	if err != nil {
		// the insert was rolled back with the transaction
		article.ID = 0
		return err
	}

	return nil
}

func (m *Manager) create(ctx context.Context, repo *db.Repository, article *Article) error {
	if !article.Validate() {
		return ErrInvalidArticle
	}

	dbArticle, err := article.ToDB()
	if err != nil {
		return err
	}

	if err := repo.InsertArticle(ctx, dbArticle); err != nil {
		return fmt.Errorf("db insert article: %w", err)
	}

	article.ID = dbArticle.ID
	m.logger.InfoContext(ctx, "article created", "articleID", article.ID)

	return nil
}

// Update validates and stores title, content and publication date of the article.
func (m *Manager) Update(ctx context.Context, article *Article) error {
	return m.update(ctx, m.db, article)
}

// UpdateWithCategories updates the article and its category links in one transaction.
func (m *Manager) UpdateWithCategories(ctx context.Context, article *Article, categoryIDs []int) error {
	if !article.Validate() {
		return ErrInvalidArticle
	}

	return m.db.RunInTransaction(ctx, func(repo *db.Repository) error {
		if err := m.update(ctx, repo, article); err != nil {
			return err
		}
		return m.setCategories(ctx, repo, article.ID, categoryIDs)
	})
}

func (m *Manager) update(ctx context.Context, repo *db.Repository, article *Article) error {
	if !article.Validate() {
		return ErrInvalidArticle
	}

	dbArticle, err := article.ToDB()
	if err != nil {
		return err
	}

	if err := repo.UpdateArticle(ctx, dbArticle); err != nil {
		return fmt.Errorf("db update article: %w", err)
	}

	m.logger.InfoContext(ctx, "article updated", "articleID", article.ID)

	return nil
}

// Delete removes the article and its category links. A missing article is not an error.
func (m *Manager) Delete(ctx context.Context, articleID int) error {
	if err := m.db.DeleteArticle(ctx, articleID); err != nil {
		return fmt.Errorf("db delete article: %w", err)
	}

	m.logger.InfoContext(ctx, "article deleted", "articleID", articleID)

	return nil
}

// SetImageFile stores the image file name of the article, nil clears it.
func (m *Manager) SetImageFile(ctx context.Context, articleID int, filename *string) error {
	err := m.db.UpdateArticleImage(ctx, articleID, filename)
	if errors.Is(err, db.ErrNotFound) {
		return ErrArticleNotFound
	} else if err != nil {
		return fmt.Errorf("db update article image: %w", err)
	}

	return nil
}

// Publish sets the publication date to now, overwriting any previous value,
// and returns it in PublishedAtLayout.
func (m *Manager) Publish(ctx context.Context, articleID int) (string, error) {
	now := m.now().UTC().Truncate(time.Second)

	err := m.db.UpdateArticlePublishedAt(ctx, &db.Article{ID: articleID, PublishedAt: &now})
	if errors.Is(err, db.ErrNotFound) {
		return "", ErrArticleNotFound
	} else if err != nil {
		return "", fmt.Errorf("db publish article: %w", err)
	}

	m.logger.InfoContext(ctx, "article published", "articleID", articleID)

	return FormatPublishedAt(&now), nil
}

// SetCategories makes the article linked to exactly the given categories.
// Links are added and removed by difference inside one transaction.
func (m *Manager) SetCategories(ctx context.Context, articleID int, categoryIDs []int) error {
	return m.db.RunInTransaction(ctx, func(repo *db.Repository) error {
		return m.setCategories(ctx, repo, articleID, categoryIDs)
	})
}

func (m *Manager) setCategories(ctx context.Context, repo *db.Repository, articleID int, categoryIDs []int) error {
	current, err := repo.ArticleCategoryIDs(ctx, articleID)
	if err != nil {
		return fmt.Errorf("db get article category ids: %w", err)
	}

	toInsert, toDelete := DiffIDs(categoryIDs, current)

	if err := repo.UnlinkCategories(ctx, articleID, toDelete); err != nil {
		return fmt.Errorf("db unlink categories: %w", err)
	}

	if err := repo.LinkCategories(ctx, articleID, toInsert); err != nil {
		return fmt.Errorf("db link categories: %w", err)
	}

	m.logger.DebugContext(ctx, "article categories synced",
		"articleID", articleID, "added", toInsert, "removed", toDelete)

	return nil
}
