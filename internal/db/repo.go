package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const publishedCondition = `WHERE "published_at" IS NOT NULL`

// ErrNotFound is returned by single row updates that matched no row.
var ErrNotFound = errors.New("not found")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// RunInTransaction runs fn against a repository bound to a single transaction.
// When the repository is already bound to a transaction fn joins it, so the
// caller keeps control over commit and rollback.
func (r *Repository) RunInTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	if _, ok := r.db.(*pg.Tx); ok {
		return fn(r)
	}

	return r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(New(tx))
	})
}

// Articles returns every article ordered by published_at ASC.
// PostgreSQL sorts NULLs last in ascending order, so drafts come at the end.
func (r *Repository) Articles(ctx context.Context) ([]Article, error) {
	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		OrderExpr(`"t"."published_at" ASC`).
		OrderExpr(`"t"."id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, nil
}

// ArticlesPage returns a page of articles left-joined to their categories.
// Limit and offset are applied to articles before the join, so a page always
// holds up to limit distinct articles regardless of how many categories each has.
func (r *Repository) ArticlesPage(ctx context.Context, limit, offset int,
	publishedOnly bool) ([]ArticleCategoryRow, error) {

	if limit < 1 || offset < 0 {
		return nil, fmt.Errorf(
			"limit must be greater than 0 and offset must not be negative: limit=%d, offset=%d",
			limit, offset,
		)
	}

	condition := ""
	if publishedOnly {
		condition = publishedCondition
	}

	query := fmt.Sprintf(`
		SELECT "a"."id", "a"."title", "a"."content", "a"."published_at", "a"."image_file",
			"c"."id" AS "category_id", "c"."name" AS "category_name"
		FROM (
			SELECT *
			FROM "articles"
			%s
			ORDER BY "published_at" ASC NULLS LAST, "id" ASC
			LIMIT ?
			OFFSET ?
		) AS "a"
		LEFT JOIN "article_category" AS "ac"
			ON "ac"."article_id" = "a"."id"
		LEFT JOIN "category" AS "c"
			ON "c"."id" = "ac"."category_id"
		ORDER BY "a"."published_at" ASC NULLS LAST, "a"."id" ASC, "c"."id" ASC
	`, condition)

	var rows []ArticleCategoryRow
	if _, err := r.db.QueryContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to query articles page: %w", err)
	}

	return rows, nil
}

// ArticlesCount counts articles, optionally only the published ones.
func (r *Repository) ArticlesCount(ctx context.Context, publishedOnly bool) (int, error) {
	query := r.db.ModelContext(ctx, (*Article)(nil))

	if publishedOnly {
		query = query.Where(`"t"."published_at" IS NOT NULL`)
	}

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get articles count: %w", err)
	}

	return count, nil
}

// ArticleByID loads an article selecting only the given columns.
// Columns must come from a fixed list, never from caller input.
// Returns nil, nil when the article does not exist.
func (r *Repository) ArticleByID(ctx context.Context, articleID int, columns ...string) (*Article, error) {
	article := &Article{}
	query := r.db.ModelContext(ctx, article).
		Where(`"t"."id" = ?`, articleID)

	if len(columns) > 0 {
		query = query.Column(columns...)
	}

	err := query.Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

// ArticleWithCategories returns one row per category linked to the article,
// or a single row with nil category fields when it has none.
func (r *Repository) ArticleWithCategories(ctx context.Context, articleID int,
	onlyPublished bool) ([]ArticleCategoryRow, error) {

	condition := ""
	if onlyPublished {
		condition = `AND "a"."published_at" IS NOT NULL`
	}

	query := fmt.Sprintf(`
		SELECT "a"."id", "a"."title", "a"."content", "a"."published_at", "a"."image_file",
			"c"."id" AS "category_id", "c"."name" AS "category_name"
		FROM "articles" AS "a"
		LEFT JOIN "article_category" AS "ac"
			ON "ac"."article_id" = "a"."id"
		LEFT JOIN "category" AS "c"
			ON "c"."id" = "ac"."category_id"
		WHERE "a"."id" = ?
		%s
		ORDER BY "c"."id" ASC
	`, condition)

	var rows []ArticleCategoryRow
	if _, err := r.db.QueryContext(ctx, &rows, query, articleID); err != nil {
		return nil, fmt.Errorf("failed to query article with categories: %w", err)
	}

	return rows, nil
}

func (r *Repository) InsertArticle(ctx context.Context, article *Article) error {
	_, err := r.db.ModelContext(ctx, article).
		Returning(`"id"`).
		Insert()

	if err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}

	return nil
}

// UpdateArticle writes title, content and published_at. A nil PublishedAt stores NULL.
func (r *Repository) UpdateArticle(ctx context.Context, article *Article) error {
	_, err := r.db.ModelContext(ctx, article).
		Column(Columns.Article.Title, Columns.Article.Content, Columns.Article.PublishedAt).
		WherePK().
		Update()

	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	return nil
}

// DeleteArticle removes the article; its category links go with it via ON DELETE CASCADE.
// Deleting a missing article is not an error.
func (r *Repository) DeleteArticle(ctx context.Context, articleID int) error {
	_, err := r.db.ModelContext(ctx, &Article{ID: articleID}).
		WherePK().
		Delete()

	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	return nil
}

// UpdateArticleImage returns ErrNotFound when the article does not exist.
func (r *Repository) UpdateArticleImage(ctx context.Context, articleID int, imageFile *string) error {
	res, err := r.db.ModelContext(ctx, &Article{ID: articleID, ImageFile: imageFile}).
		Column(Columns.Article.ImageFile).
		WherePK().
		Update()

	if err != nil {
		return fmt.Errorf("failed to update article image: %w", err)
	} else if res.RowsAffected() == 0 {
		return fmt.Errorf("failed to update article image: article %d: %w", articleID, ErrNotFound)
	}

	return nil
}

// UpdateArticlePublishedAt returns ErrNotFound when the article does not exist.
func (r *Repository) UpdateArticlePublishedAt(ctx context.Context, article *Article) error {
	res, err := r.db.ModelContext(ctx, article).
		Column(Columns.Article.PublishedAt).
		WherePK().
		Update()

	if err != nil {
		return fmt.Errorf("failed to update article publication date: %w", err)
	} else if res.RowsAffected() == 0 {
		return fmt.Errorf("failed to update article publication date: article %d: %w", article.ID, ErrNotFound)
	}

	return nil
}

// ArticleCategoryIDs returns ids of the categories linked to the article.
func (r *Repository) ArticleCategoryIDs(ctx context.Context, articleID int) ([]int, error) {
	ids := []int{}
	err := r.db.ModelContext(ctx, (*ArticleCategory)(nil)).
		Column(Columns.ArticleCategory.CategoryID).
		Where(`"t"."article_id" = ?`, articleID).
		OrderExpr(`"t"."category_id" ASC`).
		Select(&ids)

	if err != nil {
		return nil, fmt.Errorf("failed to query article category ids: %w", err)
	}

	return ids, nil
}

// LinkCategories links the article to the categories, skipping pairs that already exist.
func (r *Repository) LinkCategories(ctx context.Context, articleID int, categoryIDs []int) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	links := make([]ArticleCategory, len(categoryIDs))
	for i, categoryID := range categoryIDs {
		links[i] = ArticleCategory{ArticleID: articleID, CategoryID: categoryID}
	}

	_, err := r.db.ModelContext(ctx, &links).
		OnConflict("DO NOTHING").
		Insert()

	if err != nil {
		return fmt.Errorf("failed to link categories: %w", err)
	}

	return nil
}

func (r *Repository) UnlinkCategories(ctx context.Context, articleID int, categoryIDs []int) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	_, err := r.db.ModelContext(ctx, (*ArticleCategory)(nil)).
		Where(`"article_id" = ?`, articleID).
		Where(`"category_id" IN (?)`, pg.In(categoryIDs)).
		Delete()

	if err != nil {
		return fmt.Errorf("failed to unlink categories: %w", err)
	}

	return nil
}

// ArticleCategories returns the categories linked to the article ordered by name.
func (r *Repository) ArticleCategories(ctx context.Context, articleID int) ([]Category, error) {
	categories := []Category{}
	err := r.db.ModelContext(ctx, &categories).
		Join(`JOIN "article_category" AS "ac" ON "ac"."category_id" = "t"."id"`).
		Where(`"ac"."article_id" = ?`, articleID).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query article categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// UserByUsername returns nil, nil when no such user exists.
func (r *Repository) UserByUsername(ctx context.Context, username string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."username" = ?`, username).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *Repository) InsertUser(ctx context.Context, user *User) error {
	_, err := r.db.ModelContext(ctx, user).
		Returning(`"id"`).
		Insert()

	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}
