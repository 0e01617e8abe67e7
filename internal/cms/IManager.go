package cms

import (
	"context"

	"github.com/daniilsolovey/cms/internal/db"
)

type IManager interface {
	All(ctx context.Context) ([]Article, error)
	Page(ctx context.Context, limit, offset int, publishedOnly bool) (ListedArticles, error)
	Total(ctx context.Context, publishedOnly bool) (int, error)
	ByID(ctx context.Context, articleID int, projection Projection) (*Article, error)
	WithCategories(ctx context.Context, articleID int, onlyPublished bool) ([]db.ArticleCategoryRow, error)
	Listed(ctx context.Context, articleID int, onlyPublished bool) (*ListedArticle, error)
	Categories(ctx context.Context, articleID int) ([]Category, error)
	CategoryIDs(ctx context.Context, articleID int) ([]int, error)
	AllCategories(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, article *Article) error
	CreateWithCategories(ctx context.Context, article *Article, categoryIDs []int) error
	Update(ctx context.Context, article *Article) error
	UpdateWithCategories(ctx context.Context, article *Article, categoryIDs []int) error
	Delete(ctx context.Context, articleID int) error
	SetImageFile(ctx context.Context, articleID int, filename *string) error
	Publish(ctx context.Context, articleID int) (string, error)
	SetCategories(ctx context.Context, articleID int, categoryIDs []int) error
}

var _ IManager = (*Manager)(nil)
