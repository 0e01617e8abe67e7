package rpc

import (
	"context"
	"math"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/cms/internal/cms"
)

//go:generate zenrpc

// ArticleService provides read-only RPC methods over published articles.
type ArticleService struct {
	zenrpc.Service
	manager cms.IManager
}

func NewArticleService(manager cms.IManager) *ArticleService {
	return &ArticleService{manager: manager}
}

// List returns a page of published articles with their category names, oldest first.
//
//zenrpc:page=1 page number (1-based)
//zenrpc:perPage=10 items per page, at most 100
//zenrpc:return page of articles
//zenrpc:500 internal server error
func (s ArticleService) List(ctx context.Context, page, perPage int) (*ArticlesPage, error) {
	total, err := s.manager.Total(ctx, true)
	if err != nil {
		return nil, err
	}

	paginator := cms.NewPaginator(page, perPage, total)

	list, err := s.manager.Page(ctx, paginator.Limit, paginator.Offset, true)
	if err != nil {
		return nil, err
	}

	return &ArticlesPage{
		Articles:  NewArticles(list),
		Paginator: NewPaginator(paginator, total),
	}, nil
}

// Count returns the number of published articles.
//
//zenrpc:return count of published articles
//zenrpc:500 internal server error
func (s ArticleService) Count(ctx context.Context) (int, error) {
	return s.manager.Total(ctx, true)
}

// ByID returns a published article with its category names.
//
//zenrpc:id article numeric ID
//zenrpc:return article with category names
//zenrpc:400 id must be a positive 32-bit integer
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s ArticleService) ByID(ctx context.Context, id int) (*Article, error) {
	if id <= 0 || id > math.MaxInt32 {
		return nil, zenrpc.NewStringError(400, "id must be a positive 32-bit integer")
	}

	listed, err := s.manager.Listed(ctx, id, true)
	if err != nil {
		return nil, err
	} else if listed == nil {
		return nil, zenrpc.NewStringError(404, "article not found")
	}

	article := NewArticle(*listed)
	return &article, nil
}

// Categories returns all categories ordered by name.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s ArticleService) Categories(ctx context.Context) ([]Category, error) {
	categories, err := s.manager.AllCategories(ctx)
	if err != nil {
		return nil, err
	}

	return NewCategories(categories), nil
}
