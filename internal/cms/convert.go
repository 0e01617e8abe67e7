package cms

import (
	"fmt"

	"github.com/daniilsolovey/cms/internal/db"
)

func NewArticle(a *db.Article) Article {
	return Article{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		PublishedAt: FormatPublishedAt(a.PublishedAt),
		ImageFile:   a.ImageFile,
	}
}

func NewArticles(list []db.Article) []Article {
	result := make([]Article, len(list))
	for i := range list {
		result[i] = NewArticle(&list[i])
	}
	return result
}

func NewCategory(c *db.Category) Category {
	return Category{
		ID:   c.ID,
		Name: c.Name,
	}
}

func NewCategories(list []db.Category) []Category {
	result := make([]Category, len(list))
	for i := range list {
		result[i] = NewCategory(&list[i])
	}
	return result
}

// ToDB maps a validated article to its store model.
func (a *Article) ToDB() (*db.Article, error) {
	article := &db.Article{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		ImageFile: a.ImageFile,
	}

	if a.PublishedAt != "" {
		publishedAt, err := ParsePublishedAt(a.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("parse published at %q: %w", a.PublishedAt, err)
		}
		article.PublishedAt = &publishedAt
	}

	return article, nil
}

// projectionColumns returns the fixed column list loaded for p.
// A nil list selects every column.
func projectionColumns(p Projection) ([]string, error) {
	switch p {
	case ProjectionFull:
		return nil, nil
	case ProjectionSummary:
		return []string{db.Columns.Article.ID, db.Columns.Article.Title, db.Columns.Article.PublishedAt}, nil
	case ProjectionID:
		return []string{db.Columns.Article.ID}, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownProjection, p)
}
