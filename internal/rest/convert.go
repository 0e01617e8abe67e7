package rest

import (
	"github.com/daniilsolovey/cms/internal/cms"
	"github.com/daniilsolovey/cms/internal/mailer"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewArticle(a cms.Article) Article {
	return Article{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		PublishedAt: a.PublishedAt,
		ImageFile:   a.ImageFile,
	}
}

func NewListedArticle(a cms.ListedArticle) ListedArticle {
	return ListedArticle{
		Article:    NewArticle(a.Article),
		Categories: a.CategoryNames,
	}
}

func NewCategory(c cms.Category) Category {
	return Category{
		ID:   c.ID,
		Name: c.Name,
	}
}

func NewPaginator(p cms.Paginator, total int) Paginator {
	return Paginator{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Previous:   p.Previous,
		Next:       p.Next,
		TotalPages: p.TotalPages,
		Total:      total,
	}
}

func (r ArticleRequest) ToModel(id int) *cms.Article {
	return &cms.Article{
		ID:          id,
		Title:       r.Title,
		Content:     r.Content,
		PublishedAt: r.PublishedAt,
	}
}

func (r ContactRequest) ToModel() mailer.Message {
	return mailer.Message{
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}
