package rpc

import "github.com/daniilsolovey/cms/internal/cms"

func NewArticle(a cms.ListedArticle) Article {
	return Article{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		PublishedAt: a.PublishedAt,
		ImageFile:   a.ImageFile,
		Categories:  a.CategoryNames,
	}
}

func NewArticles(list cms.ListedArticles) []Article {
	result := make([]Article, len(list))
	for i := range list {
		result[i] = NewArticle(list[i])
	}
	return result
}

func NewCategories(list []cms.Category) []Category {
	result := make([]Category, len(list))
	for i := range list {
		result[i] = Category{ID: list[i].ID, Name: list[i].Name}
	}
	return result
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
