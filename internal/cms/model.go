package cms

import (
	"errors"
	"time"
)

// PublishedAtLayout is the only accepted publication date format, YYYY-MM-DD HH:MM:SS.
const PublishedAtLayout = time.DateTime

const (
	ErrTitleRequired      = "Title is required"
	ErrContentRequired    = "Content is required"
	ErrInvalidPublishedAt = "Invalid Publication Date"
)

var (
	// ErrInvalidArticle is returned by Create and Update when validation fails.
	// The messages are left in Article.Errors.
	ErrInvalidArticle = errors.New("article is invalid")

	ErrUnknownProjection = errors.New("unknown projection")

	// ErrArticleNotFound is returned by Publish and SetImageFile for a missing article.
	ErrArticleNotFound = errors.New("article not found")
)

// Article is an editable content record. PublishedAt holds the publication
// date in PublishedAtLayout, an empty string marks a draft.
type Article struct {
	ID          int
	Title       string
	Content     string
	PublishedAt string
	ImageFile   *string

	// Errors holds the messages of the last failed validation. It is never persisted.
	Errors []string
}

func (a *Article) IsPublished() bool {
	return a.PublishedAt != ""
}

type Category struct {
	ID   int
	Name string
}

// ListedArticle is an article of a listing page together with the names of
// its categories in join order.
type ListedArticle struct {
	Article
	CategoryNames []string
}

type ListedArticles []ListedArticle

// IndexByID maps article ids to listing entries.
func (ll ListedArticles) IndexByID() map[int]ListedArticle {
	result := make(map[int]ListedArticle, len(ll))
	for i := range ll {
		result[ll[i].ID] = ll[i]
	}
	return result
}

func (ll ListedArticles) IDs() []int {
	result := make([]int, len(ll))
	for i := range ll {
		result[i] = ll[i].ID
	}
	return result
}

// Projection names a fixed set of article columns to load.
type Projection int

const (
	ProjectionFull Projection = iota
	ProjectionSummary
	ProjectionID
)
