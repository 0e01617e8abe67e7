package rest

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Article struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Content     string  `json:"content,omitempty"`
	PublishedAt string  `json:"publishedAt,omitempty" example:"2024-01-15 10:00:00"`
	ImageFile   *string `json:"imageFile,omitempty"`
}

type ListedArticle struct {
	Article
	Categories []string `json:"categories"`
}

// ArticleForm is an article as the admin edit form needs it.
type ArticleForm struct {
	Article
	CategoryIDs []int `json:"categoryIds"`
}

type Paginator struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	Previous   int `json:"previous,omitempty"`
	Next       int `json:"next,omitempty"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
}

type ArticlesPage struct {
	Articles  []ListedArticle `json:"articles"`
	Paginator Paginator       `json:"paginator"`
}

// ListRequest is decoded from the query string with urlstruct.
type ListRequest struct {
	Page    int `urlstruct:"page"`
	PerPage int `urlstruct:"per_page"`
}

type ArticleRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	PublishedAt string `json:"publishedAt" example:"2024-01-15 10:00:00"`
	// CategoryIDs replaces the linked categories when present.
	CategoryIDs []int `json:"categoryIds"`
}

type PublishResponse struct {
	PublishedAt string `json:"publishedAt" example:"2024-01-15 10:00:00"`
}

type ImageResponse struct {
	ImageFile string `json:"imageFile"`
	URL       string `json:"url"`
}

type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"your_password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ContactRequest struct {
	Email   string `json:"email" example:"visitor@example.com"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
