package rpc

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Article struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	PublishedAt string   `json:"publishedAt"`
	ImageFile   *string  `json:"imageFile,omitempty"`
	Categories  []string `json:"categories"`
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
	Articles  []Article `json:"articles"`
	Paginator Paginator `json:"paginator"`
}
