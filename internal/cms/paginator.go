package cms

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Paginator turns a 1-based page number into limit and offset and tells the
// neighbouring pages. Previous and Next are zero when there is no such page.
// Page is capped at one past the last page, which keeps Offset from overflowing.
type Paginator struct {
	Page       int
	PerPage    int
	Limit      int
	Offset     int
	Previous   int
	Next       int
	TotalPages int
}

func NewPaginator(page, perPage, total int) Paginator {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if page < 1 {
		page = 1
	}

	totalPages := (total + perPage - 1) / perPage
	if page > totalPages+1 {
		page = totalPages + 1
	}

	p := Paginator{
		Page:       page,
		PerPage:    perPage,
		Limit:      perPage,
		Offset:     (page - 1) * perPage,
		TotalPages: totalPages,
	}

	if page > 1 {
		p.Previous = page - 1
	}
	if page < totalPages {
		p.Next = page + 1
	}

	return p
}
