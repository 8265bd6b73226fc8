package models

// PaginationMeta describes one page of a paginated listing. When the backend
// does not return pagination, the API client synthesizes a single page.
type PaginationMeta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// SinglePage builds the metadata for an unpaginated backend response: all
// items on one page, sized as requested.
func SinglePage(page, limit, total int) PaginationMeta {
	if page < 1 {
		page = 1
	}
	return PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: 1,
	}
}

// PaginatedArticles is one page of articles plus its metadata.
type PaginatedArticles struct {
	Items      []Article
	Pagination PaginationMeta
}

// PaginatedBlogs is one page of blogs plus its metadata.
type PaginatedBlogs struct {
	Items      []Blog
	Pagination PaginationMeta
}
