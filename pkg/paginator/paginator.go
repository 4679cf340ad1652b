package paginator

import "math"

// Adjust applies defaults and caps Limit at MaxLimit.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset is the SQL OFFSET for the current page. Call Adjust first.
func (p PaginateQuery) Offset() int64 {
	return int64(p.Page-1) * p.Limit
}

// New builds the page metadata for a query that returned count rows out of total.
func New(q PaginateQuery, total, count int64) Paginator {
	return Paginator{
		Total:       total,
		Count:       count,
		PerPage:     q.Limit,
		CurrentPage: q.Page,
	}
}

func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}

func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

func (p Paginator) HasPreviousPage() bool {
	return p.CurrentPage > 1
}

func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrev:     p.HasPreviousPage(),
	}
}
