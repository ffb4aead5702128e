package inventory

// pagerScope is the number of page links shown around the current page
const pagerScope = 5

// Pager describes the position of a page within a listing
type Pager struct {
	Page      int
	PageCount int
	PageSize  int
	Total     int64
	Offset    int
	Pages     []int // page numbers to link, centred on Page
}

// NewPager clamps page to [1, page count] and computes the offset.
// An empty listing still has one page.
func NewPager(total int64, page, pageSize int) Pager {
	if pageSize <= 0 {
		pageSize = 20
	}
	pageCount := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pageCount < 1 {
		pageCount = 1
	}
	page = min(max(page, 1), pageCount)

	first := max(page-pagerScope/2, 1)
	last := min(first+pagerScope-1, pageCount)
	first = max(last-pagerScope+1, 1)
	pages := make([]int, 0, last-first+1)
	for p := first; p <= last; p++ {
		pages = append(pages, p)
	}

	return Pager{
		Page:      page,
		PageCount: pageCount,
		PageSize:  pageSize,
		Total:     total,
		Offset:    (page - 1) * pageSize,
		Pages:     pages,
	}
}

// HasPrev reports whether a previous page exists
func (p Pager) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists
func (p Pager) HasNext() bool { return p.Page < p.PageCount }
