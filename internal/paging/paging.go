// Package paging computes the visible page-number window for paged record
// sets. It holds no server data; selecting a page only emits the chosen
// 1-based index for the caller to re-fetch.
package paging

// Pager tracks the current page and the visible window of page numbers for
// one record set.
type Pager struct {
	pageSize     int
	windowSize   int
	totalRecords int
	current      int // 1-based selected page
	first        int // 0-based index of the window's first page
	onSelect     func(page int)
}

// New creates a pager over totalRecords records. The window shows at most
// windowSize page numbers at a time. onSelect may be nil.
func New(totalRecords, pageSize, windowSize int, onSelect func(page int)) *Pager {
	if pageSize < 1 {
		pageSize = 1
	}
	if windowSize < 1 {
		windowSize = 1
	}
	return &Pager{
		pageSize:     pageSize,
		windowSize:   windowSize,
		totalRecords: totalRecords,
		current:      1,
		onSelect:     onSelect,
	}
}

// Enabled reports whether a pagination control should render at all.
// A record set that fits in one page has a single implicit page.
func (p *Pager) Enabled() bool {
	return p.totalRecords > p.pageSize
}

// TotalPages returns ceil(totalRecords / pageSize), at least 1.
func (p *Pager) TotalPages() int {
	n := (p.totalRecords + p.pageSize - 1) / p.pageSize
	if n < 1 {
		n = 1
	}
	return n
}

// Current returns the selected 1-based page index.
func (p *Pager) Current() int {
	return p.current
}

// Visible returns the page numbers currently in the window.
func (p *Pager) Visible() []int {
	total := p.TotalPages()
	pages := make([]int, 0, p.windowSize)
	for i := p.first; i < p.first+p.windowSize && i < total; i++ {
		pages = append(pages, i+1)
	}
	return pages
}

// Select makes page the current page, aligns the window to contain it, and
// emits the index through the callback. Out-of-range pages are clamped.
func (p *Pager) Select(page int) {
	total := p.TotalPages()
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	p.current = page
	p.first = (page - 1) / p.windowSize * p.windowSize
	if p.onSelect != nil {
		p.onSelect(page)
	}
}

// Next shifts the window forward by one window size and selects the first
// page of the new window. The shift is skipped when it would move past the
// last page.
func (p *Pager) Next() {
	if p.first+p.windowSize <= p.TotalPages()-1 {
		p.first += p.windowSize
		p.Select(p.first + 1)
	}
}

// Prev shifts the window back by one window size and selects the first page
// of the new window. The shift is skipped at the start.
func (p *Pager) Prev() {
	if p.first-p.windowSize >= 0 {
		p.first -= p.windowSize
		p.Select(p.first + 1)
	}
}

// Sync resets the pager to an externally supplied state, for when the
// caller's underlying list changes pages out from under it (e.g. after a
// filter change). No callback fires.
func (p *Pager) Sync(totalRecords, current int) {
	p.totalRecords = totalRecords
	if current < 1 {
		current = 1
	}
	if total := p.TotalPages(); current > total {
		current = total
	}
	p.current = current
	p.first = (current - 1) / p.windowSize * p.windowSize
}
