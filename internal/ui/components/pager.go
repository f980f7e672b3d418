package components

// Pager owns cursor and page state for a paginated list. Pages are
// 1-based; the cursor is an absolute index into Items and always stays
// on the current page.
type Pager struct {
	Items    []string
	Page     int
	PageSize int
	Cursor   int
}

// NewPager creates a pager with the given page size.
func NewPager(pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Pager{Page: 1, PageSize: pageSize}
}

// SetItems replaces the collection and resets to the first page.
func (p *Pager) SetItems(items []string) {
	p.Items = items
	p.Page = 1
	p.Cursor = 0
}

// TotalPages is never below 1, even for an empty collection.
func (p *Pager) TotalPages() int {
	if len(p.Items) == 0 {
		return 1
	}
	return (len(p.Items) + p.PageSize - 1) / p.PageSize
}

// Clamp forces page and cursor back into valid bounds.
func (p *Pager) Clamp() {
	total := p.TotalPages()
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > total {
		p.Page = total
	}
	start, end := p.pageBounds()
	if p.Cursor < start {
		p.Cursor = start
	}
	if p.Cursor > end {
		p.Cursor = end
	}
}

// AtFirstPage reports whether the Previous control should be disabled.
func (p *Pager) AtFirstPage() bool { return p.Page <= 1 }

// AtLastPage reports whether the Next control should be disabled.
func (p *Pager) AtLastPage() bool { return p.Page >= p.TotalPages() }

// NextPage advances one page, clamped at the last page.
func (p *Pager) NextPage() {
	if p.AtLastPage() {
		return
	}
	p.Page++
	p.Cursor = (p.Page - 1) * p.PageSize
}

// PrevPage moves back one page, clamped at the first page.
func (p *Pager) PrevPage() {
	if p.AtFirstPage() {
		return
	}
	p.Page--
	p.Cursor = (p.Page - 1) * p.PageSize
}

// Down moves the cursor within the current page.
func (p *Pager) Down() {
	_, end := p.pageBounds()
	if p.Cursor < end {
		p.Cursor++
	}
}

// Up moves the cursor within the current page.
func (p *Pager) Up() {
	start, _ := p.pageBounds()
	if p.Cursor > start {
		p.Cursor--
	}
}

// Visible returns the slice of items on the current page.
func (p *Pager) Visible() []string {
	if len(p.Items) == 0 {
		return nil
	}
	start, end := p.pageBounds()
	return p.Items[start : end+1]
}

// Selected returns the absolute index of the cursor row, or -1 when the
// collection is empty.
func (p *Pager) Selected() int {
	if len(p.Items) == 0 {
		return -1
	}
	return p.Cursor
}

// PageStart returns the absolute index of the first row on the page.
func (p *Pager) PageStart() int {
	start, _ := p.pageBounds()
	return start
}

// IsSelected reports whether the absolute index is the cursor row.
func (p *Pager) IsSelected(abs int) bool {
	return len(p.Items) > 0 && abs == p.Cursor
}

// pageBounds returns the absolute [start, end] indexes of the current
// page. For an empty collection both are 0.
func (p *Pager) pageBounds() (int, int) {
	if len(p.Items) == 0 {
		return 0, 0
	}
	start := (p.Page - 1) * p.PageSize
	if start >= len(p.Items) {
		start = (p.TotalPages() - 1) * p.PageSize
	}
	end := start + p.PageSize - 1
	if end >= len(p.Items) {
		end = len(p.Items) - 1
	}
	return start, end
}
