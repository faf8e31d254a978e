// Package pagination tracks which page of the remote user list is shown.
package pagination

// State is a snapshot of the controller for rendering.
type State struct {
	Current int
	Total   int
	HasPrev bool
	HasNext bool
}

// Controller keeps the current page within [1, Total]. Total is whatever the
// last fetch reported; before the first fetch it is 0 and every GoTo is
// refused. The zero value is not ready for use, call New.
type Controller struct {
	current int
	total   int
}

func New() *Controller {
	return &Controller{current: 1}
}

// Accepts reports whether GoTo(p) would move.
func (c *Controller) Accepts(p int) bool {
	return p >= 1 && p <= c.total
}

// GoTo moves to page p and reports true, or leaves the state alone and
// reports false when p is out of range. Callers fetch p on true.
func (c *Controller) GoTo(p int) bool {
	if !c.Accepts(p) {
		return false
	}
	c.current = p
	return true
}

// Next returns the page after the current one and whether it exists.
func (c *Controller) Next() (int, bool) {
	p := c.current + 1
	return p, c.Accepts(p)
}

// Prev returns the page before the current one and whether it exists.
func (c *Controller) Prev() (int, bool) {
	p := c.current - 1
	return p, c.Accepts(p)
}

// Update records the result of fetching page: it becomes current and total
// is replaced. current is clamped into [1, total] when total > 0.
func (c *Controller) Update(page, total int) {
	if total < 0 {
		total = 0
	}
	c.total = total

	if page < 1 {
		page = 1
	}
	if total > 0 && page > total {
		page = total
	}
	c.current = page
}

func (c *Controller) Current() int { return c.current }

func (c *Controller) Total() int { return c.total }

// Pages lists 1..Total for page buttons.
func (c *Controller) Pages() []int {
	pages := make([]int, c.total)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

func (c *Controller) State() State {
	_, hasPrev := c.Prev()
	_, hasNext := c.Next()
	return State{Current: c.current, Total: c.total, HasPrev: hasPrev, HasNext: hasNext}
}
