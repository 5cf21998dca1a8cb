package collection

// Query is the gateway-facing view of pagination and filter state.
// Page is 1-based; gateways convert it to the upstream wire convention.
type Query struct {
	Page     int
	PageSize int
	Filters  map[string]string
}

// DefaultPageSize used when a query carries none
const DefaultPageSize = 20

// NewQuery returns a query on page 1 with the given default filters
func NewQuery(defaults map[string]string) Query {
	filters := make(map[string]string, len(defaults))
	for k, v := range defaults {
		filters[k] = v
	}
	return Query{Page: 1, PageSize: DefaultPageSize, Filters: filters}
}

// Clone returns a deep copy so snapshots cannot alias controller state
func (q Query) Clone() Query {
	filters := make(map[string]string, len(q.Filters))
	for k, v := range q.Filters {
		filters[k] = v
	}
	return Query{Page: q.Page, PageSize: q.PageSize, Filters: filters}
}

// TotalPages computes ceil(total/pageSize)
func (q Query) TotalPages(total int) int {
	size := q.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Offset computes the 0-based offset of the query's page
func (q Query) Offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	return (page - 1) * size
}
