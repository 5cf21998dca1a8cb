package collection

import (
	"context"
	"errors"
	"sync"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
)

// ErrStaleFetch is returned when a fetch completed after a newer one was
// issued; its result is discarded instead of overwriting newer state.
var ErrStaleFetch = errors.New("stale fetch discarded")

// deleteWorkers caps parallel deletions in a batch
const deleteWorkers = 4

// Entity is anything a controller can manage
type Entity interface {
	EntityID() string
}

// Page is one page of an upstream collection
type Page[T Entity] struct {
	Items []T
	Total int
}

// Gateway performs the upstream calls for one resource. Implementations own
// the wire-format mapping; the controller never sees a wire record.
type Gateway[T Entity] interface {
	List(ctx context.Context, q Query) (Page[T], error)
	Create(ctx context.Context, input T) (T, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (T, error)
	Delete(ctx context.Context, id string) error
}

// ValidateFunc checks a create input client-side. A non-empty map fails the
// create before any network call, with field-level messages.
type ValidateFunc[T Entity] func(input T) map[string]string

// Config configures a controller
type Config[T Entity] struct {
	Gateway        Gateway[T]
	ValidateCreate ValidateFunc[T]
	DefaultFilters map[string]string
}

// Snapshot is an immutable view of the controller state for rendering
type Snapshot[T Entity] struct {
	Items      []T
	Total      int
	TotalPages int
	Loading    bool
	Err        error
	Query      Query
	Selected   []string
}

// Controller owns the in-memory state of one remote collection: the loaded
// page, pagination and filter criteria, the bulk-action selection, and the
// loading/error flags. One instance exists per resource; every admin API
// handler for that resource goes through it.
type Controller[T Entity] struct {
	gw       Gateway[T]
	validate ValidateFunc[T]
	defaults map[string]string

	mu        sync.Mutex
	items     []T
	total     int
	loading   bool
	lastErr   error
	query     Query
	selection *Selection
	seq       uint64
	cancel    context.CancelFunc
}

// New creates a controller for one resource
func New[T Entity](cfg Config[T]) *Controller[T] {
	return &Controller[T]{
		gw:        cfg.Gateway,
		validate:  cfg.ValidateCreate,
		defaults:  cfg.DefaultFilters,
		query:     NewQuery(cfg.DefaultFilters),
		selection: NewSelection(),
	}
}

// Snapshot returns a copy of the current state
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)

	return Snapshot[T]{
		Items:      items,
		Total:      c.total,
		TotalPages: c.query.TotalPages(c.total),
		Loading:    c.loading,
		Err:        c.lastErr,
		Query:      c.query.Clone(),
		Selected:   c.selection.IDs(),
	}
}

// Refresh fetches the current page from the upstream and replaces the
// loaded list. Each refresh is tagged with a sequence number; a completion
// that lost the race to a newer refresh is discarded so a slow earlier
// request can never overwrite newer state. Starting a refresh cancels the
// previous in-flight one.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	return c.refresh(ctx, true)
}

func (c *Controller[T]) refresh(ctx context.Context, allowClamp bool) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	if c.cancel != nil {
		c.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.loading = true
	q := c.query.Clone()
	c.mu.Unlock()

	page, err := c.gw.List(fetchCtx, q)

	c.mu.Lock()
	if seq != c.seq {
		// a newer refresh superseded this one
		c.mu.Unlock()
		return ErrStaleFetch
	}
	c.loading = false
	c.cancel = nil
	if err != nil {
		c.lastErr = err
		c.mu.Unlock()
		return err
	}
	c.lastErr = nil
	c.items = page.Items
	c.total = page.Total
	c.selection.Intersect(c.currentIDs())

	// clamp the page when the result set shrank under our feet
	totalPages := q.TotalPages(page.Total)
	if allowClamp && totalPages >= 1 && c.query.Page > totalPages {
		c.query.Page = totalPages
		c.mu.Unlock()
		return c.refresh(ctx, false)
	}
	c.mu.Unlock()
	return nil
}

// currentIDs must be called with the mutex held
func (c *Controller[T]) currentIDs() []string {
	ids := make([]string, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.EntityID())
	}
	return ids
}

// SetPage moves to the given page and refetches
func (c *Controller[T]) SetPage(ctx context.Context, page int) error {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	c.query.Page = page
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetPageSize changes the page size, resets to page 1 and refetches
func (c *Controller[T]) SetPageSize(ctx context.Context, size int) error {
	c.mu.Lock()
	if size < 1 {
		size = DefaultPageSize
	}
	c.query.PageSize = size
	c.query.Page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetFilter sets one filter field and refetches from page 1
func (c *Controller[T]) SetFilter(ctx context.Context, key, value string) error {
	c.mu.Lock()
	c.query.Filters[key] = value
	c.query.Page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// ApplyQuery replaces the whole pagination/filter state in one step and
// refetches. Used by the admin API, where a request carries the complete
// desired state.
func (c *Controller[T]) ApplyQuery(ctx context.Context, q Query) error {
	c.mu.Lock()
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.Filters == nil {
		q.Filters = map[string]string{}
	}
	c.query = q.Clone()
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// ResetFilters restores all filter fields to their defaults, forces page 1
// and refetches
func (c *Controller[T]) ResetFilters(ctx context.Context) error {
	c.mu.Lock()
	c.query = NewQuery(c.defaults)
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SelectAll selects every currently loaded id, or clears the selection
func (c *Controller[T]) SelectAll(checked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.SelectAll(c.currentIDs(), checked)
}

// ToggleSelect flips one id in the selection
func (c *Controller[T]) ToggleSelect(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.Toggle(id)
}

// Selected returns the selected ids in sorted order
func (c *Controller[T]) Selected() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.IDs()
}

// Create validates the input client-side, creates it upstream, then
// refetches so the visible list reflects server truth.
func (c *Controller[T]) Create(ctx context.Context, input T) (T, error) {
	var zero T

	if c.validate != nil {
		if fields := c.validate(input); len(fields) > 0 {
			return zero, apierr.Validation(fields)
		}
	}

	c.setLoading(true)
	created, err := c.gw.Create(ctx, input)
	c.setLoading(false)
	if err != nil {
		c.setErr(err)
		return zero, err
	}
	c.setErr(nil)

	if err := c.Refresh(ctx); err != nil && !errors.Is(err, ErrStaleFetch) {
		// the create itself succeeded; surface the entity anyway
		return created, nil
	}
	return created, nil
}

// Update patches the entity upstream and merges the returned record into
// the loaded list by id. The patch must already be a diff; building it from
// the caller's field knowledge is the resource usecase's job.
func (c *Controller[T]) Update(ctx context.Context, id string, patch map[string]interface{}) (T, error) {
	var zero T

	if id == "" {
		return zero, apierr.New(apierr.KindPrecondition, "id is required for update")
	}
	if len(patch) == 0 {
		return zero, apierr.New(apierr.KindPrecondition, "no fields to update")
	}

	c.setLoading(true)
	updated, err := c.gw.Update(ctx, id, patch)
	c.setLoading(false)
	if err != nil {
		c.setErr(err)
		return zero, err
	}
	c.setErr(nil)

	c.mu.Lock()
	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items[i] = updated
			break
		}
	}
	c.mu.Unlock()

	return updated, nil
}

// DeleteBatch deletes the given ids upstream, a bounded number in parallel.
// Failures are collected per id: the ids that succeeded are spliced out of
// the loaded list and cleared from the selection, the rest stay selected,
// and a partial-failure error names the failed subset.
func (c *Controller[T]) DeleteBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	c.setLoading(true)
	defer c.setLoading(false)

	var (
		wg        sync.WaitGroup
		resultMu  sync.Mutex
		failed    = make(map[string]string)
		succeeded = make([]string, 0, len(ids))
	)
	sem := make(chan struct{}, deleteWorkers)

	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			err := c.gw.Delete(ctx, id)

			resultMu.Lock()
			defer resultMu.Unlock()
			if err != nil {
				failed[id] = err.Error()
				return
			}
			succeeded = append(succeeded, id)
		}(id)
	}
	wg.Wait()

	c.mu.Lock()
	if len(succeeded) > 0 {
		gone := make(map[string]struct{}, len(succeeded))
		for _, id := range succeeded {
			gone[id] = struct{}{}
		}
		kept := c.items[:0]
		for _, item := range c.items {
			if _, ok := gone[item.EntityID()]; !ok {
				kept = append(kept, item)
			}
		}
		c.items = kept
		c.total -= len(succeeded)
		if c.total < 0 {
			c.total = 0
		}
		c.selection.Remove(succeeded...)
	}
	c.mu.Unlock()

	if len(failed) > 0 {
		err := apierr.Partial("delete", failed)
		c.setErr(err)
		return err
	}
	c.setErr(nil)
	return nil
}

// DeleteSelected deletes everything in the selection
func (c *Controller[T]) DeleteSelected(ctx context.Context) error {
	return c.DeleteBatch(ctx, c.Selected())
}

func (c *Controller[T]) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

func (c *Controller[T]) setErr(err error) {
	c.mu.Lock()
	c.lastErr = err
	c.mu.Unlock()
}
