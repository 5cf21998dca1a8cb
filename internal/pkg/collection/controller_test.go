package collection

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/stretchr/testify/assert"
)

type thing struct {
	ID   string
	Name string
}

func (t thing) EntityID() string { return t.ID }

// fakeGateway serves a fixed dataset with limit/offset pagination and an
// optional name filter, and lets tests fail specific operations.
type fakeGateway struct {
	mu         sync.Mutex
	data       []thing
	listCalls  int32
	createErr  error
	deleteErr  map[string]error
	lastPatch  map[string]interface{}
	listGate   chan struct{} // when set, List blocks until the gate closes
	gateOnCall int32         // which list call (1-based) should block
}

func (g *fakeGateway) List(ctx context.Context, q Query) (Page[thing], error) {
	call := atomic.AddInt32(&g.listCalls, 1)
	if g.listGate != nil && call == g.gateOnCall {
		<-g.listGate
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	filtered := make([]thing, 0, len(g.data))
	want := q.Filters["name"]
	for _, item := range g.data {
		if want == "" || want == "all" || item.Name == want {
			filtered = append(filtered, item)
		}
	}

	start := q.Offset()
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + q.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	page := make([]thing, end-start)
	copy(page, filtered[start:end])
	return Page[thing]{Items: page, Total: len(filtered)}, nil
}

func (g *fakeGateway) Create(ctx context.Context, input thing) (thing, error) {
	if g.createErr != nil {
		return thing{}, g.createErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	input.ID = fmt.Sprintf("t%d", len(g.data)+1)
	g.data = append(g.data, input)
	return input, nil
}

func (g *fakeGateway) Update(ctx context.Context, id string, patch map[string]interface{}) (thing, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastPatch = patch
	for i := range g.data {
		if g.data[i].ID == id {
			if name, ok := patch["name"].(string); ok {
				g.data[i].Name = name
			}
			return g.data[i], nil
		}
	}
	return thing{}, apierr.Upstream(404, "not found")
}

func (g *fakeGateway) Delete(ctx context.Context, id string) error {
	if err := g.deleteErr[id]; err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.data {
		if g.data[i].ID == id {
			g.data = append(g.data[:i], g.data[i+1:]...)
			return nil
		}
	}
	return nil
}

func dataset(n int) []thing {
	out := make([]thing, n)
	for i := range out {
		out[i] = thing{ID: fmt.Sprintf("t%d", i+1), Name: "widget"}
	}
	return out
}

func newController(gw *fakeGateway) *Controller[thing] {
	return New(Config[thing]{
		Gateway: gw,
		ValidateCreate: func(input thing) map[string]string {
			fields := map[string]string{}
			if input.Name == "" {
				fields["name"] = "name is required"
			}
			return fields
		},
		DefaultFilters: map[string]string{"name": "all"},
	})
}

func TestRefresh_LoadsFirstPage(t *testing.T) {
	gw := &fakeGateway{data: dataset(47)}
	c := newController(gw)

	assert.NoError(t, c.Refresh(context.Background()))

	snap := c.Snapshot()
	assert.Len(t, snap.Items, 20)
	assert.Equal(t, 47, snap.Total)
	assert.Equal(t, 3, snap.TotalPages)
	assert.False(t, snap.Loading)
	assert.NoError(t, snap.Err)
}

func TestSetPage_ClampsPastEnd(t *testing.T) {
	gw := &fakeGateway{data: dataset(47)}
	c := newController(gw)
	assert.NoError(t, c.SetPageSize(context.Background(), 10))

	snap := c.Snapshot()
	assert.Equal(t, 5, snap.TotalPages)

	// requesting page 6 of 5 must land on page 5 with its 7 items
	assert.NoError(t, c.SetPage(context.Background(), 6))

	snap = c.Snapshot()
	assert.Equal(t, 5, snap.Query.Page)
	assert.Len(t, snap.Items, 7)
}

func TestFilterChange_ClampsAndResetsPage(t *testing.T) {
	gw := &fakeGateway{data: dataset(47)}
	gw.data[0].Name = "gadget"
	c := newController(gw)
	assert.NoError(t, c.SetPageSize(context.Background(), 10))
	assert.NoError(t, c.SetPage(context.Background(), 5))

	assert.NoError(t, c.SetFilter(context.Background(), "name", "gadget"))

	snap := c.Snapshot()
	assert.Equal(t, 1, snap.Query.Page)
	assert.Equal(t, 1, snap.Total)
	assert.Len(t, snap.Items, 1)
}

func TestRefresh_StaleCompletionDiscarded(t *testing.T) {
	gw := &fakeGateway{data: dataset(5), listGate: make(chan struct{}), gateOnCall: 1}
	c := newController(gw)

	done := make(chan error, 1)
	go func() {
		// first refresh: blocks inside List until the gate opens
		done <- c.Refresh(context.Background())
	}()

	// second refresh issued while the first is still in flight; the fake
	// does not block it, so it completes and applies first
	for atomic.LoadInt32(&gw.listCalls) == 0 {
	}
	gw.mu.Lock()
	gw.data = dataset(3)
	gw.mu.Unlock()
	assert.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, 3, c.Snapshot().Total)

	// release the slow first fetch; its 5-item result must be discarded
	close(gw.listGate)
	assert.ErrorIs(t, <-done, ErrStaleFetch)
	assert.Equal(t, 3, c.Snapshot().Total)
}

func TestSelection_PrunedOnListReplacement(t *testing.T) {
	gw := &fakeGateway{data: dataset(4)}
	gw.data[2].Name = "gadget" // t3
	c := newController(gw)
	assert.NoError(t, c.Refresh(context.Background()))

	c.SelectAll(true)
	assert.Len(t, c.Selected(), 4)

	// narrowing the filter replaces the list; selection must shrink to the
	// intersection, never referencing an id that is no longer loaded
	assert.NoError(t, c.SetFilter(context.Background(), "name", "gadget"))

	assert.Equal(t, []string{"t3"}, c.Selected())
}

func TestCreate_ValidationFailsWithoutNetworkCall(t *testing.T) {
	gw := &fakeGateway{data: dataset(1)}
	c := newController(gw)
	assert.NoError(t, c.Refresh(context.Background()))
	listCallsBefore := atomic.LoadInt32(&gw.listCalls)

	_, err := c.Create(context.Background(), thing{Name: ""})

	e, ok := apierr.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, apierr.KindValidation, e.Kind)
	assert.Equal(t, "name is required", e.Fields["name"])
	// no create, no refetch
	assert.Equal(t, listCallsBefore, atomic.LoadInt32(&gw.listCalls))
	assert.Equal(t, 1, c.Snapshot().Total)
}

func TestCreate_AppearsExactlyOnceAfterRefetch(t *testing.T) {
	gw := &fakeGateway{data: dataset(2)}
	c := newController(gw)
	assert.NoError(t, c.Refresh(context.Background()))

	created, err := c.Create(context.Background(), thing{Name: "gadget"})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	snap := c.Snapshot()
	assert.Equal(t, 3, snap.Total)
	occurrences := 0
	for _, item := range snap.Items {
		if item.ID == created.ID {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences)
}

func TestUpdate_RequiresID(t *testing.T) {
	gw := &fakeGateway{data: dataset(1)}
	c := newController(gw)

	_, err := c.Update(context.Background(), "", map[string]interface{}{"name": "x"})

	assert.Equal(t, apierr.KindPrecondition, apierr.KindOf(err))
}

func TestUpdate_MergesIntoStore(t *testing.T) {
	gw := &fakeGateway{data: dataset(3)}
	c := newController(gw)
	assert.NoError(t, c.Refresh(context.Background()))

	updated, err := c.Update(context.Background(), "t2", map[string]interface{}{"name": "gadget"})
	assert.NoError(t, err)
	assert.Equal(t, "gadget", updated.Name)

	snap := c.Snapshot()
	assert.Equal(t, "gadget", snap.Items[1].Name)
	// neighbours untouched
	assert.Equal(t, "widget", snap.Items[0].Name)
	assert.Equal(t, "widget", snap.Items[2].Name)
}

func TestDeleteBatch_PartialFailure(t *testing.T) {
	gw := &fakeGateway{
		data: dataset(5),
		deleteErr: map[string]error{
			"t2": apierr.Upstream(409, "wallet not empty"),
			"t4": apierr.Upstream(500, "internal"),
		},
	}
	c := newController(gw)
	assert.NoError(t, c.Refresh(context.Background()))
	c.SelectAll(true)

	err := c.DeleteSelected(context.Background())

	// exactly the 3 successful ids are gone from the store
	snap := c.Snapshot()
	assert.Equal(t, 2, snap.Total)
	remaining := []string{}
	for _, item := range snap.Items {
		remaining = append(remaining, item.ID)
	}
	assert.ElementsMatch(t, []string{"t2", "t4"}, remaining)

	// the failed ids stay selected, the succeeded ones are cleared
	assert.Equal(t, []string{"t2", "t4"}, c.Selected())

	// the error names exactly the failed subset
	e, ok := apierr.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, apierr.KindPartial, e.Kind)
	assert.Len(t, e.Failed, 2)
	assert.Contains(t, e.Failed, "t2")
	assert.Contains(t, e.Failed, "t4")
}

func TestDeleteBatch_AllSucceed(t *testing.T) {
	gw := &fakeGateway{data: dataset(3)}
	c := newController(gw)
	assert.NoError(t, c.Refresh(context.Background()))
	c.SelectAll(true)

	assert.NoError(t, c.DeleteSelected(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, 0, snap.Total)
	assert.Empty(t, snap.Items)
	assert.Empty(t, c.Selected())
}

func TestDeleteBatch_Empty(t *testing.T) {
	gw := &fakeGateway{}
	c := newController(gw)

	assert.NoError(t, c.DeleteBatch(context.Background(), nil))
}

func TestResetFilters(t *testing.T) {
	gw := &fakeGateway{data: dataset(10)}
	gw.data[0].Name = "gadget"
	c := newController(gw)
	assert.NoError(t, c.SetFilter(context.Background(), "name", "gadget"))
	assert.Equal(t, 1, c.Snapshot().Total)

	assert.NoError(t, c.ResetFilters(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, "all", snap.Query.Filters["name"])
	assert.Equal(t, 1, snap.Query.Page)
	assert.Equal(t, 10, snap.Total)
}
