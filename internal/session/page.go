package session

import (
	"context"
	"sync"

	"github.com/felixgeelhaar/statekit"

	"github.com/critapp/crit/internal/client"
	"github.com/critapp/crit/internal/models"
)

// Page workflow states, shared by the collection and detail views.
const (
	StateLoading    = "loading"
	StateLoaded     = "loaded"
	StateLoadFailed = "load_failed"
	StateDeleting   = "deleting"
)

type pageContext struct{}

// newPageInterpreter builds the machine both page kinds share:
// loading -> {loaded, load_failed}, with a deleting sub-state reachable
// from loaded that always settles back to loaded.
func newPageInterpreter(name string) (*statekit.Interpreter[pageContext], error) {
	builder := statekit.NewMachine[pageContext](name).
		WithInitial(statekit.StateID(StateLoading)).
		WithContext(pageContext{})

	builder.State(StateLoading).
		On("finish").Target(StateLoaded).
		On("fail").Target(StateLoadFailed).
		Done()

	builder.State(StateLoaded).
		On("delete").Target(StateDeleting).
		Done()

	builder.State(StateDeleting).
		On("delete-ok").Target(StateLoaded).
		On("delete-fail").Target(StateLoaded).
		Done()

	// Terminal for the page instance.
	builder.State(StateLoadFailed).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, err
	}
	interp := statekit.NewInterpreter(machine)
	interp.Start()
	return interp, nil
}

// Collection is the history-page workflow. It issues exactly one list call
// on entry and then owns the fetched reviews in memory for the page's
// lifetime; only the delete success path mutates them, and the page is
// never silently refreshed.
type Collection struct {
	mu     sync.Mutex
	svc    client.Service
	interp *statekit.Interpreter[pageContext]
	gen    int

	reviews []models.Review
	loadErr error
}

// NewCollection creates the workflow for one history-page visit.
func NewCollection(svc client.Service) (*Collection, error) {
	interp, err := newPageInterpreter("collection-page")
	if err != nil {
		return nil, err
	}
	return &Collection{svc: svc, interp: interp}, nil
}

// State returns the current workflow state.
func (c *Collection) State() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.interp.State().Value)
}

// Reviews returns the held collection. Valid once loaded.
func (c *Collection) Reviews() []models.Review {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reviews
}

// Err returns the load failure, if the page failed to load.
func (c *Collection) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

// Discard abandons the page; any in-flight result is dropped on arrival.
func (c *Collection) Discard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
}

// Load issues the page's single list call. The collection view treats every
// load failure uniformly.
func (c *Collection) Load(ctx context.Context) ([]models.Review, error) {
	c.mu.Lock()
	if c.interp.State().Value != statekit.StateID(StateLoading) {
		c.mu.Unlock()
		return nil, ErrInFlight
	}
	gen := c.gen
	c.mu.Unlock()

	reviews, err := c.svc.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil, ErrDiscarded
	}
	if err != nil {
		c.loadErr = err
		_ = send(c.interp, "fail")
		return nil, err
	}
	c.reviews = reviews
	_ = send(c.interp, "finish")
	return reviews, nil
}

// Delete removes one review. On success the id is dropped from the held
// collection in place, with no re-fetch; on failure the collection is left
// exactly as it was. The delete affordance is unavailable while a delete is
// in flight.
func (c *Collection) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.interp.State().Value == statekit.StateID(StateDeleting) {
		c.mu.Unlock()
		return ErrInFlight
	}
	if err := send(c.interp, "delete"); err != nil {
		c.mu.Unlock()
		return err
	}
	gen := c.gen
	c.mu.Unlock()

	err := c.svc.Delete(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return ErrDiscarded
	}
	if err != nil {
		_ = send(c.interp, "delete-fail")
		return err
	}
	for i, r := range c.reviews {
		if r.ID == id {
			c.reviews = append(c.reviews[:i], c.reviews[i+1:]...)
			break
		}
	}
	_ = send(c.interp, "delete-ok")
	return nil
}

// Detail is the results-page workflow for a single review.
type Detail struct {
	mu     sync.Mutex
	svc    client.Service
	interp *statekit.Interpreter[pageContext]
	gen    int

	id       string
	review   *models.Review
	loadErr  error
	notFound bool
}

// NewDetail creates the workflow for one results-page visit.
func NewDetail(svc client.Service, id string) (*Detail, error) {
	interp, err := newPageInterpreter("detail-page")
	if err != nil {
		return nil, err
	}
	return &Detail{svc: svc, interp: interp, id: id}, nil
}

// State returns the current workflow state.
func (d *Detail) State() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return string(d.interp.State().Value)
}

// Review returns the held review. Valid once loaded.
func (d *Detail) Review() *models.Review {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.review
}

// Err returns the load failure, if the page failed to load.
func (d *Detail) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loadErr
}

// NotFound reports whether a failed load was specifically a missing id, so
// the view can render a not-found affordance instead of a generic failure.
func (d *Detail) NotFound() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.notFound
}

// Discard abandons the page; any in-flight result is dropped on arrival.
func (d *Detail) Discard() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
}

// Load issues the page's single get call.
func (d *Detail) Load(ctx context.Context) (*models.Review, error) {
	d.mu.Lock()
	if d.interp.State().Value != statekit.StateID(StateLoading) {
		d.mu.Unlock()
		return nil, ErrInFlight
	}
	gen := d.gen
	d.mu.Unlock()

	review, err := d.svc.Get(ctx, d.id)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return nil, ErrDiscarded
	}
	if err != nil {
		d.loadErr = err
		d.notFound = client.IsNotFound(err)
		_ = send(d.interp, "fail")
		return nil, err
	}
	d.review = review
	_ = send(d.interp, "finish")
	return review, nil
}

// Delete removes the review being shown. On success the caller navigates
// away and discards the page; a failed delete leaves the page loaded and
// unchanged.
func (d *Detail) Delete(ctx context.Context) error {
	d.mu.Lock()
	if d.interp.State().Value == statekit.StateID(StateDeleting) {
		d.mu.Unlock()
		return ErrInFlight
	}
	if err := send(d.interp, "delete"); err != nil {
		d.mu.Unlock()
		return err
	}
	gen := d.gen
	d.mu.Unlock()

	err := d.svc.Delete(ctx, d.id)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return ErrDiscarded
	}
	if err != nil {
		_ = send(d.interp, "delete-fail")
		return err
	}
	_ = send(d.interp, "delete-ok")
	return nil
}
