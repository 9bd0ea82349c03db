package session

import "github.com/salesflow-dev/salesflow/internal/catalog"

// Suggester computes coaching suggestions for a session snapshot. Injected
// so the controller stays decoupled from the suggestion engine.
type Suggester func(Session) []string

// Controller tracks the currently active session on top of the Store.
// Its state is a read-through cache: every mutation goes to the Store and
// the projection is re-fetched, never mutated optimistically.
type Controller struct {
	store   *Store
	catalog *catalog.Catalog
	suggest Suggester

	current   *Session
	summaries []Summary
}

// NewController creates a Controller. suggest may be nil, in which case no
// suggestions are attached when a result is recorded.
func NewController(store *Store, cat *catalog.Catalog, suggest Suggester) *Controller {
	c := &Controller{store: store, catalog: cat, suggest: suggest}
	c.RefreshSummaries()
	return c
}

// Current returns the active session projection, or nil if none selected.
func (c *Controller) Current() *Session {
	return c.current
}

// Summaries returns the cached summary list, refreshed after every mutation.
func (c *Controller) Summaries() []Summary {
	return c.summaries
}

// RefreshSummaries re-reads the summary list from the store.
func (c *Controller) RefreshSummaries() {
	c.summaries = c.store.Summaries()
}

// CreateSession creates and selects a new session.
func (c *Controller) CreateSession(companyName, contactPerson string) Session {
	sess := c.store.Create(companyName, contactPerson)
	c.current = &sess
	c.RefreshSummaries()
	return sess
}

// SelectSession makes the given session current. Selecting an unknown id
// clears the selection.
func (c *Controller) SelectSession(sessionID string) {
	c.current = c.store.GetByID(sessionID)
}

// ClearSession deselects the current session without deleting it.
func (c *Controller) ClearSession() {
	c.current = nil
}

// UpdateCheckpoint toggles one checkpoint on the current session, then
// re-reads the session and summaries. No-op without a current session.
func (c *Controller) UpdateCheckpoint(nodeID string, index int, checked bool) {
	if c.current == nil {
		return
	}
	c.store.UpdateCheckpoint(c.current.ID, nodeID, index, checked)
	c.current = c.store.GetByID(c.current.ID)
	c.RefreshSummaries()
}

// CheckpointStates returns the current session's recorded array for the
// node, or nil when there is no session, no recorded state, or the stored
// array's length disagrees with the catalog. nil means "no interaction
// yet", letting callers fall back to ephemeral local state.
func (c *Controller) CheckpointStates(nodeID string) []bool {
	if c.current == nil {
		return nil
	}
	states, ok := c.current.CheckpointStates[nodeID]
	if !ok {
		return nil
	}
	if len(states) != c.catalog.CheckpointCount(nodeID) {
		return nil
	}
	return states
}

// SetResult records the outcome on the current session. Suggestions are
// computed against a hypothetical copy with the result applied and status
// completed, then persisted alongside the result. No-op without a session.
func (c *Controller) SetResult(result Result) {
	if c.current == nil {
		return
	}

	var suggestions []string
	if c.suggest != nil {
		hypothetical := *c.current
		hypothetical.Result = &result
		hypothetical.Status = StatusCompleted
		suggestions = c.suggest(hypothetical)
	}

	c.store.SetResult(c.current.ID, result)
	if suggestions != nil {
		_, _ = c.store.Update(c.current.ID, Patch{Suggestions: suggestions})
	}

	c.current = c.store.GetByID(c.current.ID)
	c.RefreshSummaries()
}

// NodeProgress returns the completed/total checkpoint pair for the node on
// the current session. {0,0} when there is no session or no usable state,
// which callers use to skip rendering a progress affordance.
func (c *Controller) NodeProgress(nodeID string) Progress {
	states := c.CheckpointStates(nodeID)
	if states == nil {
		return Progress{}
	}
	p := Progress{Total: len(states)}
	for _, checked := range states {
		if checked {
			p.Completed++
		}
	}
	return p
}

// DeleteSession removes the session, deselecting it if it was current.
func (c *Controller) DeleteSession(sessionID string) {
	c.store.Delete(sessionID)
	if c.current != nil && c.current.ID == sessionID {
		c.current = nil
	}
	c.RefreshSummaries()
}
