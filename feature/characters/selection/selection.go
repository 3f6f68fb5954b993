package selection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"flatacuties/feature/characters/models"
)

// ErrNoSelection is returned by vote operations when nothing is selected.
var ErrNoSelection = errors.New("no character selected")

// Lookup reads cached records. *store.Store satisfies it.
type Lookup interface {
	Get(id int) (models.Character, error)
}

// Fetcher loads a single record from the remote.
type Fetcher interface {
	FetchByID(ctx context.Context, id int) (models.Character, error)
}

// Change describes a vote mutation of the current selection.
type Change struct {
	ID       int
	Previous int
	Votes    int
}

// Controller owns the current selection.
type Controller struct {
	mu      sync.RWMutex
	current *models.Character

	lookup  Lookup
	fetcher Fetcher
	// refresh makes every selection go to the remote, even for cached records.
	refresh bool
}

// New creates a controller. With refresh set, SelectByID always fetches from
// the remote; otherwise it only fetches records missing from lookup.
func New(lookup Lookup, fetcher Fetcher, refresh bool) *Controller {
	return &Controller{lookup: lookup, fetcher: fetcher, refresh: refresh}
}

// SelectByID makes the record with id current and returns it.
// On failure the previous selection is kept.
func (c *Controller) SelectByID(ctx context.Context, id int) (models.Character, error) {
	if !c.refresh && c.lookup != nil {
		if rec, err := c.lookup.Get(id); err == nil {
			return c.Replace(rec), nil
		}
	}

	if c.fetcher == nil {
		return models.Character{}, fmt.Errorf("select character %d: not cached", id)
	}
	rec, err := c.fetcher.FetchByID(ctx, id)
	if err != nil {
		return models.Character{}, fmt.Errorf("select character %d: %w", id, err)
	}
	return c.Replace(rec), nil
}

// Replace installs a copy of rec as the current selection.
func (c *Controller) Replace(rec models.Character) models.Character {
	rec = rec.Normalize()
	c.mu.Lock()
	c.current = &rec
	c.mu.Unlock()
	return rec
}

// Current returns a copy of the current selection.
func (c *Controller) Current() (models.Character, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return models.Character{}, false
	}
	return *c.current, true
}

// Increment adds one vote to the current selection.
func (c *Controller) Increment() (Change, error) {
	return c.mutate(func(v int) int { return v + 1 })
}

// Reset sets the current selection's votes to zero.
func (c *Controller) Reset() (Change, error) {
	return c.mutate(func(int) int { return 0 })
}

func (c *Controller) mutate(next func(int) int) (Change, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Change{}, ErrNoSelection
	}
	prev := c.current.Votes
	c.current.Votes = next(prev)
	return Change{ID: c.current.ID, Previous: prev, Votes: c.current.Votes}, nil
}

// SetVotesIf sets the votes of the current selection to votes, but only if it
// is still record id showing expected. It reports whether it changed anything.
func (c *Controller) SetVotesIf(id, expected, votes int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil || c.current.ID != id || c.current.Votes != expected {
		return false
	}
	if votes < 0 {
		votes = 0
	}
	c.current.Votes = votes
	return true
}
