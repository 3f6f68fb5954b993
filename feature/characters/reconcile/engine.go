package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"flatacuties/core/notify"
	corereconcile "flatacuties/core/reconcile"
	"flatacuties/feature/characters/models"
	"flatacuties/feature/characters/remote"
	"flatacuties/feature/characters/selection"
	"flatacuties/feature/characters/store"

	"go.uber.org/zap"
)

// Remote is the subset of the remote API the engine needs. *remote.Client satisfies it.
type Remote interface {
	Base() string
	FetchAll(ctx context.Context) ([]models.Character, error)
	FetchByID(ctx context.Context, id int) (models.Character, error)
	PersistVotes(ctx context.Context, id, votes int) (models.Character, error)
	CreateRecord(ctx context.Context, candidate models.Candidate) (remote.Created, error)
}

// Status messages shown to the user.
const (
	msgLoading        = "Loading characters from %s..."
	msgLoadFailed     = "Failed to load characters. Is json-server running?"
	msgDetailsFailed  = "Failed to load character details."
	msgLoaded         = "Loaded %d characters."
	msgSaved          = "Saved!"
	msgPersistFailed  = "Failed to persist votes."
	msgAdding         = "Adding character..."
	msgAdded          = "Character added!"
	msgAddedLocally   = "Server unreachable; added locally."
	msgInvalidPayload = "A character needs a name."
)

// Vote is the result of an optimistic vote change. Votes is the value to display
// right away; the embedded Pending resolves when persistence settles.
type Vote struct {
	ID    int
	Votes int
	*corereconcile.Pending[models.Character]
}

// Creation is the result of a create.
type Creation struct {
	Character models.Character
	// Confirmed is true when the server stored the record.
	Confirmed bool
}

// Engine owns one session: the record store, the current selection, and the
// reconciliation of optimistic changes with the remote.
//
// Every state transition runs under mu, which plays the role of the single
// event thread. Persistence runs in background goroutines whose results are
// applied in arrival order: the last response to land wins the store.
type Engine struct {
	mu        sync.Mutex
	remote    Remote
	store     *store.Store
	selection *selection.Controller
	notifier  notify.Notifier
	logger    *zap.Logger
	policy    corereconcile.Policy
	timeout   time.Duration
	inflight  corereconcile.Tracker
}

// NewEngine creates a session engine.
func NewEngine(r Remote, cfg Config, notifier notify.Notifier, logger *zap.Logger) (*Engine, error) {
	policy, err := corereconcile.ParsePolicy(cfg.OnPersistFailure)
	if err != nil {
		return nil, err
	}
	timeout := cfg.PersistTimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	if notifier == nil {
		notifier = notify.Func(func(notify.Notification) {})
	}

	st := store.New()
	return &Engine{
		remote:    r,
		store:     st,
		selection: selection.New(st, r, cfg.RefreshOnSelect),
		notifier:  notifier,
		logger:    logger,
		policy:    policy,
		timeout:   time.Duration(timeout) * time.Second,
	}, nil
}

func (e *Engine) notify(level notify.Level, message string) {
	e.notifier.Notify(notify.New(level, message))
}

// Base returns the remote API base address.
func (e *Engine) Base() string {
	return e.remote.Base()
}

// Characters returns the cached records in order.
func (e *Engine) Characters() []models.Character {
	return e.store.All()
}

// Character returns one cached record.
func (e *Engine) Character(id int) (models.Character, error) {
	return e.store.Get(id)
}

// Current returns the current selection.
func (e *Engine) Current() (models.Character, bool) {
	return e.selection.Current()
}

// Policy returns the persist failure policy in effect.
func (e *Engine) Policy() corereconcile.Policy {
	return e.policy
}

// Load replaces the store with the remote collection and selects its first record.
// On failure the previous state is left intact.
func (e *Engine) Load(ctx context.Context) error {
	e.notify(notify.LevelLoading, fmt.Sprintf(msgLoading, e.remote.Base()))

	records, err := e.remote.FetchAll(ctx)
	if err != nil {
		e.logger.Error("Failed to fetch characters", zap.String("base", e.remote.Base()), zap.Error(err))
		e.notify(notify.LevelError, msgLoadFailed)
		return fmt.Errorf("load characters: %w", err)
	}

	e.mu.Lock()
	e.store.ReplaceAll(records)
	first, ok := e.store.First()
	count := e.store.Len()
	e.mu.Unlock()

	e.logger.Info("Characters loaded", zap.Int("count", count))
	if ok {
		if _, err := e.Select(ctx, first.ID); err != nil {
			// the list is loaded; the error notification from Select stays visible
			return nil
		}
	}
	e.notify(notify.LevelInfo, fmt.Sprintf(msgLoaded, count))
	return nil
}

// Select makes the record with id current. On failure the previous selection is kept.
func (e *Engine) Select(ctx context.Context, id int) (models.Character, error) {
	rec, err := e.selection.SelectByID(ctx, id)
	if err != nil {
		e.logger.Warn("Failed to select character", zap.Int("id", id), zap.Error(err))
		e.notify(notify.LevelError, msgDetailsFailed)
		return models.Character{}, err
	}
	return rec, nil
}

// IncrementVote adds a vote to the current selection and persists it in the background.
func (e *Engine) IncrementVote(ctx context.Context) (*Vote, error) {
	e.mu.Lock()
	change, err := e.selection.Increment()
	e.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return e.persist(ctx, change), nil
}

// ResetVote zeroes the current selection's votes and persists it in the background.
func (e *Engine) ResetVote(ctx context.Context) (*Vote, error) {
	e.mu.Lock()
	change, err := e.selection.Reset()
	e.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return e.persist(ctx, change), nil
}

func (e *Engine) persist(ctx context.Context, change selection.Change) *Vote {
	vote := &Vote{
		ID:      change.ID,
		Votes:   change.Votes,
		Pending: corereconcile.NewPending[models.Character](),
	}

	// persistence outlives the triggering request
	ctx = context.WithoutCancel(ctx)
	e.inflight.Go(func() {
		ctx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()

		rec, err := e.remote.PersistVotes(ctx, change.ID, change.Votes)

		e.mu.Lock()
		if err != nil {
			e.persistFailed(change, err)
		} else {
			e.persisted(change, rec)
		}
		e.mu.Unlock()

		vote.Resolve(rec, err)
	})
	return vote
}

// persisted folds a confirmed vote into the store. Must hold mu.
func (e *Engine) persisted(change selection.Change, rec models.Character) {
	// only cached records are updated; a record dropped by a reload stays dropped
	if _, err := e.store.Get(rec.ID); err == nil {
		e.store.Upsert(rec)
	}

	// the server's value wins unless the user has already moved on
	if rec.ID == change.ID && rec.Votes != change.Votes {
		if e.selection.SetVotesIf(change.ID, change.Votes, rec.Votes) {
			e.logger.Debug("Selection refreshed from server",
				zap.Int("id", change.ID),
				zap.Int("sent", change.Votes),
				zap.Int("stored", rec.Votes),
			)
		}
	}
	e.notify(notify.LevelSuccess, msgSaved)
}

// persistFailed applies the failure policy. The store is left untouched. Must hold mu.
func (e *Engine) persistFailed(change selection.Change, err error) {
	e.logger.Warn("Failed to persist votes",
		zap.Int("id", change.ID),
		zap.Int("votes", change.Votes),
		zap.String("policy", string(e.policy)),
		zap.Error(err),
	)
	if e.policy == corereconcile.PolicyRevert {
		e.selection.SetVotesIf(change.ID, change.Votes, change.Previous)
	}
	e.notify(notify.LevelWarning, msgPersistFailed)
}

// Create adds a character. A provisional record is visible in the store while
// the server is asked; if the server rejects the write or cannot be reached the
// provisional record (id max+1) stays as a local-only record. The result
// becomes the current selection.
func (e *Engine) Create(ctx context.Context, candidate models.Candidate) (Creation, error) {
	candidate, err := candidate.Validate()
	if err != nil {
		e.notify(notify.LevelError, msgInvalidPayload)
		return Creation{}, err
	}

	e.notify(notify.LevelLoading, msgAdding)

	e.mu.Lock()
	provisional := candidate.Record(e.store.NextID())
	e.store.Upsert(provisional)
	e.mu.Unlock()

	created, err := e.remote.CreateRecord(ctx, candidate)

	e.mu.Lock()
	defer e.mu.Unlock()

	var result Creation
	switch {
	case err != nil:
		e.logger.Warn("Create failed, keeping local record", zap.Int("id", provisional.ID), zap.Error(err))
		result = Creation{Character: e.keepLocal(provisional)}
		e.notify(notify.LevelWarning, msgAddedLocally)
	case !created.Confirmed:
		e.logger.Info("Create rejected by server, keeping local record",
			zap.Int("id", provisional.ID),
			zap.Int("status", created.Status),
		)
		result = Creation{Character: e.keepLocal(provisional)}
		e.notify(notify.LevelSuccess, msgAdded)
	default:
		if e.holds(provisional) {
			e.store.Swap(provisional.ID, created.Character)
		} else {
			e.store.Upsert(created.Character)
		}
		result = Creation{Character: created.Character.Normalize(), Confirmed: true}
		e.notify(notify.LevelSuccess, msgAdded)
	}

	e.selection.Replace(result.Character)
	return result, nil
}

// holds reports whether the store still has rec unchanged. Must hold mu.
func (e *Engine) holds(rec models.Character) bool {
	cur, err := e.store.Get(rec.ID)
	return err == nil && cur == rec
}

// keepLocal puts a provisional record back if a reload dropped it while the
// create was in flight. A taken id is replaced with a fresh one. Must hold mu.
func (e *Engine) keepLocal(rec models.Character) models.Character {
	if e.holds(rec) {
		return rec
	}
	if _, err := e.store.Get(rec.ID); err == nil {
		rec.ID = e.store.NextID()
	}
	e.store.Upsert(rec)
	return rec
}

// Wait blocks until all background persistence has settled.
func (e *Engine) Wait() {
	e.inflight.Wait()
}

// IsNoSelection reports whether err means no character is selected.
func IsNoSelection(err error) bool {
	return errors.Is(err, selection.ErrNoSelection)
}
