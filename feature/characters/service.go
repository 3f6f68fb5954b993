package characters

import (
	"context"

	"flatacuties/core/notify"
	"flatacuties/feature/characters/models"
	"flatacuties/feature/characters/reconcile"

	"go.uber.org/zap"
)

// Service exposes one session to the presentation layer.
type Service struct {
	engine   *reconcile.Engine
	recorder *notify.Recorder
	logger   *zap.Logger
}

// NewService creates a new session service. recorder must be wired into the
// engine's notifier for Status to report anything.
func NewService(engine *reconcile.Engine, recorder *notify.Recorder, logger *zap.Logger) *Service {
	return &Service{engine: engine, recorder: recorder, logger: logger}
}

// Refresh reloads the collection from the remote.
func (s *Service) Refresh(ctx context.Context) error {
	return s.engine.Load(ctx)
}

// List returns the cached characters.
func (s *Service) List() []models.Character {
	return s.engine.Characters()
}

// Current returns the current selection.
func (s *Service) Current() (models.Character, bool) {
	return s.engine.Current()
}

// Select makes id the current selection.
func (s *Service) Select(ctx context.Context, id int) (models.Character, error) {
	return s.engine.Select(ctx, id)
}

// Vote adds one vote to the current selection.
func (s *Service) Vote(ctx context.Context) (*reconcile.Vote, error) {
	return s.engine.IncrementVote(ctx)
}

// Reset zeroes the current selection's votes.
func (s *Service) Reset(ctx context.Context) (*reconcile.Vote, error) {
	return s.engine.ResetVote(ctx)
}

// Create adds a character.
func (s *Service) Create(ctx context.Context, candidate models.Candidate) (reconcile.Creation, error) {
	return s.engine.Create(ctx, candidate)
}

// Status returns the latest notification.
func (s *Service) Status() (notify.Notification, bool) {
	if s.recorder == nil {
		return notify.Notification{}, false
	}
	return s.recorder.Last()
}

// Wait blocks until background persistence has settled.
func (s *Service) Wait() {
	s.engine.Wait()
}
