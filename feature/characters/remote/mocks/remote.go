package mocks

import (
	"context"

	"flatacuties/feature/characters/models"
	"flatacuties/feature/characters/remote"

	"github.com/stretchr/testify/mock"
)

// Remote is a mock implementation of the remote characters API.
type Remote struct {
	mock.Mock
}

func (m *Remote) Base() string {
	args := m.Called()
	return args.String(0)
}

func (m *Remote) FetchAll(ctx context.Context) ([]models.Character, error) {
	args := m.Called(ctx)
	if recs, ok := args.Get(0).([]models.Character); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Remote) FetchByID(ctx context.Context, id int) (models.Character, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Character), args.Error(1)
}

func (m *Remote) PersistVotes(ctx context.Context, id, votes int) (models.Character, error) {
	args := m.Called(ctx, id, votes)
	return args.Get(0).(models.Character), args.Error(1)
}

func (m *Remote) CreateRecord(ctx context.Context, candidate models.Candidate) (remote.Created, error) {
	args := m.Called(ctx, candidate)
	return args.Get(0).(remote.Created), args.Error(1)
}
