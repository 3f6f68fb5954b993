package cmd

import (
	"path/filepath"
	"testing"

	"flatacuties/core/config"
	"flatacuties/core/preference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseID(t *testing.T) {
	id, err := parseID("12")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, arg := range []string{"0", "-1", "abc", ""} {
		_, err := parseID(arg)
		assert.Error(t, err, arg)
	}
}

func TestNewSession_APIBase(t *testing.T) {
	file := filepath.Join(t.TempDir(), "preferences.yaml")
	cfg := &config.Config{}
	cfg.Remote.BaseURL = "http://localhost:3000"
	cfg.Session.OnPersistFailure = "retain"
	cfg.Preference.File = file

	t.Cleanup(func() { apiOverride = "" })

	apiOverride = "http://characters.test:4000/"
	s, err := newSession(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "http://characters.test:4000", s.engine.Base())

	// the flag is remembered for the next run
	apiOverride = ""
	s, err = newSession(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "http://characters.test:4000", s.engine.Base())

	store, err := preference.NewFileStore(cfg.Preference)
	require.NoError(t, err)
	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://characters.test:4000/", stored)
}

func TestNewSession_BadPolicy(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.OnPersistFailure = "explode"
	cfg.Preference.File = filepath.Join(t.TempDir(), "preferences.yaml")

	_, err := newSession(cfg, zap.NewNop())
	assert.Error(t, err)
}
