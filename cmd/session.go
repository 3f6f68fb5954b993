package cmd

import (
	"flatacuties/core/config"
	"flatacuties/core/notify"
	"flatacuties/core/preference"
	"flatacuties/feature/characters/reconcile"
	"flatacuties/feature/characters/remote"

	"go.uber.org/zap"
)

// session is one engine plus the recorder its notifications land in.
type session struct {
	engine   *reconcile.Engine
	recorder *notify.Recorder
}

// newSession resolves the API base and builds an engine against it. Nothing is loaded yet.
func newSession(cfg *config.Config, logg *zap.Logger) (*session, error) {
	var prefs preference.Store
	if fs, err := preference.NewFileStore(cfg.Preference); err != nil {
		logg.Warn("Preference store unavailable", zap.Error(err))
	} else {
		prefs = fs
	}

	base := preference.Resolve(apiOverride, prefs, cfg.Remote.BaseURL, logg)
	client := remote.NewClient(base, cfg.Remote, logg)

	recorder := notify.NewRecorder(notify.DefaultHistory)
	notifier := notify.Multi(notify.NewLogNotifier(logg), recorder)

	engine, err := reconcile.NewEngine(client, cfg.Session, notifier, logg)
	if err != nil {
		return nil, err
	}
	return &session{engine: engine, recorder: recorder}, nil
}
