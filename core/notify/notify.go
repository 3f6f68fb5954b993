package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Level is the severity of a notification.
type Level string

const (
	LevelLoading Level = "loading"
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a single status message for the presentation layer.
type Notification struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Notifier receives notifications.
type Notifier interface {
	Notify(n Notification)
}

// Func adapts an ordinary function to the Notifier interface.
type Func func(n Notification)

// Notify calls f(n).
func (f Func) Notify(n Notification) {
	f(n)
}

// New builds a notification stamped with the current time.
func New(level Level, message string) Notification {
	return Notification{Level: level, Message: message, Time: time.Now()}
}

// Multi returns a notifier that forwards to every non-nil notifier in order.
func Multi(notifiers ...Notifier) Notifier {
	list := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			list = append(list, n)
		}
	}
	return Func(func(n Notification) {
		for _, target := range list {
			target.Notify(n)
		}
	})
}

// LogNotifier writes notifications to a zap logger at a matching level.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the notification.
func (l *LogNotifier) Notify(n Notification) {
	fields := []zap.Field{zap.String("status", string(n.Level))}
	switch n.Level {
	case LevelError:
		l.logger.Error(n.Message, fields...)
	case LevelWarning:
		l.logger.Warn(n.Message, fields...)
	case LevelLoading:
		l.logger.Debug(n.Message, fields...)
	default:
		l.logger.Info(n.Message, fields...)
	}
}

// DefaultHistory is the number of notifications a Recorder keeps when created with size <= 0.
const DefaultHistory = 50

// Recorder remembers the most recent notifications.
type Recorder struct {
	mu      sync.RWMutex
	size    int
	history []Notification
}

// NewRecorder creates a Recorder keeping at most size notifications.
func NewRecorder(size int) *Recorder {
	if size <= 0 {
		size = DefaultHistory
	}
	return &Recorder{size: size}
}

// Notify records n, dropping the oldest entry when full.
func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, n)
	if len(r.history) > r.size {
		r.history = r.history[len(r.history)-r.size:]
	}
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.history) == 0 {
		return Notification{}, false
	}
	return r.history[len(r.history)-1], true
}

// History returns a copy of the recorded notifications, oldest first.
func (r *Recorder) History() []Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Notification, len(r.history))
	copy(out, r.history)
	return out
}

// Levels returns the level of every recorded notification, oldest first.
func (r *Recorder) Levels() []Level {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Level, len(r.history))
	for i, n := range r.history {
		out[i] = n.Level
	}
	return out
}
