// Package notify carries user-facing status notifications from the session
// core to whatever presentation layer is attached.
//
// The core never renders anything itself. It emits a Notification (loading,
// info, success, warning, error) for every step a user would want to see,
// and the presentation layer decides how to show it.
//
// # Notifiers
//
//   - LogNotifier writes notifications to a zap logger.
//   - Recorder keeps the latest notification and a bounded history, which the
//     session HTTP API serves from /session/status.
//   - Multi fans a notification out to several notifiers.
//   - Func adapts a plain function.
package notify
