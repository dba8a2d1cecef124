// Package metrics exposes Prometheus metrics for the live sync server.
//
// Each Manager owns its own registry, so tests and multiple servers in one
// process never collide on metric names.
//
// # Metrics
//
// All names are prefixed "colorpick_sync_" unless WithNamespace replaces
// the namespace:
//
//   - edits_total{kind}: applied input events, by kind (component, float,
//     hex, space, drag)
//   - field_syncs_total{result}: synchronizer runs per field, overwritten
//     or kept
//   - dropped_messages_total: client messages dropped by the rate limiter
//   - invalid_messages_total: client messages that failed to decode or apply
//   - clients: currently connected clients
//   - handle_duration_seconds: time spent applying one input event
//
// # Usage Example
//
//	m := metrics.NewManager()
//	m.RecordEdit(metrics.KindHex)
//	http.Handle("/metrics", m.Handler())
package metrics
