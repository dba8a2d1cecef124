// Package logging provides structured logging for colorpick.
//
// This package wraps a zap logger with convenience functions for the
// logging patterns used throughout the picker, the terminal UI and the sync
// server.
//
// # Log Levels
//
//   - Debug: Field synchronization decisions, rejected input, dropped messages
//   - Info: Color changes, connections, server lifecycle
//   - Warn: Missing fields, unexpected client messages
//   - Error: Startup failures, write errors
//
// # Silent by Default
//
// The interactive picker owns the terminal, so logging is silent unless
// COLORPICK_LOG_LEVEL is set to "debug", "info", "warn" or "error". Output
// goes to the file named by COLORPICK_LOG_FILE, or stderr when unset:
//
//	COLORPICK_LOG_LEVEL=debug COLORPICK_LOG_FILE=/tmp/colorpick.log colorpick
//
// # Specialized Logging
//
//	logging.LogColorChange("hex", c.Space().String(), c.Components())
//	logging.LogFieldSync("float0", "1.50", 1.5, false)
//	logging.LogConnection(remoteAddr, "websocket_upgraded")
//	logging.LogWebSocketMessage(remoteAddr, "received", websocket.TextMessage, payload)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once Initialize has
// returned.
package logging
