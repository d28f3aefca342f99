// Package logging provides structured logging for cdterm.
//
// This package wraps a zap logger with convenience functions for the logging
// patterns used across the terminal controller, the web server and the CLI.
//
// # Log Levels
//
//   - Debug: State transitions, rejected keys, raw WebSocket frames
//   - Info: Sessions opening and closing, navigation, HTTP requests
//   - Warn: Malformed frames, mDNS advertisement failures
//   - Error: Startup failures
//
// # Silent By Default
//
// Logging is a no-op until Initialize is called with a level or the
// CDTERM_LOG_LEVEL environment variable is set. Output goes to stderr so
// that it never interleaves with the terminal UI drawn on stdout.
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.Info("Navigating",
//	    zap.String("destination", "works"),
//	    zap.String("href", "works.html"),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize is expected
// to be called once at startup before any goroutines log.
package logging
