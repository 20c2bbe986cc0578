// Package logging provides logging utilities for forage-ports.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("assigned ports", "services", len(services), "range", r)
//	logging.Warn("service discovered twice", "name", name)
//
// # User Output
//
// User-facing messages are formatted with status indicators and colour
// (disabled automatically when NO_COLOR is set or output is not a terminal):
//
//	logging.UserInfo("Loaded %d services from %s", n, path)
//	logging.UserSuccess("All %d services fit in %s", n, r)
//	logging.UserWarning("%d services share a preferred port", n)
//	logging.UserError("Failed to allocate ports: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: UserOut (stdout)
//   - UserWarning, UserError: UserErr (stderr)
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
