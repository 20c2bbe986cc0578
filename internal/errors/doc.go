// Package errors provides typed errors with exit codes for forage-ports.
//
// # Error Types
//
// ForageError is the base error type that wraps an error with an exit code:
//
//	type ForageError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess         = 0 // Success
//	ExitGeneralError    = 1 // General/unknown errors
//	ExitServiceNotFound = 2 // Service is not part of the workspace
//	ExitConfigError     = 3 // Workspace file missing or invalid
//	ExitPortAllocation  = 4 // Port range too small for the services
//	ExitInvalidRange    = 5 // Malformed port range
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.ServiceNotFound("users")
//	errors.RangeTooSmall(err)
//	errors.ConfigError("failed to load workspace", err)
//	errors.InvalidRange(err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
