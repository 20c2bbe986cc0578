package logging

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// User-facing output functions with status prefixes.
// These write to stdout/stderr directly for CLI output,
// separate from the structured debug logging.

var (
	// UserOut receives info and success messages.
	UserOut io.Writer = os.Stdout

	// UserErr receives warnings and errors.
	UserErr io.Writer = os.Stderr

	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// UserInfo prints an info message to stdout.
func UserInfo(format string, args ...interface{}) {
	infoColor.Fprintf(UserOut, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a success message to stdout.
func UserSuccess(format string, args ...interface{}) {
	successColor.Fprintf(UserOut, "✓ "+format+"\n", args...)
}

// UserWarning prints a warning message to stderr.
func UserWarning(format string, args ...interface{}) {
	warningColor.Fprintf(UserErr, "⚠ "+format+"\n", args...)
}

// UserError prints an error message to stderr.
func UserError(format string, args ...interface{}) {
	errorColor.Fprintf(UserErr, "✗ "+format+"\n", args...)
}
