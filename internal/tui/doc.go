// Package tui provides terminal user interface components for forage-ports.
//
// This package uses the Bubble Tea framework to browse a port assignment
// interactively.
//
// # Service Picker
//
// The picker lists every service grouped by parent directory:
//
//	result, err := tui.RunPicker(rows, "forage-ports - 49152-65535")
//	switch result.Action {
//	case tui.ActionEnv:
//	    // Print export lines for result.Service
//	case tui.ActionCommand:
//	    // Print the rendered launch command for result.Service
//	case tui.ActionQuit:
//	    // Exit
//	}
//
// # Picker Features
//
//   - Services grouped by parent directory, workspace root first
//   - Keyboard navigation (j/k or arrows), headers auto-skipped
//   - Quick actions: Enter (env), c (command), q (quit)
//   - ● marks a solo service, ◐ one that shares a preferred port
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
