// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across the menu and
// the one-shot commands.
package emoji

// Status symbols used by alerts.
const (
	// Success represents successful completion of an operation.
	Success = "✓"

	// Error represents a failed operation.
	Error = "✗"

	// Warning represents a non-fatal problem, such as a missing genre.
	Warning = "⚠"

	// Info represents informational messages.
	Info = "ℹ"
)

// Menu symbols, one per catalog action.
const (
	Books     = "📚"
	Add       = "➕"
	Recommend = "🎯"
	Search    = "🔍"
	Remove    = "🗑"
	List      = "📜"
	Save      = "💾"
	Load      = "📥"
)
