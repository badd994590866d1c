// Package wizard provides the interactive huh-based form used by
// "configmaster config init".
package wizard

import "errors"

// Result holds the user's answers from the config wizard.
type Result struct {
	Language string // Language code: en, ja, es, fr, de
	Style    string // Registered template style
	Message  string // Custom message, empty to clear
	Debug    bool   // Debug mode
	LogLevel string // DEBUG, INFO, WARNING, ERROR, CRITICAL
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string       // Unique identifier
	Type        QuestionType // Select, Input or Confirm
	Title       string       // Question title
	Description string       // Additional description
	Options     []Option     // Options for select questions
	Default     string       // Default value ("true"/"false" for confirm)
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Question IDs.
const (
	IDLanguage = "language"
	IDStyle    = "template_style"
	IDMessage  = "custom_message"
	IDDebug    = "debug"
	IDLogLevel = "log_level"
)

// Brand colors (dark variants).
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#F9FAFB"
	ColorMuted     = "#9CA3AF"
	ColorBorder    = "#4B5563"
)

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
