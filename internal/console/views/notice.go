// Package views holds per-session UI state that sits on top of the stores:
// drafts, edit modes and the notices shown after an action.
package views

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a one-shot message for the admin.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}
