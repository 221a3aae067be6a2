// Package notice carries transient user notifications between screens.
package notice

// Level classifies a notification for display.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a one-shot message shown to the user after an action.
type Notice struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Success builds a success notice.
func Success(text string) Notice { return Notice{Level: LevelSuccess, Text: text} }

// Warning builds a warning notice.
func Warning(text string) Notice { return Notice{Level: LevelWarning, Text: text} }

// Error builds an error notice.
func Error(text string) Notice { return Notice{Level: LevelError, Text: text} }

// IsZero reports whether the notice carries no message.
func (n Notice) IsZero() bool {
	return n.Text == ""
}
