package logger

// Styles understood by github.com/mgutz/ansi.
const (
	styleError   = "red"
	styleWarn    = "red+h"
	styleHeading = "green"
	styleInfo    = "cyan"
	styleDebug   = "white"

	StyleAdded   = "green"
	StyleRemoved = "red"
)
