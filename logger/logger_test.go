package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/mgutz/ansi"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, fn func()) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(os.Stdout, os.Stderr)
	fn()
	return out.String(), errOut.String()
}

func TestLevels(t *testing.T) {
	Silent, Verbose, Color = false, false, false

	out, errOut := capture(t, func() {
		Infof("hello %s", "world")
		Debug("hidden")
		Warn("careful")
		Errorf("broken: %d", 42)
	})

	assert.Equal(t, "hello world\nWARNING: careful\n", out)
	assert.Equal(t, "ERROR: broken: 42\n", errOut)
}

func TestSilentKeepsWarningsAndErrors(t *testing.T) {
	Silent, Verbose, Color = true, true, false
	defer func() { Silent, Verbose = false, false }()

	out, errOut := capture(t, func() {
		Info("info")
		Debug("debug")
		Warn("warn")
		Error("error")
	})

	assert.Equal(t, "WARNING: warn\n", out)
	assert.Equal(t, "ERROR: error\n", errOut)
}

func TestColorizeKeepsTrailingWhitespace(t *testing.T) {
	colored := Colorize(styleInfo, "message \n")
	assert.Equal(t, ansi.Color("message", styleInfo)+" \n", colored)
}
