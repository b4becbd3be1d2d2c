package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"

	"github.com/mgutz/ansi"
)

const calldepth = 3

var (
	Silent           bool
	Verbose          bool
	Color            bool
	stdOutLogger     = log.New(os.Stdout, "", 0)
	stdOutWarnLogger = log.New(os.Stdout, "WARNING: ", 0)
	stdErrLogger     = log.New(os.Stderr, "ERROR: ", 0)

	trailingSpace = regexp.MustCompile(`\s*$`)
)

// SetOutput redirects info, debug and warning output to out and errors to
// errOut.
func SetOutput(out, errOut io.Writer) {
	stdOutLogger.SetOutput(out)
	stdOutWarnLogger.SetOutput(out)
	stdErrLogger.SetOutput(errOut)
}

func Error(v ...interface{}) {
	Log(stdErrLogger, styleError, v...)
}

func Errorf(format string, v ...interface{}) {
	Logf(stdErrLogger, styleError, format, v...)
}

func Warn(v ...interface{}) {
	Log(stdOutWarnLogger, styleWarn, v...)
}

func Warnf(format string, v ...interface{}) {
	Logf(stdOutWarnLogger, styleWarn, format, v...)
}

func Heading(v ...interface{}) {
	if !Silent {
		Log(stdOutLogger, styleHeading, v...)
	}
}

func Headingf(format string, v ...interface{}) {
	if !Silent {
		Logf(stdOutLogger, styleHeading, format, v...)
	}
}

func Info(v ...interface{}) {
	if !Silent {
		Log(stdOutLogger, styleInfo, v...)
	}
}

func Infof(format string, v ...interface{}) {
	if !Silent {
		Logf(stdOutLogger, styleInfo, format, v...)
	}
}

func Debug(v ...interface{}) {
	if Verbose && !Silent {
		Log(stdOutLogger, styleDebug, v...)
	}
}

func Debugf(format string, v ...interface{}) {
	if Verbose && !Silent {
		Logf(stdOutLogger, styleDebug, format, v...)
	}
}

func Log(l *log.Logger, style string, v ...interface{}) {
	msg := fmt.Sprint(v...)
	if Color {
		msg = Colorize(style, msg)
	}
	l.Output(calldepth, msg)
}

func Logf(l *log.Logger, style, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	if Color {
		msg = Colorize(style, msg)
	}
	l.Output(calldepth, msg)
}

// Colorize wraps s in the ansi style, leaving trailing whitespace outside
// the escape sequence.
func Colorize(style, s string) string {
	trimmed := trailingSpace.ReplaceAllString(s, "")
	trailing := trailingSpace.FindString(s)

	return ansi.Color(trimmed, style) + trailing
}
