package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	colorStatus = color.New(color.FgCyan).SprintFunc()
	colorWarn   = color.New(color.FgYellow).SprintFunc()
	colorInfo   = color.New(color.FgGreen).SprintFunc()
	colorError  = color.New(color.FgRed).SprintFunc()

	logger *logrus.Entry
)

// FormatLayoutType the layout kind
type FormatLayoutType string

const (
	// FormatLayoutJSON uses JSON layout
	FormatLayoutJSON FormatLayoutType = "json"

	// FormatLayoutText uses the colourful text layout
	FormatLayoutText FormatLayoutType = "text"

	// EnvLogFormat selects the default layout
	EnvLogFormat = "STRUTIL_LOG_FORMAT"
)

func initializeLogger() {
	if logger == nil {
		logger = logrus.WithFields(logrus.Fields{})

		if os.Getenv(EnvLogFormat) == string(FormatLayoutJSON) {
			setFormatter(FormatLayoutJSON)
		} else {
			setFormatter(FormatLayoutText)
		}
	}
}

// Logger obtains the logger for use in the strutil codebase
func Logger() *logrus.Entry {
	initializeLogger()
	return logger
}

// SetLevel sets the logging level
func SetLevel(s string) error {
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return errors.Errorf("Invalid log level '%s'", s)
	}
	Logger().Debugf("logging set to level: %s", level)
	logrus.SetLevel(level)
	return nil
}

// GetLevels returns the list of valid log levels
func GetLevels() []string {
	var levels []string
	for _, level := range logrus.AllLevels {
		levels = append(levels, level.String())
	}
	return levels
}

// SetFormat switches between the text and JSON layouts
func SetFormat(s string) error {
	initializeLogger()
	switch FormatLayoutType(s) {
	case FormatLayoutJSON, FormatLayoutText:
		setFormatter(FormatLayoutType(s))
		return nil
	}
	return errors.Errorf("Invalid log format '%s', must be one of %s or %s", s, FormatLayoutText, FormatLayoutJSON)
}

func setFormatter(layout FormatLayoutType) {
	switch layout {
	case FormatLayoutJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(NewTextFormat())
	}
}

// TextFormat is the default human friendly layout
type TextFormat struct {
	ShowInfoLevel   bool
	ShowTimestamp   bool
	TimestampFormat string
}

// NewTextFormat creates the default text formatter
func NewTextFormat() *TextFormat {
	return &TextFormat{
		ShowInfoLevel:   false,
		ShowTimestamp:   false,
		TimestampFormat: "2006-01-02 15:04:05",
	}
}

// Format formats the log statement
func (f *TextFormat) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	level := strings.ToUpper(entry.Level.String())
	switch level {
	case "INFO":
		if f.ShowInfoLevel {
			b.WriteString(colorStatus(level))
			b.WriteString(": ")
		}
	case "WARNING":
		b.WriteString(colorWarn(level))
		b.WriteString(": ")
	case "DEBUG", "TRACE":
		b.WriteString(colorStatus(level))
		b.WriteString(": ")
	default:
		b.WriteString(colorError(level))
		b.WriteString(": ")
	}
	if f.ShowTimestamp {
		b.WriteString(entry.Time.Format(f.TimestampFormat))
		b.WriteString(" - ")
	}

	b.WriteString(entry.Message)

	if !strings.HasSuffix(entry.Message, "\n") {
		b.WriteByte('\n')
	}
	return b.Bytes(), nil
}

// ColorInfo returns the arguments in the info colour (green)
func ColorInfo(a ...interface{}) string {
	return colorInfo(a...)
}

// ColorWarn returns the arguments in the warning colour (yellow)
func ColorWarn(a ...interface{}) string {
	return colorWarn(a...)
}

// ColorError returns the arguments in the error colour (red)
func ColorError(a ...interface{}) string {
	return colorError(a...)
}

// DisableColor turns colouring off for the log layout and the Color helpers
func DisableColor() {
	color.NoColor = true
}

// Blank prints a blank line
func Blank() {
	fmt.Println()
}

// CaptureOutput calls the specified function capturing and returning all logged messages.
func CaptureOutput(f func()) string {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	f()
	logrus.SetOutput(os.Stderr)
	return buf.String()
}

// SetOutput sets the outputs for the default logger.
func SetOutput(out io.Writer) {
	logrus.SetOutput(out)
}
