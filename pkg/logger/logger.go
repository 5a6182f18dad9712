package logger

import (
	"io"
	"log"
	"os"
)

type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l *log.Logger
}

// New logs to stderr with the standard flags.
func New() Logger { return NewWriter(os.Stderr, "") }

// NewWriter logs to w; prefix names the component, e.g. "huffstat ".
func NewWriter(w io.Writer, prefix string) Logger {
	return &stdLogger{l: log.New(w, prefix, log.LstdFlags)}
}

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }

type nopLogger struct{}

// Nop discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
