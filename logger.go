package main

import (
	"io"

	log "github.com/sirupsen/logrus"
)

type Logger struct {
	*log.Entry
}

// newLogger writes to w. verbose 1 enables debug messages, 2 and above trace
// messages; quiet only keeps errors.
func newLogger(w io.Writer, progname string, verbose int, quiet bool) Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	switch {
	case quiet:
		l.SetLevel(log.ErrorLevel)
	case verbose >= 2:
		l.SetLevel(log.TraceLevel)
	case verbose == 1:
		l.SetLevel(log.DebugLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}

	return Logger{l.WithField("prog", progname)}
}

func (l Logger) errorln(args ...interface{}) {
	l.Error(args...)
}

func (l Logger) errorf(format string, args ...interface{}) {
	l.Errorf(format, args...)
}

func (l Logger) debugf(format string, args ...interface{}) {
	l.Debugf(format, args...)
}

func (l Logger) tracef(format string, args ...interface{}) {
	l.Tracef(format, args...)
}
