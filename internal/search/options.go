package search

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultProgressEvery is the number of candidates between progress reports.
const DefaultProgressEvery = 10_000

// Options configures a search run.
type Options struct {
	ProgressEvery int            // Candidates between progress reports (0 = never)
	Logger        *logrus.Logger // Logger receives progress reports (nil = discard)
}

// DefaultOptions returns standard search options with logging discarded.
func DefaultOptions() *Options {
	return &Options{
		ProgressEvery: DefaultProgressEvery,
		Logger:        discardLogger(),
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
