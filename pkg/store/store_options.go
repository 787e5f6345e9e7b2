package store

import (
	"io"
	"time"
)

type Option func(s *Store)

// WithProgress renders download progress to w.
func WithProgress(w io.Writer) Option {
	return func(s *Store) {
		s.dl.progress = w
	}
}

func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.dl.cli.SetTimeout(d)
	}
}
