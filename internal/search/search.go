// Package search drives the hunt for a counterexample: it pulls placements
// from the generator, hands each to the checker, and stops at the first
// placement that fails.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rybkr/rookhop/internal/board"
	"github.com/rybkr/rookhop/internal/generator"
	"github.com/rybkr/rookhop/internal/solver"
)

var ErrCanceled = errors.New("search canceled")

// Result describes a finished or interrupted search.
type Result struct {
	Config board.Config

	// Counterexample is the first placement that failed, or nil.
	Counterexample board.Placement

	// Checked is the number of placements handed to the checker,
	// including the counterexample.
	Checked int64

	// Nodes is the number of recursive checker steps.
	Nodes int64

	Elapsed time.Duration
}

// Safe reports whether the search found no counterexample.
// It is only meaningful for a run that was not canceled.
func (r *Result) Safe() bool {
	return r.Counterexample == nil
}

// Searcher runs the search for one board configuration.
type Searcher struct {
	cfg     board.Config
	options *Options
	log     *logrus.Logger
}

// New creates a searcher for cfg.
// Returns an error wrapping board.ErrInvalidConfig if cfg is invalid.
func New(cfg board.Config, options *Options) (*Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if options == nil {
		options = DefaultOptions()
	}

	log := options.Logger
	if log == nil {
		log = discardLogger()
	}

	return &Searcher{
		cfg:     cfg,
		options: options,
		log:     log,
	}, nil
}

// Run enumerates placements until one fails the relocation check or the
// space is exhausted. ctx is checked between placements; when it is done,
// Run returns the partial result and an error wrapping ErrCanceled.
func (s *Searcher) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	gen := generator.New(s.cfg, nil)
	checker := solver.New(s.cfg)

	s.log.WithFields(logrus.Fields{
		"size":       s.cfg.Size,
		"rooks":      s.cfg.Rooks,
		"candidates": gen.Count().String(),
	}).Debug("search started")

	res := &Result{Config: s.cfg}
	finish := func() {
		res.Nodes = checker.Stats().Nodes
		res.Elapsed = time.Since(start)
	}

	for p := range gen.All() {
		if err := ctx.Err(); err != nil {
			finish()
			return res, fmt.Errorf("%w after %d placements: %w", ErrCanceled, res.Checked, err)
		}

		res.Checked++
		if s.options.ProgressEvery > 0 && res.Checked%int64(s.options.ProgressEvery) == 0 {
			s.log.WithFields(logrus.Fields{
				"checked":   res.Checked,
				"placement": p.String(),
			}).Info("progress")
		}

		if !checker.Passes(p) {
			res.Counterexample = p
			break
		}
	}

	finish()
	s.log.WithFields(logrus.Fields{
		"checked": res.Checked,
		"nodes":   res.Nodes,
		"elapsed": res.Elapsed.Round(time.Millisecond),
		"safe":    res.Safe(),
	}).Info("search finished")

	return res, nil
}
