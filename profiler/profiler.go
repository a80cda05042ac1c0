// Copyright 2012 The go-gl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profiler implements a cheap, explicitly-scoped event timer for
// instrumenting atlas packing runs. The source this is reworked from
// (cheapProfiler.c) kept its event table and output file handle as
// process-wide static state, compiled in or out entirely with a single
// USE_PROFILER macro. That shape doesn't belong on the atlas core: a
// Sampler is always a value the caller constructs and owns, and a nil
// *Sampler behaves like the macro-disabled build — every method is a no-op.
package profiler

import (
	"time"

	"go.uber.org/zap"
)

// Sampler accumulates label->duration timings across the lifetime of one
// packing run and emits them through a *zap.Logger.
type Sampler struct {
	log *zap.Logger

	starts map[string]time.Time
	totals map[string]time.Duration
	frame  int
}

// NewSampler wraps out for event emission. out may not be nil.
func NewSampler(out *zap.Logger) *Sampler {
	return &Sampler{
		log:    out,
		starts: make(map[string]time.Time),
		totals: make(map[string]time.Duration),
	}
}

// EventStart records the start time of a labeled span. A label already in
// flight is silently restarted, mirroring the source's lack of nesting
// support for a given label.
func (s *Sampler) EventStart(label string) {
	if s == nil {
		return
	}
	s.starts[label] = time.Now()
}

// EventEnd closes a labeled span opened by EventStart and folds its
// duration into the running total for the current frame. Calling EventEnd
// without a matching EventStart is a no-op.
func (s *Sampler) EventEnd(label string) {
	if s == nil {
		return
	}
	start, ok := s.starts[label]
	if !ok {
		return
	}
	delete(s.starts, label)
	s.totals[label] += time.Since(start)
}

// SampleFrame logs the accumulated duration for every label touched since
// the last SampleFrame call, then resets the counters for the next frame.
func (s *Sampler) SampleFrame() {
	if s == nil {
		return
	}
	s.frame++

	fields := make([]zap.Field, 0, len(s.totals)+1)
	fields = append(fields, zap.Int("frame", s.frame))
	for label, total := range s.totals {
		fields = append(fields, zap.Duration(label, total))
	}
	s.log.Debug("atlas profiler frame sample", fields...)

	for label := range s.totals {
		delete(s.totals, label)
	}
}

// Close flushes the underlying logger. It is safe to call on a nil
// Sampler.
func (s *Sampler) Close() error {
	if s == nil {
		return nil
	}
	return s.log.Sync()
}
