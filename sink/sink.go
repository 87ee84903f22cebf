/*
NAME
  sink.go

DESCRIPTION
  sink.go defines FeatureSink, the appender contract the vif extractor
  writes its four per-scale scores to, plus MapSink, an in-memory
  implementation used by tests and simple command-line tools.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package sink provides the feature-value appender contract consumed by
// the vif extractor, and a minimal in-memory implementation of it.
package sink

import "fmt"

// FeatureSink is an appender keyed by feature name and frame index. The
// vif extractor calls Append exactly four times per frame, once per
// scale, in scale order.
type FeatureSink interface {
	Append(name string, index int, value float64) error
}

// key identifies one (name, index) entry in a MapSink.
type key struct {
	name  string
	index int
}

// MapSink is a FeatureSink backed by an in-memory map. It never fails an
// Append call; it exists for tests and for simple command-line drivers
// that want every emitted score without standing up a real collector.
type MapSink struct {
	values map[key]float64
}

// NewMapSink returns an empty MapSink.
func NewMapSink() *MapSink {
	return &MapSink{values: make(map[key]float64)}
}

// Append records value under (name, index), overwriting any prior value.
func (s *MapSink) Append(name string, index int, value float64) error {
	s.values[key{name, index}] = value
	return nil
}

// Get returns the value previously recorded for (name, index), and
// whether it was found.
func (s *MapSink) Get(name string, index int) (float64, bool) {
	v, ok := s.values[key{name, index}]
	return v, ok
}

// String renders all recorded entries; useful for debugging and CLI
// output.
func (s *MapSink) String() string {
	out := ""
	for k, v := range s.values {
		out += fmt.Sprintf("%s[%d] = %v\n", k.name, k.index, v)
	}
	return out
}
