// SPDX-License-Identifier: MIT

package strassen

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Stats counts engine activity. Parallel branches update it concurrently,
// so each counter sits on its own cache line.
//
// All methods are safe on a nil *Stats (no-ops / zero snapshot).
type Stats struct {
	_         cpu.CacheLinePad
	calls     atomic.Int64
	_         cpu.CacheLinePad
	baseCases atomic.Int64
	_         cpu.CacheLinePad
	splits    atomic.Int64
	_         cpu.CacheLinePad
	maxDepth  atomic.Int64
	_         cpu.CacheLinePad
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	// Calls counts every recursive invocation, the root included.
	Calls int64
	// BaseCases counts invocations that delegated to the direct kernel.
	BaseCases int64
	// Splits counts invocations that partitioned their operands.
	Splits int64
	// MaxDepth is the deepest recursion level reached (root = 0).
	MaxDepth int64
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() StatsSnapshot {
	if s == nil {
		return StatsSnapshot{}
	}

	return StatsSnapshot{
		Calls:     s.calls.Load(),
		BaseCases: s.baseCases.Load(),
		Splits:    s.splits.Load(),
		MaxDepth:  s.maxDepth.Load(),
	}
}

// Reset zeroes all counters.
func (s *Stats) Reset() {
	if s == nil {
		return
	}
	s.calls.Store(0)
	s.baseCases.Store(0)
	s.splits.Store(0)
	s.maxDepth.Store(0)
}

func (s *Stats) enter(depth int) {
	if s == nil {
		return
	}
	s.calls.Add(1)
	d := int64(depth)
	for {
		cur := s.maxDepth.Load()
		if d <= cur || s.maxDepth.CompareAndSwap(cur, d) {
			return
		}
	}
}

func (s *Stats) baseCase() {
	if s != nil {
		s.baseCases.Add(1)
	}
}

func (s *Stats) split() {
	if s != nil {
		s.splits.Add(1)
	}
}
