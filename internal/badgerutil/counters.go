package badgerutil

import (
	"fmt"
	"sync/atomic"
)

// PoolCounters records the lifecycle of values drawn from a sync.Pool.
type PoolCounters struct {
	gets   atomic.Uint64
	allocs atomic.Uint64
	puts   atomic.Uint64
	drops  atomic.Uint64
}

// Got records a value taken from the pool.
func (pc *PoolCounters) Got() { pc.gets.Add(1) }

// Allocated records a value created by the pool's New func.
func (pc *PoolCounters) Allocated() { pc.allocs.Add(1) }

// Returned records a value put back into the pool.
func (pc *PoolCounters) Returned() { pc.puts.Add(1) }

// Dropped records a value left for the garbage collector instead of being
// returned, usually because it grew too large.
func (pc *PoolCounters) Dropped() { pc.drops.Add(1) }

// Stats returns a point-in-time copy of the counters.
func (pc *PoolCounters) Stats() PoolStats {
	return PoolStats{
		Gets:    pc.gets.Load(),
		Allocs:  pc.allocs.Load(),
		Puts:    pc.puts.Load(),
		Dropped: pc.drops.Load(),
	}
}

// PoolStats is a snapshot of PoolCounters.
type PoolStats struct {
	Gets    uint64
	Allocs  uint64
	Puts    uint64
	Dropped uint64
}

// Outstanding is the number of values taken but not yet returned or dropped.
func (s PoolStats) Outstanding() int64 {
	return int64(s.Gets) - int64(s.Puts) - int64(s.Dropped)
}

// Reuse is the percentage (0..100) of gets served without an allocation.
func (s PoolStats) Reuse() float64 {
	if s.Gets == 0 || s.Allocs >= s.Gets {
		return 0
	}
	return 100 * float64(s.Gets-s.Allocs) / float64(s.Gets)
}

func (s PoolStats) String() string {
	return fmt.Sprintf("get=%d alloc=%d put=%d dropped=%d outstanding=%d reuse=%.2f%%",
		s.Gets, s.Allocs, s.Puts, s.Dropped, s.Outstanding(), s.Reuse())
}

// LineBuffers tracks the pool of buffers used to render trace lines.
var LineBuffers PoolCounters
