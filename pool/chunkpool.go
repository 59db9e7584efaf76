// File: pool/chunkpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ChunkPool: free-list recycler for fixed-capacity chunks. The pool is
// safe for concurrent Get/Put; the chunks it hands out are single-owner
// as always.

package pool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/ringchunk/api"
	"github.com/momentics/ringchunk/ring"
)

// Ensure compile-time interface compliance.
var _ api.Pool[*ring.RingBuffer[int]] = (*ChunkPool[int])(nil)

// Stats aggregates chunk allocation/reuse counters.
type Stats struct {
	TotalAlloc int64 // chunks newly allocated
	TotalReuse int64 // chunks served from the free-list
	InUse      int64 // chunks currently out
}

// ChunkPool hands out ring buffer chunks of one fixed capacity.
type ChunkPool[T any] struct {
	capacity int
	drop     api.DropFunc[T]

	mu    sync.Mutex
	free  *queue.Queue
	stats Stats
}

// NewChunkPool creates a pool of chunks with the given capacity. Every
// chunk is constructed with the drop hook, so Put destroys leftover
// elements exactly once each. Panics if capacity is not positive.
func NewChunkPool[T any](capacity int, drop api.DropFunc[T]) *ChunkPool[T] {
	if capacity <= 0 {
		panic("pool: chunk capacity must be positive")
	}
	return &ChunkPool[T]{
		capacity: capacity,
		drop:     drop,
		free:     queue.New(),
	}
}

// Get returns an empty chunk, reusing a parked one when available.
func (p *ChunkPool[T]) Get() *ring.RingBuffer[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats.InUse++
	if p.free.Length() > 0 {
		p.stats.TotalReuse++
		return p.free.Remove().(*ring.RingBuffer[T])
	}
	p.stats.TotalAlloc++
	return ring.NewWithDrop[T](p.capacity, p.drop)
}

// Put clears c and parks it for reuse. The chunk must not be used
// afterwards. Panics if c came from a pool of a different capacity;
// silently accepting it would let mismatched chunks leak back into
// callers expecting the pool's fixed size.
func (p *ChunkPool[T]) Put(c *ring.RingBuffer[T]) {
	if c == nil {
		return
	}
	if c.Cap() != p.capacity {
		panic("pool: chunk capacity mismatch")
	}
	c.Clear()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free.Add(c)
	p.stats.InUse--
}

// Stats returns a snapshot of the pool counters.
func (p *ChunkPool[T]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}
