// Package msgring is a bounded single-producer single-consumer ring of
// packed key-message words. The decode loop pushes, the report loop pops;
// neither side ever blocks. Indices are monotonic atomics compared without
// wrapping, so no locks are needed as long as the SPSC contract holds.
package msgring

import "sync/atomic"

type Ring struct {
	buf  []uint32
	mask uint32
	rd   atomic.Uint32 // consumer index (monotonic)
	wr   atomic.Uint32 // producer index (monotonic)
}

// New creates a ring with the given capacity, which must be a power of two.
func New(size int) *Ring {
	if size < 2 || (size&(size-1)) != 0 {
		panic("msgring: size must be power of two >= 2")
	}
	return &Ring{
		buf:  make([]uint32, size),
		mask: uint32(size - 1),
	}
}

func (r *Ring) size() uint32 { return uint32(len(r.buf)) }

// Len returns the number of buffered messages.
func (r *Ring) Len() int {
	return int(r.wr.Load() - r.rd.Load())
}

// Push appends one word. When the ring is full the word is dropped and Push
// returns false: losing a keystroke beats stalling the decode loop.
// Producer side only.
func (r *Ring) Push(w uint32) bool {
	rd := r.rd.Load()
	wr := r.wr.Load()
	if wr-rd >= r.size() {
		return false
	}
	r.buf[wr&r.mask] = w
	r.wr.Store(wr + 1) // release
	return true
}

// Pop removes and returns the oldest word, or 0 when the ring is empty. The
// zero word is the "no event" sentinel the reporting side turns into a
// key-up. Consumer side only.
func (r *Ring) Pop() uint32 {
	rd := r.rd.Load()
	wr := r.wr.Load() // acquire
	if wr == rd {
		return 0
	}
	w := r.buf[rd&r.mask]
	r.rd.Store(rd + 1) // release
	return w
}
