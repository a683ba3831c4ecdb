// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Abstract the heap allocate/free capability consumed by Dense owners.
//   - Offer a pooled allocator for recursion-heavy workloads (Strassen
//     allocates and frees many same-sized temporaries per level).
//   - Offer a budgeted allocator so allocation failure is observable and
//     testable instead of being a runtime crash.
//
// Contract:
//   - Alloc(n) returns a slice of length n whose contents are UNSPECIFIED
//     (possibly dirty when pooled). Callers that need zeros must clear it.
//   - Free(buf) hands a buffer back; the caller must not touch it afterwards.
//   - All allocators here are safe for concurrent use.

package matrix

import (
	"fmt"
	"math"
	"math/bits"
	"sync"

	"go.uber.org/atomic"
)

// int64Bytes is the storage size of one element.
const int64Bytes = 8

// maxElements is the largest element count whose byte size fits in an int.
const maxElements = math.MaxInt / int64Bytes

// Allocator is the allocate/free capability used by owners.
type Allocator interface {
	// Alloc returns a buffer of exactly n elements with unspecified contents.
	Alloc(n int) ([]int64, error)
	// Free returns buf to the allocator.
	Free(buf []int64)
}

// HeapAllocator allocates with make and leaves freeing to the garbage collector.
type HeapAllocator struct{}

// Heap is the default allocator.
var Heap Allocator = HeapAllocator{}

// Alloc returns a fresh (zeroed by the runtime) buffer.
func (HeapAllocator) Alloc(n int) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Alloc(%d): %w", n, ErrInvalidDimensions)
	}
	return make([]int64, n), nil
}

// Free is a no-op; the garbage collector reclaims the buffer.
func (HeapAllocator) Free([]int64) {}

// maxSizeClass bounds the pooled size classes (2^maxSizeClass elements).
const maxSizeClass = 48

// PoolAllocator recycles buffers through sync.Pools keyed by power-of-two
// size class. A buffer of n elements is served from class ceil(log2(n)) and
// resliced to n, so Alloc may hand back memory written by a previous owner.
type PoolAllocator struct {
	classes [maxSizeClass + 1]sync.Pool
}

// NewPoolAllocator returns an empty pool.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{}
}

// sizeClass returns the smallest c with 1<<c >= n.
func sizeClass(n int) int {
	return bits.Len(uint(n - 1))
}

// Alloc serves n elements from the matching size class.
// Complexity: O(1) amortized; O(2^class) when the class is empty.
func (p *PoolAllocator) Alloc(n int) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Alloc(%d): %w", n, ErrInvalidDimensions)
	}
	c := sizeClass(n)
	if c > maxSizeClass {
		return nil, fmt.Errorf("Alloc(%d): %w", n, ErrAllocation)
	}
	if v := p.classes[c].Get(); v != nil {
		buf := *(v.(*[]int64))
		return buf[:n], nil
	}

	return make([]int64, n, 1<<c), nil
}

// Free puts buf back into its size class. Buffers whose capacity is not a
// power of two did not come from this pool and are dropped.
func (p *PoolAllocator) Free(buf []int64) {
	cp := cap(buf)
	if cp == 0 {
		return
	}
	c := sizeClass(cp)
	if c > maxSizeClass || 1<<c != cp {
		return
	}
	full := buf[:cp]
	p.classes[c].Put(&full)
}

// Stats is a snapshot of BudgetAllocator counters.
type Stats struct {
	Allocs    int64 // successful Alloc calls
	Frees     int64 // Free calls
	Failures  int64 // Alloc calls rejected by the budget or the wrapped allocator
	LiveBytes int64 // bytes currently handed out
	PeakBytes int64 // high-water mark of LiveBytes
}

// BudgetAllocator wraps another allocator with a byte budget and counters.
// A limit of 0 means unlimited (counters only).
type BudgetAllocator struct {
	next  Allocator
	limit int64

	allocs   atomic.Int64
	frees    atomic.Int64
	failures atomic.Int64
	live     atomic.Int64
	peak     atomic.Int64
}

// NewBudgetAllocator wraps next (Heap when nil) with limitBytes of budget.
func NewBudgetAllocator(next Allocator, limitBytes int64) *BudgetAllocator {
	if next == nil {
		next = Heap
	}
	if limitBytes < 0 {
		limitBytes = 0
	}
	return &BudgetAllocator{next: next, limit: limitBytes}
}

// Alloc reserves n*8 bytes of budget, then delegates to the wrapped allocator.
// Returns ErrAllocation when the reservation would exceed the budget.
func (b *BudgetAllocator) Alloc(n int) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Alloc(%d): %w", n, ErrInvalidDimensions)
	}
	size := int64(n) * int64Bytes
	for {
		cur := b.live.Load()
		if b.limit > 0 && cur+size > b.limit {
			b.failures.Inc()
			return nil, fmt.Errorf("Alloc(%d): %d of %d bytes in use: %w", n, cur, b.limit, ErrAllocation)
		}
		if b.live.CompareAndSwap(cur, cur+size) {
			b.raisePeak(cur + size)
			break
		}
	}

	buf, err := b.next.Alloc(n)
	if err != nil {
		b.live.Sub(size)
		b.failures.Inc()
		return nil, err
	}
	b.allocs.Inc()

	return buf, nil
}

// raisePeak lifts the high-water mark to v if it is larger.
func (b *BudgetAllocator) raisePeak(v int64) {
	for {
		p := b.peak.Load()
		if v <= p || b.peak.CompareAndSwap(p, v) {
			return
		}
	}
}

// Free returns the reservation of len(buf) elements and delegates.
func (b *BudgetAllocator) Free(buf []int64) {
	b.live.Sub(int64(len(buf)) * int64Bytes)
	b.frees.Inc()
	b.next.Free(buf)
}

// Stats returns a snapshot of the counters.
func (b *BudgetAllocator) Stats() Stats {
	return Stats{
		Allocs:    b.allocs.Load(),
		Frees:     b.frees.Load(),
		Failures:  b.failures.Load(),
		LiveBytes: b.live.Load(),
		PeakBytes: b.peak.Load(),
	}
}
