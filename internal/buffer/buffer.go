// Package buffer implements an owned, size-accounted block of raw bytes.
//
// A Buffer is created with an element size and count, owns exactly one
// block obtained from an Allocator, and gives that block back exactly once
// when closed. It never interprets its bytes; callers decide what an
// element is (a texel, a vector, anything fixed-size).
package buffer

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

var (
	ErrSizeOverflow = errors.New("buffer: element size * count overflows 32 bits")
	ErrAlloc        = errors.New("buffer: allocation failed")
	ErrReleased     = errors.New("buffer: already released")
)

type Buffer struct {
	data         []byte
	size         uint32
	elementSize  uint32
	elementCount uint32

	alloc    Allocator
	rng      *rand.Rand
	released bool
}

type Option func(*Buffer)

// WithAllocator selects where the block comes from. Default is the Go heap.
func WithAllocator(a Allocator) Option {
	return func(b *Buffer) {
		if a != nil {
			b.alloc = a
		}
	}
}

// WithRand sets the random source used by Randomize.
func WithRand(r *rand.Rand) Option {
	return func(b *Buffer) {
		if r != nil {
			b.rng = r
		}
	}
}

// WithSeed seeds a PCG source, for reproducible fills.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// New allocates elementSize*elementCount zeroed bytes.
func New(elementSize, elementCount uint32, opts ...Option) (*Buffer, error) {
	total := uint64(elementSize) * uint64(elementCount)
	if total > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d * %d", ErrSizeOverflow, elementSize, elementCount)
	}

	b := &Buffer{
		size:         uint32(total),
		elementSize:  elementSize,
		elementCount: elementCount,
		alloc:        HeapAllocator{},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		now := uint64(time.Now().UnixNano())
		b.rng = rand.New(rand.NewPCG(now, rand.Uint64()))
	}

	data, err := b.alloc.Alloc(int(b.size))
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %v", ErrAlloc, b.size, err)
	}
	if len(data) != int(b.size) {
		// Hand back what we got; a short block would break the size invariant.
		_ = b.alloc.Free(data)
		return nil, fmt.Errorf("%w: allocator returned %d of %d bytes", ErrAlloc, len(data), b.size)
	}
	b.data = data
	return b, nil
}

// Randomize overwrites every byte with an independent value in [0, 255).
// Values are approximately uniform: each 16-bit lane maps onto 255 bins of
// 256 or 257 lanes, so no value is more than 1/256 likelier than another.
// It does nothing once the buffer is released.
func (b *Buffer) Randomize() {
	data := b.data
	i := 0
	// Four bytes per 64-bit draw: each 16-bit lane is scaled onto 0..254.
	for ; i+4 <= len(data); i += 4 {
		r := b.rng.Uint64()
		data[i+0] = scaleByte(r)
		data[i+1] = scaleByte(r >> 16)
		data[i+2] = scaleByte(r >> 32)
		data[i+3] = scaleByte(r >> 48)
	}
	if i < len(data) {
		r := b.rng.Uint64()
		for ; i < len(data); i++ {
			data[i] = scaleByte(r)
			r >>= 16
		}
	}
}

func scaleByte(lane uint64) byte {
	return byte(((lane & 0xffff) * 255) >> 16)
}

// Data returns the owned block. The slice stays owned by b and must not be
// used after Close.
func (b *Buffer) Data() []byte { return b.data }

func (b *Buffer) Size() uint32         { return b.size }
func (b *Buffer) ElementSize() uint32  { return b.elementSize }
func (b *Buffer) ElementCount() uint32 { return b.elementCount }

func (b *Buffer) Released() bool { return b.released }

// Close gives the block back to its allocator. Only the first call frees;
// later calls return ErrReleased.
func (b *Buffer) Close() error {
	if b.released {
		return ErrReleased
	}
	b.released = true
	data := b.data
	b.data = nil
	return b.alloc.Free(data)
}
