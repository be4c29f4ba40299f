package buffer

import "fmt"

// Allocator hands out zeroed blocks and takes them back. Free is called
// exactly once per block by its owning Buffer.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(block []byte) error
}

// HeapAllocator allocates from the Go heap. Free drops nothing explicitly;
// the collector reclaims the block once the buffer lets go of it.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative size %d", n)
	}
	return make([]byte, n), nil
}

func (HeapAllocator) Free(block []byte) error { return nil }

// AllocatorByName resolves the allocator names accepted in config.
func AllocatorByName(name string) (Allocator, error) {
	switch name {
	case "", "heap":
		return HeapAllocator{}, nil
	case "mmap":
		return newMmapAllocator()
	default:
		return nil, fmt.Errorf("unknown allocator %q (want heap or mmap)", name)
	}
}
