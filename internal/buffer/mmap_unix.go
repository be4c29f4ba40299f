//go:build unix

package buffer

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MmapAllocator backs each block with its own anonymous private mapping,
// outside the Go heap. The kernel hands the pages out zeroed.
type MmapAllocator struct{}

func newMmapAllocator() (Allocator, error) { return MmapAllocator{}, nil }

func (MmapAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative size %d", n)
	}
	if n == 0 {
		return []byte{}, nil
	}
	block, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", n, err)
	}
	return block, nil
}

func (MmapAllocator) Free(block []byte) error {
	if len(block) == 0 {
		return nil
	}
	if err := unix.Munmap(block); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	return nil
}
