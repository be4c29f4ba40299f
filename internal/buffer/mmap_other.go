//go:build !unix

package buffer

import "errors"

func newMmapAllocator() (Allocator, error) {
	return nil, errors.New("mmap allocator is only available on unix")
}
