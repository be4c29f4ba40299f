//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// WatchKeys reads Linux evdev devices under /dev/input/event* and calls
// onKey with the key code of every key press until ctx is done. onKey runs
// on reader goroutines and must be safe for concurrent use.
//
// It is best-effort: without readable input devices it logs and returns.
func WatchKeys(ctx context.Context, logger Logger, onKey func(code uint16)) {
	if onKey == nil {
		return
	}

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})
	eventSize := tvSize + 2 + 2 + 4

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if logger != nil {
			logger.Infof("input", "no evdev devices found")
		}
		return
	}

	for _, path := range paths {
		go readKeys(ctx, path, tvSize, eventSize, onKey)
	}
	if logger != nil {
		logger.Infof("input", "watching %d evdev devices", len(paths))
	}
}

func readKeys(ctx context.Context, path string, tvSize, eventSize int, onKey func(uint16)) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for _, code := range parseKeyPresses(buf[:n], tvSize, eventSize) {
			onKey(code)
		}
	}
}
