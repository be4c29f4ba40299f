//go:build !linux

package system

import (
	"context"
	"errors"
)

var errNoConsole = errors.New("console control is only available on linux")

func SetGraphicsMode() error { return errNoConsole }
func RestoreTextMode() error { return errNoConsole }
func HideCursor() error      { return errNoConsole }
func ShowCursor() error      { return errNoConsole }

func WatchKeys(ctx context.Context, logger Logger, onKey func(code uint16)) {
	if logger != nil {
		logger.Infof("input", "evdev key watching is only available on linux")
	}
}
