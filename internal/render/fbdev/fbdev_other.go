//go:build !linux

package fbdev

import (
	"context"
	"errors"

	"github.com/rook-computer/pixelplay/internal/render"
)

func (d *Driver) Run(ctx context.Context, src render.FrameSource) error {
	return errors.New("framebuffer driver is only available on linux")
}
