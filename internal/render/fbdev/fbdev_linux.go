//go:build linux

package fbdev

import (
	"context"
	"errors"
	"fmt"
	"time"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/pixelplay/internal/input"
	"github.com/rook-computer/pixelplay/internal/render"
	"github.com/rook-computer/pixelplay/internal/system"
)

// Run opens the framebuffer and presents frames at d.TPS until the source
// quits or ctx is done.
func (d *Driver) Run(ctx context.Context, src render.FrameSource) error {
	logger := d.logger()
	surface := src.Surface()
	if err := surface.Validate(); err != nil {
		return err
	}

	dev, err := fb.Open(d.Device)
	if err != nil {
		return fmt.Errorf("open %s: %w", d.Device, err)
	}
	defer dev.Close()

	bounds := dev.Bounds()
	target := Placement(surface.Size, bounds)
	logger.Infof("fb", "framebuffer open, bounds=%dx%d, target=%v", bounds.Dx(), bounds.Dy(), target)

	if d.GraphicsMode {
		restore := system.EnterGraphics(logger)
		defer restore()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if d.Input != nil {
		system.WatchKeys(loopCtx, logger, func(code uint16) {
			if ev, ok := keyEvents[code]; ok {
				d.Input.Push(ev)
			}
		})
	}

	canvas := render.NewCanvas(surface, d.Face)
	clearOutside(dev, target)

	tps := d.TPS
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		frame, err := src.NextFrame(ctx)
		if errors.Is(err, input.ErrQuit) {
			logger.Infof("fb", "quit requested")
			return nil
		}
		if err != nil {
			return err
		}
		if err := canvas.Load(frame.Pix); err != nil {
			return err
		}
		canvas.DrawCaption(frame.Caption, d.CaptionColor)
		blit(dev, target, canvas.Image())
	}
}
