// Package headless presents frames without a display: it pulls a fixed
// number of frames, optionally writes PNG snapshots, and reports progress.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rook-computer/pixelplay/internal/input"
	"github.com/rook-computer/pixelplay/internal/numeric"
	"github.com/rook-computer/pixelplay/internal/render"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/font"
)

type Driver struct {
	// Frames to present; 0 runs until ctx is done or the source quits.
	Frames uint64
	// TPS throttles the loop; 0 runs as fast as frames are produced.
	TPS int

	// SnapshotDir receives frame-NNNNNN.png every SnapshotEvery frames.
	SnapshotDir   string
	SnapshotEvery uint64

	// Progress, when set, receives a progress bar.
	Progress io.Writer

	Face         font.Face
	CaptionColor numeric.Float4
	Logger       render.Logger

	presented uint64
}

func New() *Driver {
	return &Driver{CaptionColor: render.CaptionColor, Logger: render.NoopLogger{}}
}

// Presented is the number of frames shown by the last Run.
func (d *Driver) Presented() uint64 { return d.presented }

func (d *Driver) Run(ctx context.Context, src render.FrameSource) error {
	if d.Logger == nil {
		d.Logger = render.NoopLogger{}
	}
	d.presented = 0
	surface := src.Surface()
	if err := surface.Validate(); err != nil {
		return err
	}
	canvas := render.NewCanvas(surface, d.Face)

	if d.SnapshotDir != "" && d.SnapshotEvery > 0 {
		if err := os.MkdirAll(d.SnapshotDir, 0o755); err != nil {
			return fmt.Errorf("snapshot dir: %w", err)
		}
	}

	var bar *progressbar.ProgressBar
	if d.Progress != nil {
		total := int64(d.Frames)
		if d.Frames == 0 {
			total = -1
		}
		bar = progressbar.NewOptions64(total,
			progressbar.OptionSetWriter(d.Progress),
			progressbar.OptionSetDescription("rendering"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("frames"),
			progressbar.OptionThrottle(100*time.Millisecond),
		)
		defer bar.Close()
	}

	var tick <-chan time.Time
	if d.TPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(d.TPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	d.Logger.Infof("headless", "running surface=%v frames=%d tps=%d", surface.Size, d.Frames, d.TPS)
	for d.Frames == 0 || d.presented < d.Frames {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		frame, err := src.NextFrame(ctx)
		if errors.Is(err, input.ErrQuit) {
			d.Logger.Infof("headless", "quit after %d frames", d.presented)
			return nil
		}
		if err != nil {
			return err
		}
		if err := canvas.Load(frame.Pix); err != nil {
			return err
		}
		canvas.DrawCaption(frame.Caption, d.CaptionColor)
		d.presented++

		if d.SnapshotDir != "" && d.SnapshotEvery > 0 && d.presented%d.SnapshotEvery == 0 {
			if err := d.snapshot(canvas); err != nil {
				return err
			}
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	d.Logger.Infof("headless", "done after %d frames", d.presented)
	return nil
}

func (d *Driver) snapshot(canvas *render.Canvas) error {
	path := filepath.Join(d.SnapshotDir, fmt.Sprintf("frame-%06d.png", d.presented))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := canvas.WritePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	d.Logger.Infof("headless", "wrote %s", path)
	return nil
}
