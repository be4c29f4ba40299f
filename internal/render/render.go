package render

import (
	"context"
	"fmt"
	"math"

	"github.com/rook-computer/pixelplay/internal/numeric"
)

// Surface describes how a driver reads frame bytes: Size.X*Size.Y texels of
// BytesPerPixel bytes each, contiguous and row-major.
type Surface struct {
	Size          numeric.Int2
	BytesPerPixel int
}

func (s Surface) Stride() int     { return int(s.Size.X) * s.BytesPerPixel }
func (s Surface) PixelCount() int { return int(int64(s.Size.X) * int64(s.Size.Y)) }
func (s Surface) Bytes() int      { return s.PixelCount() * s.BytesPerPixel }

// Validate reports whether drivers can present this surface. Only RGBA8
// texels are supported.
func (s Surface) Validate() error {
	if s.Size.X <= 0 || s.Size.Y <= 0 {
		return fmt.Errorf("surface size must be positive, got %v", s.Size)
	}
	if s.BytesPerPixel != 4 {
		return fmt.Errorf("surface must be RGBA8 (4 bytes per pixel), got %d", s.BytesPerPixel)
	}
	if total := uint64(s.Size.X) * uint64(s.Size.Y) * uint64(s.BytesPerPixel); total > math.MaxUint32 {
		return fmt.Errorf("surface %v needs %d bytes, more than 32-bit sizes allow", s.Size, total)
	}
	return nil
}

// CheckFrame reports whether pix holds exactly one surface worth of bytes.
func (s Surface) CheckFrame(pix []byte) error {
	if len(pix) != s.Bytes() {
		return fmt.Errorf("frame is %d bytes, surface %v needs %d", len(pix), s.Size, s.Bytes())
	}
	return nil
}

// Frame is what a driver receives each iteration. Pix is borrowed: the
// driver copies it before the next call to NextFrame.
type Frame struct {
	Pix     []byte
	Caption string
}

// FrameSource produces frames. NextFrame is only ever called from the
// driver's loop goroutine.
type FrameSource interface {
	Surface() Surface
	NextFrame(ctx context.Context) (Frame, error)
}

// Driver owns the event loop and timing. Run blocks until the source asks
// to quit, ctx is done, or presentation fails.
type Driver interface {
	Run(ctx context.Context, src FrameSource) error
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}
