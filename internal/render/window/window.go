// Package window presents frames in a desktop window. ebiten owns the event
// loop: each tick pulls one frame from the source, each draw uploads it.
package window

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rook-computer/pixelplay/internal/input"
	"github.com/rook-computer/pixelplay/internal/numeric"
	"github.com/rook-computer/pixelplay/internal/render"
	"golang.org/x/image/font"
)

type Driver struct {
	Title string
	Scale int32
	TPS   int

	// Input receives key presses. Without a queue, Escape closes the window
	// directly.
	Input *input.Queue

	Face         font.Face
	CaptionColor numeric.Float4
	Logger       render.Logger
}

func New() *Driver {
	return &Driver{
		Title:        "pixelplay",
		Scale:        render.DefaultScale,
		TPS:          60,
		CaptionColor: render.CaptionColor,
	}
}

var keyEvents = []struct {
	key ebiten.Key
	ev  input.Event
}{
	{ebiten.KeyEscape, input.Quit},
	{ebiten.KeyQ, input.Quit},
	{ebiten.KeySpace, input.TogglePause},
	{ebiten.KeyF, input.ToggleOverlay},
}

// WindowSize is the outer window size for a surface at scale.
func WindowSize(surface render.Surface, scale int32) numeric.Int2 {
	if scale < 1 {
		scale = 1
	}
	return surface.Size.MulScalar(scale)
}

// Run blocks until the window closes, the source quits, or ctx is done.
// It must be called from the main goroutine.
func (d *Driver) Run(ctx context.Context, src render.FrameSource) error {
	logger := d.Logger
	if logger == nil {
		logger = render.NoopLogger{}
	}
	surface := src.Surface()
	if err := surface.Validate(); err != nil {
		return err
	}

	g := newGame(ctx, src, d)
	size := WindowSize(surface, d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetWindowSize(int(size.X), int(size.Y))
	if d.TPS > 0 {
		ebiten.SetTPS(d.TPS)
	}
	logger.Infof("window", "opening %v window for %v surface", size, surface.Size)

	err := ebiten.RunGame(g)
	if err == nil || errors.Is(err, ebiten.Termination) || errors.Is(err, input.ErrQuit) {
		logger.Infof("window", "closed after %d frames", g.frames)
		return nil
	}
	return err
}

type game struct {
	ctx    context.Context
	src    render.FrameSource
	queue  *input.Queue
	canvas *render.Canvas
	color  numeric.Float4

	justPressed func(ebiten.Key) bool

	img    *ebiten.Image
	dirty  bool
	frames uint64
}

func newGame(ctx context.Context, src render.FrameSource, d *Driver) *game {
	return &game{
		ctx:         ctx,
		src:         src,
		queue:       d.Input,
		canvas:      render.NewCanvas(src.Surface(), d.Face),
		color:       d.CaptionColor,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

func (g *game) pollKeys() error {
	for _, k := range keyEvents {
		if !g.justPressed(k.key) {
			continue
		}
		if g.queue == nil {
			if k.ev == input.Quit {
				return ebiten.Termination
			}
			continue
		}
		g.queue.Push(k.ev)
	}
	return nil
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if err := g.pollKeys(); err != nil {
		return err
	}
	frame, err := g.src.NextFrame(g.ctx)
	if err != nil {
		return err
	}
	if err := g.canvas.Load(frame.Pix); err != nil {
		return err
	}
	g.canvas.DrawCaption(frame.Caption, g.color)
	g.dirty = true
	g.frames++
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	size := g.canvas.Surface().Size
	if g.img == nil {
		g.img = ebiten.NewImage(int(size.X), int(size.Y))
	}
	if g.dirty {
		g.img.WritePixels(g.canvas.Image().Pix)
		g.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

// Layout keeps the logical screen at surface size; ebiten scales it to the
// window.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.canvas.Surface().Size
	return int(size.X), int(size.Y)
}
