package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/rook-computer/pixelplay/internal/buffer"
	"github.com/rook-computer/pixelplay/internal/input"
	"github.com/rook-computer/pixelplay/internal/metrics"
	"github.com/rook-computer/pixelplay/internal/render"
	"github.com/rook-computer/pixelplay/internal/state"
)

// ErrClosed is returned by RequestSnapshot once the app has been closed.
var ErrClosed = errors.New("app closed")

// App is the frame source every driver pulls from. It owns the pixel
// buffer; only the driver loop goroutine touches the bytes.
type App struct {
	Store   *state.Store
	Input   *input.Queue
	Metrics *metrics.Metrics
	Logger  Logger
	// PrintFPS, when set, receives one "fps=N" line per heartbeat.
	PrintFPS io.Writer

	buf     *buffer.Buffer
	surface render.Surface
	now     func() time.Time

	paused    bool
	overlay   bool
	frames    uint64
	lastFrame time.Time
	lastBeat  time.Time
	fps       float64

	snapshots chan snapshotRequest
	done      chan struct{}
	closeOnce sync.Once
}

type snapshotRequest struct {
	reply chan []byte
}

// New wires buf to a surface. The buffer must hold exactly one surface
// worth of bytes.
func New(buf *buffer.Buffer, surface render.Surface, store *state.Store) (*App, error) {
	if err := surface.Validate(); err != nil {
		return nil, err
	}
	if int(buf.ElementSize()) != surface.BytesPerPixel || int(buf.ElementCount()) != surface.PixelCount() {
		return nil, fmt.Errorf("buffer holds %d elements of %d bytes, surface %v needs %d of %d",
			buf.ElementCount(), buf.ElementSize(), surface.Size, surface.PixelCount(), surface.BytesPerPixel)
	}
	if store == nil {
		store = state.NewStore("")
	}
	app := &App{
		Store:     store,
		Input:     input.NewQueue(0),
		Logger:    NoopLogger{},
		buf:       buf,
		surface:   surface,
		now:       time.Now,
		overlay:   store.Snapshot().Overlay,
		snapshots: make(chan snapshotRequest),
		done:      make(chan struct{}),
	}
	store.SetSurface(state.SurfaceInfo{Size: surface.Size, BytesPerPixel: surface.BytesPerPixel, Bytes: buf.Size()})
	store.SetPhase(state.RUNNING)
	return app, nil
}

func (app *App) Surface() render.Surface { return app.surface }

// NextFrame applies pending input, refills the buffer unless paused and
// returns its bytes. The returned slice is only valid until the next call.
func (app *App) NextFrame(ctx context.Context) (render.Frame, error) {
	if err := ctx.Err(); err != nil {
		return render.Frame{}, err
	}
	if app.buf.Released() {
		return render.Frame{}, buffer.ErrReleased
	}
	if err := app.applyInput(); err != nil {
		return render.Frame{}, err
	}

	now := app.now()
	var fill time.Duration
	if !app.paused {
		start := now
		app.buf.Randomize()
		fill = app.now().Sub(start)
		app.frames++
	}

	var frameTime time.Duration
	if !app.lastFrame.IsZero() {
		frameTime = now.Sub(app.lastFrame)
		if frameTime > 0 {
			app.fps = math.Floor(float64(time.Second) / float64(frameTime))
		}
	}
	app.lastFrame = now

	app.Store.UpdateFrames(state.FrameInfo{
		Count:     app.frames,
		FPS:       app.fps,
		FrameTime: frameTime,
		FillTime:  fill,
		LastFrame: now,
	})
	if app.Metrics != nil && !app.paused {
		app.Metrics.RecordFrame(fill, app.fps)
	}
	app.heartbeat(now)
	app.serviceSnapshots()

	return render.Frame{Pix: app.buf.Data(), Caption: app.caption()}, nil
}

func (app *App) applyInput() error {
	for _, ev := range app.Input.Drain() {
		if app.Metrics != nil {
			app.Metrics.RecordEvent(string(ev))
		}
		switch ev {
		case input.Quit:
			app.Logger.Infof("app", "quit requested after %d frames", app.frames)
			app.Store.SetPhase(state.STOPPED)
			return input.ErrQuit
		case input.Pause:
			app.setPaused(true)
		case input.Resume:
			app.setPaused(false)
		case input.TogglePause:
			app.setPaused(!app.paused)
		case input.ToggleOverlay:
			app.overlay = !app.overlay
			app.Store.SetOverlay(app.overlay)
		default:
			app.Logger.Errorf("app", "unknown input event %q", ev)
		}
	}
	return nil
}

func (app *App) setPaused(paused bool) {
	if app.paused == paused {
		return
	}
	app.paused = paused
	if paused {
		app.Store.SetPhase(state.PAUSED)
		app.Logger.Infof("app", "paused at frame %d", app.frames)
		return
	}
	app.Store.SetPhase(state.RUNNING)
	app.Logger.Infof("app", "resumed at frame %d", app.frames)
}

func (app *App) heartbeat(now time.Time) {
	if app.lastBeat.IsZero() {
		app.lastBeat = now
		return
	}
	if now.Sub(app.lastBeat) < time.Second {
		return
	}
	app.lastBeat = now
	app.Logger.Infof("loop", "frame=%d fps=%.0f paused=%v", app.frames, app.fps, app.paused)
	if app.PrintFPS != nil {
		fmt.Fprintf(app.PrintFPS, "fps=%.0f\n", app.fps)
	}
}

func (app *App) caption() string {
	if !app.overlay {
		return ""
	}
	text := fmt.Sprintf("fps=%.0f frame=%d", app.fps, app.frames)
	if app.paused {
		text += " paused"
	}
	return text
}

func (app *App) serviceSnapshots() {
	for {
		select {
		case req := <-app.snapshots:
			pix := make([]byte, len(app.buf.Data()))
			copy(pix, app.buf.Data())
			req.reply <- pix
			if app.Metrics != nil {
				app.Metrics.RecordSnapshot()
			}
		default:
			return
		}
	}
}

// RequestSnapshot returns a copy of the buffer as of the next frame. It
// blocks until the frame loop services it, ctx is done, or the app closes.
func (app *App) RequestSnapshot(ctx context.Context) ([]byte, error) {
	req := snapshotRequest{reply: make(chan []byte, 1)}
	select {
	case app.snapshots <- req:
	case <-app.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case pix := <-req.reply:
		return pix, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close releases the buffer. It must be called after the driver returns.
func (app *App) Close() error {
	var err error
	app.closeOnce.Do(func() {
		close(app.done)
		app.Store.SetPhase(state.STOPPED)
		err = app.buf.Close()
		app.Logger.Infof("app", "buffer released after %d frames", app.frames)
	})
	return err
}
