package app

import (
	"fmt"

	"github.com/rook-computer/pixelplay/internal/buffer"
	"github.com/rook-computer/pixelplay/internal/config"
	"github.com/rook-computer/pixelplay/internal/metrics"
	"github.com/rook-computer/pixelplay/internal/state"
	"github.com/rook-computer/pixelplay/internal/web"
)

// Build allocates the buffer described by cfg and wraps it in an App with
// a fresh store and metrics. A zero Seed seeds from the clock.
func Build(cfg *config.Config, runID string, logger Logger) (*App, error) {
	if logger == nil {
		logger = NoopLogger{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	alloc, err := buffer.AllocatorByName(cfg.Allocator)
	if err != nil {
		return nil, err
	}

	surface := cfg.RenderSurface()
	opts := []buffer.Option{buffer.WithAllocator(alloc)}
	if cfg.Seed != 0 {
		opts = append(opts, buffer.WithSeed(cfg.Seed))
	}
	buf, err := buffer.New(uint32(surface.BytesPerPixel), uint32(surface.PixelCount()), opts...)
	if err != nil {
		return nil, err
	}
	logger.Infof("app", "buffer %d x %d bytes (%d total) from %s allocator",
		buf.ElementCount(), buf.ElementSize(), buf.Size(), cfg.Allocator)

	store := state.NewStore(runID)
	store.SetOverlay(cfg.Overlay)
	a, err := New(buf, surface, store)
	if err != nil {
		_ = buf.Close()
		return nil, err
	}
	a.Logger = logger
	a.Metrics = metrics.New()
	a.Metrics.SetBufferBytes(buf.Size())
	return a, nil
}

// WebDeps exposes the app to the debug HTTP API.
func (app *App) WebDeps() web.APIV1Deps {
	deps := web.APIV1Deps{
		Stats:  app.Store,
		Frames: app,
		Events: app.Input,
		Logger: app.Logger,
	}
	if app.Metrics != nil {
		deps.Metrics = app.Metrics.Handler()
	}
	return deps
}
