package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/rook-computer/pixelplay/internal/input"
	"github.com/rook-computer/pixelplay/internal/render"
	"github.com/rook-computer/pixelplay/internal/state"
)

// StatsSource is usually a *state.Store.
type StatsSource interface {
	Snapshot() state.State
}

// FrameSnapshotter copies the current frame out of the frame loop. The
// concrete implementation is *app.App.
type FrameSnapshotter interface {
	Surface() render.Surface
	RequestSnapshot(ctx context.Context) ([]byte, error)
}

// EventSink accepts input events for the frame loop, usually *input.Queue.
type EventSink interface {
	Push(ev input.Event) bool
}

type sysLogger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type APIV1Deps struct {
	Stats   StatsSource
	Frames  FrameSnapshotter
	Events  EventSink
	Metrics http.Handler
	Logger  sysLogger
}

func (d APIV1Deps) withDefaults() APIV1Deps {
	out := d
	if out.Stats == nil {
		out.Stats = state.NewStore("")
	}
	if out.Frames == nil {
		out.Frames = NoopSnapshotter{Err: errors.New("frame snapshots not configured")}
	}
	if out.Events == nil {
		out.Events = discardEvents{}
	}
	if out.Metrics == nil {
		out.Metrics = http.NotFoundHandler()
	}
	if out.Logger == nil {
		out.Logger = render.NoopLogger{}
	}
	return out
}

type NoopSnapshotter struct{ Err error }

func (n NoopSnapshotter) Surface() render.Surface { return render.Surface{} }
func (n NoopSnapshotter) RequestSnapshot(ctx context.Context) ([]byte, error) {
	return nil, n.Err
}

type discardEvents struct{}

func (discardEvents) Push(input.Event) bool { return false }
