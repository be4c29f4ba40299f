package state

import (
	"sync"
	"time"

	"github.com/rook-computer/pixelplay/internal/numeric"
)

type Phase int

const (
	BOOTING Phase = iota
	RUNNING
	PAUSED
	STOPPED
)

func (p Phase) String() string {
	switch p {
	case BOOTING:
		return "booting"
	case RUNNING:
		return "running"
	case PAUSED:
		return "paused"
	case STOPPED:
		return "stopped"
	}
	return "unknown"
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

type SurfaceInfo struct {
	Size          numeric.Int2 `json:"size"`
	BytesPerPixel int          `json:"bytesPerPixel"`
	Bytes         uint32       `json:"bytes"`
}

type FrameInfo struct {
	Count     uint64        `json:"count"`
	FPS       float64       `json:"fps"`
	FrameTime time.Duration `json:"frameTimeNs"`
	FillTime  time.Duration `json:"fillTimeNs"`
	LastFrame time.Time     `json:"lastFrame"`
}

type State struct {
	RunID   string      `json:"runId"`
	Phase   Phase       `json:"phase"`
	Overlay bool        `json:"overlay"`
	Surface SurfaceInfo `json:"surface"`
	Frames  FrameInfo   `json:"frames"`
}

// Store is written by the frame loop and read by anything else (HTTP
// handlers, heartbeat logging).
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore(runID string) *Store {
	return &Store{state: State{RunID: runID, Phase: BOOTING, Overlay: true}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

func (store *Store) SetOverlay(on bool) {
	store.mu.Lock()
	store.state.Overlay = on
	store.mu.Unlock()
}

func (store *Store) SetSurface(surface SurfaceInfo) {
	store.mu.Lock()
	store.state.Surface = surface
	store.mu.Unlock()
}

func (store *Store) UpdateFrames(frames FrameInfo) {
	store.mu.Lock()
	store.state.Frames = frames
	store.mu.Unlock()
}
