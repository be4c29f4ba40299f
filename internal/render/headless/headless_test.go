package headless

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rook-computer/pixelplay/internal/input"
	"github.com/rook-computer/pixelplay/internal/numeric"
	"github.com/rook-computer/pixelplay/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	surface render.Surface
	pix     []byte
	calls   int
	quitAt  int
	err     error
}

func newFakeSource(w, h int32) *fakeSource {
	s := render.Surface{Size: numeric.V2(w, h), BytesPerPixel: 4}
	return &fakeSource{surface: s, pix: make([]byte, s.Bytes())}
}

func (f *fakeSource) Surface() render.Surface { return f.surface }

func (f *fakeSource) NextFrame(ctx context.Context) (render.Frame, error) {
	f.calls++
	if f.quitAt > 0 && f.calls >= f.quitAt {
		return render.Frame{}, input.ErrQuit
	}
	if f.err != nil {
		return render.Frame{}, f.err
	}
	for i := range f.pix {
		f.pix[i] = byte(f.calls)
	}
	return render.Frame{Pix: f.pix, Caption: "fps=60"}, nil
}

func TestRunFixedFrames(t *testing.T) {
	src := newFakeSource(8, 4)
	d := New()
	d.Frames = 5

	require.NoError(t, d.Run(context.Background(), src))
	assert.Equal(t, 5, src.calls)
	assert.Equal(t, uint64(5), d.Presented())
}

func TestRunStopsOnQuit(t *testing.T) {
	src := newFakeSource(8, 4)
	src.quitAt = 3
	d := New()

	require.NoError(t, d.Run(context.Background(), src))
	assert.Equal(t, uint64(2), d.Presented())
}

func TestRunStopsOnCancel(t *testing.T) {
	src := newFakeSource(8, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New()
	require.NoError(t, d.Run(ctx, src))
	assert.Zero(t, src.calls)
}

func TestRunPropagatesSourceError(t *testing.T) {
	src := newFakeSource(8, 4)
	src.err = errors.New("boom")
	d := New()
	d.Frames = 3
	assert.EqualError(t, d.Run(context.Background(), src), "boom")
}

func TestRunRejectsMismatchedFrame(t *testing.T) {
	src := newFakeSource(8, 4)
	src.pix = src.pix[:10]
	d := New()
	d.Frames = 1
	assert.Error(t, d.Run(context.Background(), src))
}

func TestSnapshots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	src := newFakeSource(16, 8)
	var progress bytes.Buffer

	d := New()
	d.Frames = 6
	d.SnapshotDir = dir
	d.SnapshotEvery = 3
	d.Face = render.LoadFace("mono", 8, nil)
	d.Progress = &progress

	require.NoError(t, d.Run(context.Background(), src))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"frame-000003.png", "frame-000006.png"}, names)

	f, err := os.Open(filepath.Join(dir, "frame-000006.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	assert.NotEmpty(t, progress.String())
}
