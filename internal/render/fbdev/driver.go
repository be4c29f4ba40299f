package fbdev

import (
	"github.com/rook-computer/pixelplay/internal/input"
	"github.com/rook-computer/pixelplay/internal/numeric"
	"github.com/rook-computer/pixelplay/internal/render"
	"github.com/rook-computer/pixelplay/internal/system"
	"golang.org/x/image/font"
)

const DefaultDevice = "/dev/fb0"

type Driver struct {
	Device string
	TPS    int

	// GraphicsMode switches the console to KD_GRAPHICS while running.
	GraphicsMode bool

	// Input receives key presses read from evdev. Nil disables key reading.
	Input *input.Queue

	Face         font.Face
	CaptionColor numeric.Float4
	Logger       render.Logger
}

func New() *Driver {
	return &Driver{
		Device:       DefaultDevice,
		TPS:          60,
		GraphicsMode: true,
		CaptionColor: render.CaptionColor,
	}
}

var keyEvents = map[uint16]input.Event{
	system.KeyEsc:   input.Quit,
	system.KeyF4:    input.Quit,
	system.KeyQ:     input.Quit,
	system.KeySpace: input.TogglePause,
	system.KeyF:     input.ToggleOverlay,
}

func (d *Driver) logger() render.Logger {
	if d.Logger == nil {
		return render.NoopLogger{}
	}
	return d.Logger
}
