package render

import (
	"github.com/golang/freetype/truetype"
	"github.com/rook-computer/pixelplay/internal/assets"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// LoadFace parses the named bundled font at size points. It falls back to
// basicfont when the font is unknown or fails to parse, logging why.
func LoadFace(name string, size float64, logger Logger) font.Face {
	if logger == nil {
		logger = NoopLogger{}
	}
	ttf, ok := assets.Font(name)
	if !ok {
		logger.Errorf("font", "unknown font %q, using basicfont", name)
		return basicfont.Face7x13
	}
	tt, err := truetype.Parse(ttf)
	if err != nil {
		logger.Errorf("font", "truetype parse of %q failed, using basicfont: %v", name, err)
		return basicfont.Face7x13
	}
	if size <= 0 {
		size = CaptionSize
	}
	logger.Infof("font", "loaded %s at %.0fpt", name, size)
	return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
}
