package assets

import (
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Bundled TrueType fonts, by the names accepted in config. "mono" is the
// default so changing digits do not jitter.
var fonts = map[string][]byte{
	"mono":    gomono.TTF,
	"regular": goregular.TTF,
}

// Font returns the TrueType bytes registered under name.
func Font(name string) ([]byte, bool) {
	ttf, ok := fonts[name]
	return ttf, ok
}
