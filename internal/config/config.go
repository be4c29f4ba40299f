// Package config resolves runtime settings: defaults, then an optional YAML
// file, then PIXELPLAY_* environment variables. Command-line flags are
// applied last by each binary.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rook-computer/pixelplay/internal/buffer"
	"github.com/rook-computer/pixelplay/internal/numeric"
	"github.com/rook-computer/pixelplay/internal/render"
)

const (
	EnvDriver    = "PIXELPLAY_DRIVER"
	EnvListen    = "PIXELPLAY_LISTEN"
	EnvDevMode   = "PIXELPLAY_DEV"
	EnvStdioLog  = "PIXELPLAY_STDIO_LOG"
	EnvAllocator = "PIXELPLAY_ALLOCATOR"
)

const (
	DriverWindow   = "window"
	DriverFB       = "fb"
	DriverHeadless = "headless"
)

type Config struct {
	Surface       numeric.Int2   `yaml:"surface"`
	BytesPerPixel int            `yaml:"bytes_per_pixel"`
	Scale         int32          `yaml:"scale"`
	Driver        string         `yaml:"driver"`
	FBDevice      string         `yaml:"fb_device"`
	TPS           int            `yaml:"tps"`
	Overlay       bool           `yaml:"overlay"`
	CaptionColor  numeric.Float4 `yaml:"caption_color"`
	Font          string         `yaml:"font"`
	Allocator     string         `yaml:"allocator"`
	Seed          uint64         `yaml:"seed"`
	Listen        string         `yaml:"listen"`
	DevMode       bool           `yaml:"dev_mode"`
	Debug         bool           `yaml:"debug"`
	LogFile       string         `yaml:"log_file"`
	StdioLog      string         `yaml:"stdio_log"`
	Headless      Headless       `yaml:"headless"`
}

type Headless struct {
	Frames        uint64 `yaml:"frames"`
	SnapshotDir   string `yaml:"snapshot_dir"`
	SnapshotEvery uint64 `yaml:"snapshot_every"`
}

func Default() *Config {
	return &Config{
		Surface:       render.DefaultSurface.Size,
		BytesPerPixel: render.DefaultSurface.BytesPerPixel,
		Scale:         render.DefaultScale,
		Driver:        DriverWindow,
		FBDevice:      "/dev/fb0",
		TPS:           60,
		Overlay:       true,
		CaptionColor:  render.CaptionColor,
		Font:          "regular",
		Allocator:     "heap",
		LogFile:       "./pixelplay-debug.log",
		Headless: Headless{
			Frames: 600,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads path over c. An empty path leaves c untouched.
func (c *Config) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from PIXELPLAY_* variables.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvDriver); v != "" {
		c.Driver = v
	}
	if v := getenv(EnvListen); v != "" {
		c.Listen = v
	}
	if v := getenv(EnvStdioLog); v != "" {
		c.StdioLog = v
	}
	if v := getenv(EnvAllocator); v != "" {
		c.Allocator = v
	}
	if raw := getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		c.DevMode = parsed
	}
	return nil
}

func (c *Config) RenderSurface() render.Surface {
	return render.Surface{Size: c.Surface, BytesPerPixel: c.BytesPerPixel}
}

// FrameInterval is the tick period for drivers that pace themselves.
func (c *Config) FrameInterval() time.Duration {
	if c.TPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TPS)
}

func (c *Config) Validate() error {
	var errs []error
	if err := c.RenderSurface().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be at least 1, got %d", c.Scale))
	}
	if c.TPS < 0 {
		errs = append(errs, fmt.Errorf("tps must not be negative, got %d", c.TPS))
	}
	switch c.Driver {
	case DriverWindow, DriverFB, DriverHeadless:
	default:
		errs = append(errs, fmt.Errorf("unknown driver %q (want %s, %s or %s)", c.Driver, DriverWindow, DriverFB, DriverHeadless))
	}
	if _, err := buffer.AllocatorByName(c.Allocator); err != nil {
		errs = append(errs, err)
	}
	if c.Headless.SnapshotEvery > 0 && c.Headless.SnapshotDir == "" {
		errs = append(errs, errors.New("headless.snapshot_every needs headless.snapshot_dir"))
	}
	return errors.Join(errs...)
}
