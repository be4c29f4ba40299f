package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/ksuid"
	"golang.org/x/term"

	"github.com/rook-computer/pixelplay/internal/app"
	"github.com/rook-computer/pixelplay/internal/config"
	"github.com/rook-computer/pixelplay/internal/input"
	"github.com/rook-computer/pixelplay/internal/render"
	"github.com/rook-computer/pixelplay/internal/render/fbdev"
	"github.com/rook-computer/pixelplay/internal/render/headless"
	"github.com/rook-computer/pixelplay/internal/render/window"
	"github.com/rook-computer/pixelplay/internal/web"
)

func main() {
	os.Exit(run())
}

type mainOptions struct {
	printFPS bool
}

// resolveConfig layers defaults, the -config file, PIXELPLAY_* variables
// and finally the flags that were actually passed.
func resolveConfig(args []string, getenv func(string) string) (*config.Config, mainOptions, error) {
	var opts mainOptions
	fs := flag.NewFlagSet("pixelplay", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file (optional)")
	driverName := fs.String("driver", config.DriverWindow, "presentation driver: window | fb | headless; also configurable via "+config.EnvDriver)
	debug := fs.Bool("debug", false, "enable debug logging to ./pixelplay-debug.log")
	stdioLog := fs.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	listen := fs.String("listen", "", "debug http listen address (disabled when empty); also configurable via "+config.EnvListen)
	noOverlay := fs.Bool("no-overlay", false, "start without the fps caption")
	fs.BoolVar(&opts.printFPS, "print-fps", false, "print fps to stdout once per second")
	if err := fs.Parse(args); err != nil {
		return nil, opts, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, opts, err
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "driver":
			cfg.Driver = *driverName
		case "debug":
			cfg.Debug = *debug
		case "stdio-log":
			cfg.StdioLog = *stdioLog
		case "listen":
			cfg.Listen = *listen
		case "no-overlay":
			cfg.Overlay = !*noOverlay
		}
	})
	return cfg, opts, cfg.Validate()
}

func run() int {
	cfg, opts, err := resolveConfig(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	runID := ksuid.New().String()
	logger.Infof("main", "run %s driver=%s surface=%v", runID, cfg.Driver, cfg.Surface)

	a, err := app.Build(cfg, runID, logger)
	if err != nil {
		fmt.Println("startup error:", err)
		return 1
	}
	defer a.Close()
	if opts.printFPS {
		a.PrintFPS = os.Stdout
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.New(web.ServerConfig{ListenAddr: cfg.Listen, DevMode: cfg.DevMode}, a.WebDeps())
	if err := server.Start(ctx); err != nil {
		fmt.Println("server start error:", err)
	}

	driver := newDriver(cfg, a.Input, logger)
	runErr := driver.Run(ctx, a)

	_ = server.Stop()
	if err := a.Close(); err != nil {
		logger.Errorf("main", "release buffer: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Println("run error:", runErr)
		return 1
	}
	return 0
}

func newDriver(cfg *config.Config, queue *input.Queue, logger app.Logger) render.Driver {
	face := render.LoadFace(cfg.Font, render.CaptionSize, logger)

	switch cfg.Driver {
	case config.DriverFB:
		d := fbdev.New()
		d.Device = cfg.FBDevice
		d.TPS = cfg.TPS
		d.Input = queue
		d.Face = face
		d.CaptionColor = cfg.CaptionColor
		d.Logger = logger
		return d
	case config.DriverHeadless:
		d := headless.New()
		d.Frames = cfg.Headless.Frames
		d.TPS = cfg.TPS
		d.SnapshotDir = cfg.Headless.SnapshotDir
		d.SnapshotEvery = cfg.Headless.SnapshotEvery
		if term.IsTerminal(int(os.Stderr.Fd())) {
			d.Progress = os.Stderr
		}
		d.Face = face
		d.CaptionColor = cfg.CaptionColor
		d.Logger = logger
		return d
	default:
		d := window.New()
		d.Scale = cfg.Scale
		d.TPS = cfg.TPS
		d.Input = queue
		d.Face = face
		d.CaptionColor = cfg.CaptionColor
		d.Logger = logger
		return d
	}
}
