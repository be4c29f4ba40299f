package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/segmentio/ksuid"
	"golang.org/x/term"

	"github.com/rook-computer/pixelplay/internal/app"
	"github.com/rook-computer/pixelplay/internal/config"
	"github.com/rook-computer/pixelplay/internal/render"
	"github.com/rook-computer/pixelplay/internal/render/headless"
	"github.com/rook-computer/pixelplay/internal/web"
)

func main() {
	os.Exit(run())
}

const defaultSnapshotEvery = 60

type simOptions struct {
	debug       bool
	snapshotDir string
}

// resolveConfig layers simulator defaults, the -config file, PIXELPLAY_*
// variables and finally the flags that were actually passed.
func resolveConfig(args []string, getenv func(string) string) (*config.Config, simOptions, error) {
	var opts simOptions
	fs := flag.NewFlagSet("simulator", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file (optional)")
	frames := fs.Uint64("frames", 0, "frames to produce; 0 runs until interrupted (default from config)")
	fs.StringVar(&opts.snapshotDir, "snapshot-dir", "", "write PNG snapshots under this directory, in a per-run subdirectory")
	snapshotEvery := fs.Uint64("snapshot-every", defaultSnapshotEvery, "snapshot period in frames (with -snapshot-dir)")
	listen := fs.String("listen", ":8080", "debug http listen address; empty disables; also configurable via "+config.EnvListen)
	seed := fs.Uint64("seed", 0, "seed for reproducible frames; 0 seeds from the clock")
	tps := fs.Int("tps", 0, "frames per second cap; 0 runs unthrottled")
	fs.BoolVar(&opts.debug, "debug", false, "log to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, opts, err
	}

	cfg := config.Default()
	cfg.Listen = ":8080"
	cfg.TPS = 0
	if err := cfg.LoadFile(*configPath); err != nil {
		return nil, opts, err
	}
	cfg.Driver = config.DriverHeadless
	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, opts, err
	}
	// env may not switch the simulator away from headless
	cfg.Driver = config.DriverHeadless

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frames":
			cfg.Headless.Frames = *frames
		case "listen":
			cfg.Listen = *listen
		case "tps":
			cfg.TPS = *tps
		case "seed":
			cfg.Seed = *seed
		case "snapshot-every":
			cfg.Headless.SnapshotEvery = *snapshotEvery
		}
	})
	if opts.snapshotDir != "" && cfg.Headless.SnapshotEvery == 0 {
		cfg.Headless.SnapshotEvery = defaultSnapshotEvery
	}
	return cfg, opts, nil
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

	runID := ksuid.New().String()
	if opts.snapshotDir != "" {
		cfg.Headless.SnapshotDir = filepath.Join(opts.snapshotDir, runID)
	}

	var logger app.Logger = app.NoopLogger{}
	if opts.debug {
		logger = app.NewFileLogger(os.Stderr)
	}

	a, err := app.Build(cfg, runID, logger)
	if err != nil {
		fmt.Println("startup error:", err)
		return 2
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.New(web.ServerConfig{ListenAddr: cfg.Listen, DevMode: cfg.DevMode}, a.WebDeps())
	if err := server.Start(ctx); err != nil {
		fmt.Println("server start error:", err)
		return 1
	}

	fmt.Println("pixelplay simulator run", runID)
	fmt.Println("Surface:", cfg.Surface, "frames:", cfg.Headless.Frames)
	if cfg.Listen != "" {
		fmt.Println("API: http://" + trimLeadingColon(cfg.Listen) + "/api/v1/stats")
	}
	if cfg.Headless.SnapshotDir != "" {
		fmt.Println("Snapshots:", cfg.Headless.SnapshotDir)
	}

	driver := headless.New()
	driver.Frames = cfg.Headless.Frames
	driver.TPS = cfg.TPS
	driver.SnapshotDir = cfg.Headless.SnapshotDir
	driver.SnapshotEvery = cfg.Headless.SnapshotEvery
	driver.Face = render.LoadFace(cfg.Font, render.CaptionSize, logger)
	driver.CaptionColor = cfg.CaptionColor
	driver.Logger = logger
	if term.IsTerminal(int(os.Stderr.Fd())) {
		driver.Progress = os.Stderr
	}

	runErr := driver.Run(ctx, a)
	stats := a.Store.Snapshot()

	_ = server.Stop()
	if err := a.Close(); err != nil {
		logger.Errorf("main", "release buffer: %v", err)
	}

	fmt.Printf("presented %d frames, last fps=%.0f\n", driver.Presented(), stats.Frames.FPS)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Println("run error:", runErr)
		return 1
	}
	return 0
}

func trimLeadingColon(addr string) string {
	// Best-effort for display; don't attempt full URL parsing here.
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	return addr
}
