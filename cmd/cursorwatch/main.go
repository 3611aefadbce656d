// Package main is the entry point for the cursorwatch pointer monitor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luuma/cursorwatch/internal/config"
	"github.com/luuma/cursorwatch/internal/cursor"
	"github.com/luuma/cursorwatch/internal/hook"
	"github.com/luuma/cursorwatch/internal/logging"
	"github.com/luuma/cursorwatch/internal/monitor"
	"github.com/luuma/cursorwatch/internal/platform"
	"github.com/luuma/cursorwatch/internal/view"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	intervalMS int
	logLevel   string
	script     string
	jsonOut    bool
	pretty     bool
	live       bool
	duration   time.Duration
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	applyFlagOverrides(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logOut := os.Stderr
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.New(logOut, logging.ParseLevel(cfg.Log.Level))

	sampler, err := platform.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: pointer monitoring unavailable: %v\n", err)
		return 1
	}

	mon := monitor.New(sampler, platform.NewResolver(),
		monitor.WithInterval(cfg.Interval()),
		monitor.WithLogger(logger),
	)

	var hooks *hook.Engine
	if cfg.Hooks.Script != "" {
		hooks, err = hook.Load(cfg.Hooks.Script, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer hooks.Close()
	}

	mon.SetHandler(func(ev cursor.Event) {
		if hooks != nil {
			hooks.Dispatch(ev)
		}
		if cfg.Output.JSON {
			printEvent(ev, cfg.Output.Pretty, logger)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	// Live-reload the config file so log-level changes apply without a
	// restart. Interval changes still need one.
	if opts.configPath != "" {
		watcher, err := config.NewWatcher(opts.configPath,
			func(next config.Config) {
				logger.SetLevel(logging.ParseLevel(next.Log.Level))
				logger.Infof("configuration reloaded from %s", opts.configPath)
			},
			func(err error) {
				logger.Warnf("configuration reload failed: %v", err)
			},
		)
		if err != nil {
			logger.Warnf("configuration watch unavailable: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if opts.live {
		return runLive(ctx, stop, mon)
	}

	if err := mon.Run(ctx); isRuntimeError(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runLive runs the monitor alongside the terminal dashboard and shuts
// both down when either finishes.
func runLive(ctx context.Context, stop context.CancelFunc, mon *monitor.Monitor) int {
	monErr := make(chan error, 1)
	go func() { monErr <- mon.Run(ctx) }()

	v, err := view.New(mon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		<-monErr
		return 1
	}

	viewErr := v.Run(ctx)
	stop()

	if err := <-monErr; isRuntimeError(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if viewErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", viewErr)
		return 1
	}
	return 0
}

// isRuntimeError filters out the expected shutdown results.
func isRuntimeError(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

func printEvent(ev cursor.Event, pretty bool, logger *logging.Logger) {
	var data []byte
	var err error
	if pretty {
		data, err = cursor.MarshalEventIndent(ev)
	} else {
		data, err = cursor.MarshalEvent(ev)
	}
	if err != nil {
		logger.Errorf("encoding event: %v", err)
		return
	}
	fmt.Println(string(data))
}

func applyFlagOverrides(cfg *config.Config, opts options) {
	if opts.intervalMS > 0 {
		cfg.Monitor.IntervalMS = opts.intervalMS
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.script != "" {
		cfg.Hooks.Script = opts.script
	}
	if opts.jsonOut {
		cfg.Output.JSON = true
	}
	if opts.pretty {
		cfg.Output.JSON = true
		cfg.Output.Pretty = true
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (TOML or YAML)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.IntVar(&opts.intervalMS, "interval", 0, "Sampling interval in milliseconds (1-1000)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.script, "script", "", "Lua script with event hooks")
	flag.BoolVar(&opts.jsonOut, "json", false, "Print each event as a JSON line")
	flag.BoolVar(&opts.pretty, "pretty", false, "Print events as indented JSON (implies -json)")
	flag.BoolVar(&opts.live, "live", false, "Show a live terminal dashboard")
	flag.DurationVar(&opts.duration, "duration", 0, "Stop after this long (0 = run until interrupted)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cursorwatch - pointer activity monitor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cursorwatch [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cursorwatch                      Log pointer activity to stderr\n")
		fmt.Fprintf(os.Stderr, "  cursorwatch -json                Emit events as JSON lines\n")
		fmt.Fprintf(os.Stderr, "  cursorwatch -live                Live terminal dashboard\n")
		fmt.Fprintf(os.Stderr, "  cursorwatch -c watch.toml        Load settings from a file\n")
		fmt.Fprintf(os.Stderr, "  cursorwatch -script hooks.lua    Run Lua hooks per event\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("cursorwatch %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.logLevel != "" {
		switch opts.logLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
			os.Exit(1)
		}
	}

	return opts
}
