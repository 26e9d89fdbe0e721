// Package main provides the entry point for the styler demo utility. It
// previews the styling library's capabilities on the attached terminal: text
// styles, the standard 16-color and extended 256-color palettes, truecolor
// RGB gradients, and user-supplied TOML theme files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/isseis/go-term-styler/ansi"
	"github.com/isseis/go-term-styler/internal/demo"
	"github.com/isseis/go-term-styler/internal/logging"
	"github.com/isseis/go-term-styler/terminal"
)

const version = "1.0.0"

// Error definitions
var (
	ErrConflictingColorFlags = errors.New("-force and -no-color are mutually exclusive")
	ErrRGBOptionsWithoutRGB  = errors.New("RGB gradient options require -rgb")
)

var (
	allDemos   = flag.Bool("all", false, "run all available demos")
	styles     = flag.Bool("styles", false, "display all available text styles")
	palette16  = flag.Bool("palette16", false, "display the standard 16-color palette")
	palette256 = flag.Bool("palette256", false, "display the extended 256-color palette")
	rgbDemo    = flag.Bool("rgb", false, "display the truecolor (RGB) gradient demo")
	rgbStep    = flag.Int("rgb-step", demo.DefaultRGBStep, "step size for RGB components (1-255)")
	rgbBlockFg = flag.String("rgb-block-fg", "", "text block for the foreground RGB gradient (default \""+demo.DefaultBlock+"\")")
	rgbBlockBg = flag.String("rgb-block-bg", "", "text block for the background RGB gradient (default \""+demo.DefaultBlock+"\")")
	themePath  = flag.String("theme", "", "path to a TOML theme file to preview")
	forceColor = flag.Bool("force", false, "force ANSI output even when the terminal does not support it")
	noColor    = flag.Bool("no-color", false, "disable ANSI output unconditionally")
	envFile    = flag.String("env-file", "", "path to environment file loaded before terminal detection")
	logDir     = flag.String("log-dir", "", "directory to place per-run JSON log (auto-named)")
	logLevel   = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	verFlag    = flag.Bool("version", false, "show the styler version and exit")
)

func main() {
	runID := logging.GenerateRunID()
	if err := run(runID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(runID string) error {
	flag.Parse()

	// Environment file loads first so NO_COLOR, CLICOLOR, and TERM overrides
	// are visible to capability detection.
	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			return fmt.Errorf("failed to load environment file %s: %w", *envFile, err)
		}
	}

	if err := validateFlags(); err != nil {
		return err
	}

	capabilities := terminal.NewCapabilities(terminal.Options{
		PreferenceOptions: terminal.PreferenceOptions{
			ForceColor:   *forceColor,
			DisableColor: *noColor,
		},
	})
	if err := setupLogger(*logLevel, *logDir, runID, capabilities); err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	switch {
	case *forceColor:
		ansi.SetMode(ansi.ModeAlways)
	case *noColor:
		ansi.SetMode(ansi.ModeNever)
	}

	if *verFlag {
		return showVersion()
	}

	if err := terminal.EnableVirtualTerminal(); err != nil {
		if !*forceColor {
			return fmt.Errorf("failed to enable ANSI terminal support (use -force to bypass): %w", err)
		}
		slog.Warn("Continuing with -force despite console mode failure", "error", err)
	}

	if *allDemos {
		*styles = true
		*palette16 = true
		*palette256 = true
		*rgbDemo = true
	}

	if !*styles && !*palette16 && !*palette256 && !*rgbDemo && *themePath == "" {
		flag.Usage()
		return nil
	}

	slog.Info("Starting demo",
		"run_id", runID,
		"color_mode", ansi.CurrentMode().String(),
		"interactive", capabilities.IsInteractive(),
		"supports_color", capabilities.SupportsColor())

	return renderDemos(demo.NewRenderer(os.Stdout, ansi.Default))
}

// renderDemos runs every selected demo section in catalog order.
func renderDemos(renderer *demo.Renderer) error {
	if *styles {
		if err := renderer.RenderStyles(); err != nil {
			return err
		}
	}
	if *palette16 {
		if err := renderer.RenderPalette16(); err != nil {
			return err
		}
	}
	if *palette256 {
		if err := renderer.RenderPalette256(true); err != nil {
			return err
		}
		if err := renderer.RenderPalette256(false); err != nil {
			return err
		}
	}
	if *rgbDemo {
		if err := renderer.RenderRGBGradient(true, *rgbStep, *rgbBlockFg); err != nil {
			return err
		}
		if err := renderer.RenderRGBGradient(false, *rgbStep, *rgbBlockBg); err != nil {
			return err
		}
	}
	if *themePath != "" {
		theme, err := demo.LoadTheme(*themePath)
		if err != nil {
			return err
		}
		if err := renderer.RenderTheme(theme); err != nil {
			return err
		}
	}
	return nil
}

// validateFlags rejects flag combinations before any output is produced.
func validateFlags() error {
	if *forceColor && *noColor {
		return ErrConflictingColorFlags
	}
	return validateRGBFlags(*allDemos || *rgbDemo, *rgbStep, *rgbBlockFg, *rgbBlockBg)
}

// validateRGBFlags rejects RGB tuning options when the gradient demo is not
// selected, naming the offending flags.
func validateRGBFlags(rgbSelected bool, step int, blockFg, blockBg string) error {
	if rgbSelected {
		return nil
	}

	var used []string
	if step != demo.DefaultRGBStep {
		used = append(used, "-rgb-step")
	}
	if blockFg != "" {
		used = append(used, "-rgb-block-fg")
	}
	if blockBg != "" {
		used = append(used, "-rgb-block-bg")
	}
	if len(used) > 0 {
		return fmt.Errorf("%w: %v", ErrRGBOptionsWithoutRGB, used)
	}
	return nil
}

// showVersion prints the styled version banner.
func showVersion() error {
	banner, err := ansi.Colorize("styler "+version, ansi.Bold, ansi.FgBrightGreen)
	if err != nil {
		return err
	}
	fmt.Println(banner)
	return nil
}

// setupLogger initializes the logging system: a colored console handler on
// stderr, plus a per-run JSON log file when -log-dir is set.
func setupLogger(level, logDir, runID string, capabilities terminal.Capabilities) error {
	var slogLevel slog.Level
	invalidLogLevel := false
	if err := slogLevel.UnmarshalText([]byte(level)); err != nil {
		slogLevel = slog.LevelInfo // Default to info on parse error
		invalidLogLevel = true
	}

	consoleHandler, err := logging.NewConsoleHandler(logging.ConsoleHandlerOptions{
		Level:        slogLevel,
		Writer:       os.Stderr,
		Capabilities: capabilities,
	})
	if err != nil {
		return err
	}
	handlers := []slog.Handler{consoleHandler}

	if logDir != "" {
		logFile, logPath, err := logging.OpenRunLog(logDir, runID)
		if err != nil {
			return err
		}

		hostname, _ := os.Hostname()
		jsonHandler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			Level: slogLevel,
		}).WithAttrs([]slog.Attr{
			slog.String("hostname", hostname),
			slog.Int("pid", os.Getpid()),
			slog.String("run_id", runID),
		})
		handlers = append(handlers, jsonHandler)

		slog.SetDefault(slog.New(logging.NewMultiHandler(handlers...)))
		slog.Info("Logger initialized", "log-level", level, "log-file", logPath, "run_id", runID)
	} else {
		slog.SetDefault(slog.New(logging.NewMultiHandler(handlers...)))
	}

	if invalidLogLevel {
		slog.Warn("Invalid log level provided, defaulting to INFO", "provided", level)
	}
	return nil
}
