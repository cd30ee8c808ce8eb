package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
)

var CLI struct {
	Config  string `short:"c" help:"Site configuration file path" default:"site.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Init struct {
		Force bool `help:"Overwrite existing site configuration"`
	} `cmd:"" help:"Scaffold a new site project in the current directory"`

	Build struct {
		Output string `short:"o" help:"Output directory for the built site" default:"build"`
	} `cmd:"" help:"Build the site"`

	Clean struct {
		Output string `short:"o" help:"Output directory to remove" default:"build"`
	} `cmd:"" help:"Remove the build output directory"`

	Check struct {
		Dir string `arg:"" optional:"" help:"Directory to verify (defaults to the build output)" default:"build"`
	} `cmd:"" help:"Verify internal links in the built site"`

	Watch struct {
		Output   string        `short:"o" help:"Output directory for the built site" default:"build"`
		Debounce time.Duration `help:"Quiet period before a rebuild" default:"500ms"`
	} `cmd:"" help:"Build the site and rebuild whenever sources change"`
}

func main() {
	ctx := kong.Parse(&CLI)

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Execute command
	switch ctx.Command() {
	case "init":
		if err := runInit(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
	case "build":
		if err := runBuild(CLI.Config, CLI.Build.Output); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "clean":
		if err := runClean(CLI.Clean.Output); err != nil {
			slog.Error("Clean failed", "error", err)
			os.Exit(1)
		}
	case "check", "check <dir>":
		if err := runCheck(CLI.Check.Dir); err != nil {
			slog.Error("Check failed", "error", err)
			os.Exit(1)
		}
	case "watch":
		if err := runWatch(CLI.Config, CLI.Watch.Output, CLI.Watch.Debounce); err != nil {
			slog.Error("Watch failed", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("Unknown command", "command", ctx.Command())
		os.Exit(1)
	}
}
