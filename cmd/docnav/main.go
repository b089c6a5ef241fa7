package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/dgallion1/docnav/internal/config"
	"github.com/dgallion1/docnav/internal/console"
	"github.com/dgallion1/docnav/internal/navigator"
	"github.com/dgallion1/docnav/internal/pager"
	"github.com/dgallion1/docnav/internal/parser"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

// options holds the raw command-line flags.
type options struct {
	configPath string
	width      int
	pageSize   int
	ascii      bool
	demo       bool
	debug      bool
	logLevel   string
	logFile    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := fang.Execute(ctx, newRootCmd(),
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, "docnav:", err)
		}),
	)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "docnav [flags] [file]",
		Short: "Browse a Markdown document through numbered menus",
		Long: `docnav splits a Markdown document into sections by its headings and
lets you walk them through numbered, breadcrumb-tracked menus.`,
		Example: `  # Browse DOCUMENTACION.md in the current directory
  docnav

  # Browse another file with plain ASCII borders
  docnav --ascii docs/GUIDE.md

  # Print the executive summary and exit
  docnav --demo`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, o, args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	bindFlags(cmd, &o)
	return cmd
}

func bindFlags(cmd *cobra.Command, o *options) {
	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "Path to a TOML config file")
	f.IntVar(&o.width, "width", config.DefaultWidth, "Frame width in columns")
	f.IntVar(&o.pageSize, "page-size", config.DefaultPageSize, "Non-blank lines shown before pausing")
	f.BoolVar(&o.ascii, "ascii", false, "Use ASCII borders and icons")
	f.BoolVar(&o.demo, "demo", false, "Show the executive summary without pausing and exit")
	f.BoolVarP(&o.debug, "debug", "d", false, "Enable debug logging")
	f.StringVar(&o.logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	f.StringVar(&o.logFile, "log-file", "", "Write logs to this file instead of stderr")
}

// resolveConfig layers explicitly set flags and the file argument over the
// config file and environment.
func resolveConfig(cmd *cobra.Command, o options, args []string) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("width") {
		cfg.FrameWidth = o.width
	}
	if f.Changed("page-size") {
		cfg.PageSize = o.pageSize
	}
	if f.Changed("ascii") {
		cfg.ASCII = o.ascii
	}
	if f.Changed("demo") {
		cfg.Demo = o.demo
	}
	if f.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if f.Changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if o.debug {
		cfg.LogLevel = "debug"
	}
	if len(args) == 1 {
		cfg.DocPath = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config.Config) error {
	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(log)

	src := parser.NewFileSource(cfg.DocPath, log)
	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	view := console.NewRenderer(os.Stdout, prompter, console.Options{
		Width:    cfg.FrameWidth,
		ASCII:    cfg.ASCII,
		Demo:     cfg.Demo,
		Clear:    !cfg.Demo && term.IsTerminal(int(os.Stdout.Fd())),
		Subtitle: src.Describe(),
		Pager: pager.Config{
			PageSize:   cfg.PageSize,
			DeferLimit: pager.DefaultConfig().DeferLimit,
		},
	})

	view.Notify(ctx, navigator.NoticeInfo, "Loading documentation...")
	nav, err := navigator.New(src, view, view, log)
	if err != nil {
		log.Error("startup failed", "path", cfg.DocPath, "error", err)
		if errors.Is(err, parser.ErrSourceUnavailable) {
			return fmt.Errorf("cannot read %s: make sure the file exists and is readable", src.Describe())
		}
		return err
	}

	if cfg.Demo {
		nav.Demo(ctx)
		view.Notify(ctx, navigator.NoticeSuccess, "Demo complete. Run without --demo for the interactive menu.")
		return nil
	}
	return nav.Run(ctx)
}

func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	var (
		w       io.Writer = os.Stderr
		fd                = os.Stderr.Fd()
		closeFn           = func() {}
	)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, fd = f, f.Fd()
		closeFn = func() { _ = f.Close() }
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:      cfg.Level(),
		TimeFormat: time.Kitchen,
		NoColor:    !term.IsTerminal(int(fd)),
	})
	return slog.New(handler), closeFn, nil
}
