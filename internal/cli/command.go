package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// exitError carries a process exit code through cobra's RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

type flags struct {
	configPath string
	theme      string
	filter     string
	logLevel   string
	logFormat  string
	logFile    string
	ids        string
}

// Execute runs the tada command line and returns the process exit code.
func Execute() int {
	return execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdin, stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return codeOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			ui.Fail(stderr, ee.err.Error())
		}
		return ee.code
	}
	ui.Fail(stderr, err.Error())
	return codeError
}

// NewRootCommand builds `tada` (interactive list) and `tada run` (batch).
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "tada",
		Short: "tada - a tiny in-memory to-do list",
		Long: `tada keeps a to-do list for the lifetime of one session.

Run without arguments to open the interactive list, or use "tada run" to
execute batch commands from a file or stdin. Nothing is written to disk.

Examples:
  tada                         # interactive list
  tada --filter unchecked      # start on current tasks
  printf 'add buy milk\nls\n' | tada run
  tada run demo.tada`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return runInteractive(cfg)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &exitError{code: codeUsage, err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tada/config.toml)")
	pf.StringVar(&f.theme, "theme", "", "color theme: classic, neon or mono")
	pf.StringVar(&f.filter, "filter", "", "initial filter: all, checked, unchecked or removed")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&f.logFormat, "log-format", "", "log format: text, json or logfmt")
	pf.StringVar(&f.logFile, "log-file", "", "append logs to this file")
	pf.StringVar(&f.ids, "ids", "", "item id generator: uuid or sequence")

	run := &cobra.Command{
		Use:   "run [file]",
		Short: "Execute batch commands from a file or stdin",
		Long:  "Execute one command per line against a fresh list. Use - or no file for stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return &exitError{code: codeError, err: fmt.Errorf("open: %w", err)}
				}
				defer file.Close()
				in = file
			}
			return runBatch(cfg, in, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	root.AddCommand(run)
	return root
}

// loadConfig layers defaults, file, env, then explicitly set flags.
func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, &exitError{code: codeError, err: err}
	}
	pf := cmd.Flags()
	if pf.Changed("theme") {
		cfg.Theme = f.theme
	}
	if pf.Changed("filter") {
		cfg.Filter = f.filter
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if pf.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if pf.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if pf.Changed("ids") {
		cfg.IDs = f.ids
	}
	if err := cfg.Validate(); err != nil {
		return cfg, &exitError{code: codeUsage, err: err}
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		return cfg, &exitError{code: codeUsage, err: err}
	}
	return cfg, nil
}

func newList(cfg config.Config, logger *log.Logger) (*todo.List, error) {
	ids, err := todo.NewIDGenerator(cfg.IDs)
	if err != nil {
		return nil, &exitError{code: codeUsage, err: err}
	}
	return todo.New(
		todo.WithIDs(ids),
		todo.WithLogger(logger),
		todo.WithFilter(cfg.ViewFilter()),
	), nil
}

func logOptions(cfg config.Config) logging.Options {
	return logging.Options{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		Timestamp: cfg.LogTimestamp,
		Prefix:    "tada",
	}
}

// runInteractive owns the terminal, so logs only go to the log file.
func runInteractive(cfg config.Config) error {
	logger := logging.Discard()
	if cfg.LogFile != "" {
		file, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return &exitError{code: codeError, err: err}
		}
		defer file.Close()
		logger = logging.New(file, logOptions(cfg))
	}

	list, err := newList(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("starting", "filter", string(list.Filter()), "theme", cfg.Theme)
	err = tui.Run(list, tui.Options{
		CharLimit: cfg.CharLimit,
		AltScreen: cfg.AltScreen,
		Logger:    logger,
	})
	if err != nil {
		return &exitError{code: codeError, err: fmt.Errorf("tui: %w", err)}
	}
	return nil
}

func runBatch(cfg config.Config, in io.Reader, stdout, stderr io.Writer) error {
	logw := stderr
	if cfg.LogFile != "" {
		file, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return &exitError{code: codeError, err: err}
		}
		defer file.Close()
		logw = file
	}
	logger := logging.New(logw, logOptions(cfg))

	list, err := newList(cfg, logger)
	if err != nil {
		return err
	}
	if code := Run(in, stdout, stderr, Options{List: list, Logger: logger}); code != codeOK {
		return &exitError{code: code}
	}
	return nil
}
