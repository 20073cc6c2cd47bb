package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/stemlab/internal/catalog"
	"github.com/abhisek/stemlab/internal/config"
	"github.com/abhisek/stemlab/internal/content"
	"github.com/abhisek/stemlab/internal/logging"
)

// RootOptions holds global flags for all commands. Flags override the
// matching STEMLAB_* environment variables.
type RootOptions struct {
	ContentDir string
	Locale     string
	LogFile    string
	LogLevel   string

	config   config.Config
	closeLog func() error
}

// NewRootCommand creates the root command for the stemlab CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	var skipIntro bool

	cmd := &cobra.Command{
		Use:          "stemlab",
		Short:        "STEM lessons and component playgrounds",
		Long:         "STEM Lab: browse Micro:bit and Arduino lessons, follow step-by-step build plans and sort parts in the playgrounds.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, opts, skipIntro)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ContentDir, "content", "", "Content directory (overrides STEMLAB_CONTENT_DIR)")
	pf.StringVar(&opts.Locale, "locale", "", "Collation locale such as en or de (overrides STEMLAB_LOCALE)")
	pf.StringVar(&opts.LogFile, "log-file", "", "Write JSON logs to this file (overrides STEMLAB_LOG_FILE)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn or error (overrides STEMLAB_LOG_LEVEL)")
	cmd.Flags().BoolVar(&skipIntro, "skip-intro", false, "Start at the home screen")

	cmd.AddCommand(NewLessonsCommand(opts))
	cmd.AddCommand(NewPartsCommand(opts))
	cmd.AddCommand(NewPlanCommand(opts))
	cmd.AddCommand(NewContentCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	opts.closeOnError(cmd)
	return cmd
}

// closeOnError wraps every RunE in the tree so a failing command still
// releases the log file; cobra skips post-run hooks after a RunE error.
func (o *RootOptions) closeOnError(c *cobra.Command) {
	for _, sub := range c.Commands() {
		o.closeOnError(sub)
	}
	if c.RunE == nil {
		return
	}
	run := c.RunE
	c.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			_ = o.teardown()
		}
		return err
	}
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup resolves the configuration and puts the logger on the command
// context.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.ContentDir = o.ContentDir
	}
	if flags.Changed("locale") {
		cfg.Locale = o.Locale
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.LogFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := logging.New(cfg)
	if err != nil {
		return err
	}
	o.config = cfg
	o.closeLog = closeLog

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger.With("command", cmd.Name())))
	return nil
}

func (o *RootOptions) teardown() error {
	if o.closeLog == nil {
		return nil
	}
	closeLog := o.closeLog
	o.closeLog = nil
	return closeLog()
}

// loadContent loads the configured content and logs drift issues as
// warnings.
func (o *RootOptions) loadContent(ctx context.Context) (*content.Content, error) {
	logger := logging.FromContext(ctx)

	c, err := content.Open(o.config.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	for _, is := range content.Check(c) {
		logger.Warn("content drift",
			"kind", string(is.Kind),
			"target", string(is.Target),
			"id", is.ID,
			"message", is.Message,
		)
	}
	logger.Debug("content loaded", "dir", o.config.ContentDir, "lessons", len(c.Lessons), "platforms", len(c.Platforms))
	return c, nil
}

// engine builds a catalog engine collating for the configured locale.
func (o *RootOptions) engine(c *content.Content) (*catalog.Engine, error) {
	tag, err := o.config.Language()
	if err != nil {
		return nil, err
	}
	return catalog.NewEngine(c.Lessons, catalog.WithLocale(tag)), nil
}
