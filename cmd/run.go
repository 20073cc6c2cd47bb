package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/stemlab/internal/app"
	"github.com/abhisek/stemlab/internal/logging"
)

// runApp loads content and launches the TUI.
func runApp(cmd *cobra.Command, opts *RootOptions, skipIntro bool) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	c, err := opts.loadContent(ctx)
	if err != nil {
		return err
	}
	tag, err := opts.config.Language()
	if err != nil {
		return err
	}

	logger.Info("starting", "version", version, "locale", tag.String())
	return app.Run(app.Options{
		Content:   c,
		Locale:    tag,
		Logger:    logger,
		SkipIntro: skipIntro,
	})
}
