// package app is the main entrypoint into the application, responsible for
// configuring and starting the application.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/svgedit/svgedit/internal/logging"
	"github.com/svgedit/svgedit/internal/resources"
	"github.com/svgedit/svgedit/internal/tui"
	"github.com/svgedit/svgedit/internal/tui/top"
	"github.com/svgedit/svgedit/internal/version"
)

// Start the application. Blocks until the user quits.
func Start(stdout, stderr io.Writer, args []string) error {
	// Parse configuration from env vars, flags and config file
	cfg, err := parse(stderr, args)
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	// Print out version if requested
	if cfg.Version {
		fmt.Fprintln(stdout, "svgedit", version.Version)
		return nil
	}

	opts, err := newOptions(cfg)
	if err != nil {
		return err
	}
	return top.Start(opts)
}

// newOptions sets up logging and resources, and wires the default actions
// into the main screen's options.
func newOptions(cfg config) (top.Options, error) {
	logger := logging.NewLogger(cfg.loggingOptions)
	slog.SetDefault(logger.Logger)

	firstPage, err := tui.ParseKind(cfg.FirstPage)
	if err != nil {
		return top.Options{}, fmt.Errorf("setting first page: %w", err)
	}

	var resOpts []resources.Option
	if cfg.Resources != "" {
		resOpts = append(resOpts, resources.WithDir(cfg.Resources))
	}
	if cfg.Title != "" {
		resOpts = append(resOpts, resources.WithTitle(cfg.Title))
	}
	res, err := resources.New(resOpts...)
	if err != nil {
		return top.Options{}, fmt.Errorf("loading resources: %w", err)
	}

	// Log some info useful to the user
	logger.Info("starting", "title", resources.ScreenTitle(res), "navigation", cfg.Navigation, "first_page", firstPage)

	return top.Options{
		Resources:  res,
		Logger:     logger,
		FirstPage:  firstPage,
		Looping:    cfg.looping(),
		Debug:      cfg.Debug,
		NewAction:  top.NewDocumentAction,
		OpenAction: top.OpenDocumentAction,
	}, nil
}
