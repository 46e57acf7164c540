package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
	"github.com/svgedit/svgedit/internal/logging"
	"github.com/svgedit/svgedit/internal/tui"
)

const (
	loopNavigation  = "loop"
	clampNavigation = "clamp"
)

type config struct {
	Navigation string
	FirstPage  string
	Title      string
	Resources  string
	Debug      bool
	Version    bool

	loggingOptions logging.Options
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func parse(stderr io.Writer, args []string) (config, error) {
	var cfg config

	home, err := os.UserHomeDir()
	if err != nil {
		return config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".svgedit.yaml")

	fs := ff.NewFlagSet("svgedit")
	fs.StringEnumVar(&cfg.Navigation, 'n', "navigation", "Tab navigation at the first and last tabs: loop around or clamp.", loopNavigation, clampNavigation)
	{
		names := tui.KindNames()
		usage := fmt.Sprintf("The first page to open on startup (valid: %s).", strings.Join(names, ","))
		fs.StringEnumVar(&cfg.FirstPage, 'f', "first-page", usage, names...)
	}
	fs.StringVar(&cfg.Title, 't', "title", "", "Override the application title.")
	fs.StringVar(&cfg.Resources, 'r', "resources", "", "Directory containing strings.yaml and icons to use instead of the built-in resources.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.loggingOptions.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("SVGEDIT"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return config{}, err
	}
	return cfg, nil
}

func (cfg config) looping() bool {
	return cfg.Navigation == loopNavigation
}
