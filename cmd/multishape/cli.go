package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/go-theft-auto/multishape/config"
)

type cliOpts struct {
	configPath  string
	writeConfig string
	logLevel    string
	canvases    int
	style       string
	verbose     bool
}

func parseCLIOpts(fs *flag.FlagSet, args []string) (cliOpts, error) {
	var opt cliOpts
	fs.StringVar(&opt.configPath, "config", "", "Read settings from this .toml, .yaml or .yml file")
	fs.StringVar(&opt.writeConfig, "write-config", "", "Write the effective settings to this file and exit")
	fs.StringVar(&opt.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.IntVar(&opt.canvases, "canvases", 0, "Number of canvases (overrides the config file)")
	fs.StringVar(&opt.style, "style", "", "UI style: default or gta")
	fs.BoolVar(&opt.verbose, "verbose", false, "Log GUI input handling")
	if err := fs.Parse(args); err != nil {
		return cliOpts{}, err
	}
	return opt, nil
}

// loadConfig returns the config file settings, or the defaults without
// -config, with the command line overrides applied.
func loadConfig(opt cliOpts) (config.Config, error) {
	cfg := config.Default()
	if opt.configPath != "" {
		var err error
		if cfg, err = config.Load(opt.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if opt.logLevel != "" {
		cfg.Log.Level = opt.logLevel
	}
	if opt.canvases != 0 {
		cfg.Canvases = opt.canvases
	}
	if opt.style != "" {
		cfg.UI.Style = opt.style
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("command line: %w", err)
	}
	return cfg, nil
}

func logLevel(cfg config.Config, verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	l, err := cfg.LogLevel()
	if err != nil {
		return slog.LevelInfo
	}
	return l
}
