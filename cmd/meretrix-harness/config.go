package main

import (
	"fmt"
	"os"

	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

// Config carries everything the harness needs to compile, deploy and run.
// All fields have flag equivalents; flags win over the config file.
type Config struct {
	Solc         string   // path to the solc binary
	Artifacts    string   // directory with prebuilt artifacts, overrides Solc
	OptimizeRuns int      // solc optimizer runs
	Parallel     int      // concurrent scenario environments
	Scenarios    []string // scenario names or name prefixes; empty means all
	LogFile      string   // optional rotated log file
	Verbosity    int      // legacy log level, 0=crit .. 5=trace
}

func defaultConfig() Config {
	return Config{
		OptimizeRuns: 200,
		Parallel:     1,
		Verbosity:    3,
	}
}

// loadConfig overlays the TOML file at path onto cfg.
func loadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	if err := toml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// resolveConfig builds the effective config: defaults, then the config file,
// then any explicitly set flags.
func resolveConfig(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		if err := loadConfig(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if ctx.IsSet(solcFlag.Name) {
		cfg.Solc = ctx.String(solcFlag.Name)
	}
	if ctx.IsSet(artifactsFlag.Name) {
		cfg.Artifacts = ctx.String(artifactsFlag.Name)
	}
	if ctx.IsSet(optimizeRunsFlag.Name) {
		cfg.OptimizeRuns = ctx.Int(optimizeRunsFlag.Name)
	}
	if ctx.IsSet(parallelFlag.Name) {
		cfg.Parallel = ctx.Int(parallelFlag.Name)
	}
	if ctx.IsSet(scenarioFlag.Name) {
		cfg.Scenarios = ctx.StringSlice(scenarioFlag.Name)
	}
	if ctx.IsSet(logFileFlag.Name) {
		cfg.LogFile = ctx.String(logFileFlag.Name)
	}
	if ctx.IsSet(verbosityFlag.Name) {
		cfg.Verbosity = ctx.Int(verbosityFlag.Name)
	}
	if cfg.Parallel < 1 {
		cfg.Parallel = 1
	}
	return cfg, nil
}
