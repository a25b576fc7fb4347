// meretrix-harness compiles the MeretrixCoin contract, deploys it to an
// in-memory simulated chain and runs end-to-end scenarios against it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ethereum/go-ethereum/log"

	"github.com/meretrix-labs/meretrix-harness/contracts"
	"github.com/meretrix-labs/meretrix-harness/harness"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML config file",
	}
	solcFlag = &cli.StringFlag{
		Name:    "solc",
		Usage:   "path to the solc binary (defaults to $" + contracts.EnvSolc + ", then PATH)",
		EnvVars: []string{contracts.EnvSolc},
	}
	artifactsFlag = &cli.StringFlag{
		Name:    "artifacts",
		Usage:   "directory with prebuilt contract artifacts, used instead of solc",
		EnvVars: []string{contracts.EnvArtifacts},
	}
	optimizeRunsFlag = &cli.IntFlag{
		Name:  "optimize-runs",
		Usage: "solc optimizer runs",
		Value: 200,
	}
	parallelFlag = &cli.IntFlag{
		Name:  "parallel",
		Usage: "number of scenario environments to run concurrently",
		Value: 1,
	}
	scenarioFlag = &cli.StringSliceFlag{
		Name:  "scenario",
		Usage: "scenario name or name prefix to run (repeatable); default is all",
	}
	logFileFlag = &cli.StringFlag{
		Name:  "log.file",
		Usage: "write logs to this file with rotation, in addition to stderr",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "log verbosity, 0=crit 1=error 2=warn 3=info 4=debug 5=trace",
		Value: 3,
	}
	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "output directory for compiled artifacts",
		Value: "build/artifacts",
	}
)

func main() {
	app := &cli.App{
		Name:  "meretrix-harness",
		Usage: "exercise the MeretrixCoin contract on an in-memory chain",
		Flags: []cli.Flag{
			configFlag, solcFlag, artifactsFlag, optimizeRunsFlag,
			logFileFlag, verbosityFlag,
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "compile, deploy and run scenarios",
				Flags:  []cli.Flag{scenarioFlag, parallelFlag},
				Action: runScenarios,
			},
			{
				Name:   "list",
				Usage:  "list the registered scenarios",
				Action: listScenarios,
			},
			{
				Name:   "compile",
				Usage:  "compile the contract and write the artifacts",
				Flags:  []cli.Flag{outFlag},
				Action: compileContract,
			},
			{
				Name:   "abi",
				Usage:  "print the contract ABI the harness binds against",
				Action: printABI,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func setupLogging(cfg Config) {
	var out io.Writer = os.Stderr
	usecolor := !color.NoColor
	if cfg.LogFile != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    100, // MB
			MaxBackups: 3,
		})
		usecolor = false
	}
	handler := log.NewTerminalHandlerWithLevel(out, log.FromLegacyLevel(cfg.Verbosity), usecolor)
	log.SetDefault(log.NewLogger(handler))
}

func newCompiler(cfg Config) (contracts.Compiler, error) {
	compiler, err := contracts.NewCompiler(contracts.Options{
		SolcPath:     cfg.Solc,
		ArtifactsDir: cfg.Artifacts,
		OptimizeRuns: cfg.OptimizeRuns,
	})
	if errors.Is(err, contracts.ErrNoCompiler) {
		return nil, fmt.Errorf("%w; install solc, set --solc or point --artifacts at a prebuilt directory", err)
	}
	return compiler, err
}

// selectScenarios resolves the configured selectors against the registry.
// A selector matches a scenario by exact name or as a family prefix
// ("buy" selects buy/happy, buy/guards, ...).
func selectScenarios(selectors []string) ([]*harness.Scenario, error) {
	all := harness.Scenarios()
	if len(selectors) == 0 {
		return all, nil
	}
	var out []*harness.Scenario
	for _, sel := range selectors {
		matched := false
		for _, s := range all {
			if s.Name == sel || strings.HasPrefix(s.Name, sel+"/") {
				out = append(out, s)
				matched = true
			}
		}
		if !matched {
			return nil, fmt.Errorf("no scenario matches %q (see the list command)", sel)
		}
	}
	return out, nil
}

type result struct {
	scenario *harness.Scenario
	err      error
	elapsed  time.Duration
	stats    harness.GasStats
}

func runScenarios(cliCtx *cli.Context) error {
	cfg, err := resolveConfig(cliCtx)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	compiler, err := newCompiler(cfg)
	if err != nil {
		return err
	}
	ctx := context.Background()
	art, err := compiler.Compile(ctx)
	if err != nil {
		return fmt.Errorf("compile (%s engine): %w", compiler.Engine(), err)
	}

	selected, err := selectScenarios(cfg.Scenarios)
	if err != nil {
		return err
	}
	log.Info("running scenarios", "count", len(selected), "parallel", cfg.Parallel,
		"engine", compiler.Engine())

	results := make([]result, len(selected))
	var g errgroup.Group
	g.SetLimit(cfg.Parallel)
	for i, s := range selected {
		g.Go(func() error {
			results[i] = runOne(ctx, art, s)
			return nil
		})
	}
	// Workers record failures in results instead of returning them, so the
	// whole suite always runs; Wait can only relay a nil.
	if err := g.Wait(); err != nil {
		return err
	}

	return report(results)
}

func runOne(ctx context.Context, art *contracts.Artifacts, s *harness.Scenario) result {
	start := time.Now()
	env, err := harness.NewEnv(ctx, art, s.DeployParams())
	if err != nil {
		return result{scenario: s, err: fmt.Errorf("environment: %w", err), elapsed: time.Since(start)}
	}
	defer env.Close()

	err = s.Run(ctx, env)
	r := result{scenario: s, err: err, elapsed: time.Since(start), stats: env.Meter.Snapshot()}
	if err != nil {
		log.Error("scenario failed", "name", s.Name, "err", err)
	} else {
		log.Info("scenario passed", "name", s.Name, "elapsed", r.elapsed, "txs", r.stats.Txs)
	}
	return r
}

func report(results []result) error {
	pass := color.New(color.FgGreen).Sprint("PASS")
	fail := color.New(color.FgRed, color.Bold).Sprint("FAIL")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Scenario", "Result", "Elapsed", "Txs", "Gas"})
	failed := 0
	for _, r := range results {
		verdict := pass
		if r.err != nil {
			verdict = fail
			failed++
		}
		table.Append([]string{
			r.scenario.Name,
			verdict,
			r.elapsed.Round(time.Millisecond).String(),
			fmt.Sprintf("%d", r.stats.Txs),
			fmt.Sprintf("%d", r.stats.GasUsed),
		})
	}
	table.Render()

	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.scenario.Name, r.err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}

func listScenarios(cliCtx *cli.Context) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Scenario", "Description"})
	for _, s := range harness.Scenarios() {
		table.Append([]string{s.Name, s.Desc})
	}
	table.Render()
	return nil
}

func compileContract(cliCtx *cli.Context) error {
	cfg, err := resolveConfig(cliCtx)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	compiler, err := newCompiler(cfg)
	if err != nil {
		return err
	}
	art, err := compiler.Compile(context.Background())
	if err != nil {
		return err
	}

	out := cliCtx.String(outFlag.Name)
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	abiPath := filepath.Join(out, contracts.MainContract+".abi.json")
	binPath := filepath.Join(out, contracts.MainContract+".bin.hex")
	if err := os.WriteFile(abiPath, []byte(art.ABI), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(binPath, []byte(art.Bin), 0o644); err != nil {
		return err
	}
	log.Info("wrote artifacts", "abi", abiPath, "bin", binPath, "binBytes", len(art.Bin)/2)
	return nil
}

func printABI(cliCtx *cli.Context) error {
	cfg, err := resolveConfig(cliCtx)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	compiler, err := newCompiler(cfg)
	if err != nil {
		return err
	}
	art, err := compiler.Compile(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(art.ABI)
	return nil
}
