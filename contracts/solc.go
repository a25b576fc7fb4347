package contracts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/log"
)

// Compiler is an abstraction over an artifact source (solc binary, prebuilt
// artifacts, ...). It hides the concrete engine behind a common interface so
// the harness and CLI never branch on how the bytecode was produced.
type Compiler interface {
	// Engine returns a short human identifier ("solc", "artifacts").
	Engine() string

	// Compile produces the MainContract artifacts.
	Compile(ctx context.Context) (*Artifacts, error)
}

// ErrNoCompiler is returned by NewCompiler when neither a solc binary nor a
// prebuilt artifact directory is available.
var ErrNoCompiler = errors.New("contracts: no solc binary found and no artifact directory configured")

// Environment overrides, checked after explicit Options.
const (
	EnvSolc      = "MERETRIX_SOLC"
	EnvArtifacts = "MERETRIX_ARTIFACTS"
)

// Options selects and configures the compiler engine. Zero values fall back
// to the environment and then to PATH lookup.
type Options struct {
	SolcPath     string // explicit solc binary
	ArtifactsDir string // directory with prebuilt MeretrixCoin.abi.json / MeretrixCoin.bin.hex
	OptimizeRuns int    // optimizer runs, default 200
}

// NewCompiler constructs the configured engine. Prebuilt artifacts win over
// a solc binary so CI hosts without a Solidity toolchain can still run the
// full scenario suite.
func NewCompiler(opts Options) (Compiler, error) {
	dir := opts.ArtifactsDir
	if dir == "" {
		dir = os.Getenv(EnvArtifacts)
	}
	if dir != "" {
		return &artifactCompiler{dir: dir}, nil
	}

	path := opts.SolcPath
	if path == "" {
		path = os.Getenv(EnvSolc)
	}
	if path == "" {
		var err error
		path, err = exec.LookPath("solc")
		if err != nil {
			return nil, ErrNoCompiler
		}
	}
	runs := opts.OptimizeRuns
	if runs <= 0 {
		runs = 200
	}
	return &solcCompiler{path: path, runs: runs}, nil
}

// -----------------------------------------------------------------------------
// solc standard-json engine
// -----------------------------------------------------------------------------

type solcCompiler struct {
	path string
	runs int
}

func (c *solcCompiler) Engine() string { return "solc" }

// standard-json request/response shapes, trimmed to what the harness uses.

type solcInput struct {
	Language string              `json:"language"`
	Sources  map[string]solcUnit `json:"sources"`
	Settings solcSettings        `json:"settings"`
}

type solcUnit struct {
	Content string `json:"content"`
}

type solcSettings struct {
	Optimizer       solcOptimizer                  `json:"optimizer"`
	EVMVersion      string                         `json:"evmVersion,omitempty"`
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

type solcOptimizer struct {
	Enabled bool `json:"enabled"`
	Runs    int  `json:"runs"`
}

type solcOutput struct {
	Errors    []solcDiagnostic                   `json:"errors"`
	Contracts map[string]map[string]solcContract `json:"contracts"`
}

type solcDiagnostic struct {
	Severity         string `json:"severity"`
	FormattedMessage string `json:"formattedMessage"`
	Message          string `json:"message"`
}

type solcContract struct {
	ABI json.RawMessage `json:"abi"`
	EVM struct {
		Bytecode struct {
			Object string `json:"object"`
		} `json:"bytecode"`
	} `json:"evm"`
}

var solcVersionRE = regexp.MustCompile(`(\d+)\.(\d+)\.(\d+)`)

// version probes the solc binary. The contract pragma requires ^0.8.21, so
// anything outside the 0.8 line is rejected up front with a clear error
// instead of an opaque compiler diagnostic.
func (c *solcCompiler) version(ctx context.Context) (major, minor, patch int, err error) {
	out, err := exec.CommandContext(ctx, c.path, "--version").Output()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("probe solc version (%s): %w", c.path, err)
	}
	m := solcVersionRE.FindStringSubmatch(string(out))
	if m == nil {
		return 0, 0, 0, fmt.Errorf("unrecognized solc --version output: %q", strings.TrimSpace(string(out)))
	}
	major, _ = strconv.Atoi(m[1])
	minor, _ = strconv.Atoi(m[2])
	patch, _ = strconv.Atoi(m[3])
	return major, minor, patch, nil
}

func (c *solcCompiler) Compile(ctx context.Context) (*Artifacts, error) {
	major, minor, patch, err := c.version(ctx)
	if err != nil {
		return nil, err
	}
	if major != 0 || minor != 8 || patch < 21 {
		return nil, fmt.Errorf("solc %d.%d.%d is unsupported, need 0.8.21 or a later 0.8.x", major, minor, patch)
	}

	sources := make(map[string]solcUnit, 2)
	for name, content := range Sources() {
		sources[name] = solcUnit{Content: content}
	}
	input := solcInput{
		Language: "Solidity",
		Sources:  sources,
		Settings: solcSettings{
			Optimizer:  solcOptimizer{Enabled: true, Runs: c.runs},
			EVMVersion: EVMVersionFor(major, minor, patch),
			OutputSelection: map[string]map[string][]string{
				"*": {"*": {"abi", "evm.bytecode.object"}},
			},
		},
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode standard-json input: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.path, "--standard-json")
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("run solc: %w (stderr: %s)", err, strings.TrimSpace(stderr.String()))
	}

	var out solcOutput
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		return nil, fmt.Errorf("decode standard-json output: %w", err)
	}
	for _, diag := range out.Errors {
		if diag.Severity == "error" {
			return nil, fmt.Errorf("solc: %s", strings.TrimSpace(diag.FormattedMessage))
		}
		log.Debug("solc diagnostic", "severity", diag.Severity, "message", diag.Message)
	}

	unit, ok := out.Contracts[MainSource]
	if !ok {
		return nil, fmt.Errorf("solc output has no source unit %s", MainSource)
	}
	contract, ok := unit[MainContract]
	if !ok {
		return nil, fmt.Errorf("contract %s not found in %s after compilation", MainContract, MainSource)
	}
	if len(contract.EVM.Bytecode.Object) == 0 {
		return nil, fmt.Errorf("solc produced no bytecode for %s", MainContract)
	}
	log.Info("compiled contract", "engine", "solc", "contract", MainContract,
		"solc", fmt.Sprintf("%d.%d.%d", major, minor, patch), "binBytes", len(contract.EVM.Bytecode.Object)/2)
	return &Artifacts{
		ABI: string(contract.ABI),
		Bin: contract.EVM.Bytecode.Object,
	}, nil
}

// -----------------------------------------------------------------------------
// Prebuilt artifact engine
// -----------------------------------------------------------------------------

type artifactCompiler struct {
	dir string
}

func (c *artifactCompiler) Engine() string { return "artifacts" }

func (c *artifactCompiler) Compile(_ context.Context) (*Artifacts, error) {
	abiPath := filepath.Join(c.dir, MainContract+".abi.json")
	binPath := filepath.Join(c.dir, MainContract+".bin.hex")

	abiJSON, err := os.ReadFile(abiPath)
	if err != nil {
		return nil, fmt.Errorf("load prebuilt ABI: %w", err)
	}
	binHex, err := os.ReadFile(binPath)
	if err != nil {
		return nil, fmt.Errorf("load prebuilt bytecode: %w", err)
	}
	art := &Artifacts{ABI: string(abiJSON), Bin: string(binHex)}
	// Fail fast on a corrupt artifact directory.
	if _, err := art.ParsedABI(); err != nil {
		return nil, err
	}
	if _, err := art.Bytecode(); err != nil {
		return nil, err
	}
	log.Info("loaded prebuilt artifacts", "engine", "artifacts", "dir", c.dir)
	return art, nil
}
