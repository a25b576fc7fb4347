package contracts

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourcesEmbedded(t *testing.T) {
	srcs := Sources()
	require.Contains(t, srcs, MainSource)
	require.Contains(t, srcs, "price.sol")

	main := srcs[MainSource]
	require.Contains(t, main, "contract "+MainContract)
	require.Contains(t, main, "pragma solidity ^0.8.21;")
	require.Contains(t, srcs["price.sol"], "library PriceModel")
}

func TestEVMVersionFor(t *testing.T) {
	cases := []struct {
		major, minor, patch int
		want                string
	}{
		{0, 8, 21, "shanghai"},
		{0, 8, 23, "shanghai"},
		{0, 8, 24, "cancun"},
		{0, 8, 28, "cancun"},
		{0, 8, 19, "paris"},
		{0, 9, 0, ""},
		{1, 0, 0, ""},
	}
	for _, c := range cases {
		require.Equal(t, c.want, EVMVersionFor(c.major, c.minor, c.patch),
			"solc %d.%d.%d", c.major, c.minor, c.patch)
	}
}

func TestSolcVersionRE(t *testing.T) {
	out := "solc, the solidity compiler commandline interface\nVersion: 0.8.24+commit.e11b9ed9.Linux.g++"
	m := solcVersionRE.FindStringSubmatch(out)
	require.NotNil(t, m)
	require.Equal(t, []string{"0.8.24", "0", "8", "24"}, m)
}

func TestArtifactsBytecode(t *testing.T) {
	code, err := (&Artifacts{Bin: "600160015500"}).Bytecode()
	require.NoError(t, err)
	require.Len(t, code, 6)

	// 0x prefix and surrounding whitespace are tolerated.
	code2, err := (&Artifacts{Bin: "  0x600160015500\n"}).Bytecode()
	require.NoError(t, err)
	require.Equal(t, code, code2)

	_, err = (&Artifacts{Bin: ""}).Bytecode()
	require.Error(t, err)
	_, err = (&Artifacts{Bin: "0xzz"}).Bytecode()
	require.Error(t, err)
}

func TestArtifactsParsedABI(t *testing.T) {
	art := &Artifacts{ABI: `[{"inputs":[],"name":"paused","outputs":[{"type":"bool"}],"stateMutability":"view","type":"function"}]`}
	parsed, err := art.ParsedABI()
	require.NoError(t, err)
	require.Contains(t, parsed.Methods, "paused")

	_, err = (&Artifacts{ABI: "{not json"}).ParsedABI()
	require.Error(t, err)
}

func writeArtifactDir(t *testing.T, abiJSON, binHex string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, MainContract+".abi.json"), []byte(abiJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, MainContract+".bin.hex"), []byte(binHex), 0o644))
	return dir
}

func TestArtifactEngine(t *testing.T) {
	dir := writeArtifactDir(t, `[]`, "0x600160015500")

	c, err := NewCompiler(Options{ArtifactsDir: dir})
	require.NoError(t, err)
	require.Equal(t, "artifacts", c.Engine())

	art, err := c.Compile(context.Background())
	require.NoError(t, err)
	code, err := art.Bytecode()
	require.NoError(t, err)
	require.NotEmpty(t, code)
}

func TestArtifactEngineRejectsCorrupt(t *testing.T) {
	// Unparseable ABI.
	dir := writeArtifactDir(t, `{broken`, "0x6001")
	c, err := NewCompiler(Options{ArtifactsDir: dir})
	require.NoError(t, err)
	_, err = c.Compile(context.Background())
	require.Error(t, err)

	// Missing bytecode file.
	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, MainContract+".abi.json"), []byte(`[]`), 0o644))
	c, err = NewCompiler(Options{ArtifactsDir: dir})
	require.NoError(t, err)
	_, err = c.Compile(context.Background())
	require.Error(t, err)
}

func TestNewCompilerDispatch(t *testing.T) {
	// Prebuilt artifacts win over an explicit solc binary.
	dir := writeArtifactDir(t, `[]`, "0x6001")
	c, err := NewCompiler(Options{ArtifactsDir: dir, SolcPath: "/usr/bin/solc"})
	require.NoError(t, err)
	require.Equal(t, "artifacts", c.Engine())

	// The artifact directory can also come from the environment.
	t.Setenv(EnvArtifacts, dir)
	c, err = NewCompiler(Options{})
	require.NoError(t, err)
	require.Equal(t, "artifacts", c.Engine())
	t.Setenv(EnvArtifacts, "")

	// An explicit solc path selects the solc engine without probing it.
	c, err = NewCompiler(Options{SolcPath: "/nonexistent/solc"})
	require.NoError(t, err)
	require.Equal(t, "solc", c.Engine())

	t.Setenv(EnvSolc, "/nonexistent/solc")
	c, err = NewCompiler(Options{})
	require.NoError(t, err)
	require.Equal(t, "solc", c.Engine())
}

func TestNewCompilerNoEngine(t *testing.T) {
	t.Setenv(EnvSolc, "")
	t.Setenv(EnvArtifacts, "")
	t.Setenv("PATH", t.TempDir()) // empty dir, no solc to find

	_, err := NewCompiler(Options{})
	require.ErrorIs(t, err, ErrNoCompiler)
}

// TestSolcCompile runs the real compiler when one is installed; otherwise the
// test is skipped. This is the only test in the package that shells out.
func TestSolcCompile(t *testing.T) {
	c, err := NewCompiler(Options{})
	if err != nil {
		t.Skipf("no solc available: %v", err)
	}
	if c.Engine() != "solc" {
		t.Skipf("engine %s selected, not exercising solc", c.Engine())
	}

	art, err := c.Compile(context.Background())
	require.NoError(t, err)

	parsed, err := art.ParsedABI()
	require.NoError(t, err)
	for _, method := range []string{"buy", "buyTo", "currentPrice", "maxPerTx", "pause", "unpause", "withdraw", "balanceOf", "transfer", "name", "symbol"} {
		require.Contains(t, parsed.Methods, method)
	}

	code, err := art.Bytecode()
	require.NoError(t, err)
	require.NotEmpty(t, code)
	require.False(t, strings.HasPrefix(art.Bin, "0x0x"))
}
