// Package tests holds the end-to-end suite: it compiles the real contract,
// deploys it to a fresh simulated chain per test and asserts on receipts,
// balances and events. Without a Solidity toolchain (or prebuilt artifacts)
// the whole package skips.
package tests

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/meretrix-labs/meretrix-harness/contracts"
	"github.com/meretrix-labs/meretrix-harness/harness"
)

var (
	compileOnce sync.Once
	compiled    *contracts.Artifacts
	compileErr  error
)

// buildArtifacts compiles the contract once for the whole package and skips
// the calling test when no compiler engine is available.
func buildArtifacts(t *testing.T) *contracts.Artifacts {
	t.Helper()
	compileOnce.Do(func() {
		compiler, err := contracts.NewCompiler(contracts.Options{})
		if err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = compiler.Compile(context.Background())
	})
	if errors.Is(compileErr, contracts.ErrNoCompiler) {
		t.Skipf("skipping: %v", compileErr)
	}
	if compileErr != nil {
		t.Fatalf("compile contract: %v", compileErr)
	}
	return compiled
}

// newEnv boots an isolated deployment for one test.
func newEnv(t *testing.T, p harness.Params) *harness.Env {
	t.Helper()
	env, err := harness.NewEnv(context.Background(), buildArtifacts(t), p)
	if err != nil {
		t.Fatalf("boot environment: %v", err)
	}
	t.Cleanup(env.Close)
	return env
}

// mustRevert asserts that err is a revert with exactly the wanted reason.
func mustRevert(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected revert %q, call succeeded", want)
	}
	reason, ok := harness.RevertReason(err)
	if !ok {
		t.Fatalf("expected revert %q, got: %v", want, err)
	}
	if reason != want {
		t.Fatalf("wrong revert reason: got %q, want %q", reason, want)
	}
}
