package tests

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/meretrix-labs/meretrix-harness/harness"
)

// TestPause_BlocksBuyAndTransfer: while paused, both the sale path and plain
// ERC20 transfers revert; unpause restores both.
func TestPause_BlocksBuyAndTransfer(t *testing.T) {
	env := newEnv(t, harness.DefaultParams())
	ctx := context.Background()

	// Seed alice before pausing so the transfer path has a balance to move.
	if _, err := env.QuotedBuy(ctx, env.Alice, harness.Tokens(100)); err != nil {
		t.Fatalf("seed purchase: %v", err)
	}

	receipt, err := env.ExecAs(ctx, env.Deployer, func(o *bind.TransactOpts) (*types.Transaction, error) {
		return env.Token.Pause(o)
	})
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	ev, err := env.PausedEvent(receipt)
	if err != nil {
		t.Fatalf("Paused event: %v", err)
	}
	if ev.Account != env.Deployer.Addr {
		t.Fatalf("Paused account: got %s, want deployer", ev.Account)
	}

	_, err = env.QuotedBuy(ctx, env.Alice, harness.Tokens(10))
	mustRevert(t, err, "MRTX: paused")

	_, err = env.ExecAs(ctx, env.Alice, func(o *bind.TransactOpts) (*types.Transaction, error) {
		return env.Token.Transfer(o, env.Bob.Addr, harness.Tokens(10))
	})
	mustRevert(t, err, "MRTX: paused")

	receipt, err = env.ExecAs(ctx, env.Deployer, func(o *bind.TransactOpts) (*types.Transaction, error) {
		return env.Token.Unpause(o)
	})
	if err != nil {
		t.Fatalf("unpause: %v", err)
	}
	uev, err := env.UnpausedEvent(receipt)
	if err != nil {
		t.Fatalf("Unpaused event: %v", err)
	}
	if uev.Account != env.Deployer.Addr {
		t.Fatalf("Unpaused account: got %s, want deployer", uev.Account)
	}

	if _, err := env.QuotedBuy(ctx, env.Alice, harness.Tokens(10)); err != nil {
		t.Fatalf("buy after unpause: %v", err)
	}
	if _, err := env.ExecAs(ctx, env.Alice, func(o *bind.TransactOpts) (*types.Transaction, error) {
		return env.Token.Transfer(o, env.Bob.Addr, harness.Tokens(10))
	}); err != nil {
		t.Fatalf("transfer after unpause: %v", err)
	}
}

// TestPause_StateGuards: pausing twice or unpausing a running contract revert.
func TestPause_StateGuards(t *testing.T) {
	env := newEnv(t, harness.DefaultParams())
	ctx := context.Background()

	_, err := env.ExecAs(ctx, env.Deployer, func(o *bind.TransactOpts) (*types.Transaction, error) {
		return env.Token.Unpause(o)
	})
	mustRevert(t, err, "MRTX: not paused")

	if _, err := env.ExecAs(ctx, env.Deployer, func(o *bind.TransactOpts) (*types.Transaction, error) {
		return env.Token.Pause(o)
	}); err != nil {
		t.Fatalf("pause: %v", err)
	}
	_, err = env.ExecAs(ctx, env.Deployer, func(o *bind.TransactOpts) (*types.Transaction, error) {
		return env.Token.Pause(o)
	})
	mustRevert(t, err, "MRTX: already paused")
}

// TestPause_RequiresRole: accounts without PAUSER_ROLE can neither pause nor
// unpause, and the switch stays untouched.
func TestPause_RequiresRole(t *testing.T) {
	env := newEnv(t, harness.DefaultParams())
	ctx := context.Background()

	_, err := env.ExecAs(ctx, env.Attacker, func(o *bind.TransactOpts) (*types.Transaction, error) {
		return env.Token.Pause(o)
	})
	mustRevert(t, err, "MRTX: missing role")

	_, err = env.ExecAs(ctx, env.Attacker, func(o *bind.TransactOpts) (*types.Transaction, error) {
		return env.Token.Unpause(o)
	})
	mustRevert(t, err, "MRTX: missing role")

	paused, err := env.Token.Paused(nil)
	if err != nil {
		t.Fatalf("paused: %v", err)
	}
	if paused {
		t.Fatalf("attacker managed to pause the contract")
	}
}

// TestGrantRole_DelegatesPauser: the admin can hand PAUSER_ROLE to another
// account, which can then operate the switch.
func TestGrantRole_DelegatesPauser(t *testing.T) {
	env := newEnv(t, harness.DefaultParams())
	ctx := context.Background()

	pauserRole, err := env.Token.PAUSERROLE(nil)
	if err != nil {
		t.Fatalf("PAUSER_ROLE: %v", err)
	}

	_, err = env.ExecAs(ctx, env.Attacker, func(o *bind.TransactOpts) (*types.Transaction, error) {
		return env.Token.GrantRole(o, pauserRole, env.Attacker.Addr)
	})
	mustRevert(t, err, "MRTX: missing role")

	if _, err := env.ExecAs(ctx, env.Deployer, func(o *bind.TransactOpts) (*types.Transaction, error) {
		return env.Token.GrantRole(o, pauserRole, env.Bob.Addr)
	}); err != nil {
		t.Fatalf("grant: %v", err)
	}

	receipt, err := env.ExecAs(ctx, env.Bob, func(o *bind.TransactOpts) (*types.Transaction, error) {
		return env.Token.Pause(o)
	})
	if err != nil {
		t.Fatalf("bob pause: %v", err)
	}
	ev, err := env.PausedEvent(receipt)
	if err != nil {
		t.Fatalf("Paused event: %v", err)
	}
	if ev.Account != env.Bob.Addr {
		t.Fatalf("Paused account: got %s, want bob", ev.Account)
	}
}
