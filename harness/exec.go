package harness

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/log"
)

// SendFunc submits one signed contract call with the provided opts and
// returns the pending transaction. Binding methods curry naturally into this
// shape.
type SendFunc func(opts *bind.TransactOpts) (*types.Transaction, error)

// TxRunner is an abstraction over how a contract call is driven from signing
// to a mined receipt. It hides the concrete chain backend behind a common
// interface so scenarios never deal with block production themselves.
type TxRunner interface {
	// Engine returns a short human identifier ("simulated", ...).
	Engine() string

	// Run submits the call, seals a block and waits for the receipt. A
	// non-successful receipt status is returned as an error alongside the
	// receipt itself.
	Run(ctx context.Context, opts *bind.TransactOpts, send SendFunc) (*types.Receipt, error)
}

// ExecAs runs one contract call signed by acct and drives it to a receipt.
func (e *Env) ExecAs(ctx context.Context, acct *Account, send SendFunc) (*types.Receipt, error) {
	opts, err := e.Transact(acct)
	if err != nil {
		return nil, err
	}
	return e.Runner.Run(ctx, opts, send)
}

// commitRunner drives transactions on the simulated backend: every submitted
// call is sealed into its own block via Commit.
type commitRunner struct {
	backend *simulated.Backend
	client  simulated.Client
	meter   *GasMeter
}

func newCommitRunner(backend *simulated.Backend, client simulated.Client, meter *GasMeter) TxRunner {
	return &commitRunner{backend: backend, client: client, meter: meter}
}

func (r *commitRunner) Engine() string { return "simulated" }

func (r *commitRunner) Run(ctx context.Context, opts *bind.TransactOpts, send SendFunc) (*types.Receipt, error) {
	tx, err := send(opts)
	if err != nil {
		// Reverts surface here: the backend estimates gas before
		// accepting the transaction and reports the revert reason.
		return nil, err
	}
	r.backend.Commit()
	receipt, err := bind.WaitMined(ctx, r.client, tx)
	if err != nil {
		return nil, fmt.Errorf("wait for tx %s: %w", tx.Hash(), err)
	}
	r.meter.Observe(receipt)
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("tx %s reverted on chain", tx.Hash())
	}
	log.Trace("mined tx", "hash", tx.Hash(), "block", receipt.BlockNumber, "gas", receipt.GasUsed)
	return receipt, nil
}
