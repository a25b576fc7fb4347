package tests

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/meretrix-labs/meretrix-harness/harness"
)

// TestDirectEtherSend_Rejected: plain value transfers to the contract are
// mined but fail, and the contract balance stays zero. The transfer is sent
// with a fixed gas limit so gas estimation cannot swallow the failure.
func TestDirectEtherSend_Rejected(t *testing.T) {
	env := newEnv(t, harness.DefaultParams())
	ctx := context.Background()

	receipt, err := env.SendEther(ctx, env.Alice, env.TokenAddr, harness.Ether(1))
	if err != nil {
		t.Fatalf("send ether: %v", err)
	}
	if receipt.Status != types.ReceiptStatusFailed {
		t.Fatalf("direct transfer accepted, status %d", receipt.Status)
	}

	proceeds, err := env.EthBalance(ctx, env.TokenAddr)
	if err != nil {
		t.Fatalf("contract balance: %v", err)
	}
	if proceeds.Sign() != 0 {
		t.Fatalf("rejected transfer credited %s wei", proceeds)
	}
}

// TestDirectEtherSend_RevertReason: when the transfer goes through the
// binding (and thus gas estimation), the receive() rejection surfaces its
// require reason instead of a bare failed receipt.
func TestDirectEtherSend_RevertReason(t *testing.T) {
	env := newEnv(t, harness.DefaultParams())

	opts, err := env.Transact(env.Alice)
	if err != nil {
		t.Fatalf("transactor: %v", err)
	}
	opts.Value = harness.Ether(1)
	_, err = env.Token.RawTransfer(opts)
	mustRevert(t, err, "MRTX: direct ETH not accepted")
}
