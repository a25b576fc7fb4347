package harness

import (
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/meretrix-labs/meretrix-harness/meretrix"
)

// tokenLogs filters a receipt down to the logs emitted by the deployed
// contract.
func (e *Env) tokenLogs(receipt *types.Receipt) []*types.Log {
	var out []*types.Log
	for _, l := range receipt.Logs {
		if l.Address == e.TokenAddr {
			out = append(out, l)
		}
	}
	return out
}

// BoughtEvent finds and decodes the single Bought event in a receipt.
func (e *Env) BoughtEvent(receipt *types.Receipt) (*meretrix.MeretrixCoinBought, error) {
	for _, l := range e.tokenLogs(receipt) {
		if ev, err := e.Token.ParseBought(*l); err == nil {
			return ev, nil
		}
	}
	return nil, fmt.Errorf("tx %s emitted no Bought event", receipt.TxHash)
}

// WithdrawnEvent finds and decodes the single Withdrawn event in a receipt.
func (e *Env) WithdrawnEvent(receipt *types.Receipt) (*meretrix.MeretrixCoinWithdrawn, error) {
	for _, l := range e.tokenLogs(receipt) {
		if ev, err := e.Token.ParseWithdrawn(*l); err == nil {
			return ev, nil
		}
	}
	return nil, fmt.Errorf("tx %s emitted no Withdrawn event", receipt.TxHash)
}

// PausedEvent finds and decodes the single Paused event in a receipt.
func (e *Env) PausedEvent(receipt *types.Receipt) (*meretrix.MeretrixCoinPaused, error) {
	for _, l := range e.tokenLogs(receipt) {
		if ev, err := e.Token.ParsePaused(*l); err == nil {
			return ev, nil
		}
	}
	return nil, fmt.Errorf("tx %s emitted no Paused event", receipt.TxHash)
}

// UnpausedEvent finds and decodes the single Unpaused event in a receipt.
func (e *Env) UnpausedEvent(receipt *types.Receipt) (*meretrix.MeretrixCoinUnpaused, error) {
	for _, l := range e.tokenLogs(receipt) {
		if ev, err := e.Token.ParseUnpaused(*l); err == nil {
			return ev, nil
		}
	}
	return nil, fmt.Errorf("tx %s emitted no Unpaused event", receipt.TxHash)
}

// TransferEvent finds and decodes the first Transfer event in a receipt.
func (e *Env) TransferEvent(receipt *types.Receipt) (*meretrix.MeretrixCoinTransfer, error) {
	for _, l := range e.tokenLogs(receipt) {
		if ev, err := e.Token.ParseTransfer(*l); err == nil {
			return ev, nil
		}
	}
	return nil, fmt.Errorf("tx %s emitted no Transfer event", receipt.TxHash)
}
