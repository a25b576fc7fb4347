package harness

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// BuyCall carries the fields of one token purchase. It is intentionally
// lightweight so scenarios can state a purchase declaratively and let Buy
// fill in the mechanical parts (value attachment, buy vs buyTo dispatch).
//
// Amount, QuotedPrice and Deadline map 1:1 onto the contract arguments.
// A zero Recipient routes through buy() (self purchase); anything else goes
// through buyTo(). Value is the wei attached to the call; leaving it nil
// attaches the exact cost QuotedPrice*Amount, which is what the contract
// demands — set it explicitly only to provoke the wrong-value guard.
type BuyCall struct {
	Buyer       *Account
	Recipient   common.Address
	Amount      *big.Int
	QuotedPrice *big.Int
	Deadline    *big.Int
	Value       *big.Int
}

// value resolves the wei to attach.
func (c *BuyCall) value() (*big.Int, error) {
	if c.Value != nil {
		return c.Value, nil
	}
	return Cost(c.QuotedPrice, c.Amount)
}

// Buy executes the purchase described by call and returns the mined receipt.
// Revert reasons from the contract guards come back in the error.
func (e *Env) Buy(ctx context.Context, call *BuyCall) (*types.Receipt, error) {
	opts, err := e.Transact(call.Buyer)
	if err != nil {
		return nil, err
	}
	opts.Value, err = call.value()
	if err != nil {
		return nil, fmt.Errorf("resolve call value: %w", err)
	}
	send := func(o *bind.TransactOpts) (*types.Transaction, error) {
		if call.Recipient == (common.Address{}) {
			return e.Token.Buy(o, call.Amount, call.QuotedPrice, call.Deadline)
		}
		return e.Token.BuyTo(o, call.Recipient, call.Amount, call.QuotedPrice, call.Deadline)
	}
	return e.Runner.Run(ctx, opts, send)
}

// QuotedBuy is sugar for the common case: read the current on-chain price,
// set a deadline an hour out and buy amount tokens for the buyer themselves.
func (e *Env) QuotedBuy(ctx context.Context, buyer *Account, amount *big.Int) (*types.Receipt, error) {
	price, err := e.Token.CurrentPrice(nil)
	if err != nil {
		return nil, fmt.Errorf("read current price: %w", err)
	}
	deadline, err := e.Deadline(ctx, defaultDeadline)
	if err != nil {
		return nil, err
	}
	return e.Buy(ctx, &BuyCall{Buyer: buyer, Amount: amount, QuotedPrice: price, Deadline: deadline})
}
