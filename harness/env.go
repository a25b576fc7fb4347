// Package harness drives the MeretrixCoin contract on an in-memory simulated
// chain: it funds a fixed cast of accounts, deploys the contract, executes
// signed transactions to mined receipts and decodes revert reasons. The
// scenario suite in this package is what both the CLI and the end-to-end
// tests run.
package harness

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/params"

	"github.com/meretrix-labs/meretrix-harness/contracts"
	"github.com/meretrix-labs/meretrix-harness/meretrix"
)

// Params are the MeretrixCoin constructor arguments.
type Params struct {
	Treasury *big.Int // tokens minted to the contract itself
	K        *big.Int // linear price coefficient, wei per base unit
	MaxPerTx *big.Int // purchase cap per transaction
}

// DefaultParams mirrors the reference deployment: a one million token
// treasury, one wei per base unit and a fifty thousand token per-tx cap.
func DefaultParams() Params {
	return Params{
		Treasury: Tokens(1_000_000),
		K:        big.NewInt(1),
		MaxPerTx: Tokens(50_000),
	}
}

// Account is a funded key on the simulated chain.
type Account struct {
	Name string
	Key  *ecdsa.PrivateKey
	Addr common.Address
}

func newAccount(name string) (*Account, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate key for %s: %w", name, err)
	}
	return &Account{Name: name, Key: key, Addr: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

// genesisFunds is the ether balance every account starts with. Large enough
// that gas never interferes with the balance assertions the scenarios make.
var genesisFunds = Ether(5_000_000)

// Env is one isolated deployment: a fresh simulated backend, four funded
// accounts and a bound MeretrixCoin instance. Environments are cheap, so
// every scenario gets its own and never sees another scenario's state.
type Env struct {
	Backend *simulated.Backend
	Client  simulated.Client
	ChainID *big.Int

	Params    Params
	Deployer  *Account // holds all three roles after construction
	Alice     *Account
	Bob       *Account
	Attacker  *Account
	Token     *meretrix.MeretrixCoin
	TokenAddr common.Address

	Runner TxRunner
	Meter  *GasMeter
}

// NewEnv boots a simulated chain, funds the cast and deploys MeretrixCoin
// from the compiled artifacts with the given constructor params.
func NewEnv(ctx context.Context, art *contracts.Artifacts, p Params) (*Env, error) {
	if p.Treasury == nil || p.K == nil || p.MaxPerTx == nil {
		return nil, fmt.Errorf("incomplete deployment params: %+v", p)
	}
	code, err := art.Bytecode()
	if err != nil {
		return nil, err
	}

	e := &Env{
		ChainID: new(big.Int).Set(params.AllDevChainProtocolChanges.ChainID),
		Params:  p,
		Meter:   new(GasMeter),
	}
	for _, slot := range []struct {
		name string
		dst  **Account
	}{
		{"deployer", &e.Deployer},
		{"alice", &e.Alice},
		{"bob", &e.Bob},
		{"attacker", &e.Attacker},
	} {
		acct, err := newAccount(slot.name)
		if err != nil {
			return nil, err
		}
		*slot.dst = acct
	}

	alloc := types.GenesisAlloc{
		e.Deployer.Addr: {Balance: genesisFunds},
		e.Alice.Addr:    {Balance: genesisFunds},
		e.Bob.Addr:      {Balance: genesisFunds},
		e.Attacker.Addr: {Balance: genesisFunds},
	}
	e.Backend = simulated.NewBackend(alloc)
	e.Client = e.Backend.Client()
	e.Runner = newCommitRunner(e.Backend, e.Client, e.Meter)

	opts, err := e.Transact(e.Deployer)
	if err != nil {
		e.Backend.Close()
		return nil, err
	}
	addr, tx, token, err := meretrix.DeployMeretrixCoin(opts, e.Client, code, p.Treasury, p.K, p.MaxPerTx)
	if err != nil {
		e.Backend.Close()
		return nil, fmt.Errorf("deploy %s: %w", contracts.MainContract, err)
	}
	e.Backend.Commit()
	receipt, err := bind.WaitMined(ctx, e.Client, tx)
	if err != nil {
		e.Backend.Close()
		return nil, fmt.Errorf("mine deployment: %w", err)
	}
	e.Meter.Observe(receipt)
	if receipt.Status != types.ReceiptStatusSuccessful {
		e.Backend.Close()
		return nil, fmt.Errorf("deployment of %s reverted (tx %s)", contracts.MainContract, tx.Hash())
	}
	e.Token = token
	e.TokenAddr = addr
	log.Debug("deployed contract", "address", addr, "gas", receipt.GasUsed,
		"treasury", p.Treasury, "k", p.K, "maxPerTx", p.MaxPerTx)
	return e, nil
}

// Close tears down the simulated backend.
func (e *Env) Close() {
	if e.Backend != nil {
		e.Backend.Close()
	}
}

// Transact returns fresh signing opts for the account, bound to the dev
// chain ID the simulated backend runs with.
func (e *Env) Transact(acct *Account) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(acct.Key, e.ChainID)
	if err != nil {
		return nil, fmt.Errorf("transactor for %s: %w", acct.Name, err)
	}
	return opts, nil
}

// defaultDeadline is the purchase deadline offset used when a scenario does
// not care about deadline semantics.
const defaultDeadline = time.Hour

// Deadline returns the latest block timestamp shifted by delta. Negative
// deltas produce an already-expired deadline.
func (e *Env) Deadline(ctx context.Context, delta time.Duration) (*big.Int, error) {
	header, err := e.Client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("read chain head: %w", err)
	}
	return big.NewInt(int64(header.Time) + int64(delta/time.Second)), nil
}

// EthBalance reads the current ether balance of addr.
func (e *Env) EthBalance(ctx context.Context, addr common.Address) (*big.Int, error) {
	bal, err := e.Client.BalanceAt(ctx, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("balance of %s: %w", addr, err)
	}
	return bal, nil
}

// SendEther submits a plain value transfer with a fixed gas limit, bypassing
// gas estimation so that transfers the receiver rejects still reach the
// chain and produce a failed receipt. The caller asserts on the status.
func (e *Env) SendEther(ctx context.Context, from *Account, to common.Address, value *big.Int) (*types.Receipt, error) {
	nonce, err := e.Client.PendingNonceAt(ctx, from.Addr)
	if err != nil {
		return nil, fmt.Errorf("nonce of %s: %w", from.Name, err)
	}
	gasPrice, err := e.Client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      100_000,
		GasPrice: gasPrice,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(e.ChainID), from.Key)
	if err != nil {
		return nil, fmt.Errorf("sign transfer: %w", err)
	}
	if err := e.Client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send transfer: %w", err)
	}
	e.Backend.Commit()
	receipt, err := bind.WaitMined(ctx, e.Client, signed)
	if err != nil {
		return nil, fmt.Errorf("mine transfer: %w", err)
	}
	e.Meter.Observe(receipt)
	return receipt, nil
}
