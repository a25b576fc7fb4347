// Package meretrix is the Go binding for the MeretrixCoin contract. It is
// maintained by hand against the ABI of contracts/solidity/Meretrix.sol and
// follows the abigen caller/transactor/filterer layout. Creation bytecode is
// not embedded: the harness compiles the Solidity sources (or loads prebuilt
// artifacts) and passes the bytecode to DeployMeretrixCoin explicitly.
package meretrix

import (
	"errors"
	"math/big"
	"strings"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// Reference imports to suppress errors if they are not otherwise used.
var (
	_ = errors.New
	_ = big.NewInt
	_ = strings.NewReader
	_ = ethereum.NotFound
	_ = bind.Bind
	_ = common.Big1
	_ = types.BloomLookup
	_ = event.NewSubscription
	_ = abi.ConvertType
)

// MeretrixCoinMetaData contains all meta data concerning the MeretrixCoin contract.
var MeretrixCoinMetaData = &bind.MetaData{
	ABI: "[{\"inputs\":[{\"internalType\":\"uint256\",\"name\":\"treasury_\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"k_\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"maxPerTx_\",\"type\":\"uint256\"}],\"stateMutability\":\"nonpayable\",\"type\":\"constructor\"},{\"anonymous\":false,\"inputs\":[{\"indexed\":true,\"internalType\":\"address\",\"name\":\"owner\",\"type\":\"address\"},{\"indexed\":true,\"internalType\":\"address\",\"name\":\"spender\",\"type\":\"address\"},{\"indexed\":false,\"internalType\":\"uint256\",\"name\":\"value\",\"type\":\"uint256\"}],\"name\":\"Approval\",\"type\":\"event\"},{\"anonymous\":false,\"inputs\":[{\"indexed\":true,\"internalType\":\"address\",\"name\":\"buyer\",\"type\":\"address\"},{\"indexed\":true,\"internalType\":\"address\",\"name\":\"recipient\",\"type\":\"address\"},{\"indexed\":false,\"internalType\":\"uint256\",\"name\":\"amount\",\"type\":\"uint256\"},{\"indexed\":false,\"internalType\":\"uint256\",\"name\":\"cost\",\"type\":\"uint256\"}],\"name\":\"Bought\",\"type\":\"event\"},{\"anonymous\":false,\"inputs\":[{\"indexed\":false,\"internalType\":\"address\",\"name\":\"account\",\"type\":\"address\"}],\"name\":\"Paused\",\"type\":\"event\"},{\"anonymous\":false,\"inputs\":[{\"indexed\":true,\"internalType\":\"bytes32\",\"name\":\"role\",\"type\":\"bytes32\"},{\"indexed\":true,\"internalType\":\"address\",\"name\":\"account\",\"type\":\"address\"},{\"indexed\":true,\"internalType\":\"address\",\"name\":\"sender\",\"type\":\"address\"}],\"name\":\"RoleGranted\",\"type\":\"event\"},{\"anonymous\":false,\"inputs\":[{\"indexed\":true,\"internalType\":\"address\",\"name\":\"from\",\"type\":\"address\"},{\"indexed\":true,\"internalType\":\"address\",\"name\":\"to\",\"type\":\"address\"},{\"indexed\":false,\"internalType\":\"uint256\",\"name\":\"value\",\"type\":\"uint256\"}],\"name\":\"Transfer\",\"type\":\"event\"},{\"anonymous\":false,\"inputs\":[{\"indexed\":false,\"internalType\":\"address\",\"name\":\"account\",\"type\":\"address\"}],\"name\":\"Unpaused\",\"type\":\"event\"},{\"anonymous\":false,\"inputs\":[{\"indexed\":true,\"internalType\":\"address\",\"name\":\"to\",\"type\":\"address\"},{\"indexed\":false,\"internalType\":\"uint256\",\"name\":\"amount\",\"type\":\"uint256\"}],\"name\":\"Withdrawn\",\"type\":\"event\"},{\"inputs\":[],\"name\":\"DEFAULT_ADMIN_ROLE\",\"outputs\":[{\"internalType\":\"bytes32\",\"name\":\"\",\"type\":\"bytes32\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[],\"name\":\"PAUSER_ROLE\",\"outputs\":[{\"internalType\":\"bytes32\",\"name\":\"\",\"type\":\"bytes32\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[],\"name\":\"TREASURER_ROLE\",\"outputs\":[{\"internalType\":\"bytes32\",\"name\":\"\",\"type\":\"bytes32\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[{\"internalType\":\"address\",\"name\":\"\",\"type\":\"address\"},{\"internalType\":\"address\",\"name\":\"\",\"type\":\"address\"}],\"name\":\"allowance\",\"outputs\":[{\"internalType\":\"uint256\",\"name\":\"\",\"type\":\"uint256\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[{\"internalType\":\"address\",\"name\":\"spender\",\"type\":\"address\"},{\"internalType\":\"uint256\",\"name\":\"value\",\"type\":\"uint256\"}],\"name\":\"approve\",\"outputs\":[{\"internalType\":\"bool\",\"name\":\"\",\"type\":\"bool\"}],\"stateMutability\":\"nonpayable\",\"type\":\"function\"},{\"inputs\":[{\"internalType\":\"address\",\"name\":\"\",\"type\":\"address\"}],\"name\":\"balanceOf\",\"outputs\":[{\"internalType\":\"uint256\",\"name\":\"\",\"type\":\"uint256\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[{\"internalType\":\"uint256\",\"name\":\"amount\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"quotedPrice\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"deadline\",\"type\":\"uint256\"}],\"name\":\"buy\",\"outputs\":[],\"stateMutability\":\"payable\",\"type\":\"function\"},{\"inputs\":[{\"internalType\":\"address\",\"name\":\"recipient\",\"type\":\"address\"},{\"internalType\":\"uint256\",\"name\":\"amount\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"quotedPrice\",\"type\":\"uint256\"},{\"internalType\":\"uint256\",\"name\":\"deadline\",\"type\":\"uint256\"}],\"name\":\"buyTo\",\"outputs\":[],\"stateMutability\":\"payable\",\"type\":\"function\"},{\"inputs\":[],\"name\":\"currentPrice\",\"outputs\":[{\"internalType\":\"uint256\",\"name\":\"\",\"type\":\"uint256\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[],\"name\":\"decimals\",\"outputs\":[{\"internalType\":\"uint8\",\"name\":\"\",\"type\":\"uint8\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[{\"internalType\":\"bytes32\",\"name\":\"role\",\"type\":\"bytes32\"},{\"internalType\":\"address\",\"name\":\"account\",\"type\":\"address\"}],\"name\":\"grantRole\",\"outputs\":[],\"stateMutability\":\"nonpayable\",\"type\":\"function\"},{\"inputs\":[{\"internalType\":\"bytes32\",\"name\":\"role\",\"type\":\"bytes32\"},{\"internalType\":\"address\",\"name\":\"account\",\"type\":\"address\"}],\"name\":\"hasRole\",\"outputs\":[{\"internalType\":\"bool\",\"name\":\"\",\"type\":\"bool\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[],\"name\":\"maxPerTx\",\"outputs\":[{\"internalType\":\"uint256\",\"name\":\"\",\"type\":\"uint256\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[],\"name\":\"name\",\"outputs\":[{\"internalType\":\"string\",\"name\":\"\",\"type\":\"string\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[],\"name\":\"pause\",\"outputs\":[],\"stateMutability\":\"nonpayable\",\"type\":\"function\"},{\"inputs\":[],\"name\":\"paused\",\"outputs\":[{\"internalType\":\"bool\",\"name\":\"\",\"type\":\"bool\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[],\"name\":\"priceCoefficient\",\"outputs\":[{\"internalType\":\"uint256\",\"name\":\"\",\"type\":\"uint256\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[],\"name\":\"symbol\",\"outputs\":[{\"internalType\":\"string\",\"name\":\"\",\"type\":\"string\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[],\"name\":\"totalSupply\",\"outputs\":[{\"internalType\":\"uint256\",\"name\":\"\",\"type\":\"uint256\"}],\"stateMutability\":\"view\",\"type\":\"function\"},{\"inputs\":[{\"internalType\":\"address\",\"name\":\"to\",\"type\":\"address\"},{\"internalType\":\"uint256\",\"name\":\"value\",\"type\":\"uint256\"}],\"name\":\"transfer\",\"outputs\":[{\"internalType\":\"bool\",\"name\":\"\",\"type\":\"bool\"}],\"stateMutability\":\"nonpayable\",\"type\":\"function\"},{\"inputs\":[{\"internalType\":\"address\",\"name\":\"from\",\"type\":\"address\"},{\"internalType\":\"address\",\"name\":\"to\",\"type\":\"address\"},{\"internalType\":\"uint256\",\"name\":\"value\",\"type\":\"uint256\"}],\"name\":\"transferFrom\",\"outputs\":[{\"internalType\":\"bool\",\"name\":\"\",\"type\":\"bool\"}],\"stateMutability\":\"nonpayable\",\"type\":\"function\"},{\"inputs\":[],\"name\":\"unpause\",\"outputs\":[],\"stateMutability\":\"nonpayable\",\"type\":\"function\"},{\"inputs\":[{\"internalType\":\"address payable\",\"name\":\"to\",\"type\":\"address\"},{\"internalType\":\"uint256\",\"name\":\"amount\",\"type\":\"uint256\"}],\"name\":\"withdraw\",\"outputs\":[],\"stateMutability\":\"nonpayable\",\"type\":\"function\"},{\"stateMutability\":\"payable\",\"type\":\"receive\"}]",
}

// MeretrixCoinABI is the input ABI used to generate the binding from.
var MeretrixCoinABI = MeretrixCoinMetaData.ABI

// DeployMeretrixCoin deploys a new Ethereum contract, binding an instance of
// MeretrixCoin to it. The creation bytecode comes from the contracts package
// (solc output or prebuilt artifacts).
func DeployMeretrixCoin(auth *bind.TransactOpts, backend bind.ContractBackend, bytecode []byte, treasury *big.Int, k *big.Int, maxPerTx *big.Int) (common.Address, *types.Transaction, *MeretrixCoin, error) {
	parsed, err := MeretrixCoinMetaData.GetAbi()
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	if parsed == nil {
		return common.Address{}, nil, nil, errors.New("GetABI returned nil")
	}
	if len(bytecode) == 0 {
		return common.Address{}, nil, nil, errors.New("empty creation bytecode")
	}
	address, tx, contract, err := bind.DeployContract(auth, *parsed, bytecode, backend, treasury, k, maxPerTx)
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	return address, tx, &MeretrixCoin{
		MeretrixCoinCaller:     MeretrixCoinCaller{contract: contract},
		MeretrixCoinTransactor: MeretrixCoinTransactor{contract: contract},
		MeretrixCoinFilterer:   MeretrixCoinFilterer{contract: contract},
	}, nil
}

// MeretrixCoin is an auto generated Go binding around an Ethereum contract.
type MeretrixCoin struct {
	MeretrixCoinCaller     // Read-only binding to the contract
	MeretrixCoinTransactor // Write-only binding to the contract
	MeretrixCoinFilterer   // Log filterer for contract events
}

// MeretrixCoinCaller is an auto generated read-only Go binding around an Ethereum contract.
type MeretrixCoinCaller struct {
	contract *bind.BoundContract // Generic contract wrapper for the low level calls
}

// MeretrixCoinTransactor is an auto generated write-only Go binding around an Ethereum contract.
type MeretrixCoinTransactor struct {
	contract *bind.BoundContract // Generic contract wrapper for the low level calls
}

// MeretrixCoinFilterer is an auto generated log filtering Go binding around an Ethereum contract events.
type MeretrixCoinFilterer struct {
	contract *bind.BoundContract // Generic contract wrapper for the low level calls
}

// NewMeretrixCoin creates a new instance of MeretrixCoin, bound to a specific deployed contract.
func NewMeretrixCoin(address common.Address, backend bind.ContractBackend) (*MeretrixCoin, error) {
	contract, err := bindMeretrixCoin(address, backend, backend, backend)
	if err != nil {
		return nil, err
	}
	return &MeretrixCoin{
		MeretrixCoinCaller:     MeretrixCoinCaller{contract: contract},
		MeretrixCoinTransactor: MeretrixCoinTransactor{contract: contract},
		MeretrixCoinFilterer:   MeretrixCoinFilterer{contract: contract},
	}, nil
}

// bindMeretrixCoin binds a generic wrapper to an already deployed contract.
func bindMeretrixCoin(address common.Address, caller bind.ContractCaller, transactor bind.ContractTransactor, filterer bind.ContractFilterer) (*bind.BoundContract, error) {
	parsed, err := MeretrixCoinMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return bind.NewBoundContract(address, *parsed, caller, transactor, filterer), nil
}

// -----------------------------------------------------------------------------
// Read-only methods
// -----------------------------------------------------------------------------

// Name is a free data retrieval call binding the contract method 0x06fdde03.
func (c *MeretrixCoinCaller) Name(opts *bind.CallOpts) (string, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "name")
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

// Symbol is a free data retrieval call binding the contract method 0x95d89b41.
func (c *MeretrixCoinCaller) Symbol(opts *bind.CallOpts) (string, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "symbol")
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

// Decimals is a free data retrieval call binding the contract method 0x313ce567.
func (c *MeretrixCoinCaller) Decimals(opts *bind.CallOpts) (uint8, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "decimals")
	if err != nil {
		return 0, err
	}
	return *abi.ConvertType(out[0], new(uint8)).(*uint8), nil
}

// TotalSupply is a free data retrieval call binding the contract method 0x18160ddd.
func (c *MeretrixCoinCaller) TotalSupply(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "totalSupply")
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// BalanceOf is a free data retrieval call binding the contract method 0x70a08231.
func (c *MeretrixCoinCaller) BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "balanceOf", account)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// Allowance is a free data retrieval call binding the contract method 0xdd62ed3e.
func (c *MeretrixCoinCaller) Allowance(opts *bind.CallOpts, owner common.Address, spender common.Address) (*big.Int, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// CurrentPrice is a free data retrieval call binding the contract method 0x9d1b464a.
func (c *MeretrixCoinCaller) CurrentPrice(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "currentPrice")
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// MaxPerTx is a free data retrieval call binding the contract method 0x592e6f59.
func (c *MeretrixCoinCaller) MaxPerTx(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "maxPerTx")
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// PriceCoefficient is a free data retrieval call binding the contract method 0x25f4c703.
func (c *MeretrixCoinCaller) PriceCoefficient(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "priceCoefficient")
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// Paused is a free data retrieval call binding the contract method 0x5c975abb.
func (c *MeretrixCoinCaller) Paused(opts *bind.CallOpts) (bool, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "paused")
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// HasRole is a free data retrieval call binding the contract method 0x91d14854.
func (c *MeretrixCoinCaller) HasRole(opts *bind.CallOpts, role [32]byte, account common.Address) (bool, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "hasRole", role, account)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// DEFAULTADMINROLE is a free data retrieval call binding the contract method 0xa217fddf.
func (c *MeretrixCoinCaller) DEFAULTADMINROLE(opts *bind.CallOpts) ([32]byte, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "DEFAULT_ADMIN_ROLE")
	if err != nil {
		return [32]byte{}, err
	}
	return *abi.ConvertType(out[0], new([32]byte)).(*[32]byte), nil
}

// PAUSERROLE is a free data retrieval call binding the contract method 0xe63ab1e9.
func (c *MeretrixCoinCaller) PAUSERROLE(opts *bind.CallOpts) ([32]byte, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "PAUSER_ROLE")
	if err != nil {
		return [32]byte{}, err
	}
	return *abi.ConvertType(out[0], new([32]byte)).(*[32]byte), nil
}

// TREASURERROLE is a free data retrieval call binding the contract method 0xa7a37a10.
func (c *MeretrixCoinCaller) TREASURERROLE(opts *bind.CallOpts) ([32]byte, error) {
	var out []interface{}
	err := c.contract.Call(opts, &out, "TREASURER_ROLE")
	if err != nil {
		return [32]byte{}, err
	}
	return *abi.ConvertType(out[0], new([32]byte)).(*[32]byte), nil
}

// -----------------------------------------------------------------------------
// State-mutating methods
// -----------------------------------------------------------------------------

// Buy is a paid mutator transaction binding the contract method buy(uint256,uint256,uint256).
func (t *MeretrixCoinTransactor) Buy(opts *bind.TransactOpts, amount *big.Int, quotedPrice *big.Int, deadline *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(opts, "buy", amount, quotedPrice, deadline)
}

// BuyTo is a paid mutator transaction binding the contract method buyTo(address,uint256,uint256,uint256).
func (t *MeretrixCoinTransactor) BuyTo(opts *bind.TransactOpts, recipient common.Address, amount *big.Int, quotedPrice *big.Int, deadline *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(opts, "buyTo", recipient, amount, quotedPrice, deadline)
}

// Pause is a paid mutator transaction binding the contract method pause().
func (t *MeretrixCoinTransactor) Pause(opts *bind.TransactOpts) (*types.Transaction, error) {
	return t.contract.Transact(opts, "pause")
}

// Unpause is a paid mutator transaction binding the contract method unpause().
func (t *MeretrixCoinTransactor) Unpause(opts *bind.TransactOpts) (*types.Transaction, error) {
	return t.contract.Transact(opts, "unpause")
}

// Withdraw is a paid mutator transaction binding the contract method withdraw(address,uint256).
func (t *MeretrixCoinTransactor) Withdraw(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(opts, "withdraw", to, amount)
}

// Transfer is a paid mutator transaction binding the contract method transfer(address,uint256).
func (t *MeretrixCoinTransactor) Transfer(opts *bind.TransactOpts, to common.Address, value *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(opts, "transfer", to, value)
}

// Approve is a paid mutator transaction binding the contract method approve(address,uint256).
func (t *MeretrixCoinTransactor) Approve(opts *bind.TransactOpts, spender common.Address, value *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(opts, "approve", spender, value)
}

// TransferFrom is a paid mutator transaction binding the contract method transferFrom(address,address,uint256).
func (t *MeretrixCoinTransactor) TransferFrom(opts *bind.TransactOpts, from common.Address, to common.Address, value *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(opts, "transferFrom", from, to, value)
}

// GrantRole is a paid mutator transaction binding the contract method grantRole(bytes32,address).
func (t *MeretrixCoinTransactor) GrantRole(opts *bind.TransactOpts, role [32]byte, account common.Address) (*types.Transaction, error) {
	return t.contract.Transact(opts, "grantRole", role, account)
}

// RawTransfer initiates a plain Ether transfer to the contract (exercises the
// receive() path, which MeretrixCoin rejects).
func (t *MeretrixCoinTransactor) RawTransfer(opts *bind.TransactOpts) (*types.Transaction, error) {
	return t.contract.Transfer(opts)
}

// -----------------------------------------------------------------------------
// Events
// -----------------------------------------------------------------------------

// MeretrixCoinBought represents a Bought event raised by the MeretrixCoin contract.
type MeretrixCoinBought struct {
	Buyer     common.Address
	Recipient common.Address
	Amount    *big.Int
	Cost      *big.Int
	Raw       types.Log // Blockchain specific contextual infos
}

// MeretrixCoinBoughtIterator is returned from FilterBought and is used to iterate over
// raw logs and unpacked data for Bought events raised by the MeretrixCoin contract.
type MeretrixCoinBoughtIterator struct {
	Event *MeretrixCoinBought

	contract *bind.BoundContract
	event    string

	logs chan types.Log
	sub  ethereum.Subscription
	done bool
	fail error
}

func (it *MeretrixCoinBoughtIterator) Next() bool {
	if it.fail != nil {
		return false
	}
	if it.done {
		select {
		case log := <-it.logs:
			it.Event = new(MeretrixCoinBought)
			if err := it.contract.UnpackLog(it.Event, it.event, log); err != nil {
				it.fail = err
				return false
			}
			it.Event.Raw = log
			return true
		default:
			return false
		}
	}
	select {
	case log := <-it.logs:
		it.Event = new(MeretrixCoinBought)
		if err := it.contract.UnpackLog(it.Event, it.event, log); err != nil {
			it.fail = err
			return false
		}
		it.Event.Raw = log
		return true
	case err := <-it.sub.Err():
		it.done = true
		it.fail = err
		return it.Next()
	}
}

func (it *MeretrixCoinBoughtIterator) Error() error { return it.fail }

func (it *MeretrixCoinBoughtIterator) Close() error {
	it.sub.Unsubscribe()
	return nil
}

// FilterBought is a free log retrieval operation binding the contract event Bought.
func (f *MeretrixCoinFilterer) FilterBought(opts *bind.FilterOpts, buyer []common.Address, recipient []common.Address) (*MeretrixCoinBoughtIterator, error) {
	var buyerRule []interface{}
	for _, b := range buyer {
		buyerRule = append(buyerRule, b)
	}
	var recipientRule []interface{}
	for _, r := range recipient {
		recipientRule = append(recipientRule, r)
	}
	logs, sub, err := f.contract.FilterLogs(opts, "Bought", buyerRule, recipientRule)
	if err != nil {
		return nil, err
	}
	return &MeretrixCoinBoughtIterator{contract: f.contract, event: "Bought", logs: logs, sub: sub}, nil
}

// ParseBought is a log parse operation binding the contract event Bought.
func (f *MeretrixCoinFilterer) ParseBought(log types.Log) (*MeretrixCoinBought, error) {
	event := new(MeretrixCoinBought)
	if err := f.contract.UnpackLog(event, "Bought", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

// MeretrixCoinPaused represents a Paused event raised by the MeretrixCoin contract.
type MeretrixCoinPaused struct {
	Account common.Address
	Raw     types.Log
}

// ParsePaused is a log parse operation binding the contract event Paused.
func (f *MeretrixCoinFilterer) ParsePaused(log types.Log) (*MeretrixCoinPaused, error) {
	event := new(MeretrixCoinPaused)
	if err := f.contract.UnpackLog(event, "Paused", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

// MeretrixCoinUnpaused represents an Unpaused event raised by the MeretrixCoin contract.
type MeretrixCoinUnpaused struct {
	Account common.Address
	Raw     types.Log
}

// ParseUnpaused is a log parse operation binding the contract event Unpaused.
func (f *MeretrixCoinFilterer) ParseUnpaused(log types.Log) (*MeretrixCoinUnpaused, error) {
	event := new(MeretrixCoinUnpaused)
	if err := f.contract.UnpackLog(event, "Unpaused", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

// MeretrixCoinWithdrawn represents a Withdrawn event raised by the MeretrixCoin contract.
type MeretrixCoinWithdrawn struct {
	To     common.Address
	Amount *big.Int
	Raw    types.Log
}

// ParseWithdrawn is a log parse operation binding the contract event Withdrawn.
func (f *MeretrixCoinFilterer) ParseWithdrawn(log types.Log) (*MeretrixCoinWithdrawn, error) {
	event := new(MeretrixCoinWithdrawn)
	if err := f.contract.UnpackLog(event, "Withdrawn", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

// MeretrixCoinTransfer represents a Transfer event raised by the MeretrixCoin contract.
type MeretrixCoinTransfer struct {
	From  common.Address
	To    common.Address
	Value *big.Int
	Raw   types.Log
}

// ParseTransfer is a log parse operation binding the contract event Transfer.
func (f *MeretrixCoinFilterer) ParseTransfer(log types.Log) (*MeretrixCoinTransfer, error) {
	event := new(MeretrixCoinTransfer)
	if err := f.contract.UnpackLog(event, "Transfer", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}
