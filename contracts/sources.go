// Package contracts carries the MeretrixCoin Solidity fixtures and turns
// them into deployable artifacts. The contract is the system under test; it
// is compiled, never reimplemented.
package contracts

import (
	_ "embed"
)

//go:embed solidity/Meretrix.sol
var meretrixSol string

//go:embed solidity/price.sol
var priceSol string

// MainContract is the contract name the harness deploys out of Meretrix.sol.
const MainContract = "MeretrixCoin"

// MainSource is the source unit that defines MainContract.
const MainSource = "Meretrix.sol"

// Sources returns the embedded source units keyed by file name, in the shape
// expected by the solc standard-json "sources" object.
func Sources() map[string]string {
	return map[string]string{
		MainSource:  meretrixSol,
		"price.sol": priceSol,
	}
}
