package harness

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"
)

// Ether returns n whole ether in wei.
func Ether(n uint64) *big.Int {
	v := uint256.NewInt(n)
	v.Mul(v, uint256.NewInt(params.Ether))
	return v.ToBig()
}

// Tokens returns n whole MRTX in base units (18 decimals, same scale as wei).
func Tokens(n uint64) *big.Int {
	return Ether(n)
}

// Cost computes the wei cost of a purchase, k * amount, mirroring the
// on-chain price model. The multiplication is done on 256-bit words so an
// overflowing quote is caught here instead of as an opaque revert.
func Cost(k, amount *big.Int) (*big.Int, error) {
	kk, overflow := uint256.FromBig(k)
	if overflow {
		return nil, fmt.Errorf("price coefficient %s exceeds 256 bits", k)
	}
	aa, overflow := uint256.FromBig(amount)
	if overflow {
		return nil, fmt.Errorf("amount %s exceeds 256 bits", amount)
	}
	product, overflow := new(uint256.Int).MulOverflow(kk, aa)
	if overflow {
		return nil, fmt.Errorf("cost %s * %s overflows 256 bits", k, amount)
	}
	return product.ToBig(), nil
}
