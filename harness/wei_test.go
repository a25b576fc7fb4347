package harness

import (
	"math/big"
	"testing"
)

// TestEther checks the wei conversion at the scales the scenarios use.
func TestEther(t *testing.T) {
	one, _ := new(big.Int).SetString("1000000000000000000", 10)
	if Ether(1).Cmp(one) != 0 {
		t.Fatalf("1 ether: got %s", Ether(1))
	}
	fiveMillion, _ := new(big.Int).SetString("5000000000000000000000000", 10)
	if Ether(5_000_000).Cmp(fiveMillion) != 0 {
		t.Fatalf("5M ether: got %s", Ether(5_000_000))
	}
	if Tokens(1).Cmp(Ether(1)) != 0 {
		t.Fatalf("tokens and ether use the same 18-decimal scale")
	}
}

// TestCost checks the quote arithmetic against the on-chain model.
func TestCost(t *testing.T) {
	got, err := Cost(big.NewInt(1), Tokens(1000))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if got.Cmp(Tokens(1000)) != 0 {
		t.Fatalf("k=1 cost should equal the amount, got %s", got)
	}

	got, err = Cost(big.NewInt(3), big.NewInt(7))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if got.Int64() != 21 {
		t.Fatalf("3*7: got %s", got)
	}
}

// TestCostOverflow rejects quotes that do not fit 256 bits.
func TestCostOverflow(t *testing.T) {
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	if _, err := Cost(max, big.NewInt(2)); err == nil {
		t.Fatalf("overflowing cost accepted")
	}
	over := new(big.Int).Lsh(big.NewInt(1), 256)
	if _, err := Cost(over, big.NewInt(1)); err == nil {
		t.Fatalf("257-bit coefficient accepted")
	}
	if _, err := Cost(big.NewInt(1), over); err == nil {
		t.Fatalf("257-bit amount accepted")
	}
}
