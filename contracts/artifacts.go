package contracts

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Artifacts is the compiler output for MainContract: the JSON ABI and the
// hex-encoded creation bytecode, exactly as solc emits them.
type Artifacts struct {
	ABI string
	Bin string
}

// ParsedABI decodes the JSON ABI.
func (a *Artifacts) ParsedABI() (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(a.ABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse %s ABI: %w", MainContract, err)
	}
	return parsed, nil
}

// Bytecode decodes the creation bytecode. A leading 0x prefix and stray
// whitespace are tolerated so that artifacts copied from other toolchains
// load unchanged.
func (a *Artifacts) Bytecode() ([]byte, error) {
	raw := strings.TrimSpace(a.Bin)
	raw = strings.TrimPrefix(raw, "0x")
	raw = strings.ReplaceAll(raw, "\n", "")
	raw = strings.ReplaceAll(raw, "\r", "")
	if raw == "" {
		return nil, fmt.Errorf("%s: empty creation bytecode", MainContract)
	}
	code, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s bytecode: %w", MainContract, err)
	}
	return code, nil
}
