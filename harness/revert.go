package harness

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// dataError is the part of the RPC error carrying ABI-encoded return data.
// The simulated backend attaches it when gas estimation hits a revert.
type dataError interface {
	Error() string
	ErrorData() interface{}
}

// revertSelector is the 4-byte selector of Error(string), the encoding
// solc emits for require(cond, "reason").
var revertSelector = crypto.Keccak256([]byte("Error(string)"))[:4]

var stringArg = func() abi.Arguments {
	typ, err := abi.NewType("string", "", nil)
	if err != nil {
		panic(err)
	}
	return abi.Arguments{{Type: typ}}
}()

// RevertReason extracts the require() string out of an execution error. It
// prefers the ABI-encoded return data and falls back to parsing the error
// message, which is how the simulated backend reports estimation failures.
func RevertReason(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var de dataError
	if errors.As(err, &de) {
		if reason, ok := decodeRevertData(de.ErrorData()); ok {
			return reason, true
		}
	}
	// "execution reverted: MRTX: paused"
	if _, after, found := strings.Cut(err.Error(), "execution reverted: "); found {
		return after, true
	}
	return "", false
}

func decodeRevertData(data interface{}) (string, bool) {
	hexStr, ok := data.(string)
	if !ok {
		return "", false
	}
	raw, err := hexutil.Decode(hexStr)
	if err != nil || len(raw) < 4 || string(raw[:4]) != string(revertSelector) {
		return "", false
	}
	vals, err := stringArg.Unpack(raw[4:])
	if err != nil || len(vals) != 1 {
		return "", false
	}
	reason, ok := vals[0].(string)
	return reason, ok
}

// IsReverted reports whether err represents a contract revert, regardless of
// whether a reason string could be recovered.
func IsReverted(err error) bool {
	return err != nil && strings.Contains(err.Error(), "execution reverted")
}
