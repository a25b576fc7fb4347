package harness

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// fakeDataError mimics the RPC error shape the simulated backend returns
// when gas estimation hits a revert.
type fakeDataError struct {
	msg  string
	data interface{}
}

func (e *fakeDataError) Error() string          { return e.msg }
func (e *fakeDataError) ErrorData() interface{} { return e.data }

// encodeRevert ABI-encodes Error(string) the way solc's require() does.
func encodeRevert(t *testing.T, reason string) string {
	t.Helper()
	packed, err := stringArg.Pack(reason)
	if err != nil {
		t.Fatalf("pack reason: %v", err)
	}
	return hexutil.Encode(append(append([]byte{}, revertSelector...), packed...))
}

// TestRevertReason_FromData decodes the reason out of ABI-encoded error data.
func TestRevertReason_FromData(t *testing.T) {
	err := &fakeDataError{
		msg:  "execution reverted: MRTX: paused",
		data: encodeRevert(t, "MRTX: paused"),
	}
	reason, ok := RevertReason(err)
	if !ok {
		t.Fatalf("reason not recovered")
	}
	if reason != "MRTX: paused" {
		t.Fatalf("wrong reason: %q", reason)
	}
}

// TestRevertReason_Wrapped ensures the data error is found through wrapping.
func TestRevertReason_Wrapped(t *testing.T) {
	inner := &fakeDataError{
		msg:  "execution reverted: MRTX: missing role",
		data: encodeRevert(t, "MRTX: missing role"),
	}
	wrapped := fmt.Errorf("send tx: %w", inner)
	reason, ok := RevertReason(wrapped)
	if !ok || reason != "MRTX: missing role" {
		t.Fatalf("wrapped reason: got %q ok=%v", reason, ok)
	}
}

// TestRevertReason_MessageFallback covers errors without usable return data.
func TestRevertReason_MessageFallback(t *testing.T) {
	err := errors.New("execution reverted: MRTX: wrong value")
	reason, ok := RevertReason(err)
	if !ok || reason != "MRTX: wrong value" {
		t.Fatalf("fallback reason: got %q ok=%v", reason, ok)
	}
}

// TestRevertReason_GarbageData falls back to the message when the data is
// not an Error(string) payload.
func TestRevertReason_GarbageData(t *testing.T) {
	for _, data := range []interface{}{nil, 42, "0x", "0xdeadbeef", "not hex"} {
		err := &fakeDataError{msg: "execution reverted: MRTX: zero amount", data: data}
		reason, ok := RevertReason(err)
		if !ok || reason != "MRTX: zero amount" {
			t.Fatalf("data %v: got %q ok=%v", data, reason, ok)
		}
	}
}

// TestRevertReason_NonRevert returns no reason for unrelated errors.
func TestRevertReason_NonRevert(t *testing.T) {
	if _, ok := RevertReason(nil); ok {
		t.Fatalf("nil error produced a reason")
	}
	if _, ok := RevertReason(errors.New("connection refused")); ok {
		t.Fatalf("non-revert error produced a reason")
	}
}

// TestIsReverted classifies errors by the revert marker.
func TestIsReverted(t *testing.T) {
	if !IsReverted(errors.New("execution reverted")) {
		t.Fatalf("bare revert not recognized")
	}
	if !IsReverted(errors.New("execution reverted: MRTX: paused")) {
		t.Fatalf("revert with reason not recognized")
	}
	if IsReverted(nil) || IsReverted(errors.New("timeout")) {
		t.Fatalf("non-reverts misclassified")
	}
}
