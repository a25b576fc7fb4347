package harness

import (
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
)

// TestGasMeter verifies counting, failure classification and reset.
func TestGasMeter(t *testing.T) {
	m := new(GasMeter)
	m.Observe(&types.Receipt{Status: types.ReceiptStatusSuccessful, GasUsed: 21_000})
	m.Observe(&types.Receipt{Status: types.ReceiptStatusFailed, GasUsed: 50_000})
	m.Observe(nil) // ignored

	got := m.Snapshot()
	if got.Txs != 2 || got.GasUsed != 71_000 || got.Failed != 1 {
		t.Fatalf("unexpected stats: %+v", got)
	}

	m.Reset()
	if got := m.Snapshot(); got != (GasStats{}) {
		t.Fatalf("reset left counters: %+v", got)
	}
}

// TestGasMeterRace ensures concurrent observers are race-free.
func TestGasMeterRace(t *testing.T) {
	const n = 100
	m := new(GasMeter)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			m.Observe(&types.Receipt{Status: types.ReceiptStatusSuccessful, GasUsed: 1})
		}()
	}
	wg.Wait()

	if got := m.Snapshot(); got.Txs != n || got.GasUsed != n {
		t.Fatalf("lost observations: %+v", got)
	}
}
