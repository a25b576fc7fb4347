package harness

import (
	"sync/atomic"

	"github.com/ethereum/go-ethereum/core/types"
)

// GasMeter accumulates per-environment execution counters. The fields are
// atomics so scenario workers sharing a meter never race.
type GasMeter struct {
	txs     atomic.Uint64
	gasUsed atomic.Uint64
	failed  atomic.Uint64
}

// GasStats is a point-in-time copy of the meter.
type GasStats struct {
	Txs     uint64
	GasUsed uint64
	Failed  uint64
}

// Reset zeros all counters.
func (m *GasMeter) Reset() {
	m.txs.Store(0)
	m.gasUsed.Store(0)
	m.failed.Store(0)
}

// Observe folds one mined receipt into the counters.
func (m *GasMeter) Observe(r *types.Receipt) {
	if r == nil {
		return
	}
	m.txs.Add(1)
	m.gasUsed.Add(r.GasUsed)
	if r.Status != types.ReceiptStatusSuccessful {
		m.failed.Add(1)
	}
}

// Snapshot returns the counters since construction or the last Reset.
func (m *GasMeter) Snapshot() GasStats {
	return GasStats{
		Txs:     m.txs.Load(),
		GasUsed: m.gasUsed.Load(),
		Failed:  m.failed.Load(),
	}
}
