package status

import "sync/atomic"

// Counter keys maintained by the status system
const (
	KeyAccepted = "accepted"
	KeyRejected = "rejected"
	KeySwaps    = "swaps"
	KeyUndos    = "undos"
)

// Registry holds session counters shown on the status line
// Written by the game loop, read by the renderer
type Registry struct {
	Ints  *MetricMap[atomic.Int64]
	Bools *MetricMap[atomic.Bool]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:  NewMetricMap[atomic.Int64](),
		Bools: NewMetricMap[atomic.Bool](),
	}
}

// Int returns the current value of an integer metric, 0 when unregistered
func (r *Registry) Int(key string) int64 {
	return r.Ints.Get(key).Load()
}

// Snapshot copies every integer metric
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	return out
}

// ResetInts zeroes every integer metric, keeping registrations
func (r *Registry) ResetInts() {
	r.Ints.Range(func(_ string, v *atomic.Int64) {
		v.Store(0)
	})
}
