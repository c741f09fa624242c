// Package dedupe finds simulators that repeat an earlier one's runtime and
// device type, and removes them.
package dedupe

import (
	"github.com/ThomasCrouzet/simdedupe/internal/model"
)

// Pair links a duplicate to the device it duplicates.
type Pair struct {
	Duplicate model.Device
	Original  model.Device
}

// Result holds duplicates in the order they were found.
type Result struct {
	Pairs []Pair
	index map[string]int
}

func newResult() *Result {
	return &Result{index: make(map[string]int)}
}

// record sets the original for duplicate. Re-recording a duplicate updates
// its original but keeps its position.
func (r *Result) record(duplicate, original model.Device) {
	if i, ok := r.index[duplicate.Identifier()]; ok {
		r.Pairs[i].Original = original
		return
	}
	r.index[duplicate.Identifier()] = len(r.Pairs)
	r.Pairs = append(r.Pairs, Pair{Duplicate: duplicate, Original: original})
}

func (r *Result) Count() int {
	return len(r.Pairs)
}

// Duplicates returns the duplicate side of every pair.
func (r *Result) Duplicates() []model.Device {
	out := make([]model.Device, len(r.Pairs))
	for i, p := range r.Pairs {
		out[i] = p.Duplicate
	}
	return out
}

// Detect scans devices, which must be sorted oldest first. For each device
// it looks at the later ones and records the first equivalent as its
// duplicate, then moves on. A device already recorded as a duplicate still
// gets its own scan, so three lookalikes A < B < C yield B->A and C->B.
func Detect(devices []model.Device) *Result {
	result := newResult()

	for i := 0; i < len(devices)-1; i++ {
		device := devices[i]
		for j := i + 1; j < len(devices); j++ {
			candidate := devices[j]
			if candidate.EquivalentTo(device) {
				result.record(candidate, device)
				break
			}
		}
	}

	return result
}
