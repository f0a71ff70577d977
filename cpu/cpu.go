package cpu

import (
	"math"
	"time"
)

// batchInputs is the number of transcendental evaluations per batch.
// The burn deadline is only checked between batches.
const batchInputs = 10000

// sink keeps the accumulated batch results observable so the busy loop
// cannot be optimized away. The value itself is meaningless.
var sink float64

// Burn keeps the CPU busy for approximately the requested duration.
// It returns no earlier than the deadline; because the deadline is
// checked only at batch granularity, it may overrun by up to one
// batch's execution time. A zero or negative duration performs no work.
func Burn(duration time.Duration) {
	deadline := time.Now().Add(duration)
	var acc float64
	for time.Now().Before(deadline) {
		acc += burnBatch()
	}
	sink = acc
}

// burnBatch evaluates one fixed-size batch of floating-point work,
// summing sqrt(i)*sin(i)*cos(i) over the input range.
func burnBatch() float64 {
	var acc float64
	for i := 0; i < batchInputs; i++ {
		x := float64(i)
		acc += math.Sqrt(x) * math.Sin(x) * math.Cos(x)
	}
	return acc
}
