package cycle

import (
	"fmt"
	"io"
	"os"
	"time"

	"cpuload/cpu"
)

// DefaultPhaseDuration is the length of each of the three phases in
// the pattern the monitoring side expects: 5s busy, 5s resting, 5s
// idle.
const DefaultPhaseDuration = 5 * time.Second

// Driver runs the repeating HIGH CPU / LOW CPU / IDLE load cycle.
type Driver struct {
	Out io.Writer

	HighDuration time.Duration
	RestDuration time.Duration
	IdleDuration time.Duration

	burn  func(time.Duration)
	sleep func(time.Duration)

	cycles uint64
}

// New returns a Driver with the production 5-second phases, writing
// status lines to standard output.
func New() *Driver {
	return &Driver{
		Out:          os.Stdout,
		HighDuration: DefaultPhaseDuration,
		RestDuration: DefaultPhaseDuration,
		IdleDuration: DefaultPhaseDuration,
		burn:         cpu.Burn,
		sleep:        time.Sleep,
	}
}

// Run drives load cycles until stop is closed: burn CPU, rest, idle,
// one status line per phase. Each line is flushed as it is written so
// an observer tailing the output sees phase transitions in real time.
// With a stop channel that is never closed, Run never returns.
func (d *Driver) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}

		d.cycles++

		d.status("\n[Cycle %d] HIGH CPU - Working hard...", d.cycles)
		d.burn(d.HighDuration)

		d.status("[Cycle %d] LOW CPU - Resting...", d.cycles)
		d.sleep(d.RestDuration)

		d.status("[Cycle %d] IDLE - Sleeping...", d.cycles)
		d.sleep(d.IdleDuration)
	}
}

// Cycles reports how many cycles have been started. It never
// decreases and is never reset.
func (d *Driver) Cycles() uint64 {
	return d.cycles
}

func (d *Driver) status(format string, args ...interface{}) {
	fmt.Fprintf(d.Out, format+"\n", args...)
	if f, ok := d.Out.(interface{ Flush() error }); ok {
		f.Flush()
	}
}
