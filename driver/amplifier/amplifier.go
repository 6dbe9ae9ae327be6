// Package amplifier drives a chain of IntCode amplifiers, per spec section
// 4.7, grounded on the original amplifier puzzle's Linear (single pass) and
// Feedback (ring, looped until the last amplifier halts) wiring modes.
package amplifier

import (
	"intcode/internal/gvmlog"
	"intcode/vm"
)

// Chain drives a fixed set of phase-configured amplifiers built from a
// shared Factory.
type Chain struct {
	factory *vm.Factory
	log     *gvmlog.Logger
}

// New wraps factory for amplifier use. log may be nil, in which case the
// package default logger is used.
func New(factory *vm.Factory, log *gvmlog.Logger) *Chain {
	if log == nil {
		log = gvmlog.Default
	}
	return &Chain{factory: factory, log: log}
}

// RunLinear builds a fresh amplifier for each phase in order, pushes the
// phase and the current signal (0 for the first amplifier, the previous
// amplifier's output after that), takes that amplifier's first output as
// the next signal, and returns the final amplifier's output.
func (c *Chain) RunLinear(phases []int64) (int64, error) {
	signal := int64(0)
	for i, phase := range phases {
		m := c.factory.Build()
		m.PushInput(phase, signal)
		out, err := m.Pull()
		if err != nil {
			return 0, err
		}
		signal = out
		c.log.Debug("amplifier stage complete", "stage", i, "phase", phase, "signal", signal)
	}
	return signal, nil
}

// RunFeedback wires len(phases) amplifiers into a ring: each amplifier's
// output feeds the next amplifier's input, wrapping from the last back to
// the first, looping until the last amplifier in the ring halts. It returns
// the final value the last amplifier emitted before halting.
func (c *Chain) RunFeedback(phases []int64) (int64, error) {
	machines := make([]*vm.VM, len(phases))
	for i, phase := range phases {
		machines[i] = c.factory.Build()
		machines[i].PushInput(phase)
	}

	signal := int64(0)
	last := machines[len(machines)-1]
	for {
		halted := false
		for i, m := range machines {
			m.PushInput(signal)
			out, err := m.Pull()
			if err == vm.ErrPrematureEndOfOutput {
				if m == last {
					halted = true
				}
				continue
			}
			if err != nil {
				return 0, err
			}
			signal = out
			c.log.Trace("feedback amplifier produced output", "amp", i, "signal", signal)
		}
		if halted {
			return signal, nil
		}
	}
}
