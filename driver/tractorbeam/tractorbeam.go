// Package tractorbeam drives the tractor beam probe supplemental driver,
// grounded on original_source/src/days/day19: a program that reports
// whether a single (x, y) coordinate is pulled by the beam, requiring a
// fresh VM per query.
package tractorbeam

import (
	"intcode/internal/gvmlog"
	"intcode/vm"
)

// Probe queries the tractor beam at arbitrary coordinates.
type Probe struct {
	factory *vm.Factory
	log     *gvmlog.Logger
}

// New wraps factory for tractor-beam queries.
func New(factory *vm.Factory, log *gvmlog.Logger) *Probe {
	if log == nil {
		log = gvmlog.Default
	}
	return &Probe{factory: factory, log: log}
}

// ReadPoint builds a fresh VM and reports whether (x, y) is pulled by the
// beam. The program halts after a single answer, so every query needs its
// own machine rather than a Reset of a shared one.
func (p *Probe) ReadPoint(x, y int64) (bool, error) {
	m := p.factory.Build()
	m.PushInput(x, y)
	return m.PullBool()
}

// CountPulled scans a size x size grid from the origin and counts points
// pulled by the beam.
func (p *Probe) CountPulled(size int64) (int64, error) {
	var count int64
	for y := int64(0); y < size; y++ {
		for x := int64(0); x < size; x++ {
			pulled, err := p.ReadPoint(x, y)
			if err != nil {
				return 0, err
			}
			if pulled {
				count++
			}
		}
	}
	return count, nil
}

// FindClosestFit finds the closest-to-origin position where a size x size
// square fits entirely inside the beam, returning the square's top-left
// corner. It grows down the beam's left edge and checks whether the square
// anchored size-1 rows up already fits.
func (p *Probe) FindClosestFit(size int64) (x, y int64, err error) {
	y = size
	for {
		for x = 0; ; x++ {
			pulled, err := p.ReadPoint(x, y)
			if err != nil {
				return 0, 0, err
			}
			if pulled {
				break
			}
		}

		topRight, err := p.ReadPoint(x+size-1, y-size+1)
		if err != nil {
			return 0, 0, err
		}
		bottomLeft, err := p.ReadPoint(x, y-size+1)
		if err != nil {
			return 0, 0, err
		}
		if topRight && bottomLeft {
			return x, y - size + 1, nil
		}
		y++
	}
}
