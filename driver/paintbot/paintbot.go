// Package paintbot drives the hull-painting robot supplemental driver,
// grounded on original_source/src/days/day11: a robot that reads the color
// of the panel beneath it and emits a paint color plus a turn direction
// each step.
package paintbot

import (
	"strings"

	"intcode/internal/gvmlog"
	"intcode/vm"
)

// Point is an integer grid coordinate.
type Point struct{ X, Y int64 }

// Facing is one of the four compass directions the robot can face.
type Facing int

const (
	Up Facing = iota
	Right
	Down
	Left
)

func (f Facing) turn(clockwise bool) Facing {
	if clockwise {
		return (f + 1) % 4
	}
	return (f + 3) % 4
}

func (f Facing) step(p Point) Point {
	switch f {
	case Up:
		return Point{p.X, p.Y + 1}
	case Down:
		return Point{p.X, p.Y - 1}
	case Left:
		return Point{p.X - 1, p.Y}
	case Right:
		return Point{p.X + 1, p.Y}
	default:
		return p
	}
}

// Robot drives a VM as the hull-painting brain.
type Robot struct {
	m   *vm.VM
	log *gvmlog.Logger
}

// New builds a Robot from factory.
func New(factory *vm.Factory, log *gvmlog.Logger) *Robot {
	if log == nil {
		log = gvmlog.Default
	}
	return &Robot{m: factory.Build(), log: log}
}

// Run drives the robot to completion, starting on a panel of the given
// color (false = black, true = white), and returns the set of panels
// painted white at least once.
func (r *Robot) Run(startColor bool) map[Point]bool {
	painted := map[Point]bool{}
	currentColor := map[Point]bool{{0, 0}: startColor}
	pos := Point{0, 0}
	facing := Up

	for {
		c := currentColor[pos]
		r.m.PushInputBool(c)

		color, err := r.m.PullBool()
		if err != nil {
			return painted
		}
		turnRight, err := r.m.PullBool()
		if err != nil {
			return painted
		}

		currentColor[pos] = color
		if color {
			painted[pos] = true
		}

		facing = facing.turn(turnRight)
		pos = facing.step(pos)
	}
}

// Picture renders the white panels of touched as block-art text, top row
// first, for registration-identifier puzzles whose answer is drawn as
// letters on the hull.
func Picture(touched map[Point]bool) string {
	if len(touched) == 0 {
		return ""
	}
	minX, maxX, minY, maxY := int64(0), int64(0), int64(0), int64(0)
	first := true
	for p := range touched {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	var sb strings.Builder
	for y := maxY; y >= minY; y-- {
		for x := minX; x <= maxX; x++ {
			if touched[Point{x, y}] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
