// Package maze drives the oxygen-system mapping supplemental driver,
// grounded on original_source/src/days/day15: a remote repair droid that
// moves one cell per command and reports whether it hit a wall, moved, or
// moved onto the oxygen system.
package maze

import (
	"intcode/internal/gvmlog"
	"intcode/vm"
)

// Direction matches spec section 6's movement mapping exactly:
// North=1, South=2, West=3, East=4.
type Direction int64

const (
	North Direction = 1
	South Direction = 2
	West  Direction = 3
	East  Direction = 4
)

func (d Direction) opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	case East:
		return West
	default:
		return d
	}
}

func (d Direction) delta() Point {
	switch d {
	case North:
		return Point{0, 1}
	case South:
		return Point{0, -1}
	case West:
		return Point{-1, 0}
	case East:
		return Point{1, 0}
	default:
		return Point{}
	}
}

var allDirections = [4]Direction{North, South, East, West}

// Point is an integer grid coordinate.
type Point struct{ X, Y int64 }

func (p Point) add(d Point) Point { return Point{p.X + d.X, p.Y + d.Y} }

// Tile identifies what the droid found at a cell it has visited.
type Tile int

const (
	Wall Tile = iota
	Open
	OxygenSystem
)

// Droid drives the repair droid's VM.
type Droid struct {
	m   *vm.VM
	log *gvmlog.Logger
}

// New builds a Droid from factory.
func New(factory *vm.Factory, log *gvmlog.Logger) *Droid {
	if log == nil {
		log = gvmlog.Default
	}
	return &Droid{m: factory.Build(), log: log}
}

// move sends one command and reports the droid's reply.
func (d *Droid) move(dir Direction) (Tile, error) {
	d.m.PushInput(int64(dir))
	reply, err := d.m.Pull()
	if err != nil {
		return Wall, err
	}
	return Tile(reply), nil
}

// Explore performs a backtracking depth-first walk of the whole maze,
// returning every cell it found and the cell it started from (always the
// origin).
func (d *Droid) Explore() (map[Point]Tile, Point, error) {
	visited := map[Point]Tile{{0, 0}: Open}
	start := Point{0, 0}

	var walk func(pos Point) error
	walk = func(pos Point) error {
		for _, dir := range allDirections {
			next := pos.add(dir.delta())
			if _, seen := visited[next]; seen {
				continue
			}

			tile, err := d.move(dir)
			if err != nil {
				return err
			}
			visited[next] = tile
			if tile == Wall {
				continue
			}

			if err := walk(next); err != nil {
				return err
			}

			// Backtrack: undo the move that got us here.
			if _, err := d.move(dir.opposite()); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(start); err != nil {
		return nil, start, err
	}
	return visited, start, nil
}

// FewestSteps runs a breadth-first search from start to the oxygen system
// over a map already produced by Explore.
func FewestSteps(m map[Point]Tile, start Point) int {
	return bfs(m, start, func(t Tile) bool { return t == OxygenSystem })
}

// FillTime returns the number of minutes required for oxygen to flood
// every open cell, starting from the oxygen system's location.
func FillTime(m map[Point]Tile) int {
	var source Point
	for p, t := range m {
		if t == OxygenSystem {
			source = p
			break
		}
	}

	frontier := []Point{source}
	seen := map[Point]bool{source: true}
	minutes := 0
	for len(frontier) > 0 {
		var next []Point
		for _, p := range frontier {
			for _, dir := range allDirections {
				np := p.add(dir.delta())
				if seen[np] {
					continue
				}
				if t, ok := m[np]; ok && t != Wall {
					seen[np] = true
					next = append(next, np)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
		minutes++
	}
	return minutes
}

func bfs(m map[Point]Tile, start Point, isGoal func(Tile) bool) int {
	frontier := []Point{start}
	seen := map[Point]bool{start: true}
	steps := 0
	for len(frontier) > 0 {
		for _, p := range frontier {
			if isGoal(m[p]) {
				return steps
			}
		}
		var next []Point
		for _, p := range frontier {
			for _, dir := range allDirections {
				np := p.add(dir.delta())
				if seen[np] {
					continue
				}
				if t, ok := m[np]; ok && t != Wall {
					seen[np] = true
					next = append(next, np)
				}
			}
		}
		frontier = next
		steps++
	}
	return -1
}
