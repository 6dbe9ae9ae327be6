// Package arcade drives the arcade cabinet controller supplemental driver,
// grounded on original_source/src/days/day13: a program that streams
// (x, y, tileID) triples, with (-1, 0, score) as the score sentinel.
package arcade

import (
	"intcode/internal/gvmlog"
	"intcode/vm"
)

// Tile identifies what occupies a cabinet cell.
type Tile int64

const (
	Empty Tile = iota
	Wall
	Block
	Paddle
	Ball
)

// Game drives the cabinet's VM.
type Game struct {
	m   *vm.VM
	log *gvmlog.Logger

	screen map[[2]int64]Tile
	score  int64
}

// New builds a Game from factory. If freePlay is true, address 0 is poked
// to 2 before the VM runs, matching the same "insert quarters" patch spec
// section 4.8 describes for Ascii-brain programs.
func New(factory *vm.Factory, freePlay bool, log *gvmlog.Logger) *Game {
	if log == nil {
		log = gvmlog.Default
	}
	m := factory.Build()
	if freePlay {
		m.MemoryPoke(0, 2)
	}
	return &Game{m: m, log: log, screen: map[[2]int64]Tile{}}
}

// Score returns the most recently reported score.
func (g *Game) Score() int64 { return g.score }

// BlockCount returns the number of cells currently showing a Block tile.
func (g *Game) BlockCount() int {
	n := 0
	for _, t := range g.screen {
		if t == Block {
			n++
		}
	}
	return n
}

func (g *Game) findTile(want Tile) ([2]int64, bool) {
	for pos, t := range g.screen {
		if t == want {
			return pos, true
		}
	}
	return [2]int64{}, false
}

// joystick returns -1/0/1, steering the paddle toward the ball's x
// position, for the free-play auto-player.
func (g *Game) joystick() int64 {
	ball, hasBall := g.findTile(Ball)
	paddle, hasPaddle := g.findTile(Paddle)
	if !hasBall || !hasPaddle {
		return 0
	}
	switch {
	case ball[0] < paddle[0]:
		return -1
	case ball[0] > paddle[0]:
		return 1
	default:
		return 0
	}
}

// Play drives the game to completion, applying every (x, y, tile) frame
// and the score sentinel as they arrive. When the underlying program
// expects joystick input (free-play mode), it auto-plays by steering the
// paddle toward the ball each time the VM suspends.
func (g *Game) Play() error {
	next := func() int64 { return g.joystick() }
	for {
		x, err := g.m.PullBlocking(next)
		if err == vm.ErrPrematureEndOfOutput {
			return nil
		}
		if err != nil {
			return err
		}
		y, err := g.m.PullBlocking(next)
		if err != nil {
			return err
		}
		tile, err := g.m.PullBlocking(next)
		if err != nil {
			return err
		}

		if x == -1 && y == 0 {
			g.score = tile
			continue
		}
		g.screen[[2]int64{x, y}] = Tile(tile)
	}
}
