// Package springdroid drives the spring-droid ASCII protocol from spec
// section 4.9: AND/OR/NOT micro-instructions referencing sensor reads at a
// bounded look-ahead distance, terminated by WALK or RUN, grounded on the
// original_source/src/days/day21 hull-damage-avoidance puzzle.
package springdroid

import (
	"fmt"

	"github.com/pkg/errors"

	"intcode/driver/asciibrain"
	"intcode/internal/gvmlog"
	"intcode/vm"
)

// Op is a spring-script micro-instruction.
type Op string

const (
	And Op = "AND"
	Or  Op = "OR"
	Not Op = "NOT"
)

// Register is either a sensor read at a bounded distance ('A'..'I' for WALK
// mode's 4 and RUN mode's 9 sensors) or one of the two scratch registers T
// (temp) and J (jump).
type Register rune

// Mode selects WALK (4-tile look-ahead, registers A-D) or RUN (9-tile
// look-ahead, registers A-I).
type Mode int

const (
	Walk Mode = iota
	Run
)

func (m Mode) maxDistance() rune {
	if m == Run {
		return 'I'
	}
	return 'D'
}

func (m Mode) verb() string {
	if m == Run {
		return "RUN"
	}
	return "WALK"
}

// Instruction is one spring-script line: `OP SRC DST`.
type Instruction struct {
	Op  Op
	Src Register
	Dst Register
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s %c %c", i.Op, i.Src, i.Dst)
}

// Droid drives a spring-droid program.
type Droid struct {
	brain *asciibrain.Brain
	mode  Mode
	log   *gvmlog.Logger
}

// New builds a Droid for the given Mode.
func New(factory *vm.Factory, mode Mode, log *gvmlog.Logger) *Droid {
	if log == nil {
		log = gvmlog.Default
	}
	return &Droid{brain: asciibrain.New(factory, false, log), mode: mode, log: log}
}

// Send validates and queues a single instruction. Src must either be T, J,
// or a sensor letter within the mode's allowed distance (A..D for Walk,
// A..I for Run); Dst must be T or J.
func (d *Droid) Send(instr Instruction) error {
	if instr.Src != 'T' && instr.Src != 'J' {
		if instr.Src < 'A' || instr.Src > d.mode.maxDistance() {
			return errors.Errorf("springdroid: sensor register %c exceeds max read distance %c for %s mode",
				instr.Src, d.mode.maxDistance(), d.mode.verb())
		}
	}
	if instr.Dst != 'T' && instr.Dst != 'J' {
		return errors.Errorf("springdroid: %c is not a valid destination register", instr.Dst)
	}
	d.brain.SendLine(instr.String())
	return nil
}

// Start sends every queued instruction via Send, then the mode's terminator
// verb (WALK or RUN), and runs to completion. It returns the hull damage
// report on failure (a text frame) or the survey result on success (the
// numeric answer).
func (d *Droid) Start(program []Instruction) (report string, result int64, succeeded bool, err error) {
	for _, instr := range program {
		if err := d.Send(instr); err != nil {
			return "", 0, false, err
		}
	}
	d.brain.SendLine(d.mode.verb())

	frame, num, isNumber, err := d.brain.ReadFrame()
	if err != nil {
		return "", 0, false, errors.Wrap(err, "springdroid: running program")
	}
	if isNumber {
		return "", num, true, nil
	}
	return frame, 0, false, nil
}
