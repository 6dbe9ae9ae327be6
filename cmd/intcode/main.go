// Command intcode runs IntCode programs and their driver agents from the
// command line.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/urfave/cli/v2"

	"intcode/driver/amplifier"
	"intcode/driver/arcade"
	"intcode/driver/asciibrain"
	"intcode/driver/maze"
	"intcode/driver/paintbot"
	"intcode/driver/springdroid"
	"intcode/driver/tractorbeam"
	"intcode/internal/gvmlog"
	"intcode/vm"
)

var log = gvmlog.Default

func main() {
	app := &cli.App{
		Name:  "intcode",
		Usage: "run IntCode programs and their driver agents",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				log.SetLevel(gvmlog.LevelDebug)
			}
			return nil
		},
		Commands: []*cli.Command{
			runCommand,
			debugCommand,
			amplifyCommand,
			asciiCommand,
			springCommand,
			paintCommand,
			arcadeCommand,
			tractorCommand,
			mazeCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadFactory(path string) (*vm.Factory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return vm.ParseProgram(string(data))
}

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "run a program to completion, printing each output as a decimal number",
	ArgsUsage: "<file>",
	Action: func(c *cli.Context) error {
		factory, err := loadFactory(c.Args().First())
		if err != nil {
			return err
		}
		m := factory.Build()
		for {
			val, err := m.PullBlocking(func() int64 {
				var n int64
				fmt.Scan(&n)
				return n
			})
			if err == vm.ErrPrematureEndOfOutput {
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println(val)
		}
	},
}

var debugCommand = &cli.Command{
	Name:      "debug",
	Usage:     "single-step a program interactively (n=next, r=run, q=quit)",
	ArgsUsage: "<file>",
	Action: func(c *cli.Context) error {
		factory, err := loadFactory(c.Args().First())
		if err != nil {
			return err
		}
		m := factory.Build()

		rl, err := readline.New("(intcode) ")
		if err != nil {
			return err
		}
		defer rl.Close()

		running := false
		for m.State() != vm.Halted && m.State() != vm.Errored {
			if !running {
				line, err := rl.Readline()
				if err != nil {
					return nil
				}
				cmd := strings.TrimSpace(line)
				switch {
				case cmd == "q" || cmd == "quit":
					return nil
				case cmd == "r" || cmd == "run":
					running = true
				case cmd == "n" || cmd == "next" || cmd == "":
					// fall through to single step below
				default:
					fmt.Println("commands: n(ext), r(un), q(uit)")
					continue
				}
			}

			res := m.Step()
			log.Debug("stepped", "kind", res.Kind, "value", res.Value)
			if res.Kind == vm.StepError {
				return res.Err
			}
		}
		fmt.Printf("halted: %s\n", m.State())
		return nil
	},
}

var amplifyCommand = &cli.Command{
	Name:      "amplify",
	Usage:     "run an amplifier chain in linear or feedback mode",
	ArgsUsage: "<file> <phase,phase,...>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "mode", Value: "linear", Usage: "linear or feedback"},
	},
	Action: func(c *cli.Context) error {
		factory, err := loadFactory(c.Args().Get(0))
		if err != nil {
			return err
		}
		phases, err := parsePhases(c.Args().Get(1))
		if err != nil {
			return err
		}

		chain := amplifier.New(factory, log)
		var out int64
		if c.String("mode") == "feedback" {
			out, err = chain.RunFeedback(phases)
		} else {
			out, err = chain.RunLinear(phases)
		}
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func parsePhases(raw string) ([]int64, error) {
	fields := strings.Split(raw, ",")
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

var asciiCommand = &cli.Command{
	Name:      "ascii",
	Usage:     "run an ascii-protocol program interactively",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "free-play", Usage: "patch address 0 to 2 before running"},
	},
	Action: func(c *cli.Context) error {
		factory, err := loadFactory(c.Args().First())
		if err != nil {
			return err
		}
		brain := asciibrain.New(factory, c.Bool("free-play"), log)

		rl, err := readline.New("> ")
		if err != nil {
			return err
		}
		defer rl.Close()

		for !brain.Halted() {
			frame, num, isNumber, err := brain.ReadFrame()
			if err != nil {
				return err
			}
			if isNumber {
				fmt.Println(num)
				return nil
			}
			fmt.Println(frame)

			line, err := rl.Readline()
			if err != nil {
				return nil
			}
			brain.SendLine(line)
		}
		return nil
	},
}

var springCommand = &cli.Command{
	Name:      "spring",
	Usage:     "run a spring-droid program (expects a script on stdin, one instruction per line, ended by any other line such as WALK/RUN; the verb sent comes from --mode)",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "mode", Value: "walk", Usage: "walk or run"},
	},
	Action: func(c *cli.Context) error {
		factory, err := loadFactory(c.Args().First())
		if err != nil {
			return err
		}

		mode := springdroid.Walk
		if c.String("mode") == "run" {
			mode = springdroid.Run
		}
		droid := springdroid.New(factory, mode, log)

		var program []springdroid.Instruction
		rl, err := readline.New("spring> ")
		if err != nil {
			return err
		}
		defer rl.Close()
		for {
			line, err := rl.Readline()
			if err != nil {
				break
			}
			fields := strings.Fields(line)
			if len(fields) != 3 {
				break
			}
			program = append(program, springdroid.Instruction{
				Op:  springdroid.Op(fields[0]),
				Src: springdroid.Register(fields[1][0]),
				Dst: springdroid.Register(fields[2][0]),
			})
		}

		report, result, succeeded, err := droid.Start(program)
		if err != nil {
			return err
		}
		if succeeded {
			fmt.Println(result)
		} else {
			fmt.Println(report)
		}
		return nil
	},
}

var paintCommand = &cli.Command{
	Name:      "paint",
	Usage:     "run the hull-painting robot and print the registration identifier",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "start-white", Usage: "start on a white panel"},
	},
	Action: func(c *cli.Context) error {
		factory, err := loadFactory(c.Args().First())
		if err != nil {
			return err
		}
		robot := paintbot.New(factory, log)
		touched := robot.Run(c.Bool("start-white"))
		fmt.Printf("panels touched: %d\n", len(touched))
		fmt.Print(paintbot.Picture(touched))
		return nil
	},
}

var arcadeCommand = &cli.Command{
	Name:      "arcade",
	Usage:     "run the arcade cabinet, optionally in free-play auto-mode",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "free-play"},
	},
	Action: func(c *cli.Context) error {
		factory, err := loadFactory(c.Args().First())
		if err != nil {
			return err
		}
		game := arcade.New(factory, c.Bool("free-play"), log)
		if err := game.Play(); err != nil {
			return err
		}
		fmt.Printf("blocks remaining: %d\nscore: %d\n", game.BlockCount(), game.Score())
		return nil
	},
}

var mazeCommand = &cli.Command{
	Name:      "maze",
	Usage:     "map the oxygen-system maze and report fewest steps and fill time",
	ArgsUsage: "<file>",
	Action: func(c *cli.Context) error {
		factory, err := loadFactory(c.Args().First())
		if err != nil {
			return err
		}
		droid := maze.New(factory, log)
		tiles, start, err := droid.Explore()
		if err != nil {
			return err
		}
		fmt.Printf("fewest steps: %d\n", maze.FewestSteps(tiles, start))
		fmt.Printf("fill time: %d\n", maze.FillTime(tiles))
		return nil
	},
}

var tractorCommand = &cli.Command{
	Name:      "tractor",
	Usage:     "count points pulled by a tractor beam over a size x size grid",
	ArgsUsage: "<file> <size>",
	Action: func(c *cli.Context) error {
		factory, err := loadFactory(c.Args().Get(0))
		if err != nil {
			return err
		}
		size, err := strconv.ParseInt(c.Args().Get(1), 10, 64)
		if err != nil {
			return err
		}

		probe := tractorbeam.New(factory, log)
		count, err := probe.CountPulled(size)
		if err != nil {
			return err
		}
		fmt.Println(count)
		return nil
	},
}
