// Package gvmlog provides the colorized, leveled logger shared by the CLI
// and every driver package, in the style of go-ethereum's log package.
package gvmlog

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	colorable "github.com/mattn/go-colorable"
)

// Level orders log severity from most to least verbose.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCrit
)

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelCrit:
		return "CRIT"
	default:
		return "?????"
	}
}

var levelColor = map[Level]*color.Color{
	LevelTrace: color.New(color.FgHiBlack),
	LevelDebug: color.New(color.FgCyan),
	LevelInfo:  color.New(color.FgGreen),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
	LevelCrit:  color.New(color.FgHiRed, color.Bold),
}

// Logger writes leveled, key-value annotated records to an underlying
// writer. Each record and each SetLevel call is serialized by the Logger's
// mutex; a child made by With has a mutex of its own.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	minLevel Level
	ctx      []interface{}
}

// New returns a Logger writing colorized records to a colorable stderr.
func New() *Logger {
	return &Logger{
		out:      colorable.NewColorableStderr(),
		minLevel: LevelInfo,
	}
}

// SetLevel changes the minimum level records must meet to be written.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// With returns a child Logger that always includes the given key-value
// pairs, in addition to any passed at the call site.
func (l *Logger) With(ctx ...interface{}) *Logger {
	child := &Logger{out: l.out, minLevel: l.minLevel}
	child.ctx = append(append([]interface{}{}, l.ctx...), ctx...)
	return child
}

func (l *Logger) log(level Level, msg string, ctx []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.minLevel {
		return
	}

	c := levelColor[level]
	ts := time.Now().UTC().Format("15:04:05.000")
	fmt.Fprintf(l.out, "%s %s %s", ts, c.Sprint(level.String()), msg)

	all := append(append([]interface{}{}, l.ctx...), ctx...)
	if len(all) >= 2 {
		pairs := make([]string, 0, len(all)/2)
		for i := 0; i+1 < len(all); i += 2 {
			pairs = append(pairs, fmt.Sprintf("%v=%v", all[i], all[i+1]))
		}
		sort.Strings(pairs)
		fmt.Fprintf(l.out, " %s", strings.Join(pairs, " "))
	}

	if level >= LevelError {
		if call, ok := callerFrame(); ok {
			fmt.Fprintf(l.out, " caller=%v", call)
		}
	}

	fmt.Fprintln(l.out)
}

func callerFrame() (stack.Call, bool) {
	trace := stack.Trace().TrimRuntime()
	for _, call := range trace {
		pkg := fmt.Sprintf("%+k", call)
		if !strings.Contains(pkg, "gvmlog") {
			return call, true
		}
	}
	return stack.Call{}, false
}

func (l *Logger) Trace(msg string, ctx ...interface{}) { l.log(LevelTrace, msg, ctx) }
func (l *Logger) Debug(msg string, ctx ...interface{}) { l.log(LevelDebug, msg, ctx) }
func (l *Logger) Info(msg string, ctx ...interface{})  { l.log(LevelInfo, msg, ctx) }
func (l *Logger) Warn(msg string, ctx ...interface{})  { l.log(LevelWarn, msg, ctx) }
func (l *Logger) Error(msg string, ctx ...interface{}) { l.log(LevelError, msg, ctx) }
func (l *Logger) Crit(msg string, ctx ...interface{}) {
	l.log(LevelCrit, msg, ctx)
	os.Exit(1)
}

// Default is the package-level logger driver packages fall back to when the
// caller does not supply their own.
var Default = New()
