package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	prompt "github.com/c-bata/go-prompt"
	"github.com/jessevdk/go-flags"
	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/andreasabel/active"
	"github.com/andreasabel/active/clock"
)

type options struct {
	Rows int `long:"rows" short:"r" description:"Maximum table rows printed by show" default:"20" env:"ACTIVE_ROWS"`
	Prec int `long:"prec" short:"p" description:"Precision for floating point samples, -1 for shortest" default:"-1" env:"ACTIVE_PREC"`
}

func completer(d prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{
		{Text: "const", Description: "stage a constant segment: const <v> <w>"},
		{Text: "ramp", Description: "stage a linear segment: ramp <v0> <v1> <w>"},
		{Text: "seg", Description: "stage a step segment over [0, 1]: seg <v>..."},
		{Text: "append", Description: "compose staged segments end to start: append [left|right]"},
		{Text: "par", Description: "combine staged segments pointwise by sum"},
		{Text: "seal", Description: "fix the boundary sample of an open endpoint: seal <left|right> <v>"},
		{Text: "shift", Description: "translate the timeline: shift <d>"},
		{Text: "at", Description: "sample the timeline: at <t>"},
		{Text: "show", Description: "print a sampled table: show [rate]"},
		{Text: "era", Description: "print the timeline's era"},
		{Text: "anchors", Description: "print the timeline's anchors"},
		{Text: "reset", Description: "drop the timeline and staged segments"},
		{Text: "help", Description: "list commands"},
		{Text: "exit", Description: "quit"},
	}
	return prompt.FilterHasPrefix(s, d.GetWordBeforeCursor(), true)
}

func main() {
	option := &options{}
	parser := flags.NewParser(option, flags.Default)
	parser.ShortDescription = `Active REPL`
	parser.LongDescription = `Interactive probe for composed timelines`

	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok {
			if fe.Type == flags.ErrHelp {
				code = 0
			}
		}
		os.Exit(code)
	}
	if option.Rows <= 0 {
		log.Fatalf("rows must be positive, got %d", option.Rows)
	}

	r := newREPL(os.Stdout, option.Rows, option.Prec)
	fmt.Println("Timeline algebra. Type help for commands, exit to quit.")
	for {
		line := prompt.Input("> ", completer)
		if r.eval(line) {
			break
		}
	}
}

type repl struct {
	out  io.Writer
	rows int
	prec int

	cur    active.Anchored[float64]
	staged []active.Value[float64]
}

func newREPL(out io.Writer, rows, prec int) *repl {
	return &repl{out: out, rows: rows, prec: prec}
}

// eval runs one command line and reports whether the session is over.
func (r *repl) eval(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "const":
		r.cmdConst(args)
	case "ramp":
		r.cmdRamp(args)
	case "seg":
		r.cmdSeg(args)
	case "append":
		r.cmdAppend(args)
	case "par":
		r.cmdPar(args)
	case "seal":
		r.cmdSeal(args)
	case "shift":
		r.cmdShift(args)
	case "at":
		r.cmdAt(args)
	case "show":
		r.cmdShow(args)
	case "era":
		fmt.Fprintln(r.out, r.cur.Era())
	case "anchors":
		r.cmdAnchors()
	case "reset":
		r.cur = active.Empty[float64]()
		r.staged = nil
	case "help":
		r.cmdHelp()
	case "exit":
		return true
	default:
		fmt.Fprintf(r.out, "unknown command %q (try help)\n", cmd)
	}
	return false
}

func (r *repl) cmdConst(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "usage: const <v> <w>")
		return
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(r.out, "bad value %q\n", args[0])
		return
	}
	w, err := parseTime(args[1])
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	e := clock.Make(clock.Finite(clock.Time{}), clock.Finite(w))
	if e.IsEmpty() {
		fmt.Fprintf(r.out, "width %v is negative\n", w)
		return
	}
	r.staged = append(r.staged, active.New(e, func(clock.Time) float64 { return v }))
	fmt.Fprintf(r.out, "staged segment %d: %v\n", len(r.staged), e)
}

func (r *repl) cmdRamp(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(r.out, "usage: ramp <v0> <v1> <w>")
		return
	}
	v0, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(r.out, "bad value %q\n", args[0])
		return
	}
	v1, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(r.out, "bad value %q\n", args[1])
		return
	}
	w, err := parseTime(args[2])
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	e := clock.Make(clock.Finite(clock.Time{}), clock.Finite(w))
	if e.IsEmpty() {
		fmt.Fprintf(r.out, "width %v is negative\n", w)
		return
	}
	width := w.Float64()
	r.staged = append(r.staged, active.New(e, func(t clock.Time) float64 {
		if width == 0 {
			return v0
		}
		return v0 + (v1-v0)*t.Float64()/width
	}))
	fmt.Fprintf(r.out, "staged segment %d: %v\n", len(r.staged), e)
}

func (r *repl) cmdSeg(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "usage: seg <v>...")
		return
	}
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			fmt.Fprintf(r.out, "bad value %q\n", a)
			return
		}
		vals[i] = v
	}
	v, err := active.Discrete(vals)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	r.staged = append(r.staged, v)
	fmt.Fprintf(r.out, "staged segment %d: %v\n", len(r.staged), v.Era())
}

func (r *repl) cmdAppend(args []string) {
	side := "right"
	if len(args) > 0 {
		side = args[0]
	}
	if side != "left" && side != "right" {
		fmt.Fprintln(r.out, "usage: append [left|right]")
		return
	}
	if len(r.staged) == 0 {
		fmt.Fprintln(r.out, "nothing staged")
		return
	}
	parts := make([]active.Anchored[float64], len(r.staged))
	for i, v := range r.staged {
		if side == "left" {
			parts[i] = active.FloatLeft(v)
		} else {
			parts[i] = active.FloatRight(v)
		}
	}
	m, err := active.Movie(parts...)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	r.cur = m
	r.staged = nil
	fmt.Fprintf(r.out, "timeline: %v\n", r.cur.Era())
}

func (r *repl) cmdPar(args []string) {
	if len(args) != 0 {
		fmt.Fprintln(r.out, "usage: par")
		return
	}
	if len(r.staged) == 0 {
		fmt.Fprintln(r.out, "nothing staged")
		return
	}
	v := r.staged[0]
	for _, o := range r.staged[1:] {
		v = active.Parallel(v, o, func(a, b float64) float64 { return a + b })
	}
	r.cur = active.Float(v)
	r.staged = nil
	fmt.Fprintf(r.out, "timeline: %v\n", r.cur.Era())
}

func (r *repl) cmdSeal(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "usage: seal <left|right> <v>")
		return
	}
	var side active.Side
	switch args[0] {
	case "left":
		side = active.Left
	case "right":
		side = active.Right
	default:
		fmt.Fprintln(r.out, "usage: seal <left|right> <v>")
		return
	}
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(r.out, "bad value %q\n", args[1])
		return
	}
	sealed, err := r.cur.Seal(side, v)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	r.cur = sealed
}

func (r *repl) cmdShift(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "usage: shift <d>")
		return
	}
	d, err := parseShift(args[0])
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	r.cur = r.cur.Shift(d)
	fmt.Fprintf(r.out, "timeline: %v\n", r.cur.Era())
}

func (r *repl) cmdAt(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "usage: at <t>")
		return
	}
	t, err := parseTime(args[0])
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	if !r.cur.Era().Contains(t) {
		fmt.Fprintf(r.out, "%v is outside %v\n", t, r.cur.Era())
		return
	}
	fmt.Fprintln(r.out, strconv.FormatFloat(r.cur.Sample(t), 'g', r.prec, 64))
}

func (r *repl) cmdShow(args []string) {
	opts := []active.FormatOption{active.Head(r.rows), active.Prec(r.prec)}
	if len(args) > 0 {
		rate, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || rate <= 0 {
			fmt.Fprintf(r.out, "bad rate %q\n", args[0])
			return
		}
		opts = append(opts, active.Rate(rate))
	}
	fmt.Fprintf(r.out, "%v", active.Formatted(r.cur.Value(), opts...))
}

func (r *repl) cmdAnchors() {
	found := false
	for _, k := range []active.Anchor{active.Start, active.End, active.Fixed} {
		if t, ok := r.cur.AnchorTime(k); ok {
			fmt.Fprintf(r.out, "%v: %v\n", k, t)
			found = true
		}
	}
	if !found {
		fmt.Fprintln(r.out, "no anchors")
	}
}

func (r *repl) cmdHelp() {
	for _, s := range completer(prompt.Document{}) {
		fmt.Fprintf(r.out, "%-8s %s\n", s.Text, s.Description)
	}
}

// parseShift reads a duration literal: a rational such as 3/2, a decimal
// such as 1.5, or a unit string such as 90m or 2d, with one time unit per
// second.
func parseShift(s string) (clock.Duration, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err1 := strconv.ParseInt(num, 10, 64)
		d, err2 := strconv.ParseInt(den, 10, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return clock.Duration{}, fmt.Errorf("bad rational %q", s)
		}
		return clock.DurationFromRat(n, d), nil
	}
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		return clock.DurationFromFloat(x), nil
	}
	d, err := str2duration.ParseDuration(s)
	if err != nil {
		return clock.Duration{}, fmt.Errorf("cannot parse duration %q", s)
	}
	return clock.DurationFromRat(d.Nanoseconds(), int64(time.Second)), nil
}

// parseTime reads an instant in the same literal forms as parseShift,
// measured from the origin.
func parseTime(s string) (clock.Time, error) {
	d, err := parseShift(s)
	if err != nil {
		return clock.Time{}, err
	}
	return clock.Time{}.Add(d), nil
}
