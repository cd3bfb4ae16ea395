package main

import (
	"bytes"
	"strings"
	"testing"

	prompt "github.com/c-bata/go-prompt"
	"github.com/stretchr/testify/require"
)

func TestParseShift(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "3/2", want: "3/2"},
		{in: "-7/2", want: "-7/2"},
		{in: "5", want: "5"},
		{in: "-5", want: "-5"},
		{in: "1.5", want: "3/2"},
		{in: "0.25", want: "1/4"},
		{in: "90m", want: "5400"},
		{in: "1h30m", want: "5400"},
		{in: "2d", want: "172800"},
		{in: "500ms", want: "1/2"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseShift(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}

	for _, in := range []string{"", "abc", "1/0", "x/2", "1/y"} {
		_, err := parseShift(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestParseTime(t *testing.T) {
	got, err := parseTime("7/4")
	require.NoError(t, err)
	require.Equal(t, "7/4", got.String())

	_, err = parseTime("nope")
	require.Error(t, err)
}

func run(t *testing.T, r *repl, buf *bytes.Buffer, line string) string {
	t.Helper()
	buf.Reset()
	require.False(t, r.eval(line), "command %q ended the session", line)
	return buf.String()
}

func TestEval_AppendSession(t *testing.T) {
	var buf bytes.Buffer
	r := newREPL(&buf, 20, -1)

	require.Equal(t, "staged segment 1: [0, 5]\n", run(t, r, &buf, "const 1 5"))
	require.Equal(t, "staged segment 2: [0, 4]\n", run(t, r, &buf, "const 2 4"))
	require.Equal(t, "timeline: [0, 9]\n", run(t, r, &buf, "append"))
	require.Equal(t, "[0, 9]\n", run(t, r, &buf, "era"))

	// The junction belongs to the second segment.
	require.Equal(t, "2\n", run(t, r, &buf, "at 5"))
	require.Equal(t, "1\n", run(t, r, &buf, "at 9/2"))
	require.Equal(t, "20 is outside [0, 9]\n", run(t, r, &buf, "at 20"))

	require.Equal(t, "start: 0\nend: 9\n", run(t, r, &buf, "anchors"))

	require.Equal(t, "timeline: [5400, 5409]\n", run(t, r, &buf, "shift 90m"))
	require.Equal(t, "2\n", run(t, r, &buf, "at 5405"))

	require.True(t, r.eval("exit"))
}

func TestEval_AppendLeftOwnsSeam(t *testing.T) {
	var buf bytes.Buffer
	r := newREPL(&buf, 20, -1)

	run(t, r, &buf, "const 1 5")
	run(t, r, &buf, "const 2 4")
	require.Equal(t, "timeline: [0, 9]\n", run(t, r, &buf, "append left"))
	require.Equal(t, "1\n", run(t, r, &buf, "at 5"))
	require.Equal(t, "2\n", run(t, r, &buf, "at 11/2"))
}

func TestEval_ParSession(t *testing.T) {
	var buf bytes.Buffer
	r := newREPL(&buf, 20, -1)

	run(t, r, &buf, "const 1 5")
	run(t, r, &buf, "const 2 4")
	require.Equal(t, "timeline: [0, 4]\n", run(t, r, &buf, "par"))
	require.Equal(t, "3\n", run(t, r, &buf, "at 2"))
	require.Equal(t, "start: 0\nend: 4\n", run(t, r, &buf, "anchors"))

	require.Equal(t, "nothing staged\n", run(t, r, &buf, "par"))
}

func TestEval_SegSession(t *testing.T) {
	var buf bytes.Buffer
	r := newREPL(&buf, 20, -1)

	require.Equal(t, "staged segment 1: [0, 1]\n", run(t, r, &buf, "seg 10 20"))
	run(t, r, &buf, "append")
	require.Equal(t, "10\n", run(t, r, &buf, "at 0"))
	require.Equal(t, "20\n", run(t, r, &buf, "at 1/2"))
	require.Equal(t, "20\n", run(t, r, &buf, "at 1"))
}

func TestEval_SealSession(t *testing.T) {
	var buf bytes.Buffer
	r := newREPL(&buf, 20, -1)

	out := run(t, r, &buf, "seal left 9")
	require.Contains(t, out, "endpoint is not finite")

	run(t, r, &buf, "const 5 3")
	run(t, r, &buf, "append left")
	require.Equal(t, "", run(t, r, &buf, "seal left 99"))
	require.Equal(t, "99\n", run(t, r, &buf, "at 0"))
	require.Equal(t, "5\n", run(t, r, &buf, "at 1"))

	out = run(t, r, &buf, "seal left 1")
	require.Contains(t, out, "endpoint is not open")
}

func TestEval_Show(t *testing.T) {
	var buf bytes.Buffer
	r := newREPL(&buf, 20, -1)

	run(t, r, &buf, "const 1 2")
	run(t, r, &buf, "append")

	exp := strings.Join([]string{
		"Value: era: [0, 2]",
		"time  value  ",
		"----  -----  ",
		"   0      1  ",
		"   1      1  ",
		"   2      1  ",
		"",
	}, "\n")
	require.Equal(t, exp, run(t, r, &buf, "show"))

	exp = strings.Join([]string{
		"Value: era: [0, 2]",
		"time  value  ",
		"----  -----  ",
		"   0      1  ",
		" 1/2      1  ",
		"   1      1  ",
		" 3/2      1  ",
		"   2      1  ",
		"",
	}, "\n")
	require.Equal(t, exp, run(t, r, &buf, "show 2"))

	require.Equal(t, "bad rate \"x\"\n", run(t, r, &buf, "show x"))

	// Row limit comes from --rows.
	short := newREPL(&buf, 2, -1)
	run(t, short, &buf, "const 1 2")
	run(t, short, &buf, "append")
	exp = strings.Join([]string{
		"Value: era: [0, 2]",
		"time  value  ",
		"----  -----  ",
		"   0      1  ",
		"   1      1  ",
		"",
	}, "\n")
	require.Equal(t, exp, run(t, short, &buf, "show"))
}

func TestEval_Reset(t *testing.T) {
	var buf bytes.Buffer
	r := newREPL(&buf, 20, -1)

	run(t, r, &buf, "const 1 5")
	run(t, r, &buf, "append")
	require.Equal(t, "", run(t, r, &buf, "reset"))
	require.Equal(t, "∅\n", run(t, r, &buf, "era"))
	require.Equal(t, "no anchors\n", run(t, r, &buf, "anchors"))
	require.Equal(t, "nothing staged\n", run(t, r, &buf, "append"))
}

func TestEval_Errors(t *testing.T) {
	var buf bytes.Buffer
	r := newREPL(&buf, 20, -1)

	testCases := []struct {
		line string
		want string
	}{
		{line: "bogus", want: "unknown command \"bogus\" (try help)\n"},
		{line: "const 1", want: "usage: const <v> <w>\n"},
		{line: "const x 5", want: "bad value \"x\"\n"},
		{line: "const 1 -3", want: "width -3 is negative\n"},
		{line: "ramp 1 2", want: "usage: ramp <v0> <v1> <w>\n"},
		{line: "seg", want: "usage: seg <v>...\n"},
		{line: "append up", want: "usage: append [left|right]\n"},
		{line: "seal middle 4", want: "usage: seal <left|right> <v>\n"},
		{line: "shift", want: "usage: shift <d>\n"},
		{line: "at", want: "usage: at <t>\n"},
		{line: "", want: ""},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.want, run(t, r, &buf, tc.line), "command %q", tc.line)
	}
}

func TestEval_Help(t *testing.T) {
	var buf bytes.Buffer
	r := newREPL(&buf, 20, -1)

	out := run(t, r, &buf, "help")
	for _, cmd := range []string{"const", "ramp", "seg", "append", "par", "seal", "shift", "at", "show", "era", "anchors", "reset", "help", "exit"} {
		require.Contains(t, out, cmd)
	}
}

func TestCompleter(t *testing.T) {
	require.Len(t, completer(prompt.Document{}), 14)
}
