package active

import (
	"fmt"
	"strconv"
)

// FormatOption configures Formatted output.
type FormatOption func(*formatConfig)

// Head limits output to the first m rows.
func Head(m int) FormatOption {
	return func(c *formatConfig) { c.head = m }
}

// Rate sets how many rows to sample per unit of time. The default is 1.
func Rate(r int64) FormatOption {
	return func(c *formatConfig) { c.rate = r }
}

// Prec sets the precision used for floating point samples.
func Prec(p int) FormatOption {
	return func(c *formatConfig) { c.prec = p }
}

type formatConfig struct {
	head int
	rate int64
	prec int
}

// Formatted returns a fmt.Formatter that renders a table of sampled
// times and values for v. Only values over a finite era can be
// tabulated; otherwise just the era is printed. This is debugging
// output, not a serialization format.
func Formatted[T any](v Value[T], opts ...FormatOption) fmt.Formatter {
	f := formatter[T]{
		v:    v,
		conf: formatConfig{rate: 1, prec: -1},
	}
	for _, o := range opts {
		o(&f.conf)
	}
	return f
}

type formatter[T any] struct {
	v    Value[T]
	conf formatConfig
}

func (f formatter[T]) Format(fs fmt.State, c rune) {
	fmt.Fprintf(fs, "Value: era: %v\n", f.v.Era())
	ts, err := sampleTimes(f.v.Era(), f.conf.rate)
	if err != nil {
		// Nothing to tabulate over an empty or unbounded era.
		return
	}
	nrows := len(ts)
	if f.conf.head > 0 && f.conf.head < nrows {
		nrows = f.conf.head
	}

	// Determine precision of floating point values
	prec := f.conf.prec
	if p, ok := fs.Precision(); ok {
		prec = p
	}
	fmtC := byte(c)
	if fmtC == 'v' {
		fmtC = 'g'
	}

	labels := [2]string{"time", "value"}
	cells := make([][2]string, nrows)
	var widths [2]int
	for j, l := range labels {
		widths[j] = len(l)
	}
	for i, t := range ts[:nrows] {
		cells[i][0] = t.String()
		cells[i][1] = formatSample(f.v.Sample(t), fmtC, prec)
		for j, cell := range cells[i] {
			if w := len(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	if w, ok := fs.Width(); ok {
		for j := range widths {
			if widths[j] < w {
				widths[j] = w
			}
		}
	}
	maxWidth := widths[0]
	if widths[1] > maxWidth {
		maxWidth = widths[1]
	}
	pad := make([]byte, maxWidth)
	for i := range pad {
		pad[i] = ' '
	}
	dash := make([]byte, maxWidth)
	for i := range dash {
		dash[i] = '-'
	}
	eol := []byte{'\n'}

	writeCell := func(j int, s string) {
		buf := []byte(s)
		// Check justification
		if fs.Flag('-') {
			fs.Write(buf)
			fs.Write(pad[:widths[j]-len(buf)])
		} else {
			fs.Write(pad[:widths[j]-len(buf)])
			fs.Write(buf)
		}
		fs.Write(pad[:2])
	}

	for j, l := range labels {
		writeCell(j, l)
	}
	fs.Write(eol)
	for j := range labels {
		fs.Write(dash[:widths[j]])
		fs.Write(pad[:2])
	}
	fs.Write(eol)
	for _, row := range cells {
		for j, cell := range row {
			writeCell(j, cell)
		}
		fs.Write(eol)
	}
}

func formatSample[T any](v T, fmtC byte, prec int) string {
	switch x := any(v).(type) {
	case float64:
		return strconv.FormatFloat(x, fmtC, prec, 64)
	case float32:
		return strconv.FormatFloat(float64(x), fmtC, prec, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
