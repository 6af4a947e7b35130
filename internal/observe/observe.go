// Package observe provides the observer implementations layered on the
// driver contract: recording, printing, decimation and fan-out.
package observe

import (
	"fmt"
	"io"

	"github.com/san-kum/numint/internal/ode"
)

// Recorder appends every sample it sees. Samples are clones; later
// mutation of the integration state cannot corrupt the record.
type Recorder struct {
	times  []float64
	states []ode.State
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Observe(x ode.State, t float64) {
	r.times = append(r.times, t)
	r.states = append(r.states, x.Clone())
}

func (r *Recorder) Len() int            { return len(r.times) }
func (r *Recorder) Times() []float64    { return r.times }
func (r *Recorder) States() []ode.State { return r.states }

// At returns the i-th recorded sample.
func (r *Recorder) At(i int) (ode.State, float64) {
	return r.states[i], r.times[i]
}

// Last returns the most recent sample, or (nil, 0) before any.
func (r *Recorder) Last() (ode.State, float64) {
	if len(r.times) == 0 {
		return nil, 0
	}
	return r.states[len(r.states)-1], r.times[len(r.times)-1]
}

// Column extracts component i across all recorded states.
func (r *Recorder) Column(i int) []float64 {
	col := make([]float64, len(r.states))
	for j, s := range r.states {
		col[j] = s[i]
	}
	return col
}

func (r *Recorder) Reset() {
	r.times = r.times[:0]
	r.states = r.states[:0]
}

// Printer writes one line per sample: the time, then each component.
type Printer struct {
	w    io.Writer
	prec int
}

func NewPrinter(w io.Writer, prec int) *Printer {
	if prec <= 0 {
		prec = 6
	}
	return &Printer{w: w, prec: prec}
}

func (p *Printer) Observe(x ode.State, t float64) {
	fmt.Fprintf(p.w, "%.*f", p.prec, t)
	for _, v := range x {
		fmt.Fprintf(p.w, " %.*f", p.prec, v)
	}
	fmt.Fprintln(p.w)
}

// Decimate forwards every nth sample to inner, always including the
// first. A factor below 2 forwards everything.
type Decimate struct {
	inner ode.Observer
	n     int
	count int
}

func NewDecimate(inner ode.Observer, n int) *Decimate {
	if n < 1 {
		n = 1
	}
	return &Decimate{inner: inner, n: n}
}

func (d *Decimate) Observe(x ode.State, t float64) {
	if d.count%d.n == 0 {
		d.inner.Observe(x, t)
	}
	d.count++
}

// Seen is the number of samples offered, forwarded or not.
func (d *Decimate) Seen() int { return d.count }

// Multi fans each sample out to every observer in order.
func Multi(obs ...ode.Observer) ode.Observer {
	return ode.ObserverFunc(func(x ode.State, t float64) {
		for _, o := range obs {
			o.Observe(x, t)
		}
	})
}

// Nil returns an observer that discards everything.
func Nil() ode.Observer {
	return ode.ObserverFunc(func(ode.State, float64) {})
}
