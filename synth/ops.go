// SPDX-License-Identifier: EPL-2.0

package synth

import "fmt"

// Op is one stage of a voice's post-processing chain.
// Apply rewrites buf in place. Each Op owns its state; applying an Op twice
// continues from where the first call left off.
type Op interface {
	Apply(buf []float32)
	fmt.Stringer
}

// LevelOp multiplies the signal by an envelope.
type LevelOp struct {
	Env *Envelope
}

func (o *LevelOp) Apply(buf []float32) {
	for i := range buf {
		buf[i] = float32(float64(buf[i]) * o.Env.Step())
	}
}

func (o *LevelOp) String() string {
	return fmt.Sprintf("level(%d points)", len(o.Env.Points))
}

// GainOp multiplies the signal by a constant.
type GainOp struct {
	Gain float64
}

func (o *GainOp) Apply(buf []float32) {
	for i := range buf {
		buf[i] = float32(float64(buf[i]) * o.Gain)
	}
}

func (o *GainOp) String() string { return fmt.Sprintf("gain(%g)", o.Gain) }

// ClipOp hard-clamps the signal to [-Threshold, Threshold].
type ClipOp struct {
	Threshold float64
}

func (o *ClipOp) Apply(buf []float32) {
	hi := float32(o.Threshold)
	lo := -hi
	for i := range buf {
		if buf[i] > hi {
			buf[i] = hi
		} else if buf[i] < lo {
			buf[i] = lo
		}
	}
}

func (o *ClipOp) String() string { return fmt.Sprintf("clip(%g)", o.Threshold) }

// DelayOp is a feedback delay line of a fixed number of samples.
type DelayOp struct {
	Dry, Wet, Store, Feedback float64

	line []float32
	head int
}

// NewDelayOp returns a delay of framec samples. framec must be positive.
func NewDelayOp(framec int, dry, wet, store, feedback float64) *DelayOp {
	return &DelayOp{
		Dry:      dry,
		Wet:      wet,
		Store:    store,
		Feedback: feedback,
		line:     make([]float32, framec),
	}
}

// Framec returns the delay length in samples.
func (o *DelayOp) Framec() int { return len(o.line) }

func (o *DelayOp) Apply(buf []float32) {
	for i := range buf {
		next := float64(buf[i])
		prev := float64(o.line[o.head])
		o.line[o.head] = float32(next*o.Store + prev*o.Feedback)
		buf[i] = float32(next*o.Dry + prev*o.Wet)
		o.head++
		if o.head >= len(o.line) {
			o.head = 0
		}
	}
}

func (o *DelayOp) String() string {
	return fmt.Sprintf("delay(%d frames)", len(o.line))
}

// FilterOp runs a second-order recursive filter.
type FilterOp struct {
	Coefs Coefs
	Kind  Opcode // the opcode that designed the taps, zero for hand-built filters

	// x[n], x[n-1], x[n-2], y[n-1], y[n-2]
	state [5]float64
}

// NewFilterOp returns a filter with zeroed history.
func NewFilterOp(kind Opcode, c Coefs) *FilterOp {
	return &FilterOp{Coefs: c, Kind: kind}
}

func (o *FilterOp) Apply(buf []float32) {
	c, s := &o.Coefs, &o.state
	for i := range buf {
		s[2] = s[1]
		s[1] = s[0]
		s[0] = float64(buf[i])
		buf[i] = float32(s[0]*c[0] + s[1]*c[1] + s[2]*c[2] + s[3]*c[3] + s[4]*c[4])
		s[4] = s[3]
		s[3] = float64(buf[i])
	}
}

func (o *FilterOp) String() string {
	if o.Kind == 0 {
		return fmt.Sprintf("filter%v", o.Coefs)
	}
	return o.Kind.String()
}

// ApplyOps runs ops over buf in order.
func ApplyOps(buf []float32, ops []Op) {
	for _, op := range ops {
		op.Apply(buf)
	}
}
