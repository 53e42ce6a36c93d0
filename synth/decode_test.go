// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// body strips the duration header a Builder always writes.
func body(b *Builder) []byte {
	return b.MustBuild()[HeaderSize:]
}

func TestDecodeVoice_Fields(t *testing.T) {
	t.Parallel()

	const rate = 1000
	src := body(NewBuilder(1).
		FM(1.5, 2).
		Rate(250, EnvPoint{Ms: 10, Value: 500}).
		RateLFO(5, 100).
		Range(0x8000).
		RangeLFO(2, 0.5).
		Gain(2).
		Clip(0xff))

	v, next, err := DecodeVoice(src, 0, rate)
	if err != nil {
		t.Fatalf("DecodeVoice() error = %v", err)
	}
	if next != len(src) {
		t.Errorf("next = %d, want %d", next, len(src))
	}
	if v.Oscillator != OscFM {
		t.Errorf("Oscillator = %s, want fm", v.Oscillator)
	}
	if v.FMRatio != 1.5 || v.FMRange != 2 {
		t.Errorf("FM = %v/%v, want 1.5/2", v.FMRatio, v.FMRange)
	}
	if math.Abs(v.Rate.Value0-0.25) > 1e-12 {
		t.Errorf("Rate.Value0 = %v, want 0.25 cycles per sample", v.Rate.Value0)
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	if diff := cmp.Diff([]Point{{Framec: 10, Value: 0.5}}, v.Rate.Points, approx); diff != "" {
		t.Errorf("Rate.Points mismatch (-want +got):\n%s", diff)
	}
	if v.RateLFO != (LFOParams{Rate: 0.005, Depth: 100}) {
		t.Errorf("RateLFO = %+v", v.RateLFO)
	}
	if v.Range.Value0 != 0.5 {
		t.Errorf("Range.Value0 = %v, want 0.5", v.Range.Value0)
	}
	if v.RangeLFO != (LFOParams{Rate: 0.002, Depth: 0.5}) {
		t.Errorf("RangeLFO = %+v", v.RangeLFO)
	}

	if len(v.Ops) != 2 {
		t.Fatalf("len(Ops) = %d, want 2", len(v.Ops))
	}
	if g, ok := v.Ops[0].(*GainOp); !ok || g.Gain != 2 {
		t.Errorf("Ops[0] = %v, want gain(2)", v.Ops[0])
	}
	if c, ok := v.Ops[1].(*ClipOp); !ok || c.Threshold != 1 {
		t.Errorf("Ops[1] = %v, want clip(1)", v.Ops[1])
	}
}

func TestDecodeVoice_OscillatorPriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		b    *Builder
		want Oscillator
	}{
		{"empty", NewBuilder(1), OscSilence},
		{"noise", NewBuilder(1).Noise(), OscNoise},
		{"fm over noise", NewBuilder(1).Noise().FM(1, 1).Rate(100), OscFM},
		{"harmonics over fm", NewBuilder(1).FM(1, 1).Harmonics(255).Rate(100), OscHarmonics},
		{"shape over harmonics", NewBuilder(1).Harmonics(255).Shape(ShapeSquare).Rate(100), OscShape},
		{"shape after noise", NewBuilder(1).Rate(100).Shape(ShapeSine).Noise(), OscShape},
		{"fm needs ratio", NewBuilder(1).FM(0, 1).Rate(100), OscSilence},
		{"fm needs range", NewBuilder(1).FM(1, 0).Noise(), OscNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, _, err := DecodeVoice(body(tt.b), 0, 44100)
			if err != nil {
				t.Fatalf("DecodeVoice() error = %v", err)
			}
			if v.Oscillator != tt.want {
				t.Errorf("Oscillator = %s, want %s", v.Oscillator, tt.want)
			}
		})
	}
}

func TestDecodeVoice_StopsAtSeparator(t *testing.T) {
	t.Parallel()

	src := body(NewBuilder(1).Noise().Gain(1).Voice().Shape(ShapeSine))

	v, next, err := DecodeVoice(src, 0, 44100)
	if err != nil {
		t.Fatalf("DecodeVoice() error = %v", err)
	}
	if Opcode(src[next]) != OpVoice {
		t.Fatalf("src[next] = %#x, want the separator", src[next])
	}
	if next != 4 {
		t.Errorf("next = %d, want 4", next)
	}
	if v.Oscillator != OscNoise || len(v.Ops) != 1 {
		t.Errorf("voice = %s with %d ops, want noise with 1", v.Oscillator, len(v.Ops))
	}
}

func TestDecodeVoice_EnvelopePoints(t *testing.T) {
	t.Parallel()

	src := body(NewBuilder(1).Level(0,
		EnvPoint{Ms: 1, Value: 0x8000},
		EnvPoint{Ms: 0, Value: 0xffff},
	))
	v, _, err := DecodeVoice(src, 0, 8000)
	if err != nil {
		t.Fatalf("DecodeVoice() error = %v", err)
	}
	lvl := v.Ops[0].(*LevelOp)
	want := []Point{
		{Framec: 8, Value: 0.5},
		{Framec: 1, Value: float64(0xffff) / 65536},
	}
	if diff := cmp.Diff(want, lvl.Env.Points); diff != "" {
		t.Errorf("Level points mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeVoice_Filters(t *testing.T) {
	t.Parallel()

	const rate = 10000
	src := body(NewBuilder(1).
		Bandpass(1000, 100).
		Notch(1000, 100).
		Lopass(500).
		Hipass(2500).
		Delay(10, 0xff, 0x80, 0xff, 0))
	v, _, err := DecodeVoice(src, 0, rate)
	if err != nil {
		t.Fatalf("DecodeVoice() error = %v", err)
	}

	want := []struct {
		kind  Opcode
		coefs Coefs
	}{
		{OpBandpass, BandpassCoefs(0.1, 0.01)},
		{OpNotch, NotchCoefs(0.1, 0.01)},
		{OpLopass, LopassCoefs(0.05)},
		{OpHipass, HipassCoefs(0.25)},
	}
	for i, w := range want {
		f, ok := v.Ops[i].(*FilterOp)
		if !ok {
			t.Fatalf("Ops[%d] = %v, want a filter", i, v.Ops[i])
		}
		if f.Kind != w.kind || f.String() != w.kind.String() {
			t.Errorf("Ops[%d] is %v (%q), want %v", i, f.Kind, f, w.kind)
		}
		if f.Coefs != w.coefs {
			t.Errorf("%s coefs = %v, want %v", f, f.Coefs, w.coefs)
		}
	}

	d, ok := v.Ops[4].(*DelayOp)
	if !ok {
		t.Fatalf("Ops[4] = %v, want a delay", v.Ops[4])
	}
	if d.Framec() != 100 || d.Dry != 1 || d.Store != 1 || d.Feedback != 0 {
		t.Errorf("delay = %d frames dry %v store %v fb %v", d.Framec(), d.Dry, d.Store, d.Feedback)
	}
	if math.Abs(d.Wet-128.0/255) > 1e-12 {
		t.Errorf("delay wet = %v, want 128/255", d.Wet)
	}
}

func TestDecodeVoice_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    []byte
		want   error
		offset int
	}{
		{"unknown opcode", []byte{byte(OpNoise), 0x12}, ErrUnknownOpcode, 1},
		{"truncated gain", []byte{byte(OpGain), 0x01}, ErrUnexpectedEOF, 0},
		{"truncated envelope header", []byte{byte(OpLevel), 0x00, 0x00}, ErrUnexpectedEOF, 0},
		{"truncated envelope points", []byte{byte(OpLevel), 0x00, 0x00, 0x01, 0x00}, ErrUnexpectedEOF, 0},
		{"truncated harmonics", []byte{byte(OpHarmonics), 0x03, 0xff}, ErrUnexpectedEOF, 0},
		{"invalid shape", []byte{byte(OpShape), 0x05}, ErrInvalidShape, 0},
		{"shape without rate", []byte{byte(OpShape), 0x00}, ErrMissingRate, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := DecodeVoice(tt.src, 0, 44100)
			if !errors.Is(err, tt.want) {
				t.Fatalf("DecodeVoice() error = %v, want %v", err, tt.want)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("DecodeVoice() error %T is not a *DecodeError", err)
			}
			if de.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", de.Offset, tt.offset)
			}
		})
	}
}

func TestDecodeVoice_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	src := body(NewBuilder(1).
		FM(2, 1).
		Rate(440).
		RangeLFO(3, 0.25).
		Level(0xffff))
	orig := bytes.Clone(src)

	v, _, err := DecodeVoice(src, 0, 44100)
	if err != nil {
		t.Fatalf("DecodeVoice() error = %v", err)
	}
	v.Render(make([]float32, 512), nil)

	if !bytes.Equal(src, orig) {
		t.Error("decoding and rendering modified the program bytes")
	}
}

func TestDecodeError_Message(t *testing.T) {
	t.Parallel()

	err := &DecodeError{Offset: 7, Opcode: OpGain, Err: ErrUnexpectedEOF}
	if got, want := err.Error(), "pcmprint: offset 7: GAIN: unexpected end of sound program"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &DecodeError{Offset: 3, Err: ErrMissingRate}
	if got, want := err.Error(), "pcmprint: offset 3: pitched oscillator without a rate envelope"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestOpcode_String(t *testing.T) {
	t.Parallel()

	if got := OpRangeLFO.String(); got != "RANGELFO" {
		t.Errorf("OpRangeLFO.String() = %q", got)
	}
	if got := Opcode(0x42).String(); got != "0x42" {
		t.Errorf("Opcode(0x42).String() = %q", got)
	}
	if Opcode(0x00).Known() || Opcode(0x12).Known() || !OpHipass.Known() {
		t.Error("Known() must cover 0x01..0x11 only")
	}
}
