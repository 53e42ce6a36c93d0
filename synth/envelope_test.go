// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func steps(e *Envelope, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = e.Step()
	}
	return out
}

func TestEnvelope_SingleLegRampsThenHolds(t *testing.T) {
	t.Parallel()

	e := NewEnvelope(0, Point{Framec: 4, Value: 1})
	got := steps(e, 8)
	want := []float64{0.25, 0.5, 0.75, 1, 1, 1, 1, 1}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Step() sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvelope_ArithmeticSequence(t *testing.T) {
	t.Parallel()

	const framec = 7
	const target = 0.3
	e := NewEnvelope(0, Point{Framec: framec, Value: target})

	for i := 1; i <= framec; i++ {
		got := e.Step()
		want := target * float64(i) / framec
		if d := got - want; d > 1e-12 || d < -1e-12 {
			t.Errorf("Step() #%d = %v, want %v", i, got, want)
		}
	}
	for i := 0; i < 100; i++ {
		if got := e.Step(); got != target {
			t.Fatalf("Step() after the last point = %v, want exactly %v", got, target)
		}
	}
}

func TestEnvelope_MultipleLegs(t *testing.T) {
	t.Parallel()

	e := NewEnvelope(0, Point{Framec: 2, Value: 1}, Point{Framec: 2, Value: 0})
	got := steps(e, 6)
	want := []float64{0.5, 1, 0.5, 0, 0, 0}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Step() sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvelope_NoPointsIsConstant(t *testing.T) {
	t.Parallel()

	e := ConstantEnvelope(0.75)
	for i := 0; i < 1000; i++ {
		if got := e.Step(); got != 0.75 {
			t.Fatalf("Step() #%d = %v, want 0.75", i, got)
		}
	}
}

func TestEnvelope_ScaleResets(t *testing.T) {
	t.Parallel()

	e := NewEnvelope(1, Point{Framec: 2, Value: 3})
	e.Step() // scaling must rewind whatever was consumed
	e.Scale(2)

	got := steps(e, 3)
	want := []float64{4, 6, 6}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Step() after Scale mismatch (-want +got):\n%s", diff)
	}
	if e.Value0 != 2 || e.Points[0].Value != 6 {
		t.Errorf("Scale(2) values = %v/%v, want 2/6", e.Value0, e.Points[0].Value)
	}
}

func TestEnvelope_ResetRewinds(t *testing.T) {
	t.Parallel()

	e := NewEnvelope(0, Point{Framec: 3, Value: 3})
	first := steps(e, 5)
	e.Reset()
	second := steps(e, 5)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Reset() did not rewind (-first +second):\n%s", diff)
	}
}

func TestEnvelope_ZeroFramecIsStretched(t *testing.T) {
	t.Parallel()

	e := NewEnvelope(0, Point{Framec: 0, Value: 2})
	if got := e.Step(); got != 2 {
		t.Errorf("Step() = %v, want 2", got)
	}
	if e.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", e.Frames())
	}
}

func TestEnvelope_Final(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  *Envelope
		want float64
	}{
		{"constant", ConstantEnvelope(0.5), 0.5},
		{"one point", NewEnvelope(0, Point{Framec: 1, Value: 0.25}), 0.25},
		{"two points", NewEnvelope(1, Point{Framec: 1, Value: 0.25}, Point{Framec: 1, Value: 0.125}), 0.125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.env.Final(); got != tt.want {
				t.Errorf("Final() = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkEnvelope_Step(b *testing.B) {
	points := make([]Point, 255)
	for i := range points {
		points[i] = Point{Framec: 100, Value: float64(i % 2)}
	}
	e := NewEnvelope(0, points...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Step()
	}
}
