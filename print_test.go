// SPDX-License-Identifier: EPL-2.0

package pcmprint

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ik5/pcmprint/internal/audiotest"
	"github.com/ik5/pcmprint/synth"
	"github.com/ik5/pcmprint/utils"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestPrint_MatchesRender(t *testing.T) {
	t.Parallel()

	for name, prog := range audiotest.Programs() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			want, err := synth.Render(prog, 22050, synth.Config{Seed: 3})
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			got := Print(prog, 22050, WithSeed(3))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Print() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrint_Failures(t *testing.T) {
	t.Parallel()

	good := synth.NewBuilder(20).Shape(synth.ShapeSine).Rate(440).MustBuild()

	tests := []struct {
		name    string
		program []byte
		rate    int
		attrs   []string
	}{
		{
			name:    "rate too low",
			program: audiotest.Sine440,
			rate:    100,
			attrs:   []string{"rate=100", "duration_ms=10", "offset=-1", "len=9"},
		},
		{
			name:    "header cut short",
			program: []byte{0x00},
			rate:    8000,
			attrs:   []string{"duration_ms=-1", "offset=-1", "len=1"},
		},
		{
			name:    "unknown opcode",
			program: []byte{0x00, 0x0a, 0x7f},
			rate:    8000,
			attrs:   []string{"duration_ms=10", "offset=2", "len=3"},
		},
		{
			name:    "second voice broken",
			program: append(slices.Clone(good), 0x01, 0x02, 0x09),
			rate:    8000,
			attrs:   []string{"duration_ms=20", "offset=" + strconv.Itoa(len(good)+1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log, buf := captureLogger()
			if got := Print(tt.program, tt.rate, WithLogger(log)); got != nil {
				t.Fatalf("Print() = %d samples, want nil", len(got))
			}
			out := buf.String()
			if !strings.Contains(out, `level=ERROR msg="sound program failed to print"`) {
				t.Fatalf("no error record in log:\n%s", out)
			}
			for _, attr := range tt.attrs {
				if !strings.Contains(out, attr) {
					t.Errorf("log lacks %q:\n%s", attr, out)
				}
			}
		})
	}
}

func TestPrint_DebugRecords(t *testing.T) {
	t.Parallel()

	log, buf := captureLogger()
	if Print(audiotest.Programs()["explosion"], 8000, WithLogger(log)) == nil {
		t.Fatal("Print() = nil")
	}
	if got := strings.Count(buf.String(), `msg="rendered voice"`); got != 2 {
		t.Errorf("%d rendered voice records, want 2:\n%s", got, buf)
	}
}

func TestPrintMono16(t *testing.T) {
	t.Parallel()

	pcm, err := synth.Render(audiotest.Sine440, 8000, synth.Config{})
	if err != nil {
		t.Fatal(err)
	}
	got, err := PrintMono16(audiotest.Sine440, 8000)
	if err != nil {
		t.Fatalf("PrintMono16() error = %v", err)
	}
	if diff := cmp.Diff(utils.Quantize16(pcm), got); diff != "" {
		t.Errorf("PrintMono16() mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintMono16_Clamps(t *testing.T) {
	t.Parallel()

	loud := synth.NewBuilder(10).Shape(synth.ShapeSquare).Rate(440).Gain(4).MustBuild()
	got, err := PrintMono16(loud, 8000)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(got, math.MaxInt16) || !slices.Contains(got, math.MinInt16) {
		t.Errorf("PrintMono16() of a 4x square does not reach both rails: min %d max %d",
			slices.Min(got), slices.Max(got))
	}
}

func TestPrintMono16_Error(t *testing.T) {
	t.Parallel()

	_, err := PrintMono16(audiotest.Sine440, synth.MaxRate+1)
	if !errors.Is(err, synth.ErrInvalidRate) {
		t.Errorf("PrintMono16() error = %v, want %v", err, synth.ErrInvalidRate)
	}
}

func TestPrintWAV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := PrintWAV(&buf, audiotest.Sine440, 44100); err != nil {
		t.Fatalf("PrintWAV() error = %v", err)
	}
	if got, want := buf.Len(), 44+2*441; got != want {
		t.Errorf("PrintWAV() wrote %d bytes, want %d", got, want)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("RIFF")) {
		t.Errorf("PrintWAV() output starts %q", buf.Bytes()[:4])
	}
}

func TestPrintWAV_WritesNothingOnError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := PrintWAV(&buf, []byte{0x00, 0x00}, 8000)
	if !errors.Is(err, synth.ErrZeroDuration) {
		t.Errorf("PrintWAV() error = %v, want %v", err, synth.ErrZeroDuration)
	}
	if buf.Len() != 0 {
		t.Errorf("PrintWAV() wrote %d bytes on error", buf.Len())
	}
}

func TestWithSeed(t *testing.T) {
	t.Parallel()

	noisy := audiotest.Programs()["explosion"]
	a := Print(noisy, 8000, WithSeed(1))
	b := Print(noisy, 8000, WithSeed(1))
	c := Print(noisy, 8000, WithSeed(2))
	if !slices.Equal(a, b) {
		t.Error("same seed printed different noise")
	}
	if slices.Equal(a, c) {
		t.Error("different seeds printed identical noise")
	}
}

func TestNewConfig_DefaultLogger(t *testing.T) {
	t.Parallel()

	if cfg := newConfig(nil); cfg.Logger == nil || cfg.Seed != 0 {
		t.Errorf("newConfig(nil) = %+v, want the default logger and seed 0", cfg)
	}
}
