// SPDX-License-Identifier: EPL-2.0

package audiotest

import "github.com/ik5/pcmprint/synth"

// Sine440 is 10 ms of a bare 440 Hz sine.
var Sine440 = []byte{0x00, 0x0A, 0x02, 0x00, 0x06, 0x01, 0xB8, 0x00, 0x01}

// Tone is durationMs of a sine at hz with a short attack and release.
func Tone(durationMs, hz uint16) []byte {
	attack := min(durationMs/10, 20)
	return synth.NewBuilder(durationMs).
		Shape(synth.ShapeSine).
		Rate(hz).
		Level(0,
			synth.EnvPoint{Ms: attack, Value: 0xffff},
			synth.EnvPoint{Ms: durationMs - attack, Value: 0}).
		MustBuild()
}

// Programs returns valid programs that between them use every opcode.
func Programs() map[string][]byte {
	return map[string][]byte{
		"sine": Sine440,
		"tone": Tone(200, 660),
		"coin": synth.NewBuilder(150).
			Shape(synth.ShapeSquare).
			Rate(988, synth.EnvPoint{Ms: 60, Value: 988}, synth.EnvPoint{Ms: 0, Value: 1319}).
			Level(0x8000, synth.EnvPoint{Ms: 150, Value: 0}).
			Clip(0xc0).
			MustBuild(),
		"laser": synth.NewBuilder(300).
			FM(1.5, 3).
			Rate(1200, synth.EnvPoint{Ms: 300, Value: 200}).
			RateLFO(8, 30).
			Range(0xffff, synth.EnvPoint{Ms: 300, Value: 0x2000}).
			RangeLFO(4, 0.25).
			Level(0xffff, synth.EnvPoint{Ms: 300, Value: 0}).
			Delay(40, 0xff, 0x60, 0xff, 0x40).
			MustBuild(),
		"organ": synth.NewBuilder(250).
			Harmonics(255, 128, 64, 0, 32).
			Rate(220).
			Bandpass(660, 400).
			Gain(0.75).
			MustBuild(),
		"explosion": synth.NewBuilder(400).
			Noise().
			Lopass(900).
			Level(0xffff, synth.EnvPoint{Ms: 400, Value: 0}).
			Voice().
			Shape(synth.ShapeTriangle).
			Rate(55).
			Hipass(30).
			Notch(50, 20).
			Gain(0.5).
			Voice().
			MustBuild(),
		"shapes": synth.NewBuilder(100).
			Shape(synth.ShapeRampUp).Rate(300).Gain(0.3).Voice().
			Shape(synth.ShapeRampDown).Rate(450).Gain(0.3).Voice().Voice().
			Noise().Gain(0.1).
			MustBuild(),
	}
}
