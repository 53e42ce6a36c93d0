// SPDX-License-Identifier: EPL-2.0

// Package synth renders binary sound programs into mono float32 PCM.
//
// A sound program is a big-endian 16-bit duration in milliseconds followed by
// one or more voices separated by 0x01 bytes. Each voice names an oscillator
// (shape, harmonics, FM or noise), its pitch envelope and LFO, and an ordered
// chain of post-processing ops (level, gain, clip, delay, filters).
//
// # Rendering
//
//	pcm, err := synth.Render(prog, 44100, synth.Config{})
//	if err != nil {
//	    // malformed program or bad rate; nothing was produced
//	}
//
// The output always has FrameCount(duration, rate) samples. Samples are not
// clamped; the sum of several loud voices may leave [-1, 1].
//
// # Building Programs
//
// Builder writes the byte format directly, which is handy for tests and tools:
//
//	prog := synth.NewBuilder(100).Shape(synth.ShapeSquare).Rate(220).Gain(0.5).MustBuild()
//
// # Inspecting Programs
//
// Disassemble lists the commands of a program without rendering it.
//
// # Building Blocks
//
// Envelope, LFO, the *Coefs filter designers and the Op implementations are
// exported so they can be driven on their own.
package synth
