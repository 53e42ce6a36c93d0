// SPDX-License-Identifier: EPL-2.0

// Package pcmprint prints compact binary sound programs into mono PCM.
//
// A sound program describes a whole sound effect: a duration and a stack of
// voices, each an oscillator with pitch envelopes, LFOs and a chain of level,
// gain, clip, delay and filter stages. Printing renders the entire sound in
// one pass, ready to hand to a playback backend.
//
// # Quick Start
//
//	pcm := pcmprint.Print(prog, 44100)
//	if pcm == nil {
//	    // malformed program or bad rate; the failure was logged
//	}
//
// Print never returns a partial buffer. Callers that want the error instead of
// a log record use synth.Render directly.
//
// # Output Formats
//
// The samples are float32 and are not clamped. For 16-bit playback:
//
//	pcm16, err := pcmprint.PrintMono16(prog, 8000)
//
// or straight to a WAV file:
//
//	f, _ := os.Create("blip.wav")
//	err := pcmprint.PrintWAV(f, prog, 22050)
//
// # Subpackages
//
//   - synth: the decoder, oscillators, envelopes, filters and the program Builder
//   - audio: streaming sources, resampling and mono mixing
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: reference recordings
//   - analysis: peak, RMS, difference and dominant frequency of a render
//   - playback: plays a render on the default output device
package pcmprint
