// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files.
//
// WriteWAV16 writes a printed sound as a mono 16-bit file and is what the
// render command uses. Decoder reads reference recordings back as an
// audio.Source for comparison. It is built on github.com/go-audio/wav and
// accepts integer PCM at 16, 24 or 32 bits with any channel count or rate.
//
//	f, _ := os.Open("coin.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrOnlyPCMSupported) {
//	    // float or compressed WAV
//	}
//
// 8-bit files are rejected with ErrUnsupportedBitDepth.
package wav
