// SPDX-License-Identifier: EPL-2.0

// Package audio streams PCM between renders, recordings and outputs.
//
// Everything here moves interleaved float32 samples through the Source
// interface:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// BufferSource exposes a finished render. The format decoders in formats/...
// expose reference recordings. Resampler and MonoMixer wrap any Source, and
// Conform chains them so a recording can be lined up sample for sample with
// a render:
//
//	ref, _ := registry.ForPath("blip.ogg")
//	src, _ := ref.Decode(f)
//	want, err := audio.Collect(audio.Conform(src, 22050), 0)
//
// # End of Stream
//
// ReadSamples may return data together with io.EOF. Loop until a read
// reports io.EOF, keeping whatever it returned:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    use(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
