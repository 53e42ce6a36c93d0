// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF reference recordings into an audio.Source.
//
// Decoding is done by github.com/go-audio/aiff. Samples are big-endian
// integers of 16, 24 or 32 bits and come out normalized to [-1, 1]:
//
//	f, _ := os.Open("laser.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//
// AIFF-C compressed files and 8-bit files are not supported. Input that is
// not an io.ReadSeeker is read into memory first.
package aiff
