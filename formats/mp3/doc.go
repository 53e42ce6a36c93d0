// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 reference recordings with github.com/hajimehoshi/go-mp3.
//
// The decoder always produces interleaved stereo at the file's rate, even
// for mono files, so compare and analyze pass the source through
// audio.Conform before looking at it.
package mp3
