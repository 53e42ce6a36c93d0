// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis reference recordings.
//
// Decoding is done by github.com/jfreymuth/oggvorbis, which hands out float32
// samples directly. The source keeps the stream's channel count; register it
// under both "ogg" and "oga".
package vorbis
