// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"slices"
)

const headerSize = 44

// writeChunk is the number of samples encoded per Write.
const writeChunk = 8192

// WriteWAV16 writes samples as a mono 16-bit PCM WAV at sampleRate.
// The header is written up front, so w need not seek.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	dataSize := uint32(len(samples) * 2)

	header := make([]byte, 0, headerSize)
	header = append(header, "RIFF"...)
	header = binary.LittleEndian.AppendUint32(header, headerSize-8+dataSize)
	header = append(header, "WAVEfmt "...)
	header = binary.LittleEndian.AppendUint32(header, 16)
	header = binary.LittleEndian.AppendUint16(header, formatPCM)
	header = binary.LittleEndian.AppendUint16(header, 1)
	header = binary.LittleEndian.AppendUint32(header, uint32(sampleRate))
	header = binary.LittleEndian.AppendUint32(header, uint32(sampleRate)*2)
	header = binary.LittleEndian.AppendUint16(header, 2)
	header = binary.LittleEndian.AppendUint16(header, 16)
	header = append(header, "data"...)
	header = binary.LittleEndian.AppendUint32(header, dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("wav header: %w", err)
	}

	buf := make([]byte, 0, 2*min(len(samples), writeChunk))
	for chunk := range slices.Chunk(samples, writeChunk) {
		buf = buf[:0]
		for _, s := range chunk {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("wav data: %w", err)
		}
	}
	return nil
}
