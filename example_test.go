// SPDX-License-Identifier: EPL-2.0

package pcmprint_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/ik5/pcmprint"
	"github.com/ik5/pcmprint/synth"
)

func ExamplePrint() {
	blip := synth.NewBuilder(50).
		Shape(synth.ShapeSquare).
		Rate(880).
		Level(0xffff, synth.EnvPoint{Ms: 50, Value: 0}).
		MustBuild()

	pcm := pcmprint.Print(blip, 8000)
	fmt.Println(len(pcm))
	// Output: 400
}

func ExamplePrint_malformed() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	pcm := pcmprint.Print([]byte{0x00, 0x64, 0x02}, 8000, pcmprint.WithLogger(log))
	fmt.Println(pcm == nil)
	// Output:
	// level=ERROR msg="sound program failed to print" rate=8000 duration_ms=100 offset=2 len=3 err="pcmprint: offset 2: SHAPE: unexpected end of sound program"
	// true
}

func ExamplePrintWAV() {
	var buf bytes.Buffer
	if err := pcmprint.PrintWAV(&buf, []byte{0x00, 0x0a, 0x03}, 22050); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(buf.Len())
	// Output: 486
}
