// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// pollInterval is how often Play checks whether the player has drained.
const pollInterval = 10 * time.Millisecond

var (
	deviceMu   sync.Mutex
	device     *oto.Context
	deviceRate int
)

// openDevice returns the process-wide oto context, creating it at rate.
func openDevice(rate int) (*oto.Context, error) {
	deviceMu.Lock()
	defer deviceMu.Unlock()

	if device != nil {
		if deviceRate != rate {
			return nil, fmt.Errorf("%w: open at %d Hz, asked for %d Hz", ErrRateMismatch, deviceRate, rate)
		}
		return device, nil
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   50 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	<-ready
	device, deviceRate = ctx, rate
	return device, nil
}

// Play plays samples at rate and blocks until they have drained or ctx is
// done, in which case playback stops and ctx.Err() is returned.
func Play(ctx context.Context, samples []float32, rate int) error {
	if rate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}
	if len(samples) == 0 {
		return nil
	}
	dev, err := openDevice(rate)
	if err != nil {
		return err
	}

	player := dev.NewPlayer(newSampleReader(samples))
	defer player.Close()
	player.Play()

	tick := time.NewTicker(pollInterval)
	defer tick.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-tick.C:
		}
	}
	if err := player.Err(); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	return nil
}
