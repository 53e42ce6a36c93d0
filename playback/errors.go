// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	ErrRateMismatch = errors.New("output device already opened at another rate")
	ErrInvalidRate  = errors.New("sample rate must be positive")
)
