// SPDX-License-Identifier: EPL-2.0

package analysis

import "errors"

var (
	ErrTooShort = errors.New("too few samples to analyze")
	ErrSilent   = errors.New("signal has no energy above DC")
	ErrRate     = errors.New("sample rate must be positive")
)
