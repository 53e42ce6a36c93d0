// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile is returned when the input has no readable FORM/COMM header.
	ErrNotAiffFile = errors.New("not an AIFF file")

	ErrUnsupportedBitDepth = errors.New("unsupported AIFF bit depth")

	// ErrUnsupportedAiffLayout covers headers go-audio parsed but could not use.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
