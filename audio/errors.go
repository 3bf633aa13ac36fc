// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize     = errors.New("dst size must be multiple of channels")
	ErrInvalidBlockFrames = errors.New("block frame count must be positive")
	ErrInvalidSampleCount = errors.New("sample count must be multiple of channels")
)
