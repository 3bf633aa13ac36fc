// SPDX-License-Identifier: EPL-2.0

package comb

import "errors"

var (
	ErrInvalidDelay         = errors.New("comb: derived delay must be at least one sample")
	ErrInvalidChannelCount  = errors.New("comb: channel count must be positive")
	ErrChannelCountMismatch = errors.New("comb: block channel count does not match filter")
	ErrRaggedBlock          = errors.New("comb: block channels differ in frame count")
	ErrShortBlock           = errors.New("comb: output channel shorter than input block")
)
