// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrInvalidDstSize,
		ErrInvalidBlockFrames,
		ErrInvalidSampleCount,
	}

	for _, err := range sentinels {
		if err == nil {
			t.Fatal("sentinel error is nil")
		}
		if !errors.Is(err, err) {
			t.Errorf("errors.Is() failed for %v", err)
		}
	}

	if errors.Is(ErrInvalidDstSize, ErrInvalidBlockFrames) {
		t.Error("distinct sentinels compare equal")
	}
}
