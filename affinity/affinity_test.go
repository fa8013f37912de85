// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// affinity_test.go — smoke test; pinning may be denied by the platform
// or sandbox, which is reported as an error, never a panic.
package affinity_test

import (
	"testing"

	"github.com/momentics/staticring/affinity"
)

func TestPinUnpin(t *testing.T) {
	if err := affinity.Pin(0); err != nil {
		t.Logf("Pin(0) unavailable here: %v", err)
	}
	affinity.Unpin()
}
