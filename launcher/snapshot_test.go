// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeSnapshot(t *testing.T) {
	source := map[string]string{"Edge": "/usr/bin/microsoft-edge"}
	snap := FakeSnapshot(source)

	assert.Equal(t, "/usr/bin/microsoft-edge", snap.Command("Edge"))
	assert.Empty(t, snap.Command("EdgeBeta"), "unknown variants yield the not-found sentinel")

	// The snapshot must be detached from the caller's map.
	source["Edge"] = "/elsewhere"
	assert.Equal(t, "/usr/bin/microsoft-edge", snap.Command("Edge"))
}

func TestProbeCoversEveryVariant(t *testing.T) {
	snap := Probe()
	for _, v := range Variants() {
		// Values are host-dependent; the contract is that every variant has
		// an entry (possibly the empty sentinel) and lookups never panic.
		_ = snap.Command(v.Name)
	}
	assert.Empty(t, snap.Command("NotARealVariant"))
}

func TestResolveCommand(t *testing.T) {
	v, ok := VariantByName("EdgeDev")
	require.True(t, ok)
	snap := FakeSnapshot(map[string]string{"EdgeDev": "/opt/edge-dev/msedge"})

	t.Run("snapshot default", func(t *testing.T) {
		assert.Equal(t, "/opt/edge-dev/msedge", ResolveCommand(v, snap))
	})

	t.Run("env override wins", func(t *testing.T) {
		t.Setenv("EDGE_DEV_BIN", "/custom/msedge")
		assert.Equal(t, "/custom/msedge", ResolveCommand(v, snap))
	})

	t.Run("empty override is ignored", func(t *testing.T) {
		t.Setenv("EDGE_DEV_BIN", "")
		assert.Equal(t, "/opt/edge-dev/msedge", ResolveCommand(v, snap))
	})
}
