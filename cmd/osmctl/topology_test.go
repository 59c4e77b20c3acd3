package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdmcore/osmcore/netmodel"
)

func TestLoadTopology(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topology.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
network_id: test
nodes:
  - id: A
    arch: wss
  - id: B
    arch: broadcast
  - id: C
    arch: wss
fibers:
  - id: AB
    from: A
    to: B
    min_slot: 0
    max_slot: 9
    length_km: 80
    bidirectional_pair: BA
  - id: BA
    from: B
    to: A
    min_slot: 0
    max_slot: 9
    length_km: 80
    bidirectional_pair: AB
  - id: BC
    from: B
    to: C
    min_slot: 0
    max_slot: 9
    length_km: 60
lightpaths:
  - id: lp1
    fibers: [AB, BC]
    slots: [1, 2]
`), 0o644))

	net, err := loadTopology(path)
	require.NoError(t, err)

	assert.Equal(t, "test", net.ID())
	require.Len(t, net.Fibers(), 3)
	require.Len(t, net.Lightpaths(), 1)

	var ab, ba netmodel.Fiber
	for _, f := range net.Fibers() {
		if f.ID() == "AB" {
			ab = f
		}
		if f.ID() == "BA" {
			ba = f
		}
	}
	require.NotNil(t, ab)
	require.NotNil(t, ba)
	assert.True(t, ab.IsBidirectional())
	assert.Equal(t, ba, ab.BidirectionalPair())
}
