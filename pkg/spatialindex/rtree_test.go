package spatialindex

import (
	"testing"

	"github.com/TaniaPewah/ambroute/pkg/roadmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildTestIndex(t *testing.T) (*Rtree, *roadmap.StreetsMap) {
	t.Helper()
	m := roadmap.NewStreetsMap()
	m.AddJunction(1, 32.0500, 34.7500)
	m.AddJunction(2, 32.0600, 34.7600)
	m.AddJunction(3, 32.2000, 34.9000)

	rt := NewRtree()
	rt.Build(m, zap.NewNop())
	return rt, m
}

func TestSearchWithinRadius(t *testing.T) {
	rt, _ := buildTestIndex(t)

	// 2 km around junction 1 covers junctions 1 and 2 but not 3
	got := rt.SearchWithinRadius(32.0500, 34.7500, 2.0)
	assert.ElementsMatch(t, []roadmap.JunctionID{1, 2}, got)

	got = rt.SearchWithinRadius(32.0500, 34.7500, 0.1)
	assert.ElementsMatch(t, []roadmap.JunctionID{1}, got)
}

func TestNearestJunction(t *testing.T) {
	rt, m := buildTestIndex(t)

	testCases := []struct {
		name     string
		lat, lon float64
		want     roadmap.JunctionID
	}{
		{"exactly on a junction", 32.0500, 34.7500, 1},
		{"closer to junction 2", 32.0590, 34.7610, 2},
		{"far east snaps to junction 3", 32.2100, 34.9100, 3},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rt.NearestJunction(m, tt.lat, tt.lon)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNearestJunctionNoCandidate(t *testing.T) {
	rt := NewRtree()
	rt.Build(roadmap.NewStreetsMap(), zap.NewNop())

	_, ok := rt.NearestJunction(roadmap.NewStreetsMap(), 32.05, 34.75)
	assert.False(t, ok)
}
