package roadmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TaniaPewah/ambroute/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromCSV(t *testing.T) {
	junctions := writeTempCSV(t, "junctions.csv",
		"id,lat,lon\n"+
			"1,32.0500,34.7500\n"+
			"2,32.0510,34.7500\n"+
			"3,32.0520,34.7500\n")
	links := writeTempCSV(t, "links.csv",
		"from,to,length_meters\n"+
			"1,2,150\n"+
			"2,3,150\n")

	m, err := LoadFromCSV(junctions, links)
	require.NoError(t, err)
	assert.Equal(t, 3, m.NumberOfJunctions())

	var lengths []float64
	m.ForLinksOf(1, func(l Link) {
		lengths = append(lengths, l.Length)
	})
	require.Len(t, lengths, 1)
	assert.InDelta(t, 150.0, lengths[0], 1e-9)
}

func TestLoadFromCSVNoHeader(t *testing.T) {
	junctions := writeTempCSV(t, "junctions.csv",
		"1,32.0500,34.7500\n2,32.0510,34.7500\n")
	links := writeTempCSV(t, "links.csv", "1,2,120\n")

	m, err := LoadFromCSV(junctions, links)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumberOfJunctions())
}

func TestLoadFromCSVLengthFallsBackToHaversine(t *testing.T) {
	junctions := writeTempCSV(t, "junctions.csv",
		"id,lat,lon\n1,32.0500,34.7500\n2,32.0510,34.7500\n")
	links := writeTempCSV(t, "links.csv",
		"from,to,length_meters\n1,2,\n")

	m, err := LoadFromCSV(junctions, links)
	require.NoError(t, err)

	want := geo.CalculateHaversineDistance(32.0500, 34.7500, 32.0510, 34.7500)
	var got float64
	m.ForLinksOf(1, func(l Link) {
		got = l.Length
	})
	assert.InDelta(t, want, got, 1e-6)
}

func TestLoadFromCSVRejectsBadData(t *testing.T) {
	testCases := []struct {
		name      string
		junctions string
		links     string
	}{
		{
			"link to unknown junction",
			"1,32.05,34.75\n",
			"1,42,100\n",
		},
		{
			"malformed junction id",
			"x,32.05,34.75\nbad,32.05,34.75\n",
			"",
		},
		{
			"short record",
			"1,32.05\n",
			"",
		},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			junctions := writeTempCSV(t, "junctions.csv", tt.junctions)
			links := writeTempCSV(t, "links.csv", tt.links)
			_, err := LoadFromCSV(junctions, links)
			assert.Error(t, err)
		})
	}
}
