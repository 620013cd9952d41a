package spatialindex

import (
	"github.com/TaniaPewah/ambroute/pkg/geo"
	"github.com/TaniaPewah/ambroute/pkg/roadmap"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree indexes junction coordinates so problem inputs given as lat/lon can
// be snapped to the nearest junction of the streets map.
type Rtree struct {
	tr *rtree.RTreeG[roadmap.JunctionID]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[roadmap.JunctionID]
	return &Rtree{
		tr: &tr,
	}
}

// Build indexes every junction of the streets map.
func (rt *Rtree) Build(m *roadmap.StreetsMap, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	m.ForJunctions(func(j roadmap.Junction) {
		p := [2]float64{j.Coord.Lon, j.Coord.Lat}
		rt.tr.Insert(p, p, j.ID)
	})
	log.Info("R-tree spatial index built.", zap.Int("junctions", m.NumberOfJunctions()))
}

// SearchWithinRadius returns the junctions within radius (in km) of the
// query point.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []roadmap.JunctionID {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]roadmap.JunctionID, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data roadmap.JunctionID) bool {
			results = append(results, data)
			return true
		})
	return results
}

// NearestJunction snaps a point to the closest indexed junction, widening
// the search box until a candidate appears.
func (rt *Rtree) NearestJunction(m *roadmap.StreetsMap, qLat, qLon float64) (roadmap.JunctionID, bool) {
	for radius := 0.5; radius <= 64.0; radius *= 2 {
		candidates := rt.SearchWithinRadius(qLat, qLon, radius)
		if len(candidates) == 0 {
			continue
		}

		best := candidates[0]
		bestDist := -1.0
		for _, id := range candidates {
			j, ok := m.Junction(id)
			if !ok {
				continue
			}
			d := geo.CalculateHaversineDistance(qLat, qLon, j.Coord.Lat, j.Coord.Lon)
			if bestDist < 0 || d < bestDist {
				best = id
				bestDist = d
			}
		}
		if bestDist >= 0 {
			return best, true
		}
	}
	return 0, false
}
