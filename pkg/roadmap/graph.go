package roadmap

import (
	"fmt"
	"sort"

	"github.com/TaniaPewah/ambroute/pkg/geo"
	"github.com/TaniaPewah/ambroute/pkg/util"
)

type JunctionID uint32

type Junction struct {
	ID    JunctionID
	Coord geo.Coordinate
}

type Link struct {
	To JunctionID
	// Length in meter
	Length float64
}

// StreetsMap is the directed junction/link graph the point-to-point distance
// queries run on.
type StreetsMap struct {
	junctions map[JunctionID]Junction
	adj       map[JunctionID][]Link
}

func NewStreetsMap() *StreetsMap {
	return &StreetsMap{
		junctions: make(map[JunctionID]Junction),
		adj:       make(map[JunctionID][]Link),
	}
}

func (m *StreetsMap) AddJunction(id JunctionID, lat, lon float64) {
	m.junctions[id] = Junction{ID: id, Coord: geo.NewCoordinate(lat, lon)}
}

// AddLink adds a directed link. A non-positive length falls back to the
// haversine distance between the endpoints.
func (m *StreetsMap) AddLink(from, to JunctionID, length float64) error {
	fromJ, ok := m.junctions[from]
	if !ok {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "link references unknown junction %d", from)
	}
	toJ, ok := m.junctions[to]
	if !ok {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "link references unknown junction %d", to)
	}
	if length <= 0 {
		length = geo.CalculateHaversineDistance(fromJ.Coord.Lat, fromJ.Coord.Lon,
			toJ.Coord.Lat, toJ.Coord.Lon)
	}

	m.adj[from] = append(m.adj[from], Link{To: to, Length: length})
	return nil
}

func (m *StreetsMap) Junction(id JunctionID) (Junction, bool) {
	j, ok := m.junctions[id]
	return j, ok
}

func (m *StreetsMap) HasJunction(id JunctionID) bool {
	_, ok := m.junctions[id]
	return ok
}

func (m *StreetsMap) NumberOfJunctions() int {
	return len(m.junctions)
}

// ForLinksOf iterates the outgoing links of a junction in insertion order.
func (m *StreetsMap) ForLinksOf(id JunctionID, fn func(link Link)) {
	for _, l := range m.adj[id] {
		fn(l)
	}
}

// ForJunctions iterates every junction in ascending id order.
func (m *StreetsMap) ForJunctions(fn func(j Junction)) {
	ids := make([]JunctionID, 0, len(m.junctions))
	for id := range m.junctions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fn(m.junctions[id])
	}
}

func (m *StreetsMap) Validate() error {
	if len(m.junctions) == 0 {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "streets map has no junctions")
	}
	for from, links := range m.adj {
		for _, l := range links {
			if l.Length < 0 {
				return util.WrapErrorf(nil, util.ErrBadParamInput,
					fmt.Sprintf("negative link length %f on %d->%d", l.Length, from, l.To))
			}
		}
	}
	return nil
}
