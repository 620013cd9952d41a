package roadmap

import (
	"sync"

	"github.com/TaniaPewah/ambroute/pkg/search"
)

type distanceEntry struct {
	dist  float64
	found bool
}

// CachedDistanceFinder answers point-to-point shortest-distance queries over
// the streets map by running an inner A* with the air-distance heuristic,
// memoizing results per ordered (from, to) junction pair. Not-found results
// are memoized too.
//
// Queries are pure and blocking; the cache is guarded so setup-time warmers
// may query concurrently, the search loop itself stays single-threaded.
type CachedDistanceFinder struct {
	m *StreetsMap

	mu    sync.Mutex
	cache map[[2]JunctionID]distanceEntry

	heuristicWeight float64
}

func NewCachedDistanceFinder(m *StreetsMap) *CachedDistanceFinder {
	return &CachedDistanceFinder{
		m:               m,
		cache:           make(map[[2]JunctionID]distanceEntry),
		heuristicWeight: 0.5,
	}
}

// GetDistance returns the shortest road distance in meter between two
// junctions, or found=false when no route exists.
func (f *CachedDistanceFinder) GetDistance(from, to JunctionID) (float64, bool) {
	key := [2]JunctionID{from, to}

	f.mu.Lock()
	entry, ok := f.cache[key]
	f.mu.Unlock()
	if ok {
		return entry.dist, entry.found
	}

	dist, found := f.solve(from, to)

	f.mu.Lock()
	f.cache[key] = distanceEntry{dist: dist, found: found}
	f.mu.Unlock()
	return dist, found
}

func (f *CachedDistanceFinder) solve(from, to JunctionID) (float64, bool) {
	if !f.m.HasJunction(from) || !f.m.HasJunction(to) {
		return 0, false
	}

	solver := search.NewAStar(AirDistHeuristic, search.WithHeuristicWeight(f.heuristicWeight))
	res := solver.SolveProblem(NewRouteProblem(f.m, from, to))
	if !res.Found() {
		return 0, false
	}
	return res.Final.GCost(), true
}

// CacheSize returns the number of memoized pairs.
func (f *CachedDistanceFinder) CacheSize() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cache)
}
