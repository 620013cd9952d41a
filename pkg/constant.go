package pkg

const (
	// INF_WEIGHT marks an unreachable transition. Finite so that cost
	// arithmetic stays well-defined, but large enough that a node carrying it
	// is never preferred over any reachable one.
	INF_WEIGHT float64 = 1e15

	EPS = 1e-9
)

const (
	DEFAULT_HEURISTIC_WEIGHT = 0.5
)

const (
	DEBUG = false
)
