package usecases

import (
	"github.com/TaniaPewah/ambroute/pkg/concurrent"
	"github.com/TaniaPewah/ambroute/pkg/roadmap"
)

type pairJob struct {
	from, to roadmap.JunctionID
}

func warmDistanceCache(finder *roadmap.CachedDistanceFinder, junctions []roadmap.JunctionID, numWorkers int) {
	if numWorkers < 1 {
		numWorkers = 1
	}

	pool := concurrent.NewWorkerPool[pairJob, struct{}](numWorkers, len(junctions)*len(junctions))
	pool.Start(func(job pairJob) struct{} {
		finder.GetDistance(job.from, job.to)
		return struct{}{}
	})

	for _, from := range junctions {
		for _, to := range junctions {
			if from == to {
				continue
			}
			pool.AddJob(pairJob{from: from, to: to})
		}
	}
	pool.Finish()

	for range pool.CollectResults() {
	}
}
