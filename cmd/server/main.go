package main

import (
	"context"
	"flag"

	"github.com/TaniaPewah/ambroute/pkg/http"
	"github.com/TaniaPewah/ambroute/pkg/http/usecases"
	"github.com/TaniaPewah/ambroute/pkg/logger"
	"github.com/TaniaPewah/ambroute/pkg/roadmap"
	"github.com/TaniaPewah/ambroute/pkg/spatialindex"
	"github.com/TaniaPewah/ambroute/pkg/util"
	"go.uber.org/zap"
)

var (
	junctionsPath = flag.String("junctions", "./data/junctions.csv", "junctions CSV file (id,lat,lon)")
	linksPath     = flag.String("links", "./data/links.csv", "links CSV file (from,to,length_meters)")
	useRateLimit  = flag.Bool("rate_limit", false, "enable per-client rate limiting")
)

func main() {
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		log.Warn("no config file found, using defaults", zap.Error(err))
	}

	streetsMap, err := roadmap.LoadFromCSV(*junctionsPath, *linksPath)
	if err != nil {
		log.Fatal("load streets map", zap.Error(err))
	}
	log.Info("streets map loaded", zap.Int("junctions", streetsMap.NumberOfJunctions()))

	index := spatialindex.NewRtree()
	index.Build(streetsMap, log)

	finder := roadmap.NewCachedDistanceFinder(streetsMap)
	solverService := usecases.NewSolverService(log, streetsMap, finder, index)

	api := http.NewServer(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := api.Use(ctx, log, *useRateLimit, solverService); err != nil {
		log.Fatal("start api", zap.Error(err))
	}

	sig := http.GracefulShutdown()
	log.Info("Ambroute solver server stopped", zap.String("signal", sig.String()))
}
