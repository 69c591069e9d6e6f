package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/lintang-b-s/geodistances/pkg/config"
	"github.com/lintang-b-s/geodistances/pkg/dispatch"
	"github.com/lintang-b-s/geodistances/pkg/geo"
	"github.com/lintang-b-s/geodistances/pkg/geodistance"
	"github.com/lintang-b-s/geodistances/pkg/kvdb"
	logConfig "github.com/lintang-b-s/geodistances/pkg/logger/config"
	myZap "github.com/lintang-b-s/geodistances/pkg/logger/zap"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var (
	mapFile   = flag.String("f", "surakarta.osm.pbf", "input points, an .osm.pbf file or a geojson feature collection")
	threshold = flag.Float64("t", 1, "neighbour threshold in km")
	modelName = flag.String("m", "", "distance model, haversine or vincenty (default GEO_MODEL)")
	dbPath    = flag.String("db", "geodistances_cache.db", "bbolt file the neighbour lists are written to")
	key       = flag.String("k", "", "key of the neighbour lists (default the input file name)")
	matrix    = flag.Bool("matrix", false, "also store the full distance matrix")
	bbox      = flag.String("bbox", "", "keep only points inside minLat,minLng,maxLat,maxLng")
)

func loadPoints(ctx context.Context, path string) (geo.Coordinates, error) {
	if strings.HasSuffix(path, ".osm.pbf") {
		_, coords, err := geo.LoadOSMNodes(ctx, path, nil)
		return coords, err
	}
	return geo.LoadGeoJSON(path)
}

func main() {
	flag.Parse()
	_ = godotenv.Load()

	logger, err := myZap.New(logConfig.Configuration{Level: logConfig.INFO_LEVEL, TimeFormat: time.RFC3339})
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	v := viper.New()
	v.AutomaticEnv()
	settings, err := config.FromViper(v)
	if err != nil {
		logger.Fatal("invalid settings", zap.Error(err))
	}
	name := *modelName
	if name == "" {
		name = v.GetString(config.KeyModel)
	}
	model, err := geodistance.Lookup(name)
	if err != nil {
		logger.Fatal("invalid model", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	coords, err := loadPoints(ctx, *mapFile)
	if err != nil {
		logger.Fatal("cannot load points", zap.Error(err))
	}
	coords = coords.Normalize()
	if *bbox != "" {
		area, err := geo.ParseBoundingBox(*bbox)
		if err != nil {
			logger.Fatal("invalid bbox", zap.Error(err))
		}
		total := coords.Len()
		coords, _ = area.Filter(coords)
		logger.Info("points filtered",
			zap.String("bbox", *bbox),
			zap.Int("kept", coords.Len()),
			zap.Int("dropped", total-coords.Len()))
	}
	bb := geo.NewBoundingBox(coords)
	logger.Info("points loaded",
		zap.String("file", *mapFile),
		zap.Int("count", coords.Len()),
		zap.Stringer("min", bb.GetMin()),
		zap.Stringer("max", bb.GetMax()),
		zap.Stringer("center", bb.Center()))

	db, err := bolt.Open(*dbPath, 0600, nil)
	if err != nil {
		logger.Fatal("cannot open db", zap.Error(err))
	}
	defer db.Close()
	store, err := kvdb.NewKVDB(db)
	if err != nil {
		logger.Fatal("cannot open db", zap.Error(err))
	}

	k := *key
	if k == "" {
		k = filepath.Base(*mapFile)
	}

	d := dispatch.NewDispatcher(model, settings, logger)
	start := time.Now()
	rows, err := d.IndicesWithinDistanceAmongArray(ctx, coords, *threshold)
	if err != nil {
		logger.Fatal("cannot compute neighbours", zap.Error(err))
	}
	pairs := 0
	for _, r := range rows {
		pairs += len(r) - 1
	}
	logger.Info("neighbours computed",
		zap.String("model", model.Name()),
		zap.Float64("threshold_km", *threshold),
		zap.Int("pairs", pairs/2),
		zap.Duration("took", time.Since(start)))

	if err := store.PutIndices([]byte(k), rows); err != nil {
		logger.Fatal("cannot store neighbours", zap.Error(err))
	}

	if *matrix {
		m, err := d.DistanceWithinArray(ctx, coords)
		if err != nil {
			logger.Fatal("cannot compute distance matrix", zap.Error(err))
		}
		if err := store.PutMatrix([]byte(k+".matrix"), m); err != nil {
			logger.Fatal("cannot store distance matrix", zap.Error(err))
		}
	}
	logger.Info("stored", zap.String("db", *dbPath), zap.String("key", k))
}
