package usecases

import (
	"context"
	"errors"

	"github.com/lintang-b-s/geodistances/pkg"
	"github.com/lintang-b-s/geodistances/pkg/concurrent"
	"github.com/lintang-b-s/geodistances/pkg/config"
	"github.com/lintang-b-s/geodistances/pkg/dispatch"
	"github.com/lintang-b-s/geodistances/pkg/geo"
	"github.com/lintang-b-s/geodistances/pkg/geodistance"
	"github.com/lintang-b-s/geodistances/pkg/kvdb"

	"go.uber.org/zap"
)

type cacheJob struct {
	key     []byte
	matrix  *geodistance.Matrix
	indices [][]int
}

// GeoDistanceService resolves the model of a request to its dispatcher and
// serves matrix and self-proximity results from the cache when it can.
type GeoDistanceService struct {
	log          *zap.Logger
	settings     config.Settings
	defaultModel string
	dispatchers  map[string]*dispatch.Dispatcher
	cache        ResultCache
	cacheWriter  *concurrent.BackgroundWorker[cacheJob]
}

// New builds one dispatcher per registered model. cache may be nil, which
// disables caching.
func New(log *zap.Logger, cfg Config, cache ResultCache) (*GeoDistanceService, error) {
	if _, err := geodistance.Lookup(cfg.DefaultModel); err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrConfiguration, "invalid default model")
	}

	settings := cfg.Settings.OrDefault()
	svc := &GeoDistanceService{
		log:          log,
		settings:     settings,
		defaultModel: cfg.DefaultModel,
		dispatchers:  make(map[string]*dispatch.Dispatcher),
		cache:        cache,
	}
	for _, name := range geodistance.Names() {
		model, _ := geodistance.Lookup(name)
		svc.dispatchers[name] = dispatch.NewDispatcher(model, settings, log.With(zap.String("model", name)))
	}

	if cache != nil {
		svc.cacheWriter = concurrent.NewBackgroundWorker(max(cfg.CacheWriters, 1), 64, svc.writeCache, log)
		svc.cacheWriter.Start()
	}
	return svc, nil
}

// Close flushes pending cache writes.
func (s *GeoDistanceService) Close() {
	if s.cacheWriter != nil {
		s.cacheWriter.Close()
	}
}

func (s *GeoDistanceService) Settings() config.Settings {
	return s.settings
}

func (s *GeoDistanceService) Models() []string {
	return geodistance.Names()
}

func (s *GeoDistanceService) dispatcher(model string) (*dispatch.Dispatcher, string, error) {
	if model == "" {
		model = s.defaultModel
	}
	m, err := geodistance.Lookup(model)
	if err != nil {
		return nil, "", err
	}
	return s.dispatchers[m.Name()], m.Name(), nil
}

func (s *GeoDistanceService) writeCache(job cacheJob) error {
	if job.matrix != nil {
		return s.cache.PutMatrix(job.key, *job.matrix)
	}
	return s.cache.PutIndices(job.key, job.indices)
}

func (s *GeoDistanceService) cachedMatrix(key []byte) (geodistance.Matrix, bool) {
	if s.cache == nil {
		return geodistance.Matrix{}, false
	}
	m, err := s.cache.GetMatrix(key)
	if err != nil {
		if !errors.Is(err, kvdb.ErrorsKeyNotExists) {
			s.log.Warn("cannot read cached matrix", zap.Error(err))
		}
		return geodistance.Matrix{}, false
	}
	return m, true
}

func (s *GeoDistanceService) storeMatrix(key []byte, m geodistance.Matrix) {
	if s.cache == nil {
		return
	}
	s.cacheWriter.TriggerProcessing(cacheJob{key: key, matrix: &m})
}

func (s *GeoDistanceService) DistanceFromPoint(ctx context.Context, model string, src geo.LatLng, dst geo.Coordinates) (geodistance.Distances, error) {
	d, _, err := s.dispatcher(model)
	if err != nil {
		return geodistance.Distances{}, err
	}
	return d.DistanceFromPoint(ctx, src, dst)
}

func (s *GeoDistanceService) Distance(ctx context.Context, model string, src, dst geo.Coordinates) (geodistance.Matrix, error) {
	d, name, err := s.dispatcher(model)
	if err != nil {
		return geodistance.Matrix{}, err
	}

	key := newCacheKey("distance", name, s.settings).coordinates(src).coordinates(dst).bytes()
	if m, ok := s.cachedMatrix(key); ok {
		return m, nil
	}
	m, err := d.Distance(ctx, src, dst)
	if err != nil {
		return geodistance.Matrix{}, err
	}
	s.storeMatrix(key, m)
	return m, nil
}

func (s *GeoDistanceService) DistanceWithinArray(ctx context.Context, model string, cs geo.Coordinates) (geodistance.Matrix, error) {
	d, name, err := s.dispatcher(model)
	if err != nil {
		return geodistance.Matrix{}, err
	}

	key := newCacheKey("distance_within_array", name, s.settings).coordinates(cs).bytes()
	if m, ok := s.cachedMatrix(key); ok {
		return m, nil
	}
	m, err := d.DistanceWithinArray(ctx, cs)
	if err != nil {
		return geodistance.Matrix{}, err
	}
	s.storeMatrix(key, m)
	return m, nil
}

func (s *GeoDistanceService) WithinDistanceOfPoint(ctx context.Context, model string, src geo.LatLng, dst geo.Coordinates,
	threshold geodistance.RowParam[float64]) (geodistance.Proximity, error) {
	d, _, err := s.dispatcher(model)
	if err != nil {
		return geodistance.Proximity{}, err
	}
	return d.WithinDistanceOfPoint(ctx, src, dst, threshold)
}

func (s *GeoDistanceService) WithinDistance(ctx context.Context, model string, src, dst geo.Coordinates, threshold float64) (geodistance.BoolMatrix, error) {
	if err := geodistance.ValidateThreshold(geodistance.Scalar(threshold), 0); err != nil {
		return geodistance.BoolMatrix{}, err
	}
	m, err := s.Distance(ctx, model, src, dst)
	if err != nil {
		return geodistance.BoolMatrix{}, err
	}
	return m.WithinDistance(threshold)
}

func (s *GeoDistanceService) WithinDistanceAmongArray(ctx context.Context, model string, cs geo.Coordinates, threshold float64) (geodistance.BoolMatrix, error) {
	if err := geodistance.ValidateThreshold(geodistance.Scalar(threshold), 0); err != nil {
		return geodistance.BoolMatrix{}, err
	}
	m, err := s.DistanceWithinArray(ctx, model, cs)
	if err != nil {
		return geodistance.BoolMatrix{}, err
	}
	return m.WithinDistance(threshold)
}

func (s *GeoDistanceService) IndicesWithinDistanceOfPoint(ctx context.Context, model string, src geo.LatLng, dst geo.Coordinates,
	threshold geodistance.RowParam[float64]) ([]int, error) {
	d, _, err := s.dispatcher(model)
	if err != nil {
		return nil, err
	}
	return d.IndicesWithinDistanceOfPoint(ctx, src, dst, threshold)
}

func (s *GeoDistanceService) IndicesWithinDistance(ctx context.Context, model string, src, dst geo.Coordinates, threshold float64) ([][]int, error) {
	b, err := s.WithinDistance(ctx, model, src, dst, threshold)
	if err != nil {
		return nil, err
	}
	return b.Indices(), nil
}

// IndicesWithinDistanceAmongArray caches the index lists themselves, which
// are far smaller than the matrix they come from.
func (s *GeoDistanceService) IndicesWithinDistanceAmongArray(ctx context.Context, model string, cs geo.Coordinates, threshold float64) ([][]int, error) {
	if err := geodistance.ValidateThreshold(geodistance.Scalar(threshold), 0); err != nil {
		return nil, err
	}
	d, name, err := s.dispatcher(model)
	if err != nil {
		return nil, err
	}

	key := newCacheKey("indices_within_distance_among_array", name, s.settings).coordinates(cs).float(threshold).bytes()
	if s.cache != nil {
		rows, err := s.cache.GetIndices(key)
		if err == nil {
			return rows, nil
		}
		if !errors.Is(err, kvdb.ErrorsKeyNotExists) {
			s.log.Warn("cannot read cached indices", zap.Error(err))
		}
	}

	rows, err := d.IndicesWithinDistanceAmongArray(ctx, cs, threshold)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cacheWriter.TriggerProcessing(cacheJob{key: key, indices: rows})
	}
	return rows, nil
}

func (s *GeoDistanceService) Displace(ctx context.Context, model string, src geo.Coordinates,
	distance, bearing geodistance.RowParam[float64]) (geodistance.Displaced, error) {
	d, _, err := s.dispatcher(model)
	if err != nil {
		return geodistance.Displaced{}, err
	}
	return d.Displace(ctx, src, distance, bearing)
}
