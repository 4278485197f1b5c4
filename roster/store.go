package roster

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"gridiron/csvdata"
	"gridiron/metrics"

	"github.com/rs/zerolog/log"
)

// Load reads the roster CSV at path. Any failure is logged and degrades to an
// empty dataset; callers never see an error.
func Load(path string) *Dataset {
	d, _ := load(path)
	return d
}

func load(path string) (*Dataset, error) {
	start := time.Now()

	t, err := csvdata.ReadFile(path)
	var d *Dataset
	if err == nil {
		d, err = FromTable(t)
	}
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to load roster data")
		d = Empty()
		d.Source = path
		d.LoadedAt = time.Now()
		return d, err
	}

	d.Source = path
	d.LoadedAt = time.Now()
	log.Info().
		Str("path", path).
		Int("rows", d.Len()).
		Dur("duration", time.Since(start)).
		Msg("Roster data loaded")
	return d, nil
}

// Store serves the current roster snapshot and swaps in a fresh one on Reload.
type Store struct {
	path    string
	mu      sync.Mutex
	current atomic.Pointer[Dataset]
}

func NewStore(path string) *Store {
	s := &Store{path: path}
	s.current.Store(Empty())
	return s
}

func (s *Store) Path() string {
	return s.path
}

// Dataset returns the current snapshot. It is never nil.
func (s *Store) Dataset() *Dataset {
	return s.current.Load()
}

// Reload re-reads the file and publishes the result, even when the load
// failed and the result is empty. The returned error only reports the
// failure. A cancelled ctx leaves the current snapshot in place.
func (s *Store) Reload(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return s.Dataset(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := load(s.path)
	s.current.Store(d)

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.DatasetReloadsTotal.WithLabelValues(status).Inc()
	metrics.DatasetRows.Set(float64(d.Len()))
	metrics.DatasetLoadedAt.Set(float64(d.LoadedAt.Unix()))
	return d, err
}
