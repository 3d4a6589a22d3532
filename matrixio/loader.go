// SPDX-License-Identifier: MIT
package matrixio

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/katalvlaran/numlab/matrix"
)

// DefaultCacheSize is the number of decoded files a Loader keeps.
const DefaultCacheSize = 32

// cacheKey identifies one version of a file on disk.
type cacheKey struct {
	path    string
	size    int64
	modTime int64
}

// LoaderStats counts cache outcomes.
type LoaderStats struct {
	Hits   uint64
	Misses uint64
}

// Loader reads matrix files and memoizes the decoded result.
// It is safe for concurrent use.
type Loader struct {
	mu     sync.Mutex // lru.Cache mutates on Get
	cache  *lru.Cache
	stats  LoaderStats
	logger *slog.Logger
}

// NewLoader returns a Loader keeping up to size decoded files.
// size < 1 disables caching. A nil logger discards records.
func NewLoader(size int, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	l := &Loader{logger: logger}
	if size > 0 {
		l.cache = lru.New(size)
	}
	return l
}

// Load returns the matrix at path. Each call returns an independent copy,
// so callers may mutate the result freely.
func (l *Loader) Load(path string) (*matrix.Dense, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	key := cacheKey{path: path, size: info.Size(), modTime: info.ModTime().UnixNano()}

	if l.cache != nil {
		l.mu.Lock()
		v, ok := l.cache.Get(key)
		if ok {
			l.stats.Hits++
		} else {
			l.stats.Misses++
		}
		l.mu.Unlock()
		if ok {
			l.logger.Debug("matrix cache hit", "path", path)
			return clone(v.(*matrix.Dense)), nil
		}
	}

	m, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("matrix decoded", "path", path, "rows", m.Rows(), "cols", m.Cols())

	if l.cache != nil {
		l.mu.Lock()
		l.cache.Add(key, m)
		l.mu.Unlock()
	}

	return clone(m), nil
}

// Stats returns a snapshot of the hit and miss counters.
func (l *Loader) Stats() LoaderStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// Purge drops every cached entry.
func (l *Loader) Purge() {
	if l.cache == nil {
		return
	}
	l.mu.Lock()
	l.cache.Clear()
	l.mu.Unlock()
}

func clone(m *matrix.Dense) *matrix.Dense { return m.Clone().(*matrix.Dense) }
