package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"intent-classifier/internal/classifier"
	"intent-classifier/internal/registry"
	pkgLog "intent-classifier/pkg/log"
)

const (
	// defaultCacheSize bounds the decision cache. Snapshot version is part
	// of the key, so stale entries age out instead of being served.
	defaultCacheSize = 2048
	// defaultCacheTTL keeps hot utterances answered from memory without
	// letting the cache outlive registry churn by much.
	defaultCacheTTL = 5 * time.Minute
)

// Config tunes the classify use case.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	engine   classifier.Classifier
	registry registry.Manager
	cache    *expirable.LRU[string, classifier.Decision]
}

// New creates a new classify UseCase instance.
func New(l pkgLog.Logger, engine classifier.Classifier, reg registry.Manager, cfg Config) *implUseCase {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return &implUseCase{
		l:        l,
		engine:   engine,
		registry: reg,
		cache:    expirable.NewLRU[string, classifier.Decision](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}
