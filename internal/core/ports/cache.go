package ports

import "go.trai.ch/shinyelectron/internal/core/domain"

// CacheManager resolves locations in the on-disk build cache.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CacheManager interface {
	// Root returns the cache root directory.
	Root() string
	// RuntimePath returns root/r/{platform}/{arch}/{version}.
	RuntimePath(version string, platform domain.Platform, arch domain.Arch) (string, error)
	// DependencyCachePath returns root/npm.
	DependencyCachePath() (string, error)
	// Clear removes the subtrees selected by scope.
	Clear(scope domain.CacheScope) error
}
