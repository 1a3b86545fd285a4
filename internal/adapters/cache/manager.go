// Package cache locates cached R runtimes and package manager downloads on disk.
package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheManager = (*Manager)(nil)

// Manager implements ports.CacheManager. Paths are pure functions of their
// inputs; the only I/O is creating the root and removing subtrees on Clear.
type Manager struct {
	logger ports.Logger
	root   string

	once    sync.Once
	rootErr error
}

// NewManager creates a Manager rooted at root.
func NewManager(root string, logger ports.Logger) *Manager {
	return &Manager{
		logger: logger,
		root:   root,
	}
}

// DefaultRoot returns the platform user cache directory joined with shinyelectron.
func DefaultRoot() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve user cache directory")
	}
	return filepath.Join(dir, domain.CacheAppDirName), nil
}

// Root returns the cache root.
func (m *Manager) Root() string {
	return m.root
}

// ensureRoot creates the cache root once per Manager.
func (m *Manager) ensureRoot() error {
	m.once.Do(func() {
		if err := os.MkdirAll(m.root, domain.DirPerm); err != nil {
			m.rootErr = zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", m.root)
		}
	})
	return m.rootErr
}

// RuntimePath returns root/r/{platform}/{arch}/{version}.
func (m *Manager) RuntimePath(version string, platform domain.Platform, arch domain.Arch) (string, error) {
	if err := domain.ValidateVersion(version); err != nil {
		return "", err
	}
	if err := domain.ValidatePlatforms([]domain.Platform{platform}); err != nil {
		return "", err
	}
	if err := domain.ValidateArchs([]domain.Arch{arch}); err != nil {
		return "", err
	}
	if err := m.ensureRoot(); err != nil {
		return "", err
	}
	return filepath.Join(m.root, domain.RuntimeCacheDirName, string(platform), string(arch), version), nil
}

// DependencyCachePath returns root/npm.
func (m *Manager) DependencyCachePath() (string, error) {
	if err := m.ensureRoot(); err != nil {
		return "", err
	}
	return filepath.Join(m.root, domain.DependencyCacheDirName), nil
}

// Clear removes the subtrees selected by scope. A missing root or subtree is not an error.
func (m *Manager) Clear(scope domain.CacheScope) error {
	var subdirs []string
	switch scope {
	case domain.CacheScopeAll:
		subdirs = []string{domain.RuntimeCacheDirName, domain.DependencyCacheDirName}
	case domain.CacheScopeRuntime:
		subdirs = []string{domain.RuntimeCacheDirName}
	case domain.CacheScopeDeps:
		subdirs = []string{domain.DependencyCacheDirName}
	default:
		return zerr.With(domain.ErrInvalidCacheScope, "scope", string(scope))
	}

	if _, err := os.Stat(m.root); errors.Is(err, fs.ErrNotExist) {
		m.logger.Info(fmt.Sprintf("cache directory %s does not exist, nothing to clear", m.root))
		return nil
	}

	var errs error
	for _, sub := range subdirs {
		path := filepath.Join(m.root, sub)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			m.logger.Debug(fmt.Sprintf("%s cache is already empty", sub))
			continue
		}

		m.logger.Info(fmt.Sprintf("removing %s...", path))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove cache directory"), "path", path))
			continue
		}
		m.logger.Info(fmt.Sprintf("removed %s", path))
	}

	return errs
}
