package domain

import "path/filepath"

// DefaultDevPort is the port the development shell serves the app on when none is given.
const DefaultDevPort = 3000

// DefaultRVersion is the R runtime bundled into r-shiny builds when none is configured.
const DefaultRVersion = "4.4.1"

// ExportRequest describes a single export run.
type ExportRequest struct {
	SourceDir string
	DestDir   string
	AppName   string
	AppType   AppType
	Platforms []Platform
	Archs     []Arch
	Icon      string

	Overwrite bool
	Build     bool
	RunAfter  bool
	OpenAfter bool
	Verbose   bool

	// Port and DevTools configure the development shell launched when RunAfter is set.
	Port     int
	DevTools bool

	// Strict promotes a build in which no target succeeded into an error.
	Strict bool
}

// WithProject fills empty request fields from the project configuration.
// Explicit request values always win.
func (r ExportRequest) WithProject(p *ProjectConfig) ExportRequest {
	if p == nil {
		return r
	}
	if r.AppName == "" {
		r.AppName = p.Name
	}
	if r.AppType == "" {
		r.AppType = AppType(p.Type)
	}
	if len(r.Platforms) == 0 {
		for _, s := range p.Platforms {
			r.Platforms = append(r.Platforms, Platform(s))
		}
	}
	if len(r.Archs) == 0 {
		for _, s := range p.Archs {
			r.Archs = append(r.Archs, Arch(s))
		}
	}
	if r.Icon == "" && p.Icon != "" {
		r.Icon = p.Icon
		if !filepath.IsAbs(r.Icon) {
			r.Icon = filepath.Join(r.SourceDir, r.Icon)
		}
	}
	return r
}

// Normalize applies defaults that do not depend on configuration files.
// An empty name falls back to the source directory's base name, an empty type
// to DefaultAppType and empty target sets to the host platform and architecture.
func (r ExportRequest) Normalize() ExportRequest {
	if r.AppName == "" && r.SourceDir != "" {
		if abs, err := filepath.Abs(r.SourceDir); err == nil {
			r.AppName = filepath.Base(abs)
		}
	}
	if r.AppType == "" {
		r.AppType = DefaultAppType
	}
	if len(r.Platforms) == 0 {
		r.Platforms = []Platform{HostPlatform()}
	}
	if len(r.Archs) == 0 {
		r.Archs = []Arch{HostArch()}
	}
	if r.Port == 0 {
		r.Port = DefaultDevPort
	}
	return r
}

// ProjectConfig is the optional shinyelectron.yaml found in a source directory.
type ProjectConfig struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	Platforms []string `yaml:"platforms"`
	Archs     []string `yaml:"archs"`
	Icon      string   `yaml:"icon"`
}

// Settings holds tool-wide configuration.
type Settings struct {
	// CacheDir overrides the cache root. Empty means the user cache directory.
	CacheDir string
	// PackageManager is the command, split into words, used to install
	// dependencies and run manifest scripts, e.g. ["npm"] or ["pnpm", "--silent"].
	PackageManager []string
	// RVersion is the R runtime version bundled into r-shiny builds.
	RVersion string
	// DevPort is the default port for the development shell.
	DevPort int
	// LogFormat is "pretty" or "json".
	LogFormat string
	// Terminal selects how the development shell is attached: "auto", "pty" or "pipe".
	Terminal string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		PackageManager: []string{"npm"},
		RVersion:       DefaultRVersion,
		DevPort:        DefaultDevPort,
		LogFormat:      "pretty",
		Terminal:       "auto",
	}
}

// CacheScope selects which cache subtree to clear.
type CacheScope string

const (
	// CacheScopeAll clears the runtime and dependency caches.
	CacheScopeAll CacheScope = "all"
	// CacheScopeRuntime clears cached R runtimes.
	CacheScopeRuntime CacheScope = "runtime"
	// CacheScopeDeps clears the package manager cache.
	CacheScopeDeps CacheScope = "deps"
)

// ParseCacheScope accepts the scope names and their directory aliases ("r", "npm").
func ParseCacheScope(s string) (CacheScope, error) {
	switch s {
	case "", string(CacheScopeAll):
		return CacheScopeAll, nil
	case string(CacheScopeRuntime), RuntimeCacheDirName:
		return CacheScopeRuntime, nil
	case string(CacheScopeDeps), DependencyCacheDirName:
		return CacheScopeDeps, nil
	default:
		return "", fieldError(ErrInvalidCacheScope, "scope", "all, runtime (r), deps (npm)", s)
	}
}
