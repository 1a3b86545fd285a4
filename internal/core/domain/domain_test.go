package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shinyelectron/internal/core/domain"
)

func TestPlatformFromOS(t *testing.T) {
	assert.Equal(t, domain.PlatformWin, domain.PlatformFromOS("windows"))
	assert.Equal(t, domain.PlatformMac, domain.PlatformFromOS("darwin"))
	assert.Equal(t, domain.PlatformLinux, domain.PlatformFromOS("linux"))
	assert.Equal(t, domain.PlatformLinux, domain.PlatformFromOS("freebsd"))
}

func TestArchFromMachine(t *testing.T) {
	tests := map[string]domain.Arch{
		"arm64":   domain.ArchARM64,
		"aarch64": domain.ArchARM64,
		"armv7l":  domain.ArchARM64,
		"ARM64":   domain.ArchARM64,
		"amd64":   domain.ArchX64,
		"x86_64":  domain.ArchX64,
		"386":     domain.ArchX64,
	}
	for in, want := range tests {
		assert.Equal(t, want, domain.ArchFromMachine(in), in)
	}
}

func TestTargets(t *testing.T) {
	got := domain.Targets(
		[]domain.Platform{domain.PlatformWin, domain.PlatformMac},
		[]domain.Arch{domain.ArchX64, domain.ArchARM64},
	)
	require.Len(t, got, 4)
	assert.Equal(t, "win-x64", got[0].String())
	assert.Equal(t, "win-arm64", got[1].String())
	assert.Equal(t, "mac-x64", got[2].String())
	assert.Equal(t, "mac-arm64", got[3].String())
}

func TestMatchesPlatform(t *testing.T) {
	assert.True(t, domain.MatchesPlatform("demo-1.0.0-WIN-x64.zip", domain.PlatformWin))
	assert.True(t, domain.MatchesPlatform("demo Setup 1.0.0.exe", domain.PlatformWin))
	assert.True(t, domain.MatchesPlatform("demo-1.0.0.dmg", domain.PlatformMac))
	assert.True(t, domain.MatchesPlatform("demo-1.0.0.AppImage", domain.PlatformLinux))
	assert.False(t, domain.MatchesPlatform("demo-1.0.0.dmg", domain.PlatformLinux))
}

func TestBuildManifest_ScriptFor(t *testing.T) {
	m := &domain.BuildManifest{Scripts: map[string]string{
		"electron":        "electron .",
		"build-win":       "electron-builder --win",
		"build-mac-arm64": "electron-builder --mac --arm64",
	}}

	script, ok := m.ScriptFor(domain.Target{Platform: domain.PlatformWin, Arch: domain.ArchARM64})
	require.True(t, ok)
	assert.Equal(t, "build-win", script)

	script, ok = m.ScriptFor(domain.Target{Platform: domain.PlatformMac, Arch: domain.ArchARM64})
	require.True(t, ok)
	assert.Equal(t, "build-mac-arm64", script)

	_, ok = m.ScriptFor(domain.Target{Platform: domain.PlatformMac, Arch: domain.ArchX64})
	assert.False(t, ok)

	_, ok = m.ScriptFor(domain.Target{Platform: domain.PlatformLinux, Arch: domain.ArchX64})
	assert.False(t, ok)
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()

	_, err := domain.ReadManifest(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrManifestNotFound.Error())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{"), domain.FilePerm))
	_, err = domain.ReadManifest(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrManifestInvalid.Error())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"name":"demo","scripts":{"electron":"electron ."}}`), domain.FilePerm))
	m, err := domain.ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "demo", m.Name)
	assert.True(t, m.HasScript(domain.LaunchScript))
}

func TestExportRequest_Normalize(t *testing.T) {
	req := domain.ExportRequest{SourceDir: filepath.Join(t.TempDir(), "my-app")}.Normalize()

	assert.Equal(t, "my-app", req.AppName)
	assert.Equal(t, domain.AppTypeRShinylive, req.AppType)
	assert.Equal(t, []domain.Platform{domain.HostPlatform()}, req.Platforms)
	assert.Equal(t, []domain.Arch{domain.HostArch()}, req.Archs)
	assert.Equal(t, domain.DefaultDevPort, req.Port)
}

func TestExportRequest_WithProject(t *testing.T) {
	project := &domain.ProjectConfig{
		Name:      "from-yaml",
		Type:      "r-shiny",
		Platforms: []string{"mac"},
		Archs:     []string{"arm64"},
		Icon:      "icon.icns",
	}

	req := domain.ExportRequest{SourceDir: "/src", AppName: "explicit"}.WithProject(project)

	assert.Equal(t, "explicit", req.AppName)
	assert.Equal(t, domain.AppTypeRShiny, req.AppType)
	assert.Equal(t, []domain.Platform{domain.PlatformMac}, req.Platforms)
	assert.Equal(t, []domain.Arch{domain.ArchARM64}, req.Archs)
	assert.Equal(t, filepath.Join("/src", "icon.icns"), req.Icon)

	same := domain.ExportRequest{AppName: "x"}.WithProject(nil)
	assert.Equal(t, "x", same.AppName)
}

func TestParseCacheScope(t *testing.T) {
	tests := map[string]domain.CacheScope{
		"":        domain.CacheScopeAll,
		"all":     domain.CacheScopeAll,
		"runtime": domain.CacheScopeRuntime,
		"r":       domain.CacheScopeRuntime,
		"deps":    domain.CacheScopeDeps,
		"npm":     domain.CacheScopeDeps,
	}
	for in, want := range tests {
		got, err := domain.ParseCacheScope(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := domain.ParseCacheScope("everything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidCacheScope.Error())
}

func TestLayout(t *testing.T) {
	assert.Equal(t, filepath.Join("dst", "shinylive-app"), domain.ConvertedAppPath("dst", domain.AppTypeRShinylive))
	assert.Equal(t, filepath.Join("dst", "shiny-app"), domain.ConvertedAppPath("dst", domain.AppTypePyShiny))
	assert.Equal(t, filepath.Join("dst", "electron-app"), domain.ElectronAppPath("dst"))
	assert.Equal(t, filepath.Join("dst", ".shinyelectron", "export.json"), domain.RecordPath("dst"))
}
