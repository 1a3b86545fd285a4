package domain

import (
	"runtime"
	"strings"
)

// AppType identifies the kind of Shiny application being exported.
type AppType string

const (
	// AppTypeRShinylive is an R app converted to a serverless shinylive bundle.
	AppTypeRShinylive AppType = "r-shinylive"
	// AppTypePyShinylive is a Python app converted to a serverless shinylive bundle.
	AppTypePyShinylive AppType = "py-shinylive"
	// AppTypeRShiny is an R app shipped as-is and served by a bundled R runtime.
	AppTypeRShiny AppType = "r-shiny"
	// AppTypePyShiny is a Python app shipped as-is.
	AppTypePyShiny AppType = "py-shiny"
)

// DefaultAppType is used when neither the request nor the project configuration names a type.
const DefaultAppType = AppTypeRShinylive

// AppTypes lists every accepted application type.
var AppTypes = []AppType{AppTypeRShinylive, AppTypePyShinylive, AppTypeRShiny, AppTypePyShiny}

// IsShinylive reports whether the type is converted by shinylive rather than copied.
func (t AppType) IsShinylive() bool {
	return t == AppTypeRShinylive || t == AppTypePyShinylive
}

// IsR reports whether the application is written in R.
func (t AppType) IsR() bool {
	return t == AppTypeRShinylive || t == AppTypeRShiny
}

// Platform is a packaging target operating system.
type Platform string

const (
	// PlatformWin targets Windows.
	PlatformWin Platform = "win"
	// PlatformMac targets macOS.
	PlatformMac Platform = "mac"
	// PlatformLinux targets Linux.
	PlatformLinux Platform = "linux"
)

// Platforms lists every accepted platform.
var Platforms = []Platform{PlatformWin, PlatformMac, PlatformLinux}

// Arch is a packaging target CPU architecture.
type Arch string

const (
	// ArchX64 targets 64-bit x86.
	ArchX64 Arch = "x64"
	// ArchARM64 targets 64-bit ARM.
	ArchARM64 Arch = "arm64"
)

// Archs lists every accepted architecture.
var Archs = []Arch{ArchX64, ArchARM64}

// Target is a single (platform, arch) pair to build.
type Target struct {
	Platform Platform
	Arch     Arch
}

// String returns the target as "platform-arch".
func (t Target) String() string {
	return string(t.Platform) + "-" + string(t.Arch)
}

// Targets returns the cartesian product of platforms and archs in request order.
func Targets(platforms []Platform, archs []Arch) []Target {
	out := make([]Target, 0, len(platforms)*len(archs))
	for _, p := range platforms {
		for _, a := range archs {
			out = append(out, Target{Platform: p, Arch: a})
		}
	}
	return out
}

// PlatformFromOS maps a GOOS value to a packaging platform.
func PlatformFromOS(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformWin
	case "darwin":
		return PlatformMac
	default:
		return PlatformLinux
	}
}

// ArchFromMachine maps a machine architecture string to a packaging arch.
// Anything mentioning arm or aarch is arm64; everything else is x64.
func ArchFromMachine(machine string) Arch {
	m := strings.ToLower(machine)
	if strings.Contains(m, "arm") || strings.Contains(m, "aarch") {
		return ArchARM64
	}
	return ArchX64
}

// HostPlatform returns the platform of the running process.
func HostPlatform() Platform {
	return PlatformFromOS(runtime.GOOS)
}

// HostArch returns the architecture of the running process.
func HostArch() Arch {
	return ArchFromMachine(runtime.GOARCH)
}

// iconExtensions maps each platform to the icon format its packager expects.
var iconExtensions = map[Platform]string{
	PlatformWin:   "ico",
	PlatformMac:   "icns",
	PlatformLinux: "png",
}

// IconExtension returns the icon file extension required by the platform, without the dot.
func IconExtension(p Platform) string {
	return iconExtensions[p]
}

// artifactHints are extra filename fragments that identify a platform's distributables.
var artifactHints = map[Platform][]string{
	PlatformWin:   {"win", ".exe", ".msi"},
	PlatformMac:   {"mac", ".dmg", "darwin"},
	PlatformLinux: {"linux", ".appimage", ".deb"},
}

// MatchesPlatform reports whether a distributable file name belongs to the platform.
// Matching is a case-insensitive substring test.
func MatchesPlatform(fileName string, p Platform) bool {
	name := strings.ToLower(fileName)
	for _, hint := range artifactHints[p] {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}
