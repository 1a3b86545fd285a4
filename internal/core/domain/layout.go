package domain

import "path/filepath"

const (
	// ShinyliveAppDirName is the destination subdirectory holding converted shinylive output.
	ShinyliveAppDirName = "shinylive-app"

	// ShinyAppDirName is the destination subdirectory holding a raw copy of a server-backed app.
	ShinyAppDirName = "shiny-app"

	// ElectronAppDirName is the destination subdirectory holding the packaging project.
	ElectronAppDirName = "electron-app"

	// SrcDirName is the scaffold directory the application is copied into.
	SrcDirName = "src"

	// AssetsDirName is the scaffold directory holding the icon and static assets.
	AssetsDirName = "assets"

	// BuildDirName is the scaffold directory for packager build resources.
	BuildDirName = "build"

	// DistDirName is the scaffold directory the packager writes distributables into.
	DistDirName = "dist"

	// RecordDirName is the destination subdirectory holding export metadata.
	RecordDirName = ".shinyelectron"

	// RecordFileName is the name of the export record file.
	RecordFileName = "export.json"

	// ProjectFileName is the optional per-project configuration file in the source directory.
	ProjectFileName = "shinyelectron.yaml"

	// ManifestFileName is the packaging project's manifest.
	ManifestFileName = "package.json"

	// EntryHTMLFileName is the entry point produced by the shinylive converter.
	EntryHTMLFileName = "index.html"

	// ShinyliveAssetsDirName is the runtime assets directory produced by the shinylive converter.
	ShinyliveAssetsDirName = "shinylive"

	// CacheAppDirName is the directory name under the user cache directory.
	CacheAppDirName = "shinyelectron"

	// RuntimeCacheDirName holds cached R runtimes.
	RuntimeCacheDirName = "r"

	// DependencyCacheDirName holds the package manager cache.
	DependencyCacheDirName = "npm"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// ScaffoldDirs lists the subdirectories created inside the packaging project.
var ScaffoldDirs = []string{SrcDirName, AssetsDirName, BuildDirName, DistDirName}

// ConvertedAppPath returns the destination subdirectory for the given application type.
func ConvertedAppPath(dest string, t AppType) string {
	if t.IsShinylive() {
		return filepath.Join(dest, ShinyliveAppDirName)
	}
	return filepath.Join(dest, ShinyAppDirName)
}

// ElectronAppPath returns the packaging project directory inside dest.
func ElectronAppPath(dest string) string {
	return filepath.Join(dest, ElectronAppDirName)
}

// RecordPath returns the path of the export record inside dest.
// It joins .shinyelectron and export.json.
func RecordPath(dest string) string {
	return filepath.Join(dest, RecordDirName, RecordFileName)
}
