package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyAppName is returned when the application name is empty.
	ErrEmptyAppName = zerr.New("application name must not be empty")

	// ErrInvalidAppName is returned when the application name contains characters outside [A-Za-z0-9._-].
	ErrInvalidAppName = zerr.New("application name can only contain letters, digits, dots, hyphens and underscores")

	// ErrInvalidAppType is returned when the application type is not one of the supported types.
	ErrInvalidAppType = zerr.New("invalid application type")

	// ErrInvalidPlatform is returned when a target platform is not supported.
	ErrInvalidPlatform = zerr.New("invalid platform")

	// ErrInvalidArch is returned when a target architecture is not supported.
	ErrInvalidArch = zerr.New("invalid architecture")

	// ErrInvalidPort is returned when a port is outside 1-65535.
	ErrInvalidPort = zerr.New("port must be between 1 and 65535")

	// ErrInvalidVersion is returned when a version string is not in X.Y.Z form.
	ErrInvalidVersion = zerr.New("version must be in X.Y.Z format")

	// ErrIconNotFound is returned when the icon file does not exist.
	ErrIconNotFound = zerr.New("icon file not found")

	// ErrIconFormatMismatch is returned when the icon extension does not match the target platform.
	ErrIconFormatMismatch = zerr.New("icon format does not match platform")

	// ErrDirectoryNotFound is returned when a required directory does not exist.
	ErrDirectoryNotFound = zerr.New("directory not found")

	// ErrInvalidProject is returned when the source directory does not have the expected entry files.
	ErrInvalidProject = zerr.New("source directory is not a valid shiny application")

	// ErrDestinationExists is returned when the destination is not empty and overwrite was not requested.
	ErrDestinationExists = zerr.New("destination directory already exists and is not empty")

	// ErrDestinationOverlapsSource is returned when the destination is the source directory or nests with it.
	ErrDestinationOverlapsSource = zerr.New("destination directory must be separate from the source directory")

	// ErrInvalidCacheScope is returned when a cache clear scope is not recognized.
	ErrInvalidCacheScope = zerr.New("invalid cache scope")

	// ErrConversionOutput is returned when the conversion tool ran but an expected artifact is missing.
	ErrConversionOutput = zerr.New("conversion output is incomplete")

	// ErrOutputValidation is returned when the build produced no distributable output directory.
	ErrOutputValidation = zerr.New("build output validation failed")

	// ErrNoTargetsBuilt is returned in strict mode when every requested target failed or was skipped.
	ErrNoTargetsBuilt = zerr.New("no targets were built")

	// ErrSubprocessFailed is returned when an external tool exits with a non-zero status.
	ErrSubprocessFailed = zerr.New("external command failed")

	// ErrTemplateNotFound is returned when no template set exists for an application type.
	ErrTemplateNotFound = zerr.New("template set not found")

	// ErrNotImplemented is returned for application types that are declared but not supported.
	ErrNotImplemented = zerr.New("not implemented")

	// ErrLaunchFailed is returned when the development shell exits with a non-zero status.
	ErrLaunchFailed = zerr.New("electron app exited with an error")

	// ErrManifestNotFound is returned when the packaging project has no package.json.
	ErrManifestNotFound = zerr.New("package.json not found")

	// ErrManifestInvalid is returned when package.json cannot be parsed.
	ErrManifestInvalid = zerr.New("package.json is not valid")

	// ErrLaunchScriptMissing is returned when package.json does not define an "electron" script.
	ErrLaunchScriptMissing = zerr.New("package.json does not define an electron script")

	// ErrToolNotFound is returned when a required external tool is not on PATH.
	ErrToolNotFound = zerr.New("required tool not found")

	// ErrToolPackageMissing is returned when the R shinylive package is not installed.
	ErrToolPackageMissing = zerr.New("required R package not installed")

	// ErrExportFailed wraps every failure surfaced by the export pipeline.
	ErrExportFailed = zerr.New("export failed")

	// ErrRecordReadFailed is returned when the export record cannot be read.
	ErrRecordReadFailed = zerr.New("failed to read export record")

	// ErrRecordUnmarshalFailed is returned when the export record cannot be decoded.
	ErrRecordUnmarshalFailed = zerr.New("failed to unmarshal export record")

	// ErrRecordMarshalFailed is returned when the export record cannot be encoded.
	ErrRecordMarshalFailed = zerr.New("failed to marshal export record")

	// ErrRecordWriteFailed is returned when the export record cannot be written.
	ErrRecordWriteFailed = zerr.New("failed to write export record")

	// ErrRecordNotFound is returned when a destination has no export record.
	ErrRecordNotFound = zerr.New("no export record found")

	// ErrConfigReadFailed is returned when a configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration")

	// ErrConfigParseFailed is returned when a configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse configuration")

	// ErrInvalidPackageManager is returned when the package manager command is empty or malformed.
	ErrInvalidPackageManager = zerr.New("invalid package manager command")
)
