package domain

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

var (
	validAppName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	validVersion = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
)

// fieldError attaches the offending field, the accepted values and the given value to a sentinel.
func fieldError(sentinel error, field, accepted string, value any) error {
	err := zerr.With(sentinel, "field", field)
	err = zerr.With(err, "accepted", accepted)
	return zerr.With(err, "value", value)
}

// ValidateAppName checks that name is non-empty and matches [A-Za-z0-9._-]+.
func ValidateAppName(name string) error {
	if name == "" {
		return zerr.With(ErrEmptyAppName, "field", "app_name")
	}
	if !validAppName.MatchString(name) {
		return fieldError(ErrInvalidAppName, "app_name", "[A-Za-z0-9._-]+", name)
	}
	return nil
}

// ValidateAppType checks that t is one of the supported application types.
func ValidateAppType(t AppType) error {
	if slices.Contains(AppTypes, t) {
		return nil
	}
	return fieldError(ErrInvalidAppType, "app_type", joinValues(AppTypes), string(t))
}

// ValidatePlatforms checks every platform against {win, mac, linux}.
func ValidatePlatforms(platforms []Platform) error {
	for _, p := range platforms {
		if !slices.Contains(Platforms, p) {
			return fieldError(ErrInvalidPlatform, "platform", joinValues(Platforms), string(p))
		}
	}
	return nil
}

// ValidateArchs checks every architecture against {x64, arm64}.
func ValidateArchs(archs []Arch) error {
	for _, a := range archs {
		if !slices.Contains(Archs, a) {
			return fieldError(ErrInvalidArch, "arch", joinValues(Archs), string(a))
		}
	}
	return nil
}

// ValidatePort checks that port lies in 1-65535.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fieldError(ErrInvalidPort, "port", "1-65535", port)
	}
	return nil
}

// ValidateVersion checks that v is a semantic version of the form X.Y.Z.
func ValidateVersion(v string) error {
	if !validVersion.MatchString(v) {
		return fieldError(ErrInvalidVersion, "version", "X.Y.Z", v)
	}
	return nil
}

// ValidateIcon checks that the icon exists and has the extension every requested platform requires.
func ValidateIcon(path string, platforms []Platform) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return zerr.With(zerr.With(ErrIconNotFound, "field", "icon"), "path", path)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, p := range platforms {
		want := IconExtension(p)
		if ext != want {
			err := fieldError(ErrIconFormatMismatch, "icon", "."+want+" for "+string(p), path)
			return zerr.With(err, "platform", string(p))
		}
	}
	return nil
}

// ValidateDirectory checks that path exists and is a directory.
func ValidateDirectory(field, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return zerr.With(zerr.With(ErrDirectoryNotFound, "field", field), "path", path)
	}
	return nil
}

// ValidateSeparateDirs checks that dest is neither src nor inside it, and that src is not
// inside dest. Symlinks are resolved; dest does not need to exist yet.
func ValidateSeparateDirs(src, dest string) error {
	a, err := resolvePath(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", src)
	}
	b, err := resolvePath(dest)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", dest)
	}
	if within(a, b) || within(b, a) {
		err := zerr.With(ErrDestinationOverlapsSource, "field", "dest_dir")
		err = zerr.With(err, "source_dir", src)
		return zerr.With(err, "path", dest)
	}
	return nil
}

// resolvePath returns the absolute, symlink-free form of path. Missing trailing
// elements are joined back onto their nearest existing ancestor.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	var missing []string
	for cur := abs; ; {
		resolved, err := filepath.EvalSymlinks(cur)
		if err == nil {
			return filepath.Join(append([]string{resolved}, missing...)...), nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return abs, nil
		}
		missing = append([]string{filepath.Base(cur)}, missing...)
		cur = parent
	}
}

// within reports whether path equals dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// ValidateProjectShape checks that dir holds the entry files for the application type.
// R apps need app.R, or ui.R together with server.R. Python apps need app.py.
func ValidateProjectShape(dir string, t AppType) error {
	if t.IsR() {
		if fileExists(filepath.Join(dir, "app.R")) {
			return nil
		}
		if fileExists(filepath.Join(dir, "ui.R")) && fileExists(filepath.Join(dir, "server.R")) {
			return nil
		}
		return fieldError(ErrInvalidProject, "source_dir", "app.R or ui.R and server.R", dir)
	}
	if fileExists(filepath.Join(dir, "app.py")) {
		return nil
	}
	return fieldError(ErrInvalidProject, "source_dir", "app.py", dir)
}

// Validate checks an export request. It touches the disk only to confirm the
// source directory, project shape and icon exist and to resolve symlinks.
func (r ExportRequest) Validate() error {
	if err := ValidateDirectory("source_dir", r.SourceDir); err != nil {
		return err
	}
	if r.DestDir == "" {
		return zerr.With(ErrDirectoryNotFound, "field", "dest_dir")
	}
	if err := ValidateSeparateDirs(r.SourceDir, r.DestDir); err != nil {
		return err
	}
	if err := ValidateAppName(r.AppName); err != nil {
		return err
	}
	if err := ValidateAppType(r.AppType); err != nil {
		return err
	}
	if err := ValidatePlatforms(r.Platforms); err != nil {
		return err
	}
	if err := ValidateArchs(r.Archs); err != nil {
		return err
	}
	if err := ValidatePort(r.Port); err != nil {
		return err
	}
	if r.Icon != "" {
		if err := ValidateIcon(r.Icon, r.Platforms); err != nil {
			return err
		}
	}
	return ValidateProjectShape(r.SourceDir, r.AppType)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Quote(string(v))
	}
	return strings.Join(parts, ", ")
}
