package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
)

// nodeShims are package manager entry points installed as .cmd scripts on Windows.
var nodeShims = map[string]struct{}{
	"npm":  {},
	"npx":  {},
	"pnpm": {},
	"yarn": {},
}

// executableName appends .cmd to node shims on Windows so they resolve without a shell.
func executableName(name, goos string) string {
	if goos != "windows" || filepath.Ext(name) != "" {
		return name
	}
	if _, ok := nodeShims[strings.ToLower(name)]; ok {
		return name + ".cmd"
	}
	return name
}

// resolveEnvironment overlays overrides on the system environment.
// The result is sorted so the same inputs always produce the same slice.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// resolveExecutable finds name using the PATH from env. Names containing a
// path separator are used as given.
func resolveExecutable(name string, env []string, goos string) (string, error) {
	if filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return name, nil
	}
	if goos == "windows" {
		return exec.LookPath(name)
	}
	return lookPath(name, env)
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
