package domain

import "time"

// Stage names the phases of an export.
type Stage string

const (
	// StageValidate checks the request before any side effect.
	StageValidate Stage = "validate"
	// StageConvert produces the converted or copied application.
	StageConvert Stage = "convert"
	// StageBuild assembles and packages the electron project.
	StageBuild Stage = "build"
	// StageRun launches the development shell.
	StageRun Stage = "run"
	// StageOpen reveals the destination in the file browser.
	StageOpen Stage = "open"
)

// StageResult is the outcome of a single stage.
type StageResult struct {
	Stage     Stage
	OutputDir string
	Success   bool
	Message   string
}

// TargetStatus is the outcome of building a single target.
type TargetStatus string

const (
	// TargetBuilt means the build script exited successfully.
	TargetBuilt TargetStatus = "built"
	// TargetFailed means the build script exited with an error.
	TargetFailed TargetStatus = "failed"
	// TargetSkipped means no build script exists for the target.
	TargetSkipped TargetStatus = "skipped"
)

// TargetResult records what happened to one (platform, arch) target.
type TargetResult struct {
	Target  Target
	Script  string
	Status  TargetStatus
	Message string
}

// BuildResult is the output of the build stage.
type BuildResult struct {
	ProjectDir string
	Targets    []TargetResult
	Artifacts  []string
	Warnings   []string
}

// Built returns the number of targets whose build script succeeded.
func (b *BuildResult) Built() int {
	n := 0
	for _, t := range b.Targets {
		if t.Status == TargetBuilt {
			n++
		}
	}
	return n
}

// ExportResult is returned by a successful export.
type ExportResult struct {
	RunID         string
	ConvertedPath string
	ElectronPath  string
	SourceHash    string
	Build         *BuildResult
	Stages        []StageResult
}

// ExportRecord is persisted in the destination after a build.
type ExportRecord struct {
	RunID      string    `json:"run_id"`
	AppName    string    `json:"app_name"`
	AppType    AppType   `json:"app_type"`
	Platforms  []string  `json:"platforms"`
	Archs      []string  `json:"archs"`
	SourceHash string    `json:"source_hash"`
	Artifacts  []string  `json:"artifacts"`
	Warnings   []string  `json:"warnings,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
