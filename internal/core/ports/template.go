package ports

import (
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/shinyelectron/internal/core/domain"
)

// TemplateData is the closed set of variables available to templates.
type TemplateData struct {
	AppName string
	AppType domain.AppType
	// Icon is the source icon path. Empty means no icon.
	Icon string
}

// HasIcon reports whether an icon was supplied.
func (d TemplateData) HasIcon() bool {
	return d.Icon != ""
}

// IconFile is the name of the icon inside the assets directory: "icon" plus the
// lowercased extension of Icon. It is empty when no icon was supplied.
func (d TemplateData) IconFile() string {
	if !d.HasIcon() {
		return ""
	}
	return "icon" + strings.ToLower(path.Ext(filepath.ToSlash(d.Icon)))
}

// TemplateRenderer materializes a packaging project skeleton.
//
//go:generate mockgen -source=template.go -destination=mocks/mock_template.go -package=mocks
type TemplateRenderer interface {
	// Render writes the template set for data.AppType into outDir.
	Render(outDir string, data TemplateData) error
}
