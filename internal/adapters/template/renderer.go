// Package template materializes the packaging project skeleton for each application type.
package template

import (
	"embed"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/shinyelectron/internal/core/domain"
	"go.trai.ch/shinyelectron/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed templates
var embedded embed.FS

var _ ports.TemplateRenderer = (*Renderer)(nil)

// sectionPattern matches a has_icon section. A section whose tags sit on their own
// lines also consumes the line breaks after both tags.
var sectionPattern = regexp.MustCompile(`(?s)\{\{([#^])has_icon\}\}(\n?)(.*?)\{\{/has_icon\}\}(\n?)`)

// Renderer implements ports.TemplateRenderer over a set of template directories,
// one per application type.
type Renderer struct {
	sets iofs.FS
}

// NewRenderer returns a Renderer backed by the embedded template sets.
func NewRenderer() *Renderer {
	sets, err := iofs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return &Renderer{sets: sets}
}

// NewRendererFS returns a Renderer that reads template sets from fsys.
func NewRendererFS(fsys iofs.FS) *Renderer {
	return &Renderer{sets: fsys}
}

// Render writes the template set for data.AppType into outDir and copies the icon, if any,
// to assets/{icon_file}.
func (r *Renderer) Render(outDir string, data ports.TemplateData) error {
	set := string(data.AppType)
	if info, err := iofs.Stat(r.sets, set); err != nil || !info.IsDir() {
		return zerr.With(domain.ErrTemplateNotFound, "app_type", set)
	}

	err := iofs.WalkDir(r.sets, set, func(name string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := iofs.ReadFile(r.sets, name)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read template"), "template", name)
		}

		rel := strings.TrimPrefix(name, set+"/")
		target := filepath.Join(outDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(target))
		}
		//nolint:gosec // target is inside the packaging project
		if err := os.WriteFile(target, []byte(Expand(string(content), data)), domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write rendered template"), "path", target)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if data.HasIcon() {
		return copyIcon(data.Icon, filepath.Join(outDir, domain.AssetsDirName, data.IconFile()))
	}
	return nil
}

// Expand substitutes app_name, app_type, icon_file and the has_icon sections in content.
func Expand(content string, data ports.TemplateData) string {
	out := sectionPattern.ReplaceAllStringFunc(content, func(m string) string {
		sub := sectionPattern.FindStringSubmatch(m)
		body, trailing := sub[3], sub[4]
		if sub[2] == "\n" {
			trailing = ""
		}
		if (sub[1] == "#") == data.HasIcon() {
			return body + trailing
		}
		return trailing
	})
	out = strings.NewReplacer(
		"{{app_name}}", data.AppName,
		"{{app_type}}", string(data.AppType),
		"{{icon_file}}", data.IconFile(),
	).Replace(out)
	return out
}

func copyIcon(src, dst string) error {
	//nolint:gosec // icon path was validated by the caller
	in, err := os.Open(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIconNotFound.Error()), "path", src)
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create assets directory"), "path", filepath.Dir(dst))
	}
	//nolint:gosec // dst is inside the packaging project
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create icon"), "path", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy icon"), "path", dst)
	}
	return out.Close()
}
