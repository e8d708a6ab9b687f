// Package templates renders the Discord markdown bodies of the condition
// dialogs from embedded text/template files.
package templates

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
)

//go:embed dialogs/*.md.tmpl
var embeddedTemplates embed.FS

// Localizer resolves message keys inside templates
type Localizer interface {
	Localize(key string) string
}

// Renderer executes named templates
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded dialog templates
func NewRenderer(localizer Localizer) (*Renderer, error) {
	sub, err := fs.Sub(embeddedTemplates, "dialogs")
	if err != nil {
		return nil, err
	}
	return NewRendererFS(localizer, sub, "*.md.tmpl")
}

// NewRendererFS parses every template in fsys matching patterns. Templates
// are addressed by file name.
func NewRendererFS(localizer Localizer, fsys fs.FS, patterns ...string) (*Renderer, error) {
	if localizer == nil {
		return nil, apperr.InvalidArgument("localizer is required")
	}

	funcs := template.FuncMap{
		"localize": localizer.Localize,
		"join":     strings.Join,
	}

	tmpl, err := template.New("").
		Option("missingkey=error").
		Funcs(funcs).
		ParseFS(fsys, patterns...)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{templates: tmpl}, nil
}

// Render executes the template at path with data
func (r *Renderer) Render(ctx context.Context, path string, data any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpl := r.templates.Lookup(path)
	if tmpl == nil {
		return "", apperr.NotFoundf("template %s not found", path).WithMeta("template", path)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", apperr.Wrapf(err, "render %s", path)
	}

	return strings.TrimSpace(buf.String()), nil
}
