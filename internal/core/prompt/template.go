// Package prompt renders model instructions from text/template sources with
// the sprig function set, so operators can override prompts from config.
package prompt

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

type Template struct {
	name string
	tmpl *template.Template
}

// New parses text, or fallback when text is empty.
func New(name, text, fallback string) (*Template, error) {
	if text == "" {
		text = fallback
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s prompt: %w", name, err)
	}
	return &Template{name: name, tmpl: tmpl}, nil
}

func (t *Template) Name() string {
	return t.name
}

func (t *Template) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", t.name, err)
	}
	return buf.String(), nil
}
