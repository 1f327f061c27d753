package templating

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/template"
)

// Data is the value a format template is executed with.
type Data struct {
	Index int    // zero-based position of the name in the output
	Name  string // the generated name
}

// Number is the one-based position of the name.
func (d Data) Number() int {
	return d.Index + 1
}

// Renderer executes a format template for generated names.
type Renderer struct {
	config TemplateConfig
	tmpl   *template.Template
	mu     sync.RWMutex
}

// NewRenderer parses config.Format and returns a Renderer for it.
func NewRenderer(config TemplateConfig) (*Renderer, error) {
	r := &Renderer{}
	if err := r.SetConfig(config); err != nil {
		return nil, err
	}
	return r, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"upper":   strings.ToUpper,
		"lower":   strings.ToLower,
		"title":   title,
		"reverse": reverse,
		"pad":     padRight,
		"repeat":  repeat,
		"runes":   runeLen,
		"add":     add,
		"sub":     sub,
		"inc":     inc,
	}
}

// SetConfig replaces the renderer's configuration. If the new format does
// not parse, the old configuration is kept and the error returned.
func (r *Renderer) SetConfig(config TemplateConfig) error {
	format := config.Format
	if format == "" {
		format = DefaultFormat
	}
	tmpl, err := template.New("format").Funcs(funcMap()).Option("missingkey=error").Parse(format)
	if err != nil {
		return fmt.Errorf("failed to parse format template: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = config
	r.tmpl = tmpl
	return nil
}

// GetConfig returns a copy of the current configuration.
func (r *Renderer) GetConfig() TemplateConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.config
}

// Execute writes the rendered name followed by the configured separator.
func (r *Renderer) Execute(w io.Writer, data Data) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render %q: %w", data.Name, err)
	}
	_, err := io.WriteString(w, r.config.Separator)
	return err
}

// Render returns the rendered name without the separator.
func (r *Renderer) Render(data Data) (string, error) {
	var buf bytes.Buffer
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %q: %w", data.Name, err)
	}
	return buf.String(), nil
}
