package generator

import (
	"bytes"
	"fmt"
	"io/fs"
	"sync"
	"text/template"
)

// Renderer handles template parsing and rendering with caching
type Renderer struct {
	leftDelim  string
	rightDelim string
	cache      map[string]*template.Template
	mu         sync.RWMutex // Protect cache for concurrent access
}

// Option configures a Renderer
type Option func(*Renderer)

// WithDelims sets the action delimiters. Use this when the generated text
// itself is full of "{{" and "}}", as JSX is.
func WithDelims(left, right string) Option {
	return func(r *Renderer) {
		r.leftDelim = left
		r.rightDelim = right
	}
}

// NewRenderer creates a renderer with an empty template cache
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		cache: make(map[string]*template.Template),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderFS renders a template read from fsys (usually an embed.FS).
// Templates are cached by path, so fsys is assumed not to change.
func (r *Renderer) RenderFS(fsys fs.FS, path string, data any) ([]byte, error) {
	tmpl, err := r.lookup(path, func() (*template.Template, error) {
		templateBytes, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read template from fs '%s': %w", path, err)
		}
		return r.parse(path, string(templateBytes))
	})
	if err != nil {
		return nil, err
	}
	return r.executeTemplate(tmpl, data)
}

// lookup returns the cached template for key, loading and caching it on a miss
func (r *Renderer) lookup(key string, load func() (*template.Template, error)) (*template.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	tmpl, err := load()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[key] = tmpl
	r.mu.Unlock()

	return tmpl, nil
}

func (r *Renderer) parse(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).
		Delims(r.leftDelim, r.rightDelim).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", name, err)
	}
	return tmpl, nil
}

// executeTemplate executes a parsed template with the given data
func (r *Renderer) executeTemplate(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template '%s': %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}
