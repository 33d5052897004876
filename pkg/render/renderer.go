// Package render turns resolved requests into text artifacts: curl commands,
// python-requests snippets and URL strings.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blackcoderx/weburl/pkg/environment"
)

// Format names.
const (
	Curl        = "curl"
	Python      = "python"
	URLPath     = "path"
	FullURL     = "url"
	RelativeURL = "relative"
)

// ErrUnknownFormat is returned for a format no renderer is registered for.
var ErrUnknownFormat = errors.New("unknown format")

// Renderer renders one resolved request.
type Renderer interface {
	// Name returns the format name used to select the renderer.
	Name() string
	// Description returns a one-line human-readable summary.
	Description() string
	// Render returns the artifact for a single endpoint.
	Render(r environment.Resolved) string
}

// Aggregator is implemented by renderers that need a custom layout when
// several endpoints of one class are rendered together.
type Aggregator interface {
	Aggregate(sections []Section) string
}

// Section is one rendered endpoint inside an aggregate artifact.
type Section struct {
	Name     string
	Artifact string
}

// Registry maps format names to renderers.
type Registry struct {
	renderers map[string]Renderer
	order     []string
}

// NewRegistry returns a registry holding every built-in format.
func NewRegistry() *Registry {
	reg := &Registry{renderers: make(map[string]Renderer)}
	reg.Register(CurlRenderer{})
	reg.Register(PythonRenderer{})
	reg.Register(PathRenderer{})
	reg.Register(FullURLRenderer{})
	reg.Register(RelativeURLRenderer{})
	return reg
}

// Register adds or replaces a renderer.
func (reg *Registry) Register(r Renderer) {
	if _, exists := reg.renderers[r.Name()]; !exists {
		reg.order = append(reg.order, r.Name())
	}
	reg.renderers[r.Name()] = r
}

// Get returns the renderer for a format.
func (reg *Registry) Get(format string) (Renderer, error) {
	r, ok := reg.renderers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(reg.order, ", "))
	}
	return r, nil
}

// Names returns registered format names in registration order.
func (reg *Registry) Names() []string {
	return append([]string(nil), reg.order...)
}

// Aggregate lays out several sections with the renderer's own aggregator,
// or as "# name" headed blocks separated by a blank line.
func Aggregate(r Renderer, sections []Section) string {
	if a, ok := r.(Aggregator); ok {
		return a.Aggregate(sections)
	}
	var sb strings.Builder
	for _, s := range sections {
		sb.WriteString("# " + s.Name + "\n")
		sb.WriteString(s.Artifact + "\n\n")
	}
	return strings.TrimSpace(sb.String())
}
