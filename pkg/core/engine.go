// Package core wires classification, descriptor building, environment
// resolution and rendering into the per-method and per-class operations a
// host invokes.
package core

import (
	"strings"

	"github.com/blackcoderx/weburl/pkg/endpoint"
	"github.com/blackcoderx/weburl/pkg/environment"
	"github.com/blackcoderx/weburl/pkg/meta"
	"github.com/blackcoderx/weburl/pkg/render"
)

// Engine renders request artifacts for endpoint methods. It keeps no state
// between calls besides its type resolver and renderers.
type Engine struct {
	types     meta.TypeResolver
	renderers *render.Registry
}

// NewEngine creates an engine that resolves parameter types with types.
func NewEngine(types meta.TypeResolver) *Engine {
	return &Engine{types: types, renderers: render.NewRegistry()}
}

// RegisterRenderer adds a custom output format.
func (e *Engine) RegisterRenderer(r render.Renderer) {
	e.renderers.Register(r)
}

// Formats lists the available output formats.
func (e *Engine) Formats() []string {
	return e.renderers.Names()
}

// Describe builds the descriptor for a method, reporting false when the
// method is not a request method of a controller.
func (e *Engine) Describe(class *meta.Class, method *meta.Method) (endpoint.Descriptor, bool) {
	if !endpoint.IsRequestMethod(method, endpoint.IsController(class)) {
		return endpoint.Descriptor{}, false
	}
	return endpoint.Build(class, method, e.types), true
}

// Render renders one method against the active environment of cfg. The
// artifact is empty when the method is not an endpoint.
func (e *Engine) Render(format string, cfg *environment.Config, class *meta.Class, method *meta.Method) (string, error) {
	return e.RenderIn(format, cfg, cfg.Active(), class, method)
}

// RenderIn renders one method against an explicit environment.
func (e *Engine) RenderIn(format string, cfg *environment.Config, env environment.Environment, class *meta.Class, method *meta.Method) (string, error) {
	r, err := e.renderers.Get(format)
	if err != nil {
		return "", err
	}
	d, ok := e.Describe(class, method)
	if !ok {
		return "", nil
	}
	return strings.TrimSpace(r.Render(environment.ResolveIn(d, cfg, env))), nil
}

// RenderClass renders every request method of a controller as one aggregate
// artifact against the active environment.
func (e *Engine) RenderClass(format string, cfg *environment.Config, class *meta.Class) (string, error) {
	return e.RenderClassIn(format, cfg, cfg.Active(), class)
}

// RenderClassIn is RenderClass against an explicit environment.
func (e *Engine) RenderClassIn(format string, cfg *environment.Config, env environment.Environment, class *meta.Class) (string, error) {
	r, err := e.renderers.Get(format)
	if err != nil {
		return "", err
	}
	methods := endpoint.RequestMethods(class)
	if len(methods) == 0 {
		return "", nil
	}
	sections := make([]render.Section, 0, len(methods))
	for _, m := range methods {
		d := endpoint.Build(class, m, e.types)
		sections = append(sections, render.Section{
			Name:     m.Name,
			Artifact: strings.TrimSpace(r.Render(environment.ResolveIn(d, cfg, env))),
		})
	}
	return render.Aggregate(r, sections), nil
}

// RenderCurl renders a curl command for one method.
func (e *Engine) RenderCurl(cfg *environment.Config, class *meta.Class, method *meta.Method) string {
	return e.renderBuiltin(render.Curl, cfg, class, method)
}

// RenderPython renders a python-requests snippet for one method.
func (e *Engine) RenderPython(cfg *environment.Config, class *meta.Class, method *meta.Method) string {
	return e.renderBuiltin(render.Python, cfg, class, method)
}

// RenderURLPath renders the bare path for one method.
func (e *Engine) RenderURLPath(cfg *environment.Config, class *meta.Class, method *meta.Method) string {
	return e.renderBuiltin(render.URLPath, cfg, class, method)
}

// RenderFullURL renders the absolute URL for one method.
func (e *Engine) RenderFullURL(cfg *environment.Config, class *meta.Class, method *meta.Method) string {
	return e.renderBuiltin(render.FullURL, cfg, class, method)
}

// RenderRelativeURL renders the context-relative URL for one method.
func (e *Engine) RenderRelativeURL(cfg *environment.Config, class *meta.Class, method *meta.Method) string {
	return e.renderBuiltin(render.RelativeURL, cfg, class, method)
}

// RenderCurlClass renders curl commands for every endpoint of a class.
func (e *Engine) RenderCurlClass(cfg *environment.Config, class *meta.Class) string {
	return e.renderBuiltinClass(render.Curl, cfg, class)
}

// RenderPythonClass renders a python module with one function per endpoint.
func (e *Engine) RenderPythonClass(cfg *environment.Config, class *meta.Class) string {
	return e.renderBuiltinClass(render.Python, cfg, class)
}

// RenderURLPathClass renders the paths of every endpoint of a class.
func (e *Engine) RenderURLPathClass(cfg *environment.Config, class *meta.Class) string {
	return e.renderBuiltinClass(render.URLPath, cfg, class)
}

// RenderFullURLClass renders the absolute URLs of every endpoint of a class.
func (e *Engine) RenderFullURLClass(cfg *environment.Config, class *meta.Class) string {
	return e.renderBuiltinClass(render.FullURL, cfg, class)
}

// RenderRelativeURLClass renders the relative URLs of every endpoint of a class.
func (e *Engine) RenderRelativeURLClass(cfg *environment.Config, class *meta.Class) string {
	return e.renderBuiltinClass(render.RelativeURL, cfg, class)
}

// renderBuiltin is used with built-in formats only, which always resolve.
func (e *Engine) renderBuiltin(format string, cfg *environment.Config, class *meta.Class, method *meta.Method) string {
	out, _ := e.Render(format, cfg, class, method)
	return out
}

func (e *Engine) renderBuiltinClass(format string, cfg *environment.Config, class *meta.Class) string {
	out, _ := e.RenderClass(format, cfg, class)
	return out
}
