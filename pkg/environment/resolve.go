package environment

import (
	"sort"
	"strings"

	"github.com/blackcoderx/weburl/pkg/endpoint"
)

// Header is one request header.
type Header struct {
	Key   string
	Value string
}

// Resolved is a descriptor merged with an environment: final URL parts,
// headers and parameter values.
type Resolved struct {
	Method string
	Verb   endpoint.Verb
	// Origin is protocol://host.
	Origin      string
	ContextPath string
	// Path is the descriptor path, independent of the context path.
	Path string
	// RelativePath is the context path joined with Path.
	RelativePath string
	// URL is Origin followed by RelativePath.
	URL string
	// Headers are sorted by key.
	Headers []Header
	// Params holds the scalar and flattened slots after default overrides.
	Params     []endpoint.Param
	Body       string
	HasBody    bool
	JSONParams bool
}

// Resolve merges a descriptor with the active environment of c.
func Resolve(d endpoint.Descriptor, c *Config) Resolved {
	return ResolveIn(d, c, c.Active())
}

// ResolveIn merges a descriptor with an explicit environment, using the
// headers and default parameters of c.
func ResolveIn(d endpoint.Descriptor, c *Config, env Environment) Resolved {
	relative := JoinPath(env.ContextPath, d.Path)
	r := Resolved{
		Method:       d.Method,
		Verb:         d.Verb,
		Origin:       env.Protocol + "://" + env.Host,
		ContextPath:  env.ContextPath,
		Path:         d.Path,
		RelativePath: relative,
		URL:          env.Protocol + "://" + env.Host + relative,
		Headers:      sortedHeaders(c.Headers),
		Params:       ApplyDefaults(d.QueryParams(), c.DefaultParameters),
		JSONParams:   d.JSONParams,
	}
	if body, ok := d.Body(); ok {
		r.Body, r.HasBody = body.Value, true
	}
	return r
}

// HasHeader reports a configured header, compared case-insensitively.
func (r Resolved) HasHeader(key string) bool {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Key, key) {
			return true
		}
	}
	return false
}

// ApplyDefaults replaces the synthesized value of every parameter that has a
// configured default. The input slice is not modified.
func ApplyDefaults(params []endpoint.Param, defaults map[string]string) []endpoint.Param {
	out := make([]endpoint.Param, len(params))
	for i, p := range params {
		if v, ok := defaults[p.Name]; ok && p.Kind != endpoint.Body {
			p.Value = v
		}
		out[i] = p
	}
	return out
}

// JoinPath appends path to contextPath with exactly one slash between them.
func JoinPath(contextPath, path string) string {
	ctxSlash := strings.HasSuffix(contextPath, "/")
	pathSlash := strings.HasPrefix(path, "/")
	switch {
	case ctxSlash && pathSlash:
		return contextPath + path[1:]
	case !ctxSlash && !pathSlash:
		return contextPath + "/" + path
	default:
		return contextPath + path
	}
}

func sortedHeaders(headers map[string]string) []Header {
	out := make([]Header, 0, len(headers))
	for k, v := range headers {
		out = append(out, Header{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
