package render

import (
	"strings"

	"github.com/blackcoderx/weburl/pkg/endpoint"
	"github.com/blackcoderx/weburl/pkg/environment"
)

// PathRenderer renders the endpoint path without host, context path or
// parameters.
type PathRenderer struct{}

func (PathRenderer) Name() string        { return URLPath }
func (PathRenderer) Description() string { return "Endpoint path without leading slash" }

// Render strips one leading slash unless the path is exactly "/".
func (PathRenderer) Render(r environment.Resolved) string {
	if len(r.Path) > 1 && strings.HasPrefix(r.Path, "/") {
		return r.Path[1:]
	}
	return r.Path
}

// FullURLRenderer renders the absolute URL. GET requests without a body
// carry their parameters as a query string.
type FullURLRenderer struct{}

func (FullURLRenderer) Name() string        { return FullURL }
func (FullURLRenderer) Description() string { return "Absolute URL, with query string for GET" }

func (FullURLRenderer) Render(r environment.Resolved) string {
	if r.Verb == endpoint.GET && !r.HasBody && len(r.Params) > 0 {
		return r.URL + "?" + queryString(r.Params)
	}
	return r.URL
}

// RelativeURLRenderer renders context path + path. Parameters are appended
// for any verb unless the request has a body.
type RelativeURLRenderer struct{}

func (RelativeURLRenderer) Name() string        { return RelativeURL }
func (RelativeURLRenderer) Description() string { return "Context path, path and query string" }

func (RelativeURLRenderer) Render(r environment.Resolved) string {
	if !r.HasBody && len(r.Params) > 0 {
		return r.RelativePath + "?" + queryString(r.Params)
	}
	return r.RelativePath
}
