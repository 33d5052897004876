package render

import (
	"strings"

	"github.com/blackcoderx/weburl/pkg/endpoint"
	"github.com/blackcoderx/weburl/pkg/environment"
)

const (
	contentTypeHeader = "Content-Type"
	mimeJSON          = "application/json"
	mimeForm          = "application/x-www-form-urlencoded"
)

// CurlRenderer renders a shell curl command.
type CurlRenderer struct{}

func (CurlRenderer) Name() string        { return Curl }
func (CurlRenderer) Description() string { return "Shell curl command" }

func (CurlRenderer) Render(r environment.Resolved) string {
	parts := []string{"curl", "-X", string(r.Verb)}
	for _, h := range r.Headers {
		parts = append(parts, `-H "`+shellDouble(h.Key+": "+h.Value)+`"`)
	}

	url := r.URL
	if r.Verb == endpoint.GET && !r.HasBody && len(r.Params) > 0 {
		url += "?" + queryString(r.Params)
	}
	parts = append(parts, `"`+shellDouble(url)+`"`)

	// An explicitly configured Content-Type wins over the one implied by the body.
	contentType := func(mime string) {
		if !r.HasHeader(contentTypeHeader) {
			parts = append(parts, `-H "`+contentTypeHeader+": "+mime+`"`)
		}
	}

	switch {
	case r.HasBody:
		contentType(mimeJSON)
		parts = append(parts, "-d '"+shellSingle(r.Body)+"'")
	case len(r.Params) > 0 && r.Verb != endpoint.GET:
		if r.JSONParams {
			contentType(mimeJSON)
			parts = append(parts, "-d '"+shellSingle(jsonObject(r.Params))+"'")
		} else {
			contentType(mimeForm)
			parts = append(parts, `-d "`+shellDouble(queryString(r.Params))+`"`)
		}
	}
	return strings.Join(parts, " ")
}
