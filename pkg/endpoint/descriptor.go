package endpoint

import (
	"strings"

	"github.com/blackcoderx/weburl/pkg/meta"
)

// Descriptor is the normalized, environment-independent description of one
// endpoint.
type Descriptor struct {
	// Method is the declaring method's name.
	Method string
	// DeclaredVerb is the verb derived from annotations alone.
	DeclaredVerb Verb
	// Verb is the effective verb: POST whenever a body or flattened field
	// is present, DeclaredVerb otherwise.
	Verb Verb
	// Path always starts with "/" and has no repeated slashes.
	Path   string
	Params []Param
	// HasBody is true iff Params holds exactly one Body slot.
	HasBody bool
	// JSONParams marks non-body parameters that the endpoint consumes as JSON.
	JSONParams bool
}

// Body returns the JSON body slot if there is one.
func (d Descriptor) Body() (Param, bool) {
	for _, p := range d.Params {
		if p.Kind == Body {
			return p, true
		}
	}
	return Param{}, false
}

// QueryParams returns the scalar and flattened slots in order.
func (d Descriptor) QueryParams() []Param {
	var out []Param
	for _, p := range d.Params {
		if p.Kind != Body {
			out = append(out, p)
		}
	}
	return out
}

// Build derives the descriptor for a method of the given class. It does not
// classify; callers check IsRequestMethod first. Malformed facts degrade to
// a GET on "/" without parameters.
func Build(class *meta.Class, method *meta.Method, types meta.TypeResolver) (d Descriptor) {
	fallback := Descriptor{Method: methodName(method), DeclaredVerb: GET, Verb: GET, Path: "/"}
	defer recoverTo(&d, fallback, "build descriptor", methodName(method))

	d = Descriptor{
		Method:       methodName(method),
		DeclaredVerb: BuildVerb(method),
		Path:         BuildPath(class, method),
	}
	if method != nil {
		d.Params = Synthesize(method.Parameters, types)
		d.JSONParams = consumesJSON(method.Annotations)
	}

	d.Verb = d.DeclaredVerb
	for _, p := range d.Params {
		switch p.Kind {
		case Body:
			d.HasBody = true
			d.Verb = POST
		case Flattened:
			d.Verb = POST
		}
	}
	return d
}

// consumesJSON reports a mapping (or JAX-RS Consumes) annotation naming a
// JSON media type.
func consumesJSON(annotations []meta.Annotation) bool {
	for _, a := range annotations {
		var text string
		switch {
		case strings.Contains(a.Name, "Mapping"):
			text = a.Text("consumes")
		case isJAXRS(a.Name, "Consumes"):
			text = a.Text("value")
		default:
			continue
		}
		if strings.Contains(strings.ToLower(text), "json") {
			return true
		}
	}
	return false
}
