package endpoint

import (
	"regexp"
	"strings"

	"github.com/blackcoderx/weburl/pkg/meta"
)

// Verb is an HTTP method.
type Verb string

const (
	GET    Verb = "GET"
	POST   Verb = "POST"
	PUT    Verb = "PUT"
	DELETE Verb = "DELETE"
	PATCH  Verb = "PATCH"
)

var slashRun = regexp.MustCompile(`/{2,}`)

// verbMappings maps verb-specific mapping annotations to their verb. Order
// matters only for names containing several markers.
var verbMappings = []struct {
	marker string
	verb   Verb
}{
	{"GetMapping", GET},
	{"PostMapping", POST},
	{"PutMapping", PUT},
	{"DeleteMapping", DELETE},
	{"PatchMapping", PATCH},
}

// methodKeywords is the scan order for a generic mapping's method attribute.
var methodKeywords = []Verb{GET, POST, PUT, DELETE, PATCH}

// BuildPath joins the class-level and method-level path fragments and
// normalizes the result. It never panics; malformed facts yield "/".
func BuildPath(class *meta.Class, method *meta.Method) (path string) {
	defer recoverTo(&path, "/", "build path", methodName(method))

	var classFragment, methodFragment string
	if class != nil {
		classFragment = pathFragment(class.Annotations)
	}
	if method != nil {
		methodFragment = pathFragment(method.Annotations)
	}
	return NormalizePath(classFragment + methodFragment)
}

// NormalizePath collapses repeated slashes and guarantees a leading slash.
// The empty path normalizes to "/".
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}
	path = slashRun.ReplaceAllString(path, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// pathFragment returns the path declared by the first mapping or JAX-RS Path
// annotation that carries one.
func pathFragment(annotations []meta.Annotation) string {
	for _, a := range annotations {
		if a.Name == "" {
			continue
		}
		if strings.Contains(a.Name, "Mapping") {
			for _, attr := range []string{"value", "path"} {
				if v, ok := a.FirstString(attr); ok {
					return v
				}
			}
		}
		if isJAXRS(a.Name, "Path") {
			if v, ok := a.FirstString("value"); ok {
				return v
			}
		}
	}
	return ""
}

// BuildVerb derives the declared verb from the method's annotations. The
// first annotation that decides wins; GET is the default.
func BuildVerb(method *meta.Method) (verb Verb) {
	if method == nil {
		return GET
	}
	defer recoverTo(&verb, GET, "build verb", method.Name)

	for _, a := range method.Annotations {
		if a.Name == "" {
			continue
		}
		if v, ok := mappingVerb(a); ok {
			return v
		}
		for _, v := range methodKeywords {
			if isJAXRS(a.Name, string(v)) {
				return v
			}
		}
	}
	return GET
}

func mappingVerb(a meta.Annotation) (Verb, bool) {
	for _, m := range verbMappings {
		if strings.Contains(a.Name, m.marker) {
			return m.verb, true
		}
	}
	if !strings.Contains(a.Name, "RequestMapping") {
		return "", false
	}
	text := a.Text("method")
	for _, v := range methodKeywords {
		if strings.Contains(text, string(v)) {
			return v, true
		}
	}
	return "", false
}

// isJAXRS reports whether name is the JAX-RS annotation with the given simple name.
func isJAXRS(name, simple string) bool {
	return name == "javax.ws.rs."+simple || name == "jakarta.ws.rs."+simple
}

func methodName(m *meta.Method) string {
	if m == nil {
		return ""
	}
	return m.Name
}
