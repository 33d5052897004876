// Package endpoint decides which classes and methods are HTTP endpoints and
// turns an endpoint method into an environment-independent Descriptor.
package endpoint

import (
	"log/slog"
	"strings"

	"github.com/blackcoderx/weburl/pkg/meta"
)

// Substring rule tables. Matching is case-sensitive and done on the qualified
// name, so "Path" matches both javax.ws.rs.Path and PathVariable-like names.
var (
	controllerAnnotationMarkers = []string{"Controller", "RestController", "Path"}
	controllerNameMarkers       = []string{"Controller", "Resource", "Api", "Endpoint"}
	controllerInterfaceMarkers  = []string{"Controller", "Resource", "Api"}
	requestAnnotationMarkers    = []string{"Mapping", "GET", "POST", "PUT", "DELETE", "PATCH", "Path"}
)

// IsController reports whether the class looks like a request controller.
// It never panics; malformed facts classify as false.
func IsController(class *meta.Class) (ok bool) {
	if class == nil {
		return false
	}
	defer recoverTo(&ok, false, "classify controller", class.Name)

	for _, a := range class.Annotations {
		if containsAny(a.Name, controllerAnnotationMarkers) {
			return true
		}
	}
	if containsAny(class.Name, controllerNameMarkers) {
		return true
	}
	for _, iface := range class.Interfaces {
		if containsAny(iface, controllerInterfaceMarkers) {
			return true
		}
	}
	return false
}

// IsRequestMethod reports whether a method of a (possibly) controller class
// handles requests. Methods outside controllers never do.
func IsRequestMethod(method *meta.Method, enclosingIsController bool) (ok bool) {
	if method == nil || !enclosingIsController {
		return false
	}
	defer recoverTo(&ok, false, "classify method", method.Name)

	// Un-annotated methods on a controller are treated as exposed.
	if len(method.Annotations) == 0 {
		return true
	}
	for _, a := range method.Annotations {
		if containsAny(a.Name, requestAnnotationMarkers) {
			return true
		}
	}
	return method.Public
}

// RequestMethods returns the request methods of a controller in declaration
// order, or nil when the class is not a controller.
func RequestMethods(class *meta.Class) []*meta.Method {
	if !IsController(class) {
		return nil
	}
	var methods []*meta.Method
	for i := range class.Methods {
		if IsRequestMethod(&class.Methods[i], true) {
			methods = append(methods, &class.Methods[i])
		}
	}
	return methods
}

func containsAny(s string, markers []string) bool {
	if s == "" {
		return false
	}
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// recoverTo turns a panic raised while reading host-supplied facts into a
// fallback result.
func recoverTo[T any](dst *T, fallback T, op, subject string) {
	if r := recover(); r != nil {
		slog.Debug("metadata inspection failed", "op", op, "subject", subject, "panic", r)
		*dst = fallback
	}
}
