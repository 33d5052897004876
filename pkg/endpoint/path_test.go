package endpoint

import (
	"strings"
	"testing"

	"github.com/blackcoderx/weburl/pkg/meta"
)

func TestBuildPath(t *testing.T) {
	tests := []struct {
		name   string
		class  []meta.Annotation
		method []meta.Annotation
		want   string
	}{
		{"class and method", []meta.Annotation{ann("RequestMapping", "value", "/api")}, []meta.Annotation{ann("GetMapping", "value", "/users/{id}")}, "/api/users/{id}"},
		{"path attribute", nil, []meta.Annotation{ann("PostMapping", "path", "/orders")}, "/orders"},
		{"list value", nil, []meta.Annotation{ann("GetMapping", "value", []any{"/a", "/b"})}, "/a"},
		{"missing slashes", []meta.Annotation{ann("RequestMapping", "value", "api")}, []meta.Annotation{ann("GetMapping", "value", "users")}, "/apiusers"},
		{"double slash", []meta.Annotation{ann("RequestMapping", "value", "/api/")}, []meta.Annotation{ann("GetMapping", "value", "/users")}, "/api/users"},
		{"jax-rs", []meta.Annotation{ann("javax.ws.rs.Path", "value", "/v1")}, []meta.Annotation{ann("jakarta.ws.rs.Path", "value", "items")}, "/v1items"},
		{"no fragments", nil, []meta.Annotation{ann("GetMapping")}, "/"},
		{"quoted value", nil, []meta.Annotation{ann("GetMapping", "value", `"/q"`)}, "/q"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class := &meta.Class{Name: "X", Annotations: tt.class}
			method := &meta.Method{Name: "m", Annotations: tt.method}
			if got := BuildPath(class, method); got != tt.want {
				t.Errorf("BuildPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	inputs := []string{"", "/", "//", "a", "/a//b///c", "a/b/", "///x"}
	for _, in := range inputs {
		got := NormalizePath(in)
		if !strings.HasPrefix(got, "/") {
			t.Errorf("NormalizePath(%q) = %q, want leading slash", in, got)
		}
		if strings.Contains(got, "//") {
			t.Errorf("NormalizePath(%q) = %q, has repeated slash", in, got)
		}
		if again := NormalizePath(got); again != got {
			t.Errorf("NormalizePath not idempotent: %q -> %q -> %q", in, got, again)
		}
	}
	if got := NormalizePath("/a//b"); got != "/a/b" {
		t.Errorf("NormalizePath(/a//b) = %q", got)
	}
}

func TestBuildVerb(t *testing.T) {
	tests := []struct {
		name string
		ann  []meta.Annotation
		want Verb
	}{
		{"none", nil, GET},
		{"get mapping", []meta.Annotation{ann("org.springframework.web.bind.annotation.GetMapping")}, GET},
		{"post mapping", []meta.Annotation{ann("PostMapping")}, POST},
		{"put mapping", []meta.Annotation{ann("PutMapping")}, PUT},
		{"delete mapping", []meta.Annotation{ann("DeleteMapping")}, DELETE},
		{"patch mapping", []meta.Annotation{ann("PatchMapping")}, PATCH},
		{"request mapping with method", []meta.Annotation{ann("RequestMapping", "method", []any{"RequestMethod.PUT"})}, PUT},
		{"request mapping first keyword wins", []meta.Annotation{ann("RequestMapping", "method", "RequestMethod.POST, RequestMethod.GET")}, GET},
		{"request mapping without method", []meta.Annotation{ann("RequestMapping", "value", "/x")}, GET},
		{"javax delete", []meta.Annotation{ann("javax.ws.rs.DELETE")}, DELETE},
		{"jakarta patch", []meta.Annotation{ann("jakarta.ws.rs.PATCH")}, PATCH},
		{"unrelated first", []meta.Annotation{ann("Deprecated"), ann("PostMapping")}, POST},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildVerb(&meta.Method{Name: "m", Annotations: tt.ann}); got != tt.want {
				t.Errorf("BuildVerb() = %s, want %s", got, tt.want)
			}
		})
	}
}
