package tui

import (
	"strings"
	"testing"

	"github.com/blackcoderx/weburl/pkg/environment"
	"github.com/blackcoderx/weburl/pkg/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource() *meta.Catalog {
	return meta.NewCatalog().
		AddClass(&meta.Class{
			Name:          "UserController",
			QualifiedName: "com.acme.UserController",
			Annotations:   []meta.Annotation{{Name: "RestController"}},
			Methods: []meta.Method{
				{Name: "get", Annotations: []meta.Annotation{{Name: "GetMapping", Attributes: map[string]any{"value": "/users/{id}"}}}},
				{Name: "create", Annotations: []meta.Annotation{{Name: "PostMapping"}}},
				{Name: "helper", Annotations: []meta.Annotation{{Name: "Deprecated"}}},
			},
		}).
		AddClass(&meta.Class{Name: "UserRepository"})
}

func TestClassOptionsOnlyControllers(t *testing.T) {
	opts := ClassOptions(testSource())
	require.Len(t, opts, 1)
	assert.Equal(t, "UserController", opts[0].Key)
	assert.Equal(t, "com.acme.UserController", opts[0].Value)
}

func TestMethodOptions(t *testing.T) {
	class, ok := testSource().Class("UserController")
	require.True(t, ok)

	opts := MethodOptions(class)
	require.Len(t, opts, 3)
	assert.Equal(t, AllMethods, opts[0].Value)
	assert.Equal(t, "get", opts[1].Value)
	assert.Contains(t, opts[1].Key, "GET")
	assert.Equal(t, "create", opts[2].Value)
	assert.Contains(t, opts[2].Key, "POST")
}

func TestPickSelector(t *testing.T) {
	assert.Equal(t, "UserController", Pick{Class: "UserController"}.Selector())
	assert.Equal(t, "UserController#get", Pick{Class: "UserController", Method: "get"}.Selector())
}

func TestEndpointTable(t *testing.T) {
	out := EndpointTable([]EndpointRow{
		{Class: "UserController", Method: "get", Verb: "GET", Path: "/users/{id}"},
		{Class: "UserController", Method: "create", Verb: "POST", Path: "/users", HasBody: true},
		{Class: "OrderController", Method: "list", Verb: "GET", Path: "/orders"},
	})

	assert.Equal(t, 1, strings.Count(out, "UserController"))
	assert.Contains(t, out, "/users/{id}")
	assert.Contains(t, out, "OrderController")
	assert.Less(t, strings.Index(out, "UserController"), strings.Index(out, "OrderController"))
}

func TestEndpointTableEmpty(t *testing.T) {
	assert.Contains(t, EndpointTable(nil), "no endpoints")
}

func TestEnvironmentTableMarksActive(t *testing.T) {
	cfg := environment.NewConfig()
	staging := environment.New("staging", "staging.example.com", "/api", "https")
	cfg.Add(staging)
	require.True(t, cfg.SetActive(staging.ID))

	lines := strings.Split(EnvironmentTable(cfg), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], InactiveMarker))
	assert.Contains(t, lines[1], ActiveMarker+"staging")
	assert.Contains(t, lines[1], "https://staging.example.com")
}

func TestKeyValueTableSorted(t *testing.T) {
	out := KeyValueTable(map[string]string{"b": "2", "a": "1"})
	assert.Less(t, strings.Index(out, "a"), strings.Index(out, "b"))
	assert.Contains(t, KeyValueTable(nil), "none")
}

func TestHighlightArtifactEmpty(t *testing.T) {
	assert.Equal(t, "", HighlightArtifact("", "curl"))
}
