package endpoint

import (
	"testing"

	"github.com/blackcoderx/weburl/pkg/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userController() *meta.Class {
	return &meta.Class{
		Name:        "UserController",
		Annotations: []meta.Annotation{ann("RestController"), ann("RequestMapping", "value", "/api")},
		Methods: []meta.Method{
			{
				Name:        "getUser",
				Annotations: []meta.Annotation{ann("GetMapping", "value", "/users/{id}")},
				Parameters:  []meta.Parameter{{Name: "id", Type: "int"}},
			},
			{
				Name:        "search",
				Annotations: []meta.Annotation{ann("GetMapping", "value", "/users")},
				Parameters:  []meta.Parameter{{Name: "filter", Type: "Filter"}},
			},
			{
				Name:        "create",
				Annotations: []meta.Annotation{ann("PutMapping", "value", "/users")},
				Parameters:  []meta.Parameter{{Name: "order", Type: "OrderDto", Annotations: []meta.Annotation{ann("RequestBody")}}},
			},
			{
				Name:        "tag",
				Annotations: []meta.Annotation{ann("PostMapping", "value", "/tags", "consumes", []any{"application/json"})},
				Parameters:  []meta.Parameter{{Name: "name", Type: "String"}},
			},
			{
				Name:        "other",
				Annotations: []meta.Annotation{ann("DeleteMapping", "value", "/other")},
				Parameters:  []meta.Parameter{{Name: "raw", Type: "java.util.Map"}},
			},
		},
	}
}

func TestBuildScalarGet(t *testing.T) {
	class := userController()
	d := Build(class, &class.Methods[0], testTypes())

	assert.Equal(t, "getUser", d.Method)
	assert.Equal(t, GET, d.Verb)
	assert.Equal(t, GET, d.DeclaredVerb)
	assert.Equal(t, "/api/users/{id}", d.Path)
	assert.False(t, d.HasBody)
	assert.Equal(t, []Param{{Kind: Scalar, Name: "id", Value: "1"}}, d.QueryParams())
}

func TestBuildForcesPost(t *testing.T) {
	class := userController()

	flattened := Build(class, &class.Methods[1], testTypes())
	assert.Equal(t, GET, flattened.DeclaredVerb)
	assert.Equal(t, POST, flattened.Verb)
	assert.False(t, flattened.HasBody)

	body := Build(class, &class.Methods[2], testTypes())
	assert.Equal(t, PUT, body.DeclaredVerb)
	assert.Equal(t, POST, body.Verb)
	assert.True(t, body.HasBody)
	p, ok := body.Body()
	require.True(t, ok)
	assert.Equal(t, `{"name": "x", "qty": 1}`, p.Value)
	assert.Empty(t, body.QueryParams())

	// a skipped complex parameter leaves nothing to force POST
	skipped := Build(class, &class.Methods[4], testTypes())
	assert.Equal(t, DELETE, skipped.Verb)
	assert.Empty(t, skipped.Params)
}

func TestBuildConsumesJSON(t *testing.T) {
	class := userController()
	assert.True(t, Build(class, &class.Methods[3], testTypes()).JSONParams)
	assert.False(t, Build(class, &class.Methods[0], testTypes()).JSONParams)

	jaxrs := &meta.Method{
		Name:        "add",
		Annotations: []meta.Annotation{ann("javax.ws.rs.POST"), ann("javax.ws.rs.Consumes", "value", "MediaType.APPLICATION_JSON")},
	}
	assert.True(t, Build(&meta.Class{Name: "ItemResource"}, jaxrs, nil).JSONParams)
}

type panickingTypes struct{}

func (panickingTypes) Fields(string) ([]meta.Field, bool) {
	panic("resolver exploded")
}

func TestBuildRecoversFromHostPanics(t *testing.T) {
	class := userController()
	d := Build(class, &class.Methods[1], panickingTypes{})

	assert.Equal(t, "search", d.Method)
	assert.Equal(t, GET, d.Verb)
	assert.Equal(t, "/", d.Path)
	assert.Empty(t, d.Params)
}

func TestClassifyToleratesOddAttributes(t *testing.T) {
	// Attribute values of unexpected types must not break classification.
	m := &meta.Method{Name: "m", Annotations: []meta.Annotation{{Name: "RequestMapping", Attributes: map[string]any{"method": map[string]any{"x": 1}}}}}
	assert.True(t, IsRequestMethod(m, true))
	assert.Equal(t, GET, BuildVerb(m))
}
