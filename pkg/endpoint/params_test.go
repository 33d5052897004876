package endpoint

import (
	"testing"

	"github.com/blackcoderx/weburl/pkg/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder(t *testing.T) {
	tests := map[string]string{
		"boolean":          "false",
		"Boolean":          "false",
		"int":              "1",
		"java.lang.Long":   "1",
		"Short":            "1",
		"byte":             "1",
		"double":           "1.0",
		"Float":            "1.0",
		"String":           "x",
		"java.lang.String": "x",
		"char":             "",
		"OrderDto":         "",
	}
	for typ, want := range tests {
		assert.Equal(t, want, Placeholder(typ), typ)
	}
}

func testTypes() *meta.Catalog {
	return meta.NewCatalog().
		AddType("OrderDto",
			meta.Field{Name: "name", Type: "String"},
			meta.Field{Name: "qty", Type: "int"},
			meta.Field{Name: "serialVersionUID", Type: "long", Static: true},
			meta.Field{Name: "cache", Type: "String", Transient: true},
		).
		AddType("Filter",
			meta.Field{Name: "limit", Type: "int"},
			meta.Field{Name: "query", Type: "String"},
		).
		AddType("Flags",
			meta.Field{Name: "limit", Type: "boolean"},
			meta.Field{Name: "active", Type: "Boolean"},
		).
		AddType("Outer",
			meta.Field{Name: "inner", Type: "Inner"},
			meta.Field{Name: "id", Type: "long"},
		).
		AddType("Inner",
			meta.Field{Name: "code", Type: "String"},
		).
		AddType("Node",
			meta.Field{Name: "next", Type: "Node"},
			meta.Field{Name: "value", Type: "int"},
		).
		AddType("Invoice",
			meta.Field{Name: "number", Type: "String"},
			meta.Field{Name: "customer", Type: "Inner"},
			meta.Field{Name: "paid", Type: "boolean"},
			meta.Field{Name: "grade", Type: "char"},
		)
}

func TestSynthesizeScalars(t *testing.T) {
	params := []meta.Parameter{
		{Name: "id", Type: "int"},
		{Name: "userId", Type: "String", Annotations: []meta.Annotation{ann("RequestParam", "value", "user_id")}},
		{Name: "page", Type: "Integer", Annotations: []meta.Annotation{ann("org.springframework.web.bind.annotation.RequestParam", "name", "p")}},
		{Name: "debug", Type: "boolean", Annotations: []meta.Annotation{ann("RequestParam", "value", "")}},
		{Name: "custom", Type: "Money", Primitive: true},
	}
	got := Synthesize(params, nil)
	assert.Equal(t, []Param{
		{Kind: Scalar, Name: "id", Value: "1"},
		{Kind: Scalar, Name: "user_id", Value: "x"},
		{Kind: Scalar, Name: "p", Value: "1"},
		{Kind: Scalar, Name: "debug", Value: "false"},
		{Kind: Scalar, Name: "custom", Value: ""},
	}, got)
}

func TestSynthesizeBody(t *testing.T) {
	params := []meta.Parameter{
		{Name: "order", Type: "com.acme.OrderDto", Annotations: []meta.Annotation{ann("RequestBody")}},
	}
	got := Synthesize(params, testTypes())
	require.Len(t, got, 1)
	assert.Equal(t, Body, got[0].Kind)
	assert.Equal(t, BodyParamName, got[0].Name)
	assert.Equal(t, `{"name": "x", "qty": 1}`, got[0].Value)
}

func TestSynthesizeSecondBodyReplacesFirst(t *testing.T) {
	params := []meta.Parameter{
		{Name: "a", Type: "OrderDto", Annotations: []meta.Annotation{ann("RequestBody")}},
		{Name: "id", Type: "int"},
		{Name: "b", Type: "Inner", Annotations: []meta.Annotation{ann("RequestBody")}},
	}
	got := Synthesize(params, testTypes())
	require.Len(t, got, 2)
	assert.Equal(t, Param{Kind: Body, Name: BodyParamName, Value: `{"code": "x"}`}, got[0])
	assert.Equal(t, "id", got[1].Name)
}

func TestBodyJSON(t *testing.T) {
	assert.Equal(t, `{"number": "x", "customer": {}, "paid": false, "grade": ""}`, BodyJSON("Invoice", testTypes()))
	assert.Equal(t, "{}", BodyJSON("Unknown", testTypes()))
	assert.Equal(t, "{}", BodyJSON("OrderDto", nil))
}

func TestSynthesizeFlattenCollisionLastWins(t *testing.T) {
	params := []meta.Parameter{
		{Name: "filter", Type: "Filter"},
		{Name: "flags", Type: "Flags"},
	}
	got := Synthesize(params, testTypes())
	assert.Equal(t, []Param{
		{Kind: Flattened, Name: "limit", Value: "false"},
		{Kind: Flattened, Name: "query", Value: "x"},
		{Kind: Flattened, Name: "active", Value: "false"},
	}, got)
}

func TestSynthesizeFlattenNestedAndCycles(t *testing.T) {
	got := Synthesize([]meta.Parameter{{Name: "o", Type: "Outer"}}, testTypes())
	assert.Equal(t, []Param{
		{Kind: Flattened, Name: "code", Value: "x"},
		{Kind: Flattened, Name: "id", Value: "1"},
	}, got)

	got = Synthesize([]meta.Parameter{{Name: "n", Type: "Node"}}, testTypes())
	assert.Equal(t, []Param{{Kind: Flattened, Name: "value", Value: "1"}}, got)
}

func TestSynthesizeSkipsPlatformAndUnknownTypes(t *testing.T) {
	params := []meta.Parameter{
		{Name: "headers", Type: "java.util.Map<String, String>"},
		{Name: "request", Type: "javax.servlet.http.HttpServletRequest"},
		{Name: "mystery", Type: "Mystery"},
		{Name: "v", Type: "void"},
	}
	assert.Empty(t, Synthesize(params, testTypes()))
}

func TestSynthesizeScalarOverwritesFlattened(t *testing.T) {
	params := []meta.Parameter{
		{Name: "filter", Type: "Filter"},
		{Name: "limit", Type: "String"},
	}
	got := Synthesize(params, testTypes())
	require.Len(t, got, 2)
	assert.Equal(t, Param{Kind: Scalar, Name: "limit", Value: "x"}, got[0])
}
