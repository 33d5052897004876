package endpoint

import (
	"strings"

	"github.com/blackcoderx/weburl/pkg/meta"
)

// Kind tags how a parameter slot is carried in a request.
type Kind int

const (
	// Scalar is a primitive, boxed primitive or string parameter.
	Scalar Kind = iota
	// Flattened is a leaf field pulled out of a complex non-body parameter.
	Flattened
	// Body is the synthesized JSON request body.
	Body
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Flattened:
		return "flattened"
	case Body:
		return "body"
	default:
		return "unknown"
	}
}

// Param is one synthesized request parameter. For Body slots Name is "body"
// and Value holds the JSON object literal.
type Param struct {
	Kind  Kind
	Name  string
	Value string
}

// BodyParamName is the name given to the synthesized JSON body slot.
const BodyParamName = "body"

// maxFlattenDepth bounds recursion through nested complex fields.
const maxFlattenDepth = 16

type scalarClass int

const (
	notScalar scalarClass = iota
	boolScalar
	integralScalar
	floatScalar
	charScalar
	stringScalar
)

var scalarTypes = map[string]scalarClass{
	"boolean":   boolScalar,
	"Boolean":   boolScalar,
	"int":       integralScalar,
	"Integer":   integralScalar,
	"long":      integralScalar,
	"Long":      integralScalar,
	"short":     integralScalar,
	"Short":     integralScalar,
	"byte":      integralScalar,
	"Byte":      integralScalar,
	"double":    floatScalar,
	"Double":    floatScalar,
	"float":     floatScalar,
	"Float":     floatScalar,
	"char":      charScalar,
	"Character": charScalar,
	"String":    stringScalar,
}

func classifyType(typeName string) scalarClass {
	name := strings.TrimPrefix(strings.TrimSpace(typeName), "java.lang.")
	return scalarTypes[name]
}

// IsScalarType reports whether typeName is a primitive, boxed primitive or string.
func IsScalarType(typeName string) bool {
	return classifyType(typeName) != notScalar
}

// Placeholder returns the synthesized value for a scalar type: "false" for
// booleans, "1" for integral types, "1.0" for floating types, "x" for strings
// and "" for anything else.
func Placeholder(typeName string) string {
	switch classifyType(typeName) {
	case boolScalar:
		return "false"
	case integralScalar:
		return "1"
	case floatScalar:
		return "1.0"
	case stringScalar:
		return "x"
	default:
		return ""
	}
}

// Synthesize turns declared parameters into request parameter slots.
//
// Scalar parameters keep their (possibly annotation-overridden) name. Request
// bodies become a single Body slot. Other complex parameters are flattened
// into their leaf fields keyed by field name; a later key overwrites the value
// of an earlier one but keeps its position.
func Synthesize(params []meta.Parameter, types meta.TypeResolver) []Param {
	s := &slotSet{index: make(map[string]int)}
	for _, p := range params {
		switch {
		case p.Primitive || IsScalarType(p.Type):
			s.put(Param{Kind: Scalar, Name: requestParamName(p), Value: Placeholder(p.Type)})
		case isRequestBody(p):
			s.putBody(BodyJSON(p.Type, types))
		case skipComplex(p.Type):
			continue
		default:
			for _, f := range flatten(p.Type, types, 0, map[string]bool{}) {
				s.put(Param{Kind: Flattened, Name: f.Name, Value: Placeholder(f.Type)})
			}
		}
	}
	return s.slots
}

// slotSet is an insertion-ordered parameter map with last-writer-wins values.
type slotSet struct {
	slots []Param
	index map[string]int
	body  int
	has   bool
}

func (s *slotSet) put(p Param) {
	if i, ok := s.index[p.Name]; ok {
		s.slots[i] = p
		return
	}
	s.index[p.Name] = len(s.slots)
	s.slots = append(s.slots, p)
}

func (s *slotSet) putBody(json string) {
	p := Param{Kind: Body, Name: BodyParamName, Value: json}
	if s.has {
		s.slots[s.body] = p
		return
	}
	s.body, s.has = len(s.slots), true
	s.slots = append(s.slots, p)
}

// requestParamName prefers a non-empty value/name attribute of a
// RequestParam-style annotation over the declared name.
func requestParamName(p meta.Parameter) string {
	for _, a := range p.Annotations {
		if !strings.HasSuffix(a.Name, "RequestParam") {
			continue
		}
		for _, attr := range []string{"value", "name"} {
			if v, ok := a.FirstString(attr); ok && v != "" {
				return v
			}
		}
	}
	return p.Name
}

func isRequestBody(p meta.Parameter) bool {
	for _, a := range p.Annotations {
		if strings.HasSuffix(a.Name, "RequestBody") {
			return true
		}
	}
	return false
}

// skipComplex reports platform types that are never flattened.
func skipComplex(typeName string) bool {
	name := strings.TrimSpace(typeName)
	return name == "" || name == "void" || strings.HasPrefix(name, "java.")
}

// instanceFields drops static and transient fields.
func instanceFields(typeName string, types meta.TypeResolver) ([]meta.Field, bool) {
	if types == nil {
		return nil, false
	}
	fields, ok := types.Fields(typeName)
	if !ok {
		return nil, false
	}
	out := make([]meta.Field, 0, len(fields))
	for _, f := range fields {
		if f.Static || f.Transient {
			continue
		}
		out = append(out, f)
	}
	return out, true
}

// flatten collects the scalar leaf fields of a type depth first.
func flatten(typeName string, types meta.TypeResolver, depth int, visiting map[string]bool) []meta.Field {
	if depth > maxFlattenDepth || visiting[typeName] {
		return nil
	}
	fields, ok := instanceFields(typeName, types)
	if !ok {
		return nil
	}
	visiting[typeName] = true
	defer delete(visiting, typeName)

	var leaves []meta.Field
	for _, f := range fields {
		if IsScalarType(f.Type) {
			leaves = append(leaves, f)
			continue
		}
		leaves = append(leaves, flatten(f.Type, types, depth+1, visiting)...)
	}
	return leaves
}

// BodyJSON synthesizes a JSON object literal for a request body type. Nested
// complex fields become {}; an unresolvable type yields "{}".
func BodyJSON(typeName string, types meta.TypeResolver) string {
	fields, ok := instanceFields(typeName, types)
	if !ok {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{")
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(`"` + f.Name + `": `)
		switch classifyType(f.Type) {
		case stringScalar, charScalar:
			sb.WriteString(`"` + Placeholder(f.Type) + `"`)
		case notScalar:
			sb.WriteString("{}")
		default:
			sb.WriteString(Placeholder(f.Type))
		}
	}
	sb.WriteString("}")
	return sb.String()
}
