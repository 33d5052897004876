// Package meta describes the declarative facts the engine consumes about
// classes, methods, parameters and type fields.
//
// Facts are supplied by a host (a catalog file, a compiler front end, test
// fixtures). The engine only reads them.
package meta

import (
	"fmt"
	"strings"
)

// Annotation is a single annotation as declared on a class, method or parameter.
type Annotation struct {
	// Name is the qualified annotation name, e.g. "org.springframework.web.bind.annotation.GetMapping".
	Name string `yaml:"name" json:"name"`
	// Attributes holds named attribute values. A value is a scalar or a list
	// (array-valued attribute). An unnamed single value is stored under "value".
	Attributes map[string]any `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// Attribute returns the raw value of the named attribute.
func (a Annotation) Attribute(name string) (any, bool) {
	if a.Attributes == nil {
		return nil, false
	}
	v, ok := a.Attributes[name]
	return v, ok
}

// FirstString returns the attribute as a string. For array-valued attributes
// the first element is returned.
func (a Annotation) FirstString(name string) (string, bool) {
	v, ok := a.Attribute(name)
	if !ok || v == nil {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return unquote(val), true
	case []string:
		if len(val) == 0 {
			return "", false
		}
		return unquote(val[0]), true
	case []any:
		if len(val) == 0 || val[0] == nil {
			return "", false
		}
		return unquote(fmt.Sprint(val[0])), true
	default:
		return fmt.Sprint(val), true
	}
}

// Text returns the attribute rendered as source-like text, with list values
// joined by ", ". Used for keyword matching on attributes such as "method".
func (a Annotation) Text(name string) string {
	v, ok := a.Attribute(name)
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}

// unquote strips one pair of surrounding double quotes.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// Parameter is a declared method parameter.
type Parameter struct {
	Name        string       `yaml:"name" json:"name"`
	Type        string       `yaml:"type" json:"type"`
	Annotations []Annotation `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	// Primitive is set by hosts that already know the parameter is a
	// primitive, a boxed primitive or a string.
	Primitive bool `yaml:"primitive,omitempty" json:"primitive,omitempty"`
}

// Method is a declared method of a class.
type Method struct {
	Name        string       `yaml:"name" json:"name"`
	Annotations []Annotation `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	Parameters  []Parameter  `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Public      bool         `yaml:"public,omitempty" json:"public,omitempty"`
}

// Class is a declared class together with its methods.
type Class struct {
	// Name is the simple class name.
	Name          string       `yaml:"name" json:"name"`
	QualifiedName string       `yaml:"qualifiedName,omitempty" json:"qualifiedName,omitempty"`
	Annotations   []Annotation `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	// Interfaces holds qualified names of implemented interfaces.
	Interfaces []string `yaml:"interfaces,omitempty" json:"interfaces,omitempty"`
	Methods    []Method `yaml:"methods,omitempty" json:"methods,omitempty"`
}

// Method returns the first method with the given name.
func (c *Class) Method(name string) (*Method, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.Methods {
		if c.Methods[i].Name == name {
			return &c.Methods[i], true
		}
	}
	return nil, false
}

// Field is a field of a referenced type.
type Field struct {
	Name      string `yaml:"name" json:"name"`
	Type      string `yaml:"type" json:"type"`
	Static    bool   `yaml:"static,omitempty" json:"static,omitempty"`
	Transient bool   `yaml:"transient,omitempty" json:"transient,omitempty"`
}

// TypeResolver resolves a type name to its fields, inherited ones included.
type TypeResolver interface {
	Fields(typeName string) ([]Field, bool)
}

// Source supplies all facts the engine needs.
type Source interface {
	TypeResolver
	Classes() []*Class
	Class(name string) (*Class, bool)
}
