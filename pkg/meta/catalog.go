package meta

import "strings"

// Catalog is an in-memory Source.
type Catalog struct {
	classes []*Class
	types   map[string][]Field
	simple  map[string]string // simple name -> first registered name
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		types:  make(map[string][]Field),
		simple: make(map[string]string),
	}
}

// AddClass appends a class. Classes keep insertion order.
func (c *Catalog) AddClass(class *Class) *Catalog {
	c.classes = append(c.classes, class)
	return c
}

// AddType registers the fields of a type under its name.
func (c *Catalog) AddType(name string, fields ...Field) *Catalog {
	c.types[name] = fields
	if _, ok := c.simple[SimpleTypeName(name)]; !ok {
		c.simple[SimpleTypeName(name)] = name
	}
	return c
}

// Classes returns all classes in insertion order.
func (c *Catalog) Classes() []*Class {
	return c.classes
}

// Class looks a class up by simple or qualified name.
func (c *Catalog) Class(name string) (*Class, bool) {
	for _, class := range c.classes {
		if class.Name == name || (class.QualifiedName != "" && class.QualifiedName == name) {
			return class, true
		}
	}
	return nil, false
}

// Fields resolves a type by its exact name, falling back to the simple name
// with generic arguments removed.
func (c *Catalog) Fields(typeName string) ([]Field, bool) {
	if fields, ok := c.types[typeName]; ok {
		return fields, true
	}
	if name, ok := c.simple[SimpleTypeName(typeName)]; ok {
		return c.types[name], true
	}
	return nil, false
}

// SimpleTypeName strips the package qualifier and generic arguments:
// "com.acme.Page<com.acme.User>" becomes "Page".
func SimpleTypeName(typeName string) string {
	name := strings.TrimSpace(typeName)
	if idx := strings.Index(name, "<"); idx >= 0 {
		name = name[:idx]
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
