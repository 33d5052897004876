package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blackcoderx/weburl/pkg/environment"
	"github.com/blackcoderx/weburl/pkg/meta"
)

var (
	// ErrClassNotFound is returned when a selector names an unknown class.
	ErrClassNotFound = errors.New("class not found")
	// ErrMethodNotFound is returned when a selector names an unknown method.
	ErrMethodNotFound = errors.New("method not found")
)

// Selection is a class, optionally narrowed to one of its methods.
type Selection struct {
	Class  *meta.Class
	Method *meta.Method
}

// IsClass reports a whole-class selection.
func (s Selection) IsClass() bool {
	return s.Method == nil
}

// Select resolves "Class" or "Class#method" (also "Class.method" when the
// class is known by its simple name) against a source.
func Select(src meta.Source, selector string) (Selection, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return Selection{}, fmt.Errorf("%w: empty selector", ErrClassNotFound)
	}

	className, methodName := selector, ""
	if i := strings.LastIndex(selector, "#"); i >= 0 {
		className, methodName = selector[:i], selector[i+1:]
	} else if _, ok := src.Class(selector); !ok {
		if i := strings.LastIndex(selector, "."); i >= 0 {
			className, methodName = selector[:i], selector[i+1:]
		}
	}

	class, ok := src.Class(className)
	if !ok {
		return Selection{}, fmt.Errorf("%w: %s", ErrClassNotFound, className)
	}
	if methodName == "" {
		return Selection{Class: class}, nil
	}
	method, ok := class.Method(methodName)
	if !ok {
		return Selection{}, fmt.Errorf("%w: %s.%s", ErrMethodNotFound, class.Name, methodName)
	}
	return Selection{Class: class, Method: method}, nil
}

// RenderSelection renders a method or whole-class selection.
func (e *Engine) RenderSelection(format string, cfg *environment.Config, env environment.Environment, sel Selection) (string, error) {
	if sel.IsClass() {
		return e.RenderClassIn(format, cfg, env, sel.Class)
	}
	return e.RenderIn(format, cfg, env, sel.Class, sel.Method)
}
