// Package environment holds the layered request configuration: named target
// environments, global headers and default parameter overrides, and resolves
// endpoint descriptors against it.
package environment

import (
	"strings"

	"github.com/google/uuid"
)

// Protocols accepted for an environment.
const (
	HTTP  = "http"
	HTTPS = "https"
)

// DefaultHost is the host of the environment created on first run.
const DefaultHost = "localhost"

// Environment is one protocol + host + context path target.
type Environment struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Host        string `yaml:"host" json:"host"`
	ContextPath string `yaml:"contextPath" json:"contextPath"`
	Protocol    string `yaml:"protocol" json:"protocol"`
}

// New creates an environment with a fresh id and normalized fields.
func New(name, host, contextPath, protocol string) Environment {
	e := Environment{ID: uuid.NewString(), Name: name}
	e.SetHost(host)
	e.SetContextPath(contextPath)
	e.SetProtocol(protocol)
	return e
}

// Default returns the environment synthesized when none exist.
func Default() Environment {
	return New("", DefaultHost, "", HTTP)
}

// SetHost stores the host without any scheme prefix.
func (e *Environment) SetHost(host string) {
	host = strings.TrimSpace(host)
	switch {
	case strings.HasPrefix(host, "http://"):
		host = strings.TrimPrefix(host, "http://")
	case strings.HasPrefix(host, "https://"):
		host = strings.TrimPrefix(host, "https://")
	}
	e.Host = host
}

// SetContextPath stores the context path with a leading slash and no trailing
// slash; blank input stores "".
func (e *Environment) SetContextPath(contextPath string) {
	e.ContextPath = NormalizeContextPath(contextPath)
}

// SetProtocol stores "https" for a case-insensitive https, "http" otherwise.
func (e *Environment) SetProtocol(protocol string) {
	e.Protocol = NormalizeProtocol(protocol)
}

// Normalize re-applies the field normalization rules, e.g. after decoding.
func (e *Environment) Normalize() {
	e.SetHost(e.Host)
	e.SetContextPath(e.ContextPath)
	e.SetProtocol(e.Protocol)
}

// NormalizeContextPath applies the context path rules.
func NormalizeContextPath(contextPath string) string {
	path := strings.TrimSpace(contextPath)
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// NormalizeProtocol applies the protocol rules.
func NormalizeProtocol(protocol string) string {
	if strings.EqualFold(strings.TrimSpace(protocol), HTTPS) {
		return HTTPS
	}
	return HTTP
}

// Prefix returns protocol://host followed by the context path.
func (e Environment) Prefix() string {
	return e.Protocol + "://" + e.Host + e.ContextPath
}

// DisplayName returns the name, or the URL prefix when the name is blank.
func (e Environment) DisplayName() string {
	if strings.TrimSpace(e.Name) != "" {
		return e.Name
	}
	return e.Prefix()
}

func (e Environment) String() string {
	return e.DisplayName()
}
