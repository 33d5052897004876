package storage

import (
	"os"
	"regexp"
	"strings"

	"github.com/blackcoderx/weburl/pkg/environment"
)

// varPattern matches {{env:VAR_NAME}}
var varPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// ExpandConfig returns a snapshot of cfg with {{env:VAR}} references in
// header and default parameter values replaced by process environment
// variables. cfg itself is left untouched so secrets are never persisted.
func ExpandConfig(cfg *environment.Config) *environment.Config {
	snap := cfg.Snapshot()
	for k, v := range snap.Headers {
		snap.Headers[k] = resolveEnvRefs(v)
	}
	for k, v := range snap.DefaultParameters {
		snap.DefaultParameters[k] = resolveEnvRefs(v)
	}
	return snap
}

// resolveEnvRefs resolves {{env:VAR}} references in a string. Unknown
// variables are kept verbatim.
func resolveEnvRefs(text string) string {
	return varPattern.ReplaceAllStringFunc(text, func(match string) string {
		varName := strings.TrimPrefix(strings.TrimSuffix(match, "}}"), "{{")
		varName = strings.TrimSpace(varName)

		if strings.HasPrefix(varName, "env:") {
			sysVar := strings.TrimPrefix(varName, "env:")
			if val := os.Getenv(sysVar); val != "" {
				return val
			}
		}
		return match
	})
}
