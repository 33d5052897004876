package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blackcoderx/weburl/pkg/environment"
)

// EndpointRow is one line of an endpoint listing.
type EndpointRow struct {
	Class   string
	Method  string
	Verb    string
	Path    string
	HasBody bool
}

// EndpointTable renders endpoints grouped by class, in the order given.
func EndpointTable(rows []EndpointRow) string {
	if len(rows) == 0 {
		return DimStyle.Render("no endpoints found")
	}

	var b strings.Builder
	current := ""
	for _, row := range rows {
		if row.Class != current {
			if current != "" {
				b.WriteString("\n")
			}
			current = row.Class
			b.WriteString(TitleStyle.Render(row.Class))
			b.WriteString("\n")
		}
		verb := VerbStyle
		if row.HasBody {
			verb = BodyVerbStyle
		}
		b.WriteString("  ")
		b.WriteString(verb.Render(row.Verb))
		b.WriteString(PathStyle.Render(row.Path))
		b.WriteString(DimStyle.Render("  " + row.Method))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// EnvironmentTable renders the environments with the active one marked.
func EnvironmentTable(cfg *environment.Config) string {
	active := cfg.Active()

	var b strings.Builder
	for _, env := range cfg.Environments {
		line := fmt.Sprintf("%s  %s", env.DisplayName(), env.Prefix())
		if env.ID == active.ID {
			b.WriteString(ActiveStyle.Render(ActiveMarker + line))
		} else {
			b.WriteString(InactiveMarker + line)
		}
		b.WriteString(DimStyle.Render("  " + env.ID))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// KeyValueTable renders a string map sorted by key.
func KeyValueTable(values map[string]string) string {
	if len(values) == 0 {
		return DimStyle.Render("none")
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(TitleStyle.Render(k))
		b.WriteString(": ")
		b.WriteString(values[k])
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
