package render

import (
	"strings"

	"github.com/blackcoderx/weburl/pkg/endpoint"
	"github.com/blackcoderx/weburl/pkg/environment"
)

const pythonIndent = "    "

// PythonRenderer renders a python-requests snippet.
type PythonRenderer struct{}

func (PythonRenderer) Name() string        { return Python }
func (PythonRenderer) Description() string { return "Python requests snippet" }

func (PythonRenderer) Render(r environment.Resolved) string {
	verb := strings.ToLower(string(r.Verb))

	var sb strings.Builder
	sb.WriteString("import requests\n\n")
	sb.WriteString("url = " + quote(r.URL) + "\n")

	if len(r.Headers) == 0 {
		sb.WriteString("headers = {}\n")
	} else {
		sb.WriteString("headers = {\n")
		for _, h := range r.Headers {
			sb.WriteString(pythonIndent + quote(h.Key) + ": " + quote(h.Value) + ",\n")
		}
		sb.WriteString("}\n")
	}

	switch {
	case r.HasBody:
		sb.WriteString("payload = " + pythonLiteral(r.Body) + "\n")
		sb.WriteString("response = requests." + verb + "(url, json=payload, headers=headers)\n")
	case len(r.Params) > 0 && r.JSONParams && r.Verb != endpoint.GET:
		writeDict(&sb, "json_data", r.Params)
		sb.WriteString("response = requests." + verb + "(url, json=json_data, headers=headers)\n")
	case len(r.Params) > 0:
		writeDict(&sb, "data", r.Params)
		if r.Verb == endpoint.GET {
			sb.WriteString("response = requests.get(url, params=data, headers=headers)\n")
		} else {
			sb.WriteString("response = requests." + verb + "(url, data=data, headers=headers)\n")
		}
	default:
		sb.WriteString("response = requests." + verb + "(url, headers=headers)\n")
	}

	sb.WriteString("\n# print response\n")
	sb.WriteString("print(response.status_code)\n")
	sb.WriteString("print(response.text)\n")
	return sb.String()
}

func writeDict(sb *strings.Builder, name string, params []endpoint.Param) {
	sb.WriteString(name + " = {\n")
	for _, p := range params {
		sb.WriteString(pythonIndent + quote(p.Name) + ": " + pythonValue(p.Value) + ",\n")
	}
	sb.WriteString("}\n")
}

// Aggregate emits one shared import, a function per endpoint and a main
// guard listing commented-out calls.
func (PythonRenderer) Aggregate(sections []Section) string {
	var sb strings.Builder
	sb.WriteString("import requests\n\n")
	for _, s := range sections {
		sb.WriteString("# " + s.Name + "\n")
		sb.WriteString("def " + s.Name + "():\n")
		for _, line := range functionBody(s.Artifact) {
			if strings.TrimSpace(line) == "" {
				sb.WriteString("\n")
				continue
			}
			sb.WriteString(pythonIndent + line + "\n")
		}
		sb.WriteString("\n\n")
	}
	sb.WriteString("if __name__ == '__main__':\n")
	for _, s := range sections {
		sb.WriteString(pythonIndent + "# " + s.Name + "()\n")
	}
	return strings.TrimSpace(sb.String())
}

// functionBody drops the leading import block of a snippet.
func functionBody(snippet string) []string {
	lines := strings.Split(strings.TrimRight(snippet, "\n"), "\n")
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed != "" && !strings.HasPrefix(trimmed, "import") {
			break
		}
		i++
	}
	return lines[i:]
}
