package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/blackcoderx/weburl/pkg/endpoint"
)

var numberLiteral = regexp.MustCompile(`^\d+(\.\d+)?$`)

// jsonValue formats a parameter value as a JSON literal: numbers, booleans
// and values already shaped like an object pass through; the rest is quoted.
func jsonValue(v string) string {
	switch {
	case strings.HasPrefix(v, "{") && strings.HasSuffix(v, "}"):
		return v
	case numberLiteral.MatchString(v), v == "true", v == "false":
		return v
	default:
		return quote(v)
	}
}

// pythonValue is jsonValue with python boolean spelling.
func pythonValue(v string) string {
	switch v {
	case "true":
		return "True"
	case "false":
		return "False"
	}
	return jsonValue(v)
}

// quote wraps s in double quotes, escaping backslashes and double quotes.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// queryString joins parameters as k1=v1&k2=v2 in slot order.
func queryString(params []endpoint.Param) string {
	pairs := make([]string, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, p.Name+"="+p.Value)
	}
	return strings.Join(pairs, "&")
}

// jsonObject renders parameters as a single-line JSON object.
func jsonObject(params []endpoint.Param) string {
	pairs := make([]string, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, quote(p.Name)+": "+jsonValue(p.Value))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// pythonLiteral converts a JSON document into an equivalent python literal,
// keeping key order. Input that is not valid JSON is returned unchanged.
func pythonLiteral(doc string) string {
	dec := json.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()
	var sb strings.Builder
	if err := writePython(dec, &sb); err != nil {
		return doc
	}
	return sb.String()
}

func writePython(dec *json.Decoder, sb *strings.Builder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch t := tok.(type) {
	case json.Delim:
		openDelim, closeDelim := "{", "}"
		if t == '[' {
			openDelim, closeDelim = "[", "]"
		}
		sb.WriteString(openDelim)
		for first := true; dec.More(); first = false {
			if !first {
				sb.WriteString(", ")
			}
			if t == '{' {
				key, err := dec.Token()
				if err != nil {
					return err
				}
				sb.WriteString(quote(fmt.Sprint(key)) + ": ")
			}
			if err := writePython(dec, sb); err != nil {
				return err
			}
		}
		if _, err := dec.Token(); err != nil {
			return err
		}
		sb.WriteString(closeDelim)
	case string:
		sb.WriteString(quote(t))
	case json.Number:
		sb.WriteString(t.String())
	case bool:
		if t {
			sb.WriteString("True")
		} else {
			sb.WriteString("False")
		}
	case nil:
		sb.WriteString("None")
	}
	return nil
}

// shellDouble escapes s for use inside a double-quoted shell word.
func shellDouble(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")
	return r.Replace(s)
}

// shellSingle escapes s for use inside a single-quoted shell word.
func shellSingle(s string) string {
	return strings.ReplaceAll(s, `'`, `'\''`)
}
