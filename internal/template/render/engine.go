// Package render evaluates template expressions in file contents, file
// paths, string variable defaults and cleanup paths.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Engine renders Go template source against resolved variable values.
type Engine struct {
	funcs template.FuncMap
}

// NewEngine returns an engine with the built-in helper functions.
func NewEngine() *Engine {
	return &Engine{funcs: builtinFuncs}
}

// Render parses src and executes it against data. Referencing a variable
// absent from data is an error, never a silent empty substitution.
func (e *Engine) Render(name, src string, data map[string]any) (string, error) {
	if !strings.Contains(src, "{{") {
		return src, nil
	}

	tmpl, err := template.New(name).Funcs(e.funcs).Option("missingkey=error").Parse(src)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}

// builtinFuncs supplements the standard template functions with the string
// helpers template authors expect.
var builtinFuncs = template.FuncMap{
	"lower":     strings.ToLower,
	"upper":     strings.ToUpper,
	"title":     titleCase,
	"trim":      strings.TrimSpace,
	"replace":   strings.ReplaceAll,
	"split":     strings.Split,
	"join":      strings.Join,
	"contains":  strings.Contains,
	"hasPrefix": strings.HasPrefix,
	"hasSuffix": strings.HasSuffix,
	// identifier casing for generated file names and code.
	"snake_case": snakeCase,
	"kebab_case": kebabCase,
	"camel_case": camelCase,
}

func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// splitWords breaks an identifier into words at separators and case
// boundaries: "HTTPServer my-project" becomes [HTTP Server my project].
func splitWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				flush()
			} else if i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

func snakeCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

func kebabCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

func camelCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		w = strings.ToLower(w)
		if i > 0 {
			r := []rune(w)
			r[0] = unicode.ToUpper(r[0])
			w = string(r)
		}
		words[i] = w
	}
	return strings.Join(words, "")
}
