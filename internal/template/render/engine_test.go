package render

import (
	"strings"
	"testing"
)

func TestEngine_Render(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		data     map[string]any
		expected string
		wantErr  bool
	}{
		{
			name:     "plain text passes through",
			src:      "no templating here",
			expected: "no templating here",
		},
		{
			name:     "substitution",
			src:      "Hello {{.name}}!",
			data:     map[string]any{"name": "world"},
			expected: "Hello world!",
		},
		{
			name:     "integer value",
			src:      "port = {{.port}}",
			data:     map[string]any{"port": int64(8080)},
			expected: "port = 8080",
		},
		{
			name:     "boolean condition",
			src:      "{{if .use_docker}}FROM alpine{{else}}plain{{end}}",
			data:     map[string]any{"use_docker": true},
			expected: "FROM alpine",
		},
		{
			name:    "undefined variable",
			src:     "{{.missing}}",
			data:    map[string]any{"name": "x"},
			wantErr: true,
		},
		{
			name:    "parse error",
			src:     "{{.unclosed",
			data:    map[string]any{"unclosed": "x"},
			wantErr: true,
		},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Render("test", tt.src, tt.data)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestEngine_RenderFuncs(t *testing.T) {
	data := map[string]any{"name": "My Project", "csv": "a,b,c"}

	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"lower", "{{lower .name}}", "my project"},
		{"upper", "{{upper .name}}", "MY PROJECT"},
		{"title", `{{title "my project"}}`, "My Project"},
		{"trim", `{{trim "  x  "}}`, "x"},
		{"replace", `{{replace .name " " "-"}}`, "My-Project"},
		{"split and index", `{{index (split .csv ",") 1}}`, "b"},
		{"join", `{{join (split .csv ",") "/"}}`, "a/b/c"},
		{"contains", `{{if contains .name "Pro"}}yes{{end}}`, "yes"},
		{"hasPrefix", `{{if hasPrefix .name "My"}}yes{{end}}`, "yes"},
		{"hasSuffix", `{{if hasSuffix .name "ject"}}yes{{end}}`, "yes"},
		{"snake_case", "{{snake_case .name}}", "my_project"},
		{"kebab_case", "{{kebab_case .name}}", "my-project"},
		{"camel_case", "{{camel_case .name}}", "myProject"},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Render("test", tt.src, data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"spaces", "my project name", []string{"my", "project", "name"}},
		{"hyphens and underscores", "my-project_name", []string{"my", "project", "name"}},
		{"camel boundary", "myProject", []string{"my", "Project"}},
		{"acronym boundary", "HTTPServer", []string{"HTTP", "Server"}},
		{"digits stay attached", "v2 api", []string{"v2", "api"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitWords(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("index %d: expected %q, got %q", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestCaseHelpers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		snake string
		kebab string
		camel string
	}{
		{"spaced", "My Project", "my_project", "my-project", "myProject"},
		{"camel input", "myHTTPServer", "my_http_server", "my-http-server", "myHttpServer"},
		{"already snake", "my_project", "my_project", "my-project", "myProject"},
		{"single word", "demo", "demo", "demo", "demo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := snakeCase(tt.input); got != tt.snake {
				t.Errorf("snake: expected %q, got %q", tt.snake, got)
			}
			if got := kebabCase(tt.input); got != tt.kebab {
				t.Errorf("kebab: expected %q, got %q", tt.kebab, got)
			}
			if got := camelCase(tt.input); got != tt.camel {
				t.Errorf("camel: expected %q, got %q", tt.camel, got)
			}
		})
	}
}

func TestEngine_Render_NoTemplateShortCircuit(t *testing.T) {
	// Sources without template actions never fail, even against empty data.
	engine := NewEngine()
	src := strings.Repeat("static content\n", 3)
	got, err := engine.Render("plain", src, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != src {
		t.Errorf("expected source unchanged, got %q", got)
	}
}
