package definition

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tacogips/kickstart/internal/template/model"
)

const sampleDefinition = `
name = "go-service"
description = "Opinionated Go service skeleton"
kickstart_version = 1
directory = "skeleton"
ignore = ["*.png", "docs"]
copy_without_render = ["*.gotmpl"]
pre_gen_hooks = ["hooks/pre.sh"]
post_gen_hooks = ["hooks/post.sh"]

[[cleanup]]
name = "use_docker"
value = false
paths = ["Dockerfile", "docker-compose.yml"]

[[variables]]
name = "project_name"
default = "demo"
prompt = "Project name?"
validation = "^[a-z][a-z0-9-]*$"

[[variables]]
name = "license"
default = "MIT"
prompt = "License?"
choices = ["MIT", "Apache-2.0"]

[[variables]]
name = "use_docker"
default = false
prompt = "Generate Dockerfile?"

[[variables]]
name = "port"
default = 8080
prompt = "Application port?"
only_if = { name = "use_docker", value = true }
`

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, model.TemplateConfigFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write definition: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeDefinition(t, sampleDefinition)

	def, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if def.Name != "go-service" {
		t.Errorf("expected name go-service, got %s", def.Name)
	}
	if def.KickstartVersion != 1 {
		t.Errorf("expected kickstart_version 1, got %d", def.KickstartVersion)
	}
	if def.Directory != "skeleton" {
		t.Errorf("expected directory skeleton, got %s", def.Directory)
	}
	if len(def.Ignore) != 2 || def.Ignore[0] != "*.png" {
		t.Errorf("unexpected ignore globs: %v", def.Ignore)
	}
	if len(def.CopyWithoutRender) != 1 || def.CopyWithoutRender[0] != "*.gotmpl" {
		t.Errorf("unexpected copy_without_render globs: %v", def.CopyWithoutRender)
	}
	if len(def.PreGenHooks) != 1 || def.PreGenHooks[0] != "hooks/pre.sh" {
		t.Errorf("unexpected pre_gen_hooks: %v", def.PreGenHooks)
	}
	if len(def.PostGenHooks) != 1 || def.PostGenHooks[0] != "hooks/post.sh" {
		t.Errorf("unexpected post_gen_hooks: %v", def.PostGenHooks)
	}

	if len(def.Cleanup) != 1 {
		t.Fatalf("expected 1 cleanup rule, got %d", len(def.Cleanup))
	}
	rule := def.Cleanup[0]
	if rule.Name != "use_docker" || rule.Value != false || len(rule.Paths) != 2 {
		t.Errorf("unexpected cleanup rule: %+v", rule)
	}

	if len(def.Variables) != 4 {
		t.Fatalf("expected 4 variables, got %d", len(def.Variables))
	}

	project := def.Variable("project_name")
	if project == nil {
		t.Fatal("expected project_name variable")
	}
	if project.Default != "demo" {
		t.Errorf("project_name: expected default demo, got %v", project.Default)
	}
	if project.Validation != "^[a-z][a-z0-9-]*$" {
		t.Errorf("project_name: unexpected validation %q", project.Validation)
	}

	license := def.Variable("license")
	if license == nil || len(license.Choices) != 2 {
		t.Fatalf("expected license variable with 2 choices, got %+v", license)
	}

	docker := def.Variable("use_docker")
	if docker == nil || docker.Default != false {
		t.Fatalf("expected use_docker with boolean default, got %+v", docker)
	}

	port := def.Variable("port")
	if port == nil {
		t.Fatal("expected port variable")
	}
	if port.Default != int64(8080) {
		t.Errorf("port: expected int64 default 8080, got %v (%T)", port.Default, port.Default)
	}
	if port.OnlyIf == nil || port.OnlyIf.Name != "use_docker" || port.OnlyIf.Value != true {
		t.Errorf("port: unexpected only_if %+v", port.OnlyIf)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "template.toml"))
	if err == nil {
		t.Fatal("expected error, got none")
	}
	var derr *DefinitionError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DefinitionError, got %T", err)
	}
	if derr.Type != DefinitionNotFound {
		t.Errorf("expected DefinitionNotFound, got %v", derr.Type)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeDefinition(t, "name = [unclosed")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	var derr *DefinitionError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DefinitionError, got %T", err)
	}
	if derr.Type != DefinitionParseFailed {
		t.Errorf("expected DefinitionParseFailed, got %v", derr.Type)
	}
}

func TestLoad_UnknownKeysTolerated(t *testing.T) {
	path := writeDefinition(t, `
name = "demo"
kickstart_version = 1
some_future_field = "ok"
`)

	def, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Name != "demo" {
		t.Errorf("expected name demo, got %s", def.Name)
	}
}

func TestLoadFromDir(t *testing.T) {
	path := writeDefinition(t, sampleDefinition)

	def, err := LoadFromDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Name != "go-service" {
		t.Errorf("expected name go-service, got %s", def.Name)
	}
}
