// Package scaffold creates starter fern projects.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/go-fern/fern/pkg/errors"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// fernModule is the dependency written into scaffolded go.mod files.
const (
	fernModule  = "github.com/go-fern/fern"
	fernVersion = "v0.1.0"
	goVersion   = "1.24.0"
)

// TemplateData is the substitution data for project templates.
type TemplateData struct {
	// Name is the project's display name, derived from the directory.
	Name string
	// Module is the project's module path.
	Module string
}

// Create scaffolds a new project in dir with the given module path. The
// directory must not already contain a go.mod.
func Create(dir, modulePath string) error {
	if err := module.CheckPath(modulePath); err != nil {
		return &errors.FernError{
			Op:   "scaffold.Create",
			Kind: errors.KindInit,
			Err:  fmt.Errorf("invalid module path %q: %w", modulePath, err),
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
		return &errors.FernError{
			Op:   "scaffold.Create",
			Kind: errors.KindInit,
			Err:  fmt.Errorf("%s already contains a go.mod", dir),
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return initErr(err)
	}

	data := &TemplateData{
		Name:   filepath.Base(dir),
		Module: modulePath,
	}

	if err := renderTemplate("templates/main.go.tmpl", filepath.Join(dir, "main.go"), data); err != nil {
		return err
	}
	if err := renderTemplate("templates/scene.yaml.tmpl", filepath.Join(dir, "scene.yaml"), data); err != nil {
		return err
	}

	goMod, err := buildGoMod(modulePath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), goMod, 0o644); err != nil {
		return initErr(err)
	}
	return nil
}

// buildGoMod constructs the project go.mod through the modfile API so the
// result is always well-formed.
func buildGoMod(modulePath string) ([]byte, error) {
	mf := new(modfile.File)
	if err := mf.AddModuleStmt(modulePath); err != nil {
		return nil, initErr(err)
	}
	if err := mf.AddGoStmt(goVersion); err != nil {
		return nil, initErr(err)
	}
	if err := mf.AddRequire(fernModule, fernVersion); err != nil {
		return nil, initErr(err)
	}
	data, err := mf.Format()
	if err != nil {
		return nil, initErr(err)
	}
	return data, nil
}

func renderTemplate(src, dst string, data *TemplateData) error {
	tmpl, err := template.ParseFS(templatesFS, src)
	if err != nil {
		return initErr(err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return initErr(err)
	}
	defer out.Close()
	if err := tmpl.Execute(out, data); err != nil {
		return initErr(err)
	}
	return nil
}

func initErr(err error) *errors.FernError {
	return &errors.FernError{
		Op:   "scaffold.Create",
		Kind: errors.KindInit,
		Err:  err,
	}
}
