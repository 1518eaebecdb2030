package app

import (
	"bufio"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "go-path-defense"

// Симуляция и терминальные фронтенды не должны тянуть ebiten (cgo, X11).
func TestHeadlessPackagesAvoidEbiten(t *testing.T) {
	root := filepath.Join("..", "..")
	roots := []string{
		"internal/app",
		"internal/system",
		"internal/autoplay",
		"internal/terminal",
		"internal/audio",
		"cmd/tdterm",
		"cmd/tdsim",
	}

	seen := make(map[string]bool)
	var walk func(pkg string, chain []string)
	walk = func(pkg string, chain []string) {
		if seen[pkg] {
			return
		}
		seen[pkg] = true
		chain = append(chain, pkg)
		for _, imp := range packageImports(t, filepath.Join(root, filepath.FromSlash(pkg))) {
			if strings.HasPrefix(imp, "github.com/hajimehoshi/ebiten") {
				t.Errorf("%s imports %s", strings.Join(chain, " -> "), imp)
				continue
			}
			if local, ok := strings.CutPrefix(imp, modulePath+"/"); ok {
				walk(local, chain)
			}
		}
	}
	for _, pkg := range roots {
		walk(pkg, nil)
	}
}

func packageImports(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}
	fset := token.NewFileSet()
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, spec := range f.Imports {
			path, err := strconv.Unquote(spec.Path.Value)
			if err != nil {
				t.Fatalf("import in %s: %v", name, err)
			}
			out = append(out, path)
		}
	}
	return out
}

// Каждый исходник начинается с комментария-пути: // internal/app/game.go
func TestSourceFilesCarryPathHeader(t *testing.T) {
	root := filepath.Join("..", "..")
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), "_") || d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		sc := bufio.NewScanner(f)
		sc.Scan()
		if want := "// " + filepath.ToSlash(rel); sc.Text() != want {
			t.Errorf("%s: first line %q, want %q", rel, sc.Text(), want)
		}
		return sc.Err()
	})
	if err != nil {
		t.Fatal(err)
	}
}
