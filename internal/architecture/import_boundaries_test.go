package architecture_test

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	modulePath = "steam-inventory"
	moduleRoot = "../.."
)

type layerRule struct {
	sourcePrefix string
	forbidden    []string
	hint         string
}

func internalPkgs(names ...string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, modulePath+"/internal/"+n)
	}
	return out
}

var rules = []layerRule{
	{
		sourcePrefix: modulePath + "/internal/domain",
		forbidden:    append(internalPkgs("config", "session", "steam", "inventory", "metrics", "middleware", "telemetry", "ui", "app"), modulePath+"/cmd"),
		hint:         "domain may only import domain",
	},
	{
		sourcePrefix: modulePath + "/internal/config",
		forbidden:    append(internalPkgs("domain", "session", "steam", "inventory", "metrics", "middleware", "telemetry", "ui", "app"), modulePath+"/cmd"),
		hint:         "config is a leaf package",
	},
	{
		sourcePrefix: modulePath + "/internal/metrics",
		forbidden:    append(internalPkgs("domain", "config", "session", "steam", "inventory", "middleware", "telemetry", "ui", "app"), modulePath+"/cmd"),
		hint:         "metrics is a leaf package",
	},
	{
		sourcePrefix: modulePath + "/internal/session",
		forbidden:    append(internalPkgs("config", "steam", "inventory", "metrics", "middleware", "ui", "app"), modulePath+"/cmd"),
		hint:         "session should depend on domain only",
	},
	{
		sourcePrefix: modulePath + "/internal/steam",
		forbidden:    append(internalPkgs("session", "inventory", "metrics", "middleware", "ui", "app"), modulePath+"/cmd"),
		hint:         "steam should depend on domain and config",
	},
	{
		sourcePrefix: modulePath + "/internal/inventory",
		forbidden:    append(internalPkgs("session", "steam", "metrics", "middleware", "ui", "app"), modulePath+"/cmd"),
		hint:         "inventory reports through FetchObserver instead of importing metrics",
	},
	{
		sourcePrefix: modulePath + "/internal/middleware",
		forbidden:    append(internalPkgs("session", "steam", "inventory", "metrics", "ui", "app"), modulePath+"/cmd"),
		hint:         "middleware should not know about pages or clients",
	},
	{
		sourcePrefix: modulePath + "/internal/ui",
		forbidden:    append(internalPkgs("config", "session", "steam", "metrics", "telemetry", "app"), modulePath+"/cmd"),
		hint:         "ui depends on the IdentityProvider/InventorySource/SessionStore interfaces, not implementations",
	},
	{
		sourcePrefix: modulePath + "/internal/app",
		forbidden:    []string{modulePath + "/cmd"},
		hint:         "app is wired by cmd, never the reverse",
	},
}

func TestImportBoundaries(t *testing.T) {
	files := goSourceFiles(t)
	require.NotEmpty(t, files)

	violations := make([]string, 0)
	fset := token.NewFileSet()

	for _, file := range files {
		sourcePkg := packageImportPath(file)
		rule, ok := findRule(sourcePkg)
		if !ok {
			continue
		}

		parsed, err := parser.ParseFile(fset, filepath.Join(moduleRoot, file), nil, parser.ImportsOnly)
		require.NoErrorf(t, err, "parse imports for %s", file)

		for _, imp := range parsed.Imports {
			importPath := strings.Trim(imp.Path.Value, "\"")
			if !strings.HasPrefix(importPath, modulePath+"/") {
				continue
			}
			if violatesRule(importPath, rule.forbidden) {
				violations = append(violations,
					sourcePkg+" imports "+importPath+" via "+file+"; allowed direction: "+rule.hint,
				)
			}
		}
	}

	if len(violations) > 0 {
		sort.Strings(violations)
		t.Fatalf("%s", strings.Join(violations, "\n"))
	}
}

// goSourceFiles lists non-test Go files under internal/, relative to the
// module root.
func goSourceFiles(t *testing.T) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(filepath.Join(moduleRoot, "internal"), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(moduleRoot, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	return files
}

func packageImportPath(file string) string {
	return modulePath + "/" + filepath.ToSlash(filepath.Dir(file))
}

func findRule(sourcePkg string) (layerRule, bool) {
	for _, rule := range rules {
		if hasPathPrefix(sourcePkg, rule.sourcePrefix) {
			return rule, true
		}
	}
	return layerRule{}, false
}

func violatesRule(importPath string, forbidden []string) bool {
	for _, prefix := range forbidden {
		if hasPathPrefix(importPath, prefix) {
			return true
		}
	}
	return false
}

func hasPathPrefix(value string, prefix string) bool {
	return value == prefix || strings.HasPrefix(value, prefix+"/")
}
