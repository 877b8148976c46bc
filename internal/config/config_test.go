package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/textmorph/internal/engine/block"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.WrapColumn != DefaultWrapColumn {
		t.Errorf("expected wrap column %d, got %d", DefaultWrapColumn, cfg.WrapColumn)
	}
	if cfg.TabWidth != DefaultTabWidth {
		t.Errorf("expected tab width %d, got %d", DefaultTabWidth, cfg.TabWidth)
	}
	if !cfg.RetainIndent {
		t.Error("expected retain_indent to default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.TabWidth = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero tab width")
	}

	cfg = Default()
	cfg.IndentMode = "sideways"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown indent mode")
	}

	cfg = Default()
	cfg.Fences = map[string]FencePair{"broken": {Start: "==="}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for fence without end marker")
	}
}

func TestWidthMode(t *testing.T) {
	cfg := Default()
	if cfg.WidthMode() != block.WidthRendered {
		t.Error("expected rendered width mode by default")
	}

	cfg.IndentMode = "raw"
	if cfg.WidthMode() != block.WidthRaw {
		t.Error("expected raw width mode")
	}
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WrapColumn != DefaultWrapColumn {
		t.Errorf("expected default wrap column, got %d", cfg.WrapColumn)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
wrap_column = 72
bullet_skip_blank = false
code_fence_lang = "go"

[fences.note]
start = "NOTE {"
end = "}"
pad_blank = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.WrapColumn != 72 {
		t.Errorf("expected wrap column 72, got %d", cfg.WrapColumn)
	}
	if cfg.BulletSkipBlank {
		t.Error("expected bullet_skip_blank false")
	}
	if cfg.CodeFenceLang != "go" {
		t.Errorf("expected code fence lang go, got %q", cfg.CodeFenceLang)
	}
	// Untouched keys keep their defaults.
	if cfg.TabWidth != DefaultTabWidth {
		t.Errorf("expected default tab width, got %d", cfg.TabWidth)
	}

	pair, ok := cfg.Fences["note"]
	if !ok {
		t.Fatalf("expected fence note, got %v", cfg.Fences)
	}
	if pair.Start != "NOTE {" || pair.End != "}" || !pair.PadBlank {
		t.Errorf("unexpected fence pair %+v", pair)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "wrap_column: 100\nindent_mode: raw\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WrapColumn != 100 {
		t.Errorf("expected wrap column 100, got %d", cfg.WrapColumn)
	}
	if cfg.IndentMode != "raw" {
		t.Errorf("expected raw indent mode, got %q", cfg.IndentMode)
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"tab_width": 8, "quote_blank_lines": false}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TabWidth != 8 {
		t.Errorf("expected tab width 8, got %d", cfg.TabWidth)
	}
	if cfg.QuoteBlankLines {
		t.Error("expected quote_blank_lines false")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("wrap_column = 72\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv("TEXTMORPH_WRAP_COLUMN", "60")
	t.Setenv("TEXTMORPH_RETAIN_INDENT", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WrapColumn != 60 {
		t.Errorf("expected env to override file, got %d", cfg.WrapColumn)
	}
	if cfg.RetainIndent {
		t.Error("expected retain_indent false from env")
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load("config.ini"); err == nil {
		t.Error("expected error for unsupported format")
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tab_width = 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for zero tab width")
	}
}
