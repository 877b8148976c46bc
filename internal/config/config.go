// Package config defines the configuration surface for the
// transformation engine: wrap column, indentation handling, blank-line
// policies for the prefix toggles, and delimiter-fence pairs.
//
// Configuration is assembled from layers in precedence order: built-in
// defaults, then an optional configuration file (TOML, YAML or JSON),
// then TEXTMORPH_* environment variables. Later layers override earlier
// ones.
package config

import (
	"fmt"

	"github.com/dshills/textmorph/internal/engine/block"
)

// Default values for the configuration surface.
const (
	DefaultWrapColumn = 79
	DefaultTabWidth   = 4
)

// FencePair is a custom delimiter pair for the fence toggle.
type FencePair struct {
	// Start is the opening marker line.
	Start string `toml:"start" yaml:"start" json:"start"`
	// End is the closing marker line.
	End string `toml:"end" yaml:"end" json:"end"`
	// PadBlank forces a blank line after Start and before End, so
	// Markdown treats the enclosed content as a raw block.
	PadBlank bool `toml:"pad_blank" yaml:"pad_blank" json:"pad_blank"`
}

// Config is the engine configuration.
type Config struct {
	// WrapColumn is the target column for the wrap transformation.
	WrapColumn int `toml:"wrap_column" yaml:"wrap_column" json:"wrap_column"`

	// TabWidth is the rendered width of a tab character.
	TabWidth int `toml:"tab_width" yaml:"tab_width" json:"tab_width"`

	// RetainIndent re-prepends the first line's indent to every wrapped
	// line. When false only the first produced line keeps the indent.
	RetainIndent bool `toml:"retain_indent" yaml:"retain_indent" json:"retain_indent"`

	// NormalizeIndent expands tabs in the retained indent to spaces.
	NormalizeIndent bool `toml:"normalize_indent" yaml:"normalize_indent" json:"normalize_indent"`

	// IndentMode selects how list renumbering compares indent depths:
	// "rendered" (tab-expanded width, the default) or "raw" (character
	// count, compatibility behavior).
	IndentMode string `toml:"indent_mode" yaml:"indent_mode" json:"indent_mode"`

	// BulletSkipBlank leaves blank lines unbulleted when adding list
	// markers.
	BulletSkipBlank bool `toml:"bullet_skip_blank" yaml:"bullet_skip_blank" json:"bullet_skip_blank"`

	// QuoteBlankLines quotes blank lines (producing ">") when adding
	// quote markers. When false blank lines are left untouched.
	QuoteBlankLines bool `toml:"quote_blank_lines" yaml:"quote_blank_lines" json:"quote_blank_lines"`

	// CodeFenceLang is the language tag appended to the opening code
	// fence marker.
	CodeFenceLang string `toml:"code_fence_lang" yaml:"code_fence_lang" json:"code_fence_lang"`

	// Fences maps custom fence names to delimiter pairs, dispatched as
	// "block.fence.<name>".
	Fences map[string]FencePair `toml:"fences" yaml:"fences" json:"fences"`

	// PluginDir is a directory of Lua scripts loaded at startup.
	PluginDir string `toml:"plugin_dir" yaml:"plugin_dir" json:"plugin_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		WrapColumn:      DefaultWrapColumn,
		TabWidth:        DefaultTabWidth,
		RetainIndent:    true,
		NormalizeIndent: false,
		IndentMode:      "rendered",
		BulletSkipBlank: true,
		QuoteBlankLines: true,
		CodeFenceLang:   "",
		Fences:          map[string]FencePair{},
	}
}

// WidthMode returns the indent comparison mode as a block.WidthMode.
func (c Config) WidthMode() block.WidthMode {
	if c.IndentMode == "raw" {
		return block.WidthRaw
	}
	return block.WidthRendered
}

// Validate checks the configuration for inconsistent values.
func (c Config) Validate() error {
	if c.TabWidth < 1 {
		return fmt.Errorf("tab_width must be positive, got %d", c.TabWidth)
	}
	if c.IndentMode != "" && c.IndentMode != "rendered" && c.IndentMode != "raw" {
		return fmt.Errorf("indent_mode must be %q or %q, got %q", "rendered", "raw", c.IndentMode)
	}
	for name, pair := range c.Fences {
		if pair.Start == "" || pair.End == "" {
			return fmt.Errorf("fence %q must define both start and end markers", name)
		}
	}
	return nil
}
