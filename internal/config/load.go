package config

import (
	"github.com/dshills/textmorph/internal/config/loader"
)

// Load assembles the configuration from defaults, an optional config
// file and TEXTMORPH_* environment variables, in that precedence order.
// An empty path skips the file layer.
func Load(path string) (Config, error) {
	merged := map[string]any{}

	if path != "" {
		fl, err := loader.ForPath(path)
		if err != nil {
			return Config{}, err
		}
		fileCfg, err := fl.Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, fileCfg)
	}

	envCfg, err := loader.NewEnvLoader(loader.DefaultEnvPrefix).Load()
	if err != nil {
		return Config{}, err
	}
	merged = loader.DeepMerge(merged, envCfg)

	cfg := Default()
	applyMap(&cfg, merged)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyMap overlays a raw configuration map onto cfg. Unknown keys are
// ignored; values of the wrong type are skipped rather than erroring.
func applyMap(cfg *Config, m map[string]any) {
	if v, ok := asInt(m["wrap_column"]); ok {
		cfg.WrapColumn = v
	}
	if v, ok := asInt(m["tab_width"]); ok {
		cfg.TabWidth = v
	}
	if v, ok := m["retain_indent"].(bool); ok {
		cfg.RetainIndent = v
	}
	if v, ok := m["normalize_indent"].(bool); ok {
		cfg.NormalizeIndent = v
	}
	if v, ok := m["indent_mode"].(string); ok {
		cfg.IndentMode = v
	}
	if v, ok := m["bullet_skip_blank"].(bool); ok {
		cfg.BulletSkipBlank = v
	}
	if v, ok := m["quote_blank_lines"].(bool); ok {
		cfg.QuoteBlankLines = v
	}
	if v, ok := m["code_fence_lang"].(string); ok {
		cfg.CodeFenceLang = v
	}
	if v, ok := m["plugin_dir"].(string); ok {
		cfg.PluginDir = v
	}
	if fences, ok := m["fences"].(map[string]any); ok {
		for name, raw := range fences {
			pair, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			fp := FencePair{}
			if s, ok := pair["start"].(string); ok {
				fp.Start = s
			}
			if e, ok := pair["end"].(string); ok {
				fp.End = e
			}
			if p, ok := pair["pad_blank"].(bool); ok {
				fp.PadBlank = p
			}
			if cfg.Fences == nil {
				cfg.Fences = map[string]FencePair{}
			}
			cfg.Fences[name] = fp
		}
	}
}

// asInt accepts the integer representations produced by the TOML, YAML,
// JSON and env layers.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
