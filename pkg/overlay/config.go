package overlay

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"boxlens/pkg/css"
	"boxlens/pkg/paint"
)

// Config controls overlay appearance. Colors are CSS color strings so a
// config file can use the same notation as the styles being inspected.
type Config struct {
	Colors       ColorsConfig `toml:"colors"`
	FlashFade    float64      `toml:"flash_fade"`
	OutlineWidth float64      `toml:"outline_width"`

	palette paint.Palette
}

type ColorsConfig struct {
	Content string `toml:"content"`
	Padding string `toml:"padding"`
	Border  string `toml:"border"`
	Margin  string `toml:"margin"`
	Repaint string `toml:"repaint"`
	Layout  string `toml:"layout"`
}

// DefaultConfig returns the devtools-style defaults. The zero Config is
// not usable; start from DefaultConfig and override.
func DefaultConfig() Config {
	return Config{
		FlashFade:    0.08,
		OutlineWidth: 1,
		palette:      paint.DefaultPalette(),
	}
}

// LoadConfig reads a TOML config file, applying it over the defaults.
// A missing file is not an error; the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load overlay config: %w", err)
	}
	if err := cfg.Resolve(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Resolve parses the configured color strings into the palette, keeping
// the default for any color left unset. Call it after mutating Colors
// on a Config built in code; LoadConfig resolves on its own.
func (c *Config) Resolve() error {
	c.palette.OutlineWidth = c.OutlineWidth
	for _, slot := range []struct {
		name  string
		value string
		dst   *css.Color
	}{
		{"content", c.Colors.Content, &c.palette.Content},
		{"padding", c.Colors.Padding, &c.palette.Padding},
		{"border", c.Colors.Border, &c.palette.Border},
		{"margin", c.Colors.Margin, &c.palette.Margin},
		{"repaint", c.Colors.Repaint, &c.palette.Repaint},
		{"layout", c.Colors.Layout, &c.palette.Layout},
	} {
		if slot.value == "" {
			continue
		}
		parsed, ok := css.ParseColor(slot.value)
		if !ok {
			return fmt.Errorf("overlay config: colors.%s: unrecognized color %q", slot.name, slot.value)
		}
		*slot.dst = parsed
	}
	return nil
}

// Palette returns the resolved drawing palette.
func (c Config) Palette() paint.Palette {
	return c.palette
}
