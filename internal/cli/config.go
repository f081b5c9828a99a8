package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/boxgrid/pkg/box"
	"github.com/matzehuels/boxgrid/pkg/errors"
)

// Built-in defaults, used when neither flags nor the config file say
// otherwise.
const (
	defaultWidth  = 72
	defaultGutter = 2
	defaultAlign  = "left"
)

// fileConfig holds user defaults loaded from the TOML config file.
// Flags always win over file values; file values win over built-ins.
type fileConfig struct {
	Width  int    `toml:"width"`  // default wrap width
	Height int    `toml:"height"` // default column height (0 = single paragraph)
	Gutter int    `toml:"gutter"` // default blank columns between boxes
	Align  string `toml:"align"`  // default alignment name
}

// defaultConfigPath returns the conventional config location,
// typically ~/.config/boxgrid/config.toml.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "boxgrid", "config.toml")
}

// loadConfig reads the config file at path. An empty path means the default
// location, where a missing file is not an error; an explicit path must
// exist. The returned config always has the built-in defaults filled in.
func loadConfig(path string) (fileConfig, error) {
	cfg := fileConfig{
		Width:  defaultWidth,
		Gutter: defaultGutter,
		Align:  defaultAlign,
	}

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "config file %s", path)
	}

	if _, ok := box.ParseAlignment(cfg.Align); !ok {
		return cfg, errors.New(errors.ErrCodeInvalidAlignment,
			"config file %s: unknown alignment: %q", path, cfg.Align)
	}
	return cfg, nil
}

// configKey is the context key for storing the loaded config.
const configKey ctxKey = 1

// withConfig returns a new context with the given config attached.
func withConfig(ctx context.Context, cfg fileConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the config from ctx, falling back to the
// built-in defaults.
func configFromContext(ctx context.Context) fileConfig {
	if cfg, ok := ctx.Value(configKey).(fileConfig); ok {
		return cfg
	}
	return fileConfig{Width: defaultWidth, Gutter: defaultGutter, Align: defaultAlign}
}
