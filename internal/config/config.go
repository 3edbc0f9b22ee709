package config

import (
	"context"
	_ "embed"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/nsfs/errors"
	"github.com/jmgilman/go/nsfs/fs/core"
)

//go:embed schema.cue
var schemaSource string

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the decoded shell configuration.
type Config struct {
	// Prompt is printed before every interactive line.
	Prompt string `json:"prompt"`

	// Color selects when directory names are colorized.
	Color string `json:"color"`

	// History is the file line history is kept in. Empty disables history.
	History string `json:"history"`

	// Indent is the number of spaces per tree level.
	Indent int `json:"indent"`

	Log Log `json:"log"`
}

// Log configures the shell's logger.
type Log struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Prompt: "> ",
		Color:  ColorAuto,
		Indent: 4,
		Log: Log{
			Level:  "warn",
			Format: FormatText,
		},
	}
}

// Load reads and parses the named configuration file from fsys.
func Load(ctx context.Context, fsys core.ReadFS, name string) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, errors.WrapWithContext(err, errors.CodeConfigLoadFailed, "context cancelled", map[string]interface{}{"path": name})
	}

	data, err := fsys.ReadFile(name)
	if err != nil {
		return Config{}, errors.WrapWithContext(err, errors.CodeConfigLoadFailed, "failed to read config file", map[string]interface{}{"path": name})
	}

	cfg, err := Parse(ctx, data)
	if err != nil {
		return Config{}, errors.WithContext(err, "path", name)
	}
	return cfg, nil
}

// Parse parses YAML configuration data, filling in defaults for absent
// fields.
func Parse(ctx context.Context, data []byte) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeConfigLoadFailed, "context cancelled")
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse config YAML")
	}
	if raw == nil {
		raw = map[string]any{}
	}

	return decode(raw)
}

// Validate checks cfg against the schema. It is used after flags have been
// applied on top of a loaded file.
func (c Config) Validate() error {
	_, err := decode(c)
	return err
}

// decode unifies v with the schema and decodes the concrete result.
func decode(v any) (Config, error) {
	cueCtx := cuecontext.New()

	schema := cueCtx.CompileString(schemaSource).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInternal, "config schema is invalid")
	}

	data := cueCtx.Encode(v)
	if err := data.Err(); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to encode config")
	}

	unified := schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		return Config{}, errors.WrapWithContext(err, errors.CodeInvalidConfig, "config does not match schema", map[string]interface{}{
			"details": cueerrors.Details(err, nil),
		})
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode config")
	}
	return cfg, nil
}
