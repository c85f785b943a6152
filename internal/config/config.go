package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultFile is read when no --config flag is given and it exists in the
// working directory.
const DefaultFile = "swaggyp.yaml"

// Output formats accepted by render.
const (
	FormatYAML     = "yaml"
	FormatJSON     = "json"
	FormatOpenAPI3 = "openapi3"
)

type Config struct {
	Input       string        `koanf:"input"`
	Format      string        `koanf:"format"`
	Out         string        `koanf:"out"`
	Strict      bool          `koanf:"strict"`
	Verbose     bool          `koanf:"verbose"`
	HTTPTimeout time.Duration `koanf:"http-timeout"`
	Retries     int           `koanf:"retries"`

	// ConfigPath is the file the settings were read from, if any.
	ConfigPath string `koanf:"-"`
}

func defaults() map[string]any {
	return map[string]any{
		"format":       FormatYAML,
		"http-timeout": 10 * time.Second,
		"retries":      3,
	}
}

var knownKeys = map[string]bool{
	"input": true, "format": true, "out": true, "strict": true,
	"verbose": true, "http-timeout": true, "retries": true,
}

// BindFlags registers the render settings on cmd.
func BindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("input", "i", "", "Blueprint file path or http(s) URL")
	flags.StringP("format", "f", "", "Output format: yaml, json, openapi3 (default yaml)")
	flags.StringP("out", "o", "", "Output file (stdout when omitted)")
	flags.Bool("strict", false, "Fail when lint reports findings")
	flags.Duration("http-timeout", 0, "Timeout for fetching remote blueprints")
	flags.Int("retries", 0, "Attempts for fetching remote blueprints")
}

// Load layers defaults, the config file and explicitly set flags, in that
// order, and validates the result.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	configFile = strings.TrimSpace(configFile)
	if configFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			configFile = DefaultFile
		}
	}

	if configFile != "" {
		fk := koanf.New(".")
		if err := fk.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", configFile, err)
		}
		if unknown := unknownKeys(fk.Keys()); len(unknown) > 0 {
			return nil, fmt.Errorf("config file %q: unknown field %q", configFile, unknown[0])
		}
		if err := k.Merge(fk); err != nil {
			return nil, fmt.Errorf("merging config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.ConfigPath = configFile
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func unknownKeys(keys []string) []string {
	var out []string
	for _, key := range keys {
		if !knownKeys[key] {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// buildFlagsMap collects the flags the user actually set, so that zero-valued
// flags never mask config file values.
func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	changed := func(name string) *pflag.FlagSet {
		if cmd.Flags().Changed(name) {
			return cmd.Flags()
		}
		if cmd.PersistentFlags().Changed(name) {
			return cmd.PersistentFlags()
		}
		return nil
	}

	for _, name := range []string{"input", "format", "out"} {
		if fs := changed(name); fs != nil {
			if v, err := fs.GetString(name); err == nil {
				m[name] = v
			}
		}
	}
	for _, name := range []string{"strict", "verbose"} {
		if fs := changed(name); fs != nil {
			if v, err := fs.GetBool(name); err == nil {
				m[name] = v
			}
		}
	}
	if fs := changed("http-timeout"); fs != nil {
		if v, err := fs.GetDuration("http-timeout"); err == nil {
			m["http-timeout"] = v
		}
	}
	if fs := changed("retries"); fs != nil {
		if v, err := fs.GetInt("retries"); err == nil {
			m["retries"] = v
		}
	}
	return m
}

func (c *Config) normalize() {
	c.Input = strings.TrimSpace(c.Input)
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Out = strings.TrimSpace(c.Out)
	if c.Format == "" {
		c.Format = FormatYAML
	}
}

func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input is required (set via --input or config file)")
	}

	validFormats := map[string]bool{"": true, FormatYAML: true, FormatJSON: true, FormatOpenAPI3: true}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format: %s (valid: yaml, json, openapi3)", c.Format)
	}

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("invalid http-timeout: %s", c.HTTPTimeout)
	}
	if c.Retries < 0 {
		return fmt.Errorf("invalid retries: %d", c.Retries)
	}
	return nil
}
