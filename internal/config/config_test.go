package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newCmd() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.PersistentFlags().StringP("config", "c", "", "Config file path")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose logging")
	BindFlags(cmd)
	return cmd
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errContains string
	}{
		{name: "valid yaml", config: Config{Input: "bp.yaml", Format: FormatYAML}},
		{name: "valid json", config: Config{Input: "bp.yaml", Format: FormatJSON}},
		{name: "valid openapi3", config: Config{Input: "bp.yaml", Format: FormatOpenAPI3}},
		{name: "empty format is valid", config: Config{Input: "bp.yaml"}},
		{name: "missing input", config: Config{Format: FormatYAML}, wantErr: true, errContains: "input is required"},
		{name: "invalid format", config: Config{Input: "bp.yaml", Format: "toml"}, wantErr: true, errContains: "invalid format"},
		{name: "negative timeout", config: Config{Input: "bp.yaml", HTTPTimeout: -time.Second}, wantErr: true, errContains: "invalid http-timeout"},
		{name: "negative retries", config: Config{Input: "bp.yaml", Retries: -1}, wantErr: true, errContains: "invalid retries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cmd := newCmd()
	require.NoError(t, cmd.Flags().Set("input", "bp.yaml"))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, "bp.yaml", cfg.Input)
	require.Equal(t, FormatYAML, cfg.Format)
	require.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	require.Equal(t, 3, cfg.Retries)
	require.False(t, cfg.Strict)
}

func TestLoadFromDefaultFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, DefaultFile, `
input: api.yaml
format: json
strict: true
http-timeout: 2s
`)

	oldWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(oldWd)

	cfg, err := Load(newCmd())
	require.NoError(t, err)
	require.Equal(t, "api.yaml", cfg.Input)
	require.Equal(t, FormatJSON, cfg.Format)
	require.True(t, cfg.Strict)
	require.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	require.Equal(t, DefaultFile, cfg.ConfigPath)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
input: from-file.yaml
format: json
out: from-file.json
strict: true
verbose: true
`)

	cmd := newCmd()
	require.NoError(t, cmd.PersistentFlags().Set("config", path))
	require.NoError(t, cmd.Flags().Set("input", "from-flag.yaml"))
	require.NoError(t, cmd.Flags().Set("format", "OpenAPI3"))
	require.NoError(t, cmd.Flags().Set("strict", "false"))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, "from-flag.yaml", cfg.Input)
	require.Equal(t, FormatOpenAPI3, cfg.Format)
	require.Equal(t, "from-file.json", cfg.Out)
	require.False(t, cfg.Strict)
	require.True(t, cfg.Verbose)
	require.Equal(t, path, cfg.ConfigPath)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "input: a.yaml\nlang: go\n")

	cmd := newCmd()
	require.NoError(t, cmd.PersistentFlags().Set("config", path))

	_, err := Load(cmd)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown field "lang"`)
}

func TestLoadMissingConfigFile(t *testing.T) {
	cmd := newCmd()
	require.NoError(t, cmd.PersistentFlags().Set("config", filepath.Join(t.TempDir(), "nope.yaml")))
	require.NoError(t, cmd.Flags().Set("input", "bp.yaml"))

	_, err := Load(cmd)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config file")
}

func TestBuildFlagsMapOnlyChanged(t *testing.T) {
	cmd := newCmd()
	require.NoError(t, cmd.Flags().Set("out", "doc.json"))
	require.NoError(t, cmd.Flags().Set("retries", "5"))

	m := buildFlagsMap(cmd)
	require.Equal(t, map[string]any{"out": "doc.json", "retries": 5}, m)
}
