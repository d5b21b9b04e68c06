package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DefaultProfile)
	assert.Equal(t, "", cfg.DefaultRegion)
	assert.False(t, cfg.IncludeRules)
	assert.Nil(t, cfg.Indent)
}

func TestLoad_ValidFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "elbv2-dump")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := "default_profile: my-profile\ndefault_region: eu-west-1\ninclude_rules: true\nindent: 4\nformat: yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "my-profile", cfg.DefaultProfile)
	assert.Equal(t, "eu-west-1", cfg.DefaultRegion)
	assert.True(t, cfg.IncludeRules)
	assert.Equal(t, 4, cfg.IndentOr(DefaultIndent))
	assert.Equal(t, FormatYAML, cfg.FormatOr(FormatJSON))
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"bad yaml", "default_profile: [unterminated\n", "parsing"},
		{"bad format", "format: xml\n", "unknown format"},
		{"negative indent", "indent: -1\n", "indent must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestIndentOr_ZeroIsExplicit(t *testing.T) {
	zero := 0
	cfg := &Config{Indent: &zero}
	assert.Equal(t, 0, cfg.IndentOr(DefaultIndent))
	assert.Equal(t, DefaultIndent, (&Config{}).IndentOr(DefaultIndent))
}

func TestMerge_CLIFlagsTakePrecedence(t *testing.T) {
	cfg := &Config{DefaultProfile: "config-profile", DefaultRegion: "us-east-1"}

	// CLI flags override
	p, r := cfg.Merge("cli-profile", "ap-south-1")
	assert.Equal(t, "cli-profile", p)
	assert.Equal(t, "ap-south-1", r)

	// Empty flags fall back to config
	p, r = cfg.Merge("", "")
	assert.Equal(t, "config-profile", p)
	assert.Equal(t, "us-east-1", r)

	// Partial override
	p, r = cfg.Merge("other", "")
	assert.Equal(t, "other", p)
	assert.Equal(t, "us-east-1", r)
}
