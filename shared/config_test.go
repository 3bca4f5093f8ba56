package shared

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		content    string
		expected   Config
		shouldFail bool
	}{
		{
			"full config",
			"conf_dir: /tmp/ndis\nalt_install: true\n",
			Config{ConfDir: "/tmp/ndis", AltInstall: true},
			false,
		},
		{
			"defaults kept",
			"alt_install: true\n",
			Config{ConfDir: DefaultConfDir, AltInstall: true},
			false,
		},
		{
			"empty conf_dir",
			"conf_dir: \"\"\n",
			Config{},
			true,
		},
		{
			"unknown key",
			"confdir: /tmp\n",
			Config{},
			true,
		},
		{
			"invalid yaml",
			"conf_dir: [\n",
			Config{},
			true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "config"+string(rune('a'+i))+".yaml")

			err := os.WriteFile(path, []byte(tt.content), 0o644)
			require.NoError(t, err)

			config, err := LoadConfig(path)
			if tt.shouldFail {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, *config)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), *config)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
