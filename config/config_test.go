package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxelsplace/voxmesh/api"
	"github.com/voxelsplace/voxmesh/collide"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voxmesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "collider: third\ntopology: triangles\nworkers: 4\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, collide.ThirdScale, cfg.Collider)
	assert.Equal(t, api.TopologyTriangles, cfg.Topology)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "voxmesh", cfg.Generator, "missing fields keep defaults")
	assert.Equal(t, api.Options{Collider: collide.ThirdScale, Workers: 4}, cfg.Options())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvPath, writeConfig(t, "collider: none\n"))
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, collide.None, cfg.Collider)
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"bad detail":   "collider: eighth\n",
		"bad topology": "topology: lines\n",
		"negative":     "workers: -2\n",
		"not yaml":     "collider: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
