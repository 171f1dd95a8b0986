package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, float32(-15), d.SquelchThreshold)
	assert.Equal(t, 32, d.SquelchTimeout)
}

func TestLoadOverridesMergeWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "props.yaml")

	require.NoError(t, Save(path, Properties{SquelchThreshold: -20}))

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(-20), p.SquelchThreshold)
	assert.Equal(t, float32(3e-3), p.AGCBandwidth0, "unset fields should fall back to defaults")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
