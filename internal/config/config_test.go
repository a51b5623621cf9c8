package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/textinput/model"
)

func TestDefaults_AreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	require.Equal(t, model.DecodeStrict, cfg.DecodePolicy())
	require.Equal(t, "TextInputType.multiline", cfg.ModelConfig().InputType.Name)
}

func TestValidate_Rejects(t *testing.T) {
	cfg := Defaults()
	cfg.Decode = "lossy"
	require.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.Log.Level = "loud"
	require.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.Client = -1
	require.Error(t, cfg.Validate())
}

func TestWriteDefaultThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)

	require.NoError(t, os.WriteFile(path, []byte("client: 9\ndecode: replace\nui:\n  read_only: true\n"), 0o644))
	require.NoError(t, WriteDefault(path), "existing file is kept")

	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Client)
	require.Equal(t, model.DecodeReplace, cfg.DecodePolicy())
	require.True(t, cfg.UI.ReadOnly)
	require.Equal(t, 4, cfg.UI.TabWidth, "unset keys keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decode: [\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}
