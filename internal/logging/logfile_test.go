package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRunID(t *testing.T) {
	a := GenerateRunID()
	b := GenerateRunID()

	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestValidateLogDir(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.ErrorIs(t, ValidateLogDir(""), ErrEmptyLogDirectory)
	})

	t.Run("missing directory is acceptable", func(t *testing.T) {
		assert.NoError(t, ValidateLogDir(filepath.Join(t.TempDir(), "not-yet")))
	})

	t.Run("existing directory", func(t *testing.T) {
		assert.NoError(t, ValidateLogDir(t.TempDir()))
	})

	t.Run("regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		assert.ErrorIs(t, ValidateLogDir(path), ErrNotADirectory)
	})
}

func TestOpenRunLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	runID := GenerateRunID()

	file, path, err := OpenRunLog(dir, runID)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, file.Close())
	}()

	assert.Equal(t, dir, filepath.Dir(path))
	base := filepath.Base(path)
	assert.True(t, strings.HasSuffix(base, "_"+runID+".json"), "file name %q must end with the run ID", base)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, logFilePerm, info.Mode().Perm())
}

func TestOpenRunLog_InvalidDir(t *testing.T) {
	_, _, err := OpenRunLog("", "run")
	assert.ErrorIs(t, err, ErrEmptyLogDirectory)
}
