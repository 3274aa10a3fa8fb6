package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSource_Lookup(t *testing.T) {
	// Arrange
	src := mapSource{"FOO": {"bar": "1"}}

	// Act & Assert
	v, ok := src.Lookup("FOO", "bar")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = src.Lookup("FOO", "missing")
	assert.False(t, ok)

	_, ok = src.Lookup("MISSING", "bar")
	assert.False(t, ok)
}

func TestMapSource_NilMap(t *testing.T) {
	// Arrange
	var src mapSource

	// Act
	_, ok := src.Lookup("FOO", "bar")

	// Assert
	assert.False(t, ok)
}

func TestEnvSource_Lookup(t *testing.T) {
	// Arrange
	t.Setenv("FOO_bar", "from-env")

	// Act
	v, ok := envSource{}.Lookup("FOO", "bar")

	// Assert
	assert.True(t, ok)
	assert.Equal(t, "from-env", v)
}

func TestEnvSource_Unset(t *testing.T) {
	// Arrange
	require.NoError(t, os.Unsetenv("FOO_definitely_not_set"))

	// Act
	_, ok := envSource{}.Lookup("FOO", "definitely_not_set")

	// Assert
	assert.False(t, ok)
}

func TestFileSource_Lookup(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "default")
	content := "[FOO]\nbar = 3\n\n[AWS]\nregion = eu-west-1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	src, err := newFileSource(path)
	require.NoError(t, err)

	// Act & Assert
	v, ok := src.Lookup("FOO", "bar")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	v, ok = src.Lookup("AWS", "region")
	assert.True(t, ok)
	assert.Equal(t, "eu-west-1", v)

	_, ok = src.Lookup("FOO", "missing")
	assert.False(t, ok)

	_, ok = src.Lookup("MISSING", "bar")
	assert.False(t, ok)
}

func TestFileSource_MissingFile(t *testing.T) {
	// Act
	_, err := newFileSource(filepath.Join(t.TempDir(), "nope"))

	// Assert
	require.Error(t, err)
}
