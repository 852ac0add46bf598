package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(home, ".zonepack", "config.toml"), store.Path())

	// Cleanup
	_ = os.Remove(store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set("export.output_dir", "/data/exports")
	require.NoError(t, err)

	val, ok := store.Get("export.output_dir")
	assert.True(t, ok)
	assert.Equal(t, "/data/exports", val)

	_, ok = store.Get("nonexistent")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("geometry.backend_url", "https://rings.example.com"))
	require.NoError(t, store.Set("geometry.densify_step_km", 25))
	require.NoError(t, store.Set("buffer.default_distance_km", 5.0))
	require.NoError(t, store.Set("export.verbose", true))

	assert.Equal(t, "https://rings.example.com", store.GetString("geometry.backend_url"))
	assert.Equal(t, 25, store.GetInt("geometry.densify_step_km"))
	assert.Equal(t, 5.0, store.GetFloat("buffer.default_distance_km"))
	assert.True(t, store.GetBool("export.verbose"))

	// Missing keys fall back to zero values
	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("missing"))
	assert.Equal(t, 0.0, store.GetFloat("missing"))
	assert.False(t, store.GetBool("missing"))

	// Wrong types fall back too
	assert.Equal(t, 0, store.GetInt("geometry.backend_url"))
	assert.Equal(t, "", store.GetString("export.verbose"))
}

// TOML serialises whole floats as integers; GetFloat must still read them.
func TestConfigStore_GetFloat_WholeNumber(t *testing.T) {
	tmpDir := t.TempDir()
	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("buffer.default_distance_km", 10))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 10.0, store2.GetFloat("buffer.default_distance_km"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("geometry.backend_url", "https://rings.example.com"))
	require.NoError(t, store1.Set("buffer.default_distance_km", 2.5))

	// A fresh store loads from the same file
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "https://rings.example.com", store2.GetString("geometry.backend_url"))
	assert.Equal(t, 2.5, store2.GetFloat("buffer.default_distance_km"))
}

func TestConfigStore_Load_FlattensNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[geometry]\nbackend_url = \"https://rings.example.com\"\n\n[export]\nverbose = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "https://rings.example.com", store.GetString("geometry.backend_url"))
	assert.True(t, store.GetBool("export.verbose"))
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any_key")
	assert.False(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_, _ = store.Get(key)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
