package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDotenvConfigLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "attackdb.env")
	err := os.WriteFile(path, []byte("ATTACKDB_TEST_DRIVER=sqlite\nATTACKDB_TEST_PORT=9000\n"), 0644)
	require.NoErrorf(t, err, "Unable to write dotenv file: %s", err)

	t.Cleanup(func() {
		_ = os.Unsetenv("ATTACKDB_TEST_DRIVER")
		_ = os.Unsetenv("ATTACKDB_TEST_PORT")
	})

	c := NewDotenvConfig(path)
	require.NoError(t, c.Load())

	require.Equal(t, "sqlite", c.GetKey("ATTACKDB_TEST_DRIVER"))
	require.Equal(t, 9000, c.GetIntKeyWithDefault("ATTACKDB_TEST_PORT", 1))
	require.Equal(t, "dflt", c.GetKeyWithDefault("ATTACKDB_TEST_MISSING", "dflt"))
	require.Equal(t, 7, c.GetIntKeyWithDefault("ATTACKDB_TEST_DRIVER", 7))
}

func TestDotenvConfigEmptyPathUsesEnvironment(t *testing.T) {
	t.Setenv("ATTACKDB_TEST_HOST", "db.local")

	c := NewDotenvConfig("")
	require.NoError(t, c.Load())
	require.Equal(t, "db.local", c.GetKey("ATTACKDB_TEST_HOST"))
}

func TestDotenvConfigMissingFile(t *testing.T) {
	c := NewDotenvConfig(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, c.Load())
}

func TestMapConfig(t *testing.T) {
	c := NewMapConfig(map[string]string{"DB_DRIVER": "mysql", "DB_PORT": "3307"})

	require.Equal(t, "mysql", c.GetKey("DB_DRIVER"))
	require.Equal(t, 3307, c.GetIntKeyWithDefault("DB_PORT", 3306))
	require.Equal(t, "", c.GetKey("DB_HOST"))
	require.Equal(t, "localhost", c.GetKeyWithDefault("DB_HOST", "localhost"))

	c.Set("DB_HOST", "example")
	require.Equal(t, "example", c.GetKey("DB_HOST"))
}

func TestMustGetKeyReturnsPresentValue(t *testing.T) {
	t.Setenv("ATTACKDB_TEST_DATABASE", "pokemon")
	require.Equal(t, "pokemon", NewDotenvConfig("").MustGetKey("ATTACKDB_TEST_DATABASE"))

	c := NewMapConfig(map[string]string{"DB_DATABASE": "pokemon"})
	require.Equal(t, "pokemon", c.MustGetKey("DB_DATABASE"))
}
