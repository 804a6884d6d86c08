package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetenv(t *testing.T, key string) {
	t.Helper()
	// Setenv registers the restore of the original value.
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_PORT", "DB_DRIVER", "DB_DSN", "PLANNER_TIMEZONE", "TRANSLATION_FOLDER", "TRUSTED_PROXIES"} {
		unsetenv(t, key)
	}
	chdir(t, t.TempDir())

	cfg := LoadConfig()
	assert.Equal(t, EnvProduction, cfg.AppEnv)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, DriverSQLite, cfg.DbDriver)
	assert.Equal(t, "", cfg.DbDSN)
	assert.Equal(t, "Asia/Shanghai", cfg.Timezone)
	assert.Nil(t, cfg.TrustedProxies)
}

func TestLoadConfig_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_PORT=7070\nDB_DSN=file:dotenv.db\n"), 0o600))
	t.Setenv("APP_PORT", "9000")
	unsetenv(t, "DB_DSN")

	cfg := LoadConfig()
	require.Equal(t, "9000", cfg.AppPort)
	require.Equal(t, "file:dotenv.db", cfg.DbDSN)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("PLANNER_TIMEZONE", "UTC")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.1, ,192.168.0.0/16 ")

	cfg := LoadConfig()
	require.Equal(t, "9090", cfg.AppPort)
	require.Equal(t, DriverMySQL, cfg.DbDriver)
	require.Equal(t, "UTC", cfg.Timezone)
	require.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, cfg.TrustedProxies)
}

func TestParseTrustedProxies(t *testing.T) {
	assert.Nil(t, parseTrustedProxies(""))
	assert.Nil(t, parseTrustedProxies(" , ,"))
	assert.Equal(t, []string{"127.0.0.1"}, parseTrustedProxies("127.0.0.1"))
}
