package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
http:
  address: ":8080"
  swagger_dir: "docs"
database:
  host: "db.internal"
  port: 5432
  user: "app"
  password: "secret"
  name: "airagency"
  ssl_mode: "disable"
redis:
  addr: "localhost:6379"
kafka:
  brokers:
    - "localhost:9092"
  events_topic: "airagency.events"
cache:
  list_ttl_seconds: 60
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeTestConfig(t))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 60, cfg.Cache.ListTTLSeconds)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("DB_HOST", "override.internal")
	t.Setenv("DB_PASSWORD", "env-secret")

	cfg, err := LoadConfig(writeTestConfig(t))

	require.NoError(t, err)
	assert.Equal(t, "override.internal", cfg.Database.Host)
	assert.Equal(t, "env-secret", cfg.Database.Password)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	assert.Equal(t, "host=h port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", d.MigrateURL())
}
