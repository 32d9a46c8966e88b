package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8082", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "hsp_portal", cfg.Database.DBName)
	assert.Equal(t, "gcs", cfg.Storage.Type)
	assert.Equal(t, "http://localhost:3000", cfg.Gotenberg.URL)
	assert.Equal(t, "30s", cfg.Gotenberg.Timeout)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("STORAGE_TYPE", "local")
	t.Setenv("GOTENBERG_URL", "http://gotenberg:3000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, "http://gotenberg:3000", cfg.Gotenberg.URL)
}

func TestDSN_TCPAndUnixSocket(t *testing.T) {
	tcp := DatabaseConfig{Host: "localhost", Port: "5432", User: "postgres", Password: "pw", DBName: "hsp_portal"}
	assert.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=hsp_portal sslmode=disable", tcp.DSN())

	socket := DatabaseConfig{Host: "/cloudsql/project:region:instance", User: "postgres", Password: "pw", DBName: "hsp_portal"}
	assert.Equal(t, "host=/cloudsql/project:region:instance user=postgres password=pw dbname=hsp_portal sslmode=disable", socket.DSN())
}
