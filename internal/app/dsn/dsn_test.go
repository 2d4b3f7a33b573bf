package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "leitor")
	t.Setenv("DB_PASS", "s3 cr'et")
	t.Setenv("DB_NAME", "dados")
	t.Setenv("DB_SCHEMA", "siconv")
	t.Setenv("DB_SSLMODE", "")

	got := FromEnv()

	assert.Contains(t, got, "host=db.internal")
	assert.Contains(t, got, "port=6543")
	assert.Contains(t, got, "user=leitor")
	assert.Contains(t, got, "dbname=dados")
	assert.Contains(t, got, "sslmode=disable")
	assert.Contains(t, got, `password='s3 cr\'et'`)
	assert.Contains(t, got, "search_path=siconv")
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DB_SCHEMA", "")
	t.Setenv("DB_PASS", "")

	got := FromEnv()

	assert.Contains(t, got, "search_path="+DefaultSchema)
	assert.NotContains(t, got, "password")
}
