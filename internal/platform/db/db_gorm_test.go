package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDSN(t *testing.T) {
	t.Run("tcp form from host and port", func(t *testing.T) {
		t.Setenv("DB_USER", "app")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "contacts")
		t.Setenv("DB_HOST", "127.0.0.1")
		t.Setenv("DB_PORT", "3306")
		t.Setenv("INSTANCE_CONNECTION_NAME", "")

		dsn := buildDSN()
		assert.True(t, strings.HasPrefix(dsn, "app:secret@tcp(127.0.0.1:3306)/contacts?"), dsn)
	})

	t.Run("cloudsql socket form wins when the instance is set", func(t *testing.T) {
		t.Setenv("DB_USER", "app")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "contacts")
		t.Setenv("INSTANCE_CONNECTION_NAME", "proj:region:db")

		dsn := buildDSN()
		assert.Contains(t, dsn, "@unix(/cloudsql/proj:region:db)/contacts?")
	})

	t.Run("row counts reflect matched rows", func(t *testing.T) {
		t.Setenv("DB_USER", "app")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "contacts")
		t.Setenv("DB_HOST", "127.0.0.1")
		t.Setenv("DB_PORT", "3306")
		t.Setenv("INSTANCE_CONNECTION_NAME", "")

		// Without clientFoundRows an owner re-submitting identical contact
		// values would read as an ownership skip.
		assert.Contains(t, buildDSN(), "clientFoundRows=true")
	})
}
