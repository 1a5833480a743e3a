package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("DB_DSN", "")

	cfg := New()

	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Contains(t, cfg.DB.DSN, "@tcp(localhost:3306)/interviews")
	assert.Equal(t, 4, cfg.Quota.BaseLimit)
	assert.Equal(t, "Asia/Seoul", cfg.Quota.Timezone)
	assert.Equal(t, "50051", cfg.GRPC.Port)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_DSN", "")
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("QUOTA_BASE_LIMIT", "7")
	t.Setenv("LOG_SOURCE", "true")
	t.Setenv("REMINDER_MIN_DAYS", "5")

	cfg := New()

	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Contains(t, cfg.DB.DSN, "host=pg")
	assert.Equal(t, 7, cfg.Quota.BaseLimit)
	assert.True(t, cfg.Log.Source)
	assert.Equal(t, 5, cfg.Reminder.MinDays)
	assert.Equal(t, float64(5*24), cfg.ReminderAge().Hours())
}

func TestNew_ExplicitDSNWins(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("MYSQL_DSN", "u:p@tcp(db:3306)/x")

	cfg := New()
	assert.Equal(t, "u:p@tcp(db:3306)/x", cfg.DB.DSN)
}

func TestNew_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "app.yaml")
	require.NoError(t, os.WriteFile(file, []byte("grpc_port: \"6000\"\nquota_timezone: UTC\n"), 0o600))

	t.Setenv("CONFIG_FILE", file)
	t.Setenv("GRPC_PORT", "")
	t.Setenv("QUOTA_TIMEZONE", "")

	cfg := New()
	assert.Equal(t, "6000", cfg.GRPC.Port)
	assert.Equal(t, "UTC", cfg.Quota.Timezone)
}
