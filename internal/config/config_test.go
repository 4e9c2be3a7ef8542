package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FIREBASE_PROJECT_ID", "test-project")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/creds.json")
	t.Setenv("STORAGE_BUCKET", "test-project.appspot.com")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadBytes)
	assert.Equal(t, 30, cfg.RequestTimeoutSeconds)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, 120, cfg.RateLimitBurst)
	assert.Equal(t, "test-project", cfg.FirebaseProjectID)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9001")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "10")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9001", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, int64(1048576), cfg.MaxUploadBytes)
	assert.Equal(t, 10, cfg.RequestTimeoutSeconds)
}

func TestLoadConfigMissingProjectID(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/creds.json")
	t.Setenv("STORAGE_BUCKET", "bucket")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIREBASE_PROJECT_ID")
}

func TestLoadConfigRequiresCredentials(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "test-project")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64", "")
	t.Setenv("STORAGE_BUCKET", "bucket")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_APPLICATION_CREDENTIALS")
}

func TestLoadConfigAcceptsBase64Credentials(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "test-project")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64", "eyJmYWtlIjoidHJ1ZSJ9")
	t.Setenv("STORAGE_BUCKET", "bucket")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "eyJmYWtlIjoidHJ1ZSJ9", cfg.FirebaseServiceAccountJSONBase64)
}

func TestLoadConfigMissingStorageBucket(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "test-project")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/creds.json")
	t.Setenv("STORAGE_BUCKET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_BUCKET")
}

func TestGetConfigAfterLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Same(t, cfg, GetConfig())
}
