package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-attendees/config"
)

// isolate runs the test from an empty directory so no config.yaml or .env leaks in.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		viper.Reset()
	})
	viper.Reset()

	for _, key := range []string{"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "GOOGLE_CALLBACK_URL"} {
		t.Setenv(key, "")
	}
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("Flat env shortcuts and defaults", func(t *testing.T) {
		isolate(t)
		t.Setenv("GOOGLE_CLIENT_ID", "id")
		t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
		t.Setenv("GOOGLE_CALLBACK_URL", "http://localhost:8080/auth/google/callback")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "id", cfg.GoogleOAuth.ClientID)
		assert.Equal(t, "secret", cfg.GoogleOAuth.ClientSecret)
		assert.Equal(t, []string{config.DefaultCalendarScope}, cfg.GoogleOAuth.Scopes)
		assert.Equal(t, "offline", cfg.GoogleOAuth.AccessType)
		assert.Equal(t, 30, cfg.Aggregation.WindowDays)
		assert.Equal(t, "startTime", cfg.Aggregation.OrderBy)
		assert.True(t, cfg.Aggregation.SingleEvents)
		assert.Equal(t, 8080, cfg.HTTPServer.Port)
	})

	t.Run("Config file", func(t *testing.T) {
		dir := isolate(t)
		yaml := []byte(`
google_oauth:
  client_id: file-id
  client_secret: file-secret
  callback_url: https://example.com/cb
  access_type: online
aggregation:
  window_days: 7
rate_limit:
  callback_per_min: 0
`)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "file-id", cfg.GoogleOAuth.ClientID)
		assert.Equal(t, "online", cfg.GoogleOAuth.AccessType)
		assert.Equal(t, 7, cfg.Aggregation.WindowDays)
		assert.Equal(t, 0, cfg.RateLimit.CallbackPerMin)
	})

	t.Run("Dotenv file", func(t *testing.T) {
		dir := isolate(t)
		env := []byte("GOOGLE_CLIENT_ID=dot-id\nGOOGLE_CLIENT_SECRET=dot-secret\nGOOGLE_CALLBACK_URL=http://localhost/cb\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), env, 0o600))
		// godotenv never overrides variables that are already set.
		for _, key := range []string{"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "GOOGLE_CALLBACK_URL"} {
			require.NoError(t, os.Unsetenv(key))
		}
		t.Cleanup(func() {
			for _, key := range []string{"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "GOOGLE_CALLBACK_URL"} {
				_ = os.Unsetenv(key)
			}
		})

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "dot-id", cfg.GoogleOAuth.ClientID)
	})

	t.Run("Missing client id", func(t *testing.T) {
		isolate(t)
		t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
		t.Setenv("GOOGLE_CALLBACK_URL", "http://localhost/cb")

		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrConfig)
	})

	t.Run("Missing callback", func(t *testing.T) {
		isolate(t)
		t.Setenv("GOOGLE_CLIENT_ID", "id")
		t.Setenv("GOOGLE_CLIENT_SECRET", "secret")

		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrConfig)
	})

	t.Run("Invalid access type", func(t *testing.T) {
		isolate(t)
		t.Setenv("GOOGLE_CLIENT_ID", "id")
		t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
		t.Setenv("GOOGLE_CALLBACK_URL", "http://localhost/cb")
		t.Setenv("GOOGLE_OAUTH_ACCESS_TYPE", "forever")

		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrConfig)
	})

	t.Run("startTime ordering without single events", func(t *testing.T) {
		isolate(t)
		t.Setenv("GOOGLE_CLIENT_ID", "id")
		t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
		t.Setenv("GOOGLE_CALLBACK_URL", "http://localhost/cb")
		t.Setenv("AGGREGATION_SINGLE_EVENTS", "false")

		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrConfig)
	})

	t.Run("Unordered recurring masters are allowed", func(t *testing.T) {
		isolate(t)
		t.Setenv("GOOGLE_CLIENT_ID", "id")
		t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
		t.Setenv("GOOGLE_CALLBACK_URL", "http://localhost/cb")
		t.Setenv("AGGREGATION_SINGLE_EVENTS", "false")
		t.Setenv("AGGREGATION_ORDER_BY", "updated")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.False(t, cfg.Aggregation.SingleEvents)
		assert.Equal(t, "updated", cfg.Aggregation.OrderBy)
	})
}
