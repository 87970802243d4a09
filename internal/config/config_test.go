package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("TWILIO_SID", "AC123")
	t.Setenv("TWILIO_TOKEN", "tok")
	t.Setenv("TWILIO_PHONE", "+15550000000")
	t.Setenv("SESSION_SECRET", "secret")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
	assert.Equal(t, 300, cfg.OpenAI.MaxTokens)
	assert.InDelta(t, 0.7, cfg.OpenAI.Temperature, 1e-9)
	assert.Equal(t, "data", cfg.Storage.DataDir)
}

func TestLoadHonorsEnvironmentOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("DATA_DIR", "/var/lib/cloudi")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "/var/lib/cloudi", cfg.Storage.DataDir)
}

func TestValidateNamesMissingVariable(t *testing.T) {
	cases := []string{"OPENAI_API_KEY", "TWILIO_SID", "TWILIO_TOKEN", "TWILIO_PHONE", "SESSION_SECRET"}
	for _, missing := range cases {
		t.Run(missing, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(missing, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestFeatureToggles(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.FacebookEnabled())
	assert.False(t, cfg.InstagramEnabled())
	assert.False(t, cfg.AdminEnabled())

	cfg.Facebook = FacebookConfig{PageAccessToken: "page-token", VerifyToken: "verify"}
	assert.True(t, cfg.FacebookEnabled())
	assert.True(t, cfg.InstagramEnabled())

	cfg.Admin = AdminConfig{Username: "root"}
	assert.False(t, cfg.AdminEnabled(), "admin needs both username and password")
	cfg.Admin.Password = "pw"
	assert.True(t, cfg.AdminEnabled())
}
