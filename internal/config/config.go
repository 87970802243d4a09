package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	OpenAI    OpenAIConfig
	Twilio    TwilioConfig
	Session   SessionConfig
	Facebook  FacebookConfig
	Instagram InstagramConfig
	Admin     AdminConfig
	Storage   StorageConfig
}

type ServerConfig struct {
	Port string
}

type OpenAIConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
}

type TwilioConfig struct {
	SID   string
	Token string
	Phone string
}

type SessionConfig struct {
	Secret string
}

// FacebookConfig holds the Messenger channel credentials. The channel is
// enabled only when both fields are present.
type FacebookConfig struct {
	PageAccessToken string
	VerifyToken     string
}

type InstagramConfig struct {
	AccessToken string
	AppID       string
	AppSecret   string
}

type AdminConfig struct {
	Username string
	Password string
}

// StorageConfig points at the flat-file data directory holding the FAQ table
// and the append-only JSON logs.
type StorageConfig struct {
	DataDir string
}

// Load reads configuration from the environment. Call godotenv.Load first if
// a .env file should be honored.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "5000")
	v.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	v.SetDefault("OPENAI_MAX_TOKENS", 300)
	v.SetDefault("OPENAI_TEMPERATURE", 0.7)
	v.SetDefault("DATA_DIR", "data")

	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
		},
		OpenAI: OpenAIConfig{
			APIKey:      v.GetString("OPENAI_API_KEY"),
			Model:       v.GetString("OPENAI_MODEL"),
			MaxTokens:   v.GetInt("OPENAI_MAX_TOKENS"),
			Temperature: v.GetFloat64("OPENAI_TEMPERATURE"),
		},
		Twilio: TwilioConfig{
			SID:   v.GetString("TWILIO_SID"),
			Token: v.GetString("TWILIO_TOKEN"),
			Phone: v.GetString("TWILIO_PHONE"),
		},
		Session: SessionConfig{
			Secret: v.GetString("SESSION_SECRET"),
		},
		Facebook: FacebookConfig{
			PageAccessToken: v.GetString("FB_PAGE_ACCESS_TOKEN"),
			VerifyToken:     v.GetString("VERIFY_TOKEN"),
		},
		Instagram: InstagramConfig{
			AccessToken: v.GetString("INSTAGRAM_ACCESS_TOKEN"),
			AppID:       v.GetString("INSTAGRAM_APP_ID"),
			AppSecret:   v.GetString("INSTAGRAM_APP_SECRET"),
		},
		Admin: AdminConfig{
			Username: v.GetString("ADMIN_USERNAME"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
		Storage: StorageConfig{
			DataDir: v.GetString("DATA_DIR"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces the credentials nothing downstream can run without.
// Social-platform and admin credentials are optional; their features stay
// disabled when absent.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"OPENAI_API_KEY", c.OpenAI.APIKey},
		{"TWILIO_SID", c.Twilio.SID},
		{"TWILIO_TOKEN", c.Twilio.Token},
		{"TWILIO_PHONE", c.Twilio.Phone},
		{"SESSION_SECRET", c.Session.Secret},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("required configuration %s is missing", r.name)
		}
	}
	return nil
}

// FacebookEnabled reports whether the Messenger webhook can operate.
func (c *Config) FacebookEnabled() bool {
	return c.Facebook.PageAccessToken != "" && c.Facebook.VerifyToken != ""
}

// InstagramEnabled reports whether the Instagram webhook can operate.
func (c *Config) InstagramEnabled() bool {
	return c.Facebook.VerifyToken != ""
}

// AdminEnabled reports whether the admin surface accepts logins.
func (c *Config) AdminEnabled() bool {
	return c.Admin.Username != "" && c.Admin.Password != ""
}
