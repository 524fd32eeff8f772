package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the process needs, resolved once in main and
// passed into constructors. Nothing else reads the environment.
type Config struct {
	Port          string
	DatabasePath  string
	UploadDir     string
	GeminiAPIKey  string
	GeminiModel   string
	ScrapeTimeout time.Duration
	LLMTimeout    time.Duration
}

// Load resolves configuration from the environment with sane local-dev
// defaults. Variables use the JOBAPP_ prefix (e.g. JOBAPP_PORT=9000);
// GEMINI_API_KEY is also accepted without the prefix since that is the
// name the Gemini docs and .env files use.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("JOBAPP")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("database_path", "data/applications.db")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.SetDefault("scrape_timeout", 10*time.Second)
	v.SetDefault("llm_timeout", 30*time.Second)

	_ = v.BindEnv("gemini_api_key", "JOBAPP_GEMINI_API_KEY", "GEMINI_API_KEY")

	return &Config{
		Port:          v.GetString("port"),
		DatabasePath:  v.GetString("database_path"),
		UploadDir:     v.GetString("upload_dir"),
		GeminiAPIKey:  v.GetString("gemini_api_key"),
		GeminiModel:   v.GetString("gemini_model"),
		ScrapeTimeout: v.GetDuration("scrape_timeout"),
		LLMTimeout:    v.GetDuration("llm_timeout"),
	}
}
