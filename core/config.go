package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Host            string
		APIHost         string
		DebugHost       string
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
	}

	CatalogConfig struct {
		BaseURL string
		Timeout time.Duration
	}

	OpenAlexConfig struct {
		BaseURL string
		Timeout time.Duration
	}

	AdvisorConfig struct {
		APIKey  string
		Model   string
		Timeout time.Duration
	}

	// DegreeConfig holds the requirement targets progress is measured against.
	DegreeConfig struct {
		TotalCredits    int
		HubUnits        int
		MinSemesterLoad int
	}

	Config struct {
		AppName          string
		Env              string // DEV (default), TEST, QA, PROD
		Debug            bool
		TestMode         bool
		Build            string
		FrontendBaseURL  string
		DefaultFromEmail mail.Address

		Server   ServerConfig
		Catalog  CatalogConfig
		OpenAlex OpenAlexConfig
		Advisor  AdvisorConfig
		Degree   DegreeConfig

		SendgridAPIKey string
		RollbarToken   string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Gradmap")
	v.SetDefault("build", "dev")
	v.SetDefault("frontendBaseURL", "http://localhost:5173")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("apiHost", "0.0.0.0:8000")
	v.SetDefault("debugHost", "0.0.0.0:4000")
	v.SetDefault("readTimeout", 5*time.Second)
	v.SetDefault("writeTimeout", 10*time.Second)
	v.SetDefault("shutdownTimeout", 5*time.Second)
	v.SetDefault("catalogBaseURL", "http://localhost:8800")
	v.SetDefault("catalogTimeout", 10*time.Second)
	v.SetDefault("openAlexBaseURL", "https://api.openalex.org")
	v.SetDefault("openAlexTimeout", 10*time.Second)
	v.SetDefault("advisorModel", "gemini-2.0-flash")
	v.SetDefault("advisorTimeout", 20*time.Second)
	v.SetDefault("degreeTotalCredits", 128)
	v.SetDefault("degreeHubUnits", 26)
	v.SetDefault("degreeMinSemesterLoad", 15)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		AppName:          v.GetString("appName"),
		Env:              env,
		Debug:            v.GetBool("debug"),
		TestMode:         env == "TEST",
		Build:            v.GetString("build"),
		FrontendBaseURL:  v.GetString("frontendBaseURL"),
		DefaultFromEmail: mail.Address{Name: v.GetString("appName"), Address: v.GetString("defaultFromEmail")},
		Server: ServerConfig{
			Host:            v.GetString("serverHost"),
			APIHost:         v.GetString("apiHost"),
			DebugHost:       v.GetString("debugHost"),
			ReadTimeout:     v.GetDuration("readTimeout"),
			WriteTimeout:    v.GetDuration("writeTimeout"),
			ShutdownTimeout: v.GetDuration("shutdownTimeout"),
		},
		Catalog: CatalogConfig{
			BaseURL: v.GetString("catalogBaseURL"),
			Timeout: v.GetDuration("catalogTimeout"),
		},
		OpenAlex: OpenAlexConfig{
			BaseURL: v.GetString("openAlexBaseURL"),
			Timeout: v.GetDuration("openAlexTimeout"),
		},
		Advisor: AdvisorConfig{
			APIKey:  v.GetString("advisorAPIKey"),
			Model:   v.GetString("advisorModel"),
			Timeout: v.GetDuration("advisorTimeout"),
		},
		Degree: DegreeConfig{
			TotalCredits:    v.GetInt("degreeTotalCredits"),
			HubUnits:        v.GetInt("degreeHubUnits"),
			MinSemesterLoad: v.GetInt("degreeMinSemesterLoad"),
		},
		SendgridAPIKey: v.GetString("sendgridAPIKey"),
		RollbarToken:   v.GetString("rollbarToken"),
	}
}
