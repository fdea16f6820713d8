package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode     string `mapstructure:"mode"`
	Dotenv   string `mapstructure:"dotenv"`
	Handlers struct {
		Prometheus struct {
			Port    string `mapstructure:"port"`
			Enabled bool   `mapstructure:"enabled"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Places     PlacesConfig `mapstructure:"places"`
	Categories []string     `mapstructure:"categories"`
	RateLimit  struct {
		Requests int           `mapstructure:"requests"`
		Window   time.Duration `mapstructure:"window"`
	} `mapstructure:"rateLimit"`
	Server struct {
		HTTPPort  string        `mapstructure:"HTTPPort"`
		Timeout   time.Duration `mapstructure:"HTTPTimeout"`
		CertFile  string        `mapstructure:"certFile"`
		KeyFile   string        `mapstructure:"keyFile"`
		EnableTLS bool          `mapstructure:"enableTLS"`
	} `mapstructure:"server"`
}

// PlacesConfig configures the upstream Maps web services client.
type PlacesConfig struct {
	APIKey          string        `mapstructure:"apiKey"`
	GeocodeURL      string        `mapstructure:"geocodeURL"`
	NearbySearchURL string        `mapstructure:"nearbySearchURL"`
	DetailsURL      string        `mapstructure:"detailsURL"`
	Timeout         time.Duration `mapstructure:"timeout"`
	PageDelay       time.Duration `mapstructure:"pageDelay"`
	MaxResults      int           `mapstructure:"maxResults"`
	DetailFields    []string      `mapstructure:"detailFields"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")
	v.AddConfigPath("/usr/local/bin")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// RF_PLACES_APIKEY overrides places.apiKey, and so on.
	v.SetEnvPrefix("RF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("places.apiKey", "RF_PLACES_APIKEY", "GOOGLE_MAPS_API_KEY"); err != nil {
		return Config{}, fmt.Errorf("failed to bind api key env: %w", err)
	}

	err := v.ReadInConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	// Env lookups happen on Unmarshal, so values from the dotenv file apply
	// like any other environment variable. Variables already set win.
	if path := v.GetString("dotenv"); path != "" {
		if err = godotenv.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s file not found or error loading: %s\n", path, err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return config, nil
}

// Validate reports configuration that would make every search fail.
func (c Config) Validate() error {
	if c.Places.GeocodeURL == "" || c.Places.NearbySearchURL == "" || c.Places.DetailsURL == "" {
		return fmt.Errorf("places endpoints must be configured")
	}
	if c.Places.MaxResults <= 0 {
		return fmt.Errorf("places.maxResults must be positive, got %d", c.Places.MaxResults)
	}
	if c.Places.PageDelay < 0 {
		return fmt.Errorf("places.pageDelay must not be negative")
	}
	if c.Server.EnableTLS && (c.Server.CertFile == "" || c.Server.KeyFile == "") {
		return fmt.Errorf("server.certFile and server.keyFile are required when TLS is enabled")
	}
	return nil
}

func (c Config) IsDevelopment() bool {
	return c.Mode == "" || c.Mode == "development" || c.Mode == "dev"
}
