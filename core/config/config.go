package config

import (
	"fmt"
	"reflect"
	"strings"

	"ledger-manager/core/catalog"
	"ledger-manager/core/database"
	"ledger-manager/core/ident"
	"ledger-manager/core/logger"
	"ledger-manager/core/server"
	"ledger-manager/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Identifier holds the identifier validation rules.
	Identifier ident.Config `mapstructure:"identifier"`
	// Catalog selects the optional display-name catalog.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Database holds configuration for the catalog database connection.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the catalog object storage.
	Storage storage.Config `mapstructure:"storage"`
}

// LoadConfig loads configuration from environment variables and the .env file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." || path == "" {
		envPath = ".env"
	}

	// A missing .env is normal in production
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks cross-field constraints that defaults cannot express.
func (c *Config) Validate() error {
	if !c.Server.IsValidPort() {
		return fmt.Errorf("invalid server port: %q", c.Server.Port)
	}
	if c.Identifier.Length <= 0 {
		return fmt.Errorf("identifier length must be positive, got %d", c.Identifier.Length)
	}
	if !c.Catalog.IsValidSource() {
		return fmt.Errorf("invalid catalog source: %q", c.Catalog.Source)
	}
	return nil
}

// bindValues walks the struct and registers every mapstructure key in Viper with
// the value of its 'default' tag.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set a default, even empty, so AutomaticEnv can find the key
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
