package server

import (
	"strconv"
	"strings"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to. Empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Address returns the listen address for Fiber.
func (c Config) Address() string {
	return c.Host + ":" + strings.TrimPrefix(c.Port, ":")
}

// IsValidPort checks if the configured port is a usable TCP port number.
func (c Config) IsValidPort() bool {
	port, err := strconv.Atoi(strings.TrimPrefix(c.Port, ":"))
	return err == nil && port > 0 && port <= 65535
}
