package ident

// Config holds configuration for identifier validation.
type Config struct {
	// Length is the exact number of hex characters an identifier must have.
	Length int `mapstructure:"length" default:"24"`
}
