package catalog

// Config holds configuration for the name catalog.
type Config struct {
	// Source selects the catalog backend (none, database, storage).
	Source string `mapstructure:"source" default:"none"`
	// Table is the catalog table for the database source.
	Table string `mapstructure:"table" default:"objects"`
	// IDColumn is the column holding identifiers.
	IDColumn string `mapstructure:"id_column" default:"id"`
	// NameColumn is the column holding display names.
	NameColumn string `mapstructure:"name_column" default:"name"`
	// Object is the JSON object name for the storage source.
	Object string `mapstructure:"object" default:"catalog/objects.json"`
	// CacheTTLSeconds is how long the storage index is reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

const (
	SourceNone     = "none"
	SourceDatabase = "database"
	SourceStorage  = "storage"
)

// IsValidSource checks if the configured source is known.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceNone, SourceDatabase, SourceStorage, "":
		return true
	default:
		return false
	}
}
