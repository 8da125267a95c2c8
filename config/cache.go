package config

// CacheConfig for the in-process campaign view cache
type CacheConfig struct {
	SizeBytes  int `mapstructure:"size_bytes"`
	TTLSeconds int `mapstructure:"ttl_seconds"`
}
