package config

import (
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the root configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	MySQL  MySQLConfig  `mapstructure:"mysql"`
	Log    LogConfig    `mapstructure:"log"`
	Jaeger JaegerConfig `mapstructure:"jaeger"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Escrow EscrowConfig `mapstructure:"escrow"`
}

// ServerConfig ...
type ServerConfig struct {
	HTTP ListenConfig `mapstructure:"http"`
}

// ListenConfig ...
type ListenConfig struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// String returns the address used for dialing
func (c ListenConfig) String() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ListenString returns the address used for listening
func (c ListenConfig) ListenString() string {
	return fmt.Sprintf(":%d", c.Port)
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

// EscrowConfig holds the constants of the escrow state machine
type EscrowConfig struct {
	FeeNumerator     uint64        `mapstructure:"fee_numerator"`
	FeeDenominator   uint64        `mapstructure:"fee_denominator"`
	CampaignDuration time.Duration `mapstructure:"campaign_duration"`
	MaxEditions      uint64        `mapstructure:"max_editions"`
	Admin            string        `mapstructure:"admin"`

	// AllowDeposit enables minting value to any identity, only for local environments
	AllowDeposit bool `mapstructure:"allow_deposit"`
}

// Validate ...
func (c EscrowConfig) Validate() error {
	if c.FeeDenominator == 0 {
		return fmt.Errorf("escrow.fee_denominator must be positive")
	}
	if c.FeeNumerator > c.FeeDenominator {
		return fmt.Errorf("escrow.fee_numerator must not exceed escrow.fee_denominator")
	}
	if c.CampaignDuration <= 0 {
		return fmt.Errorf("escrow.campaign_duration must be positive")
	}
	if c.MaxEditions == 0 {
		return fmt.Errorf("escrow.max_editions must be positive")
	}
	if c.Admin == "" {
		return fmt.Errorf("escrow.admin must be set")
	}
	return nil
}

// DefaultEscrowConfig returns the demo-scale constants
func DefaultEscrowConfig() EscrowConfig {
	return EscrowConfig{
		FeeNumerator:     25,
		FeeDenominator:   1000,
		CampaignDuration: 10 * time.Minute,
		MaxEditions:      5,
	}
}

func setDefaults(v *viper.Viper) {
	def := DefaultEscrowConfig()

	v.SetDefault("server.http.host", "localhost")
	v.SetDefault("server.http.port", 10080)

	v.SetDefault("log.level", "info")

	v.SetDefault("cache.size_bytes", 8*1024*1024)
	v.SetDefault("cache.ttl_seconds", 5)

	v.SetDefault("escrow.fee_numerator", def.FeeNumerator)
	v.SetDefault("escrow.fee_denominator", def.FeeDenominator)
	v.SetDefault("escrow.campaign_duration", def.CampaignDuration)
	v.SetDefault("escrow.max_editions", def.MaxEditions)
}

func loadConfig(v *viper.Viper) Config {
	setDefaults(v)

	v.SetEnvPrefix("ESCROW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(err)
		}
	}

	var conf Config
	err = v.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}

	if err := conf.Escrow.Validate(); err != nil {
		panic(err)
	}
	return conf
}

// Load loads config.yml from the working directory or $ESCROW_CONFIG_DIR
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	if dir := os.Getenv("ESCROW_CONFIG_DIR"); dir != "" {
		v.AddConfigPath(dir)
	}
	return loadConfig(v)
}

// LoadTestConfig loads config.test.yml at the root directory
func LoadTestConfig(rootDir string) Config {
	_ = godotenv.Load(path.Join(rootDir, ".env.test"))

	v := viper.New()
	v.SetConfigName("config.test")
	v.SetConfigType("yml")
	v.AddConfigPath(rootDir)
	return loadConfig(v)
}
