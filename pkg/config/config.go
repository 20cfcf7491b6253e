package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/flowHater/user-seeder/pkg/seeder"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "SEEDER"

var (
	// ErrMissingURI is returned when no connection string was configured
	ErrMissingURI = errors.New("mongo.uri is required (set SEEDER_MONGO_URI)")
	// ErrInvalidMode is returned for a seed mode other than insert or upsert
	ErrInvalidMode = errors.New("invalid seed mode")
	// ErrMissingTarget is returned when the database or collection name is empty
	ErrMissingTarget = errors.New("mongo.database and mongo.collection must not be empty")
)

// Config holds everything the seeder needs to run
type Config struct {
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Seed    SeedConfig    `mapstructure:"seed"`
	Log     LogConfig     `mapstructure:"log"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// MongoConfig describes the deployment and the collection the users are written to
type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	CAFile         string        `mapstructure:"ca_file"`
	AppName        string        `mapstructure:"app_name"`
	Database       string        `mapstructure:"database"`
	Collection     string        `mapstructure:"collection"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// SeedConfig selects how the batch is written
type SeedConfig struct {
	Mode        seeder.Mode `mapstructure:"mode"`
	EnsureIndex bool        `mapstructure:"ensure_index"`
}

// LogConfig sets the logger level and output format
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var defaults = map[string]interface{}{
	"mongo.ca_file":         "",
	"mongo.app_name":        "user-seeder",
	"mongo.database":        seeder.DefaultDatabase,
	"mongo.collection":      seeder.DefaultCollection,
	"mongo.connect_timeout": "10s",
	"seed.mode":             string(seeder.ModeInsert),
	"seed.ensure_index":     false,
	"log.level":             "info",
	"log.format":            "text",
	"timeout":               "30s",
}

// Load reads the configuration. A .env file in the working directory is loaded
// into the environment first when present, then the optional YAML file at path,
// then SEEDER_* environment variables which take precedence.
// The result is not validated, callers apply their overrides then call Validate.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("Error during loading .env with: %w", err)
	}

	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("Error during reading config file %s with: %w", path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// uri has no default so viper does not know the key until bound
	if err := v.BindEnv("mongo.uri"); err != nil {
		return nil, fmt.Errorf("Error during binding mongo.uri with: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("Error during unmarshalling config with: %w", err)
	}

	return &c, nil
}

// Override applies command line values on top of the loaded configuration.
// An empty mode keeps the configured one, ensureIndex can only turn the index on.
func (c *Config) Override(mode string, ensureIndex bool) {
	if mode != "" {
		c.Seed.Mode = seeder.Mode(mode)
	}
	c.Seed.EnsureIndex = c.Seed.EnsureIndex || ensureIndex
}

// Validate checks the fields that have no usable default
func (c Config) Validate() error {
	if c.Mongo.URI == "" {
		return ErrMissingURI
	}
	if c.Seed.Mode != seeder.ModeInsert && c.Seed.Mode != seeder.ModeUpsert {
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Seed.Mode)
	}
	if c.Mongo.Database == "" || c.Mongo.Collection == "" {
		return ErrMissingTarget
	}

	return nil
}

// RedactURI hides the password of a connection string so it can be logged
func RedactURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "<unparseable uri>"
	}
	if u.User == nil {
		return u.String()
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}

	return u.String()
}
