package app

import (
	stderrors "errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool   `mapstructure:"verbose"`
	Quiet   bool   `mapstructure:"quiet"`
	NoColor bool   `mapstructure:"no_color"`
	Format  string `mapstructure:"format" validate:"omitempty,oneof=table json yaml"`

	// Config file
	ConfigFile string `mapstructure:"config"`

	// Catalog storage
	File       string `mapstructure:"file" validate:"required_if=Store file"`
	Store      string `mapstructure:"store" validate:"oneof=file badger"`
	BadgerDir  string `mapstructure:"badger_dir" validate:"required_if=Store badger"`
	StrictLoad bool   `mapstructure:"strict_load"`
	MaxBooks   int    `mapstructure:"max_books" validate:"min=0"`

	// Logging configuration
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=auto console json"`
	LogOutput string `mapstructure:"log_output"`
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra, see UpdateFromFlags)
// 2. Environment variables
// 3. .env files
// 4. Config file (configFile, or ~/.bookshelf.yaml, or ./.bookshelf.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("file", constants.DefaultCatalogFile)
	v.SetDefault("store", constants.StoreFile)
	v.SetDefault("badger_dir", constants.DefaultBadgerDir)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "reading "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".bookshelf")

		// a missing config file is fine, a broken one is not
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "reading config file", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		File:       v.GetString("file"),
		Store:      strings.ToLower(v.GetString("store")),
		BadgerDir:  v.GetString("badger_dir"),
		StrictLoad: v.GetBool("strict_load"),
		MaxBooks:   v.GetInt("max_books"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Flags are the values of the root command's persistent flags.
// Empty strings leave the configured value untouched.
type Flags struct {
	Verbose  bool
	Quiet    bool
	NoColor  bool
	Format   string
	LogLevel string
	File     string
	Store    string
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(f Flags) error {
	c.Verbose = c.Verbose || f.Verbose
	c.Quiet = c.Quiet || f.Quiet
	c.NoColor = c.NoColor || f.NoColor
	if f.Format != "" {
		c.Format = strings.ToLower(f.Format)
	}
	switch {
	case f.LogLevel != "":
		c.LogLevel = f.LogLevel
	case f.Verbose || f.Quiet:
		// -v and -q beat LOG_LEVEL from the environment
		c.LogLevel = ""
	}
	if f.File != "" {
		c.File = f.File
	}
	if f.Store != "" {
		c.Store = strings.ToLower(f.Store)
	}
	return c.Validate()
}

// configValidator reports fields by their config key.
var configValidator = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("mapstructure"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}()

// Validate checks the configuration.
func (c *Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.NewConfigError("config", "validation failed", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fmt.Sprintf("%s %s", fe.Field(), friendlyMessage(fe)))
	}
	return errors.NewConfigError("config", strings.Join(messages, "; "), err)
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s (got %q)", fe.Param(), fe.Value())
	case "min":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
