package configuration

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys, usable as flag name, in the config file and, upper cased and prefixed with NUTS_PADES_, as environment variable.
const (
	ConfAddress         = "address"
	ConfPublicURL       = "publicUrl"
	ConfClientID        = "clientId"
	ConfClientSecret    = "clientSecret"
	ConfSandbox         = "sandbox"
	ConfAPIURL          = "apiUrl"
	ConfTimeout         = "timeout"
	ConfRetryMax        = "retryMax"
	ConfSessionTTL      = "sessionTTL"
	ConfStateKey        = "stateKey"
	ConfLanguage        = "language"
	ConfVerifyContainer = "verifyContainer"
	ConfLogLevel        = "loglevel"
	ConfLogFormat       = "logformat"
	ConfConfigFile      = "configfile"
)

// EnvPrefix is the prefix of all environment variables.
const EnvPrefix = "NUTS_PADES"

const masked = "********"

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration of the PAdES signing service.
type Config struct {
	Address         string        `mapstructure:"address"`
	PublicURL       string        `mapstructure:"publicUrl"`
	ClientID        string        `mapstructure:"clientId"`
	ClientSecret    string        `mapstructure:"clientSecret"`
	Sandbox         bool          `mapstructure:"sandbox"`
	APIURL          string        `mapstructure:"apiUrl"`
	Timeout         time.Duration `mapstructure:"timeout"`
	RetryMax        int           `mapstructure:"retryMax"`
	SessionTTL      time.Duration `mapstructure:"sessionTTL"`
	StateKey        string        `mapstructure:"stateKey"`
	Language        string        `mapstructure:"language"`
	VerifyContainer bool          `mapstructure:"verifyContainer"`
	LogLevel        string        `mapstructure:"loglevel"`
	LogFormat       string        `mapstructure:"logformat"`
}

// Default returns a Config with all defaults set.
func Default() Config {
	c := Config{}
	c.SetDefaults()
	return c
}

func (c *Config) SetDefaults() {
	c.Address = "localhost:1323"
	c.PublicURL = "http://localhost:1323"
	c.Timeout = 30 * time.Second
	c.RetryMax = 0
	c.SessionTTL = 15 * time.Minute
	c.Language = "en"
	c.VerifyContainer = true
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Validate checks the settings needed to talk to eID Easy.
func (c Config) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return fmt.Errorf("%w: %s and %s are required", ErrInvalidConfig, ConfClientID, ConfClientSecret)
	}
	if c.APIURL != "" {
		if err := validateURL(c.APIURL); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, ConfAPIURL, err)
		}
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, ConfTimeout)
	}
	if c.RetryMax < 0 {
		return fmt.Errorf("%w: %s can't be negative", ErrInvalidConfig, ConfRetryMax)
	}
	return nil
}

// ValidateServer checks the settings needed to run the HTTP gateway, in addition to Validate.
func (c Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := validateURL(c.PublicURL); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, ConfPublicURL, err)
	}
	if c.SessionTTL < time.Minute {
		return fmt.Errorf("%w: %s must be at least a minute", ErrInvalidConfig, ConfSessionTTL)
	}
	return nil
}

// Masked returns a copy with the secrets masked, for printing.
func (c Config) Masked() Config {
	if c.ClientSecret != "" {
		c.ClientSecret = masked
	}
	if c.StateKey != "" {
		c.StateKey = masked
	}
	return c
}

// FlagSet returns the flags for all configuration keys, with the defaults as default value.
func FlagSet() *pflag.FlagSet {
	d := Default()
	flags := pflag.NewFlagSet("pades", pflag.ContinueOnError)

	flags.String(ConfConfigFile, "", "Path to a yaml config file")
	flags.String(ConfAddress, d.Address, "Interface and port for the http server to bind to")
	flags.String(ConfPublicURL, d.PublicURL, "URL on which the http server can be reached by end users, used for the eID Easy redirect")
	flags.String(ConfClientID, "", "eID Easy client id")
	flags.String(ConfClientSecret, "", "eID Easy client secret")
	flags.Bool(ConfSandbox, false, "Use the eID Easy test environment")
	flags.String(ConfAPIURL, "", "Override the eID Easy base URL")
	flags.Duration(ConfTimeout, d.Timeout, "Timeout for calls to eID Easy")
	flags.Int(ConfRetryMax, d.RetryMax, "Number of retries on connection errors and 5xx responses from eID Easy")
	flags.Duration(ConfSessionTTL, d.SessionTTL, "Time after which signing sessions are removed")
	flags.String(ConfStateKey, "", "Key to sign the redirect state with, a random key is generated when empty")
	flags.String(ConfLanguage, d.Language, "Default language of the signing pages (ISO 639-1)")
	flags.Bool(ConfVerifyContainer, d.VerifyContainer, "Check that a downloaded signature container signs the submitted digest")
	flags.String(ConfLogLevel, d.LogLevel, "Log level (trace, debug, info, warn, error)")
	flags.String(ConfLogFormat, d.LogFormat, "Log format (text, json, prefixed)")

	return flags
}

// Load builds the config from, in order of precedence, flags, environment variables and the config file
// given by the configfile flag. Defaults apply to everything else.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	if file := v.GetString(ConfConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", file, err)
		}
	}

	config := Default()
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadDotEnv adds the variables from the given .env file to the environment, if the file exists.
// Variables that are already set are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme '%s'", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("host is missing")
	}
	return nil
}
