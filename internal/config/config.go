// Package config loads echo-net settings from defaults, an optional config file,
// ECHONET_* environment variables and command line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. ECHONET_BUFFER_SIZE.
const EnvPrefix = "ECHONET"

// Keys shared by viper, flags and config files.
const (
	KeyAddr             = "addr"
	KeyBufferSize       = "buffer-size"
	KeyAcceptRetries    = "accept-retries"
	KeyAcceptRetryDelay = "accept-retry-delay"
	KeyDialRetries      = "dial-retries"
	KeyDialRetryDelay   = "dial-retry-delay"
	KeyTimeout          = "timeout"
	KeyDebug            = "debug"
	KeyTrace            = "trace"
)

const (
	DefaultAddr             = "127.0.0.1:8080"
	DefaultBufferSize       = 1024
	DefaultAcceptRetryDelay = 100 * time.Millisecond
	DefaultDialRetryDelay   = 500 * time.Millisecond
	DefaultTimeout          = 10 * time.Second
)

type Config struct {
	Addr             string        `mapstructure:"addr" validate:"required,listen_addr"`
	BufferSize       int           `mapstructure:"buffer-size" validate:"gt=0,lte=1048576"`
	AcceptRetries    uint64        `mapstructure:"accept-retries"`
	AcceptRetryDelay time.Duration `mapstructure:"accept-retry-delay" validate:"gt=0"`
	DialRetries      uint64        `mapstructure:"dial-retries"`
	DialRetryDelay   time.Duration `mapstructure:"dial-retry-delay" validate:"gt=0"`
	Timeout          time.Duration `mapstructure:"timeout" validate:"gte=0"`
	Debug            bool          `mapstructure:"debug"`
	Trace            bool          `mapstructure:"trace"`
}

// Load resolves the configuration. flags may be nil; configFile may be empty.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err = NewValidator().Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyAddr, DefaultAddr)
	v.SetDefault(KeyBufferSize, DefaultBufferSize)
	v.SetDefault(KeyAcceptRetries, 0)
	v.SetDefault(KeyAcceptRetryDelay, DefaultAcceptRetryDelay)
	v.SetDefault(KeyDialRetries, 0)
	v.SetDefault(KeyDialRetryDelay, DefaultDialRetryDelay)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyTrace, false)
}

// Validator wraps go-playground/validator with the address rule used by Config.
type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	_ = validate.RegisterValidation("listen_addr", validateListenAddr)

	return &Validator{validator: validate}
}

// Validate reports every failed rule of cfg in one error.
func (v *Validator) Validate(cfg *Config) error {
	err := v.validator.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("invalid configuration: %s: %w", strings.Join(msgs, "; "), err)
}

// host:port with an optional host and a numeric port.
func validateListenAddr(fl validator.FieldLevel) bool {
	_, port, err := net.SplitHostPort(fl.Field().String())
	if err != nil {
		return false
	}

	_, err = strconv.ParseUint(port, 10, 16)

	return err == nil
}
