// Package config loads server configuration from DNS_-prefixed
// environment variables with validated defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"golang.org/x/net/idna"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// AnswerName is the domain name returned in the canned question and
	// answer pair.
	AnswerName string `koanf:"answer_name" validate:"required,fqdn|hostname"`

	// AnswerAddr is the IPv4 address returned in the canned answer.
	AnswerAddr string `koanf:"answer_addr" validate:"required,ipv4"`

	// AnswerTTL is the TTL in seconds on the canned answer.
	AnswerTTL uint32 `koanf:"answer_ttl" validate:"required,gte=1"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Port is the network port the DNS server will bind to.
	Port int `koanf:"port" validate:"required,gte=1,lt=65535"`

	// QueueSize bounds the dispatch queue between the receive loop and
	// the handler.
	QueueSize int `koanf:"queue_size" validate:"required,gte=1,lte=65536"`
}

// envLoader loads environment variables with the prefix "DNS_",
// lowercasing keys and stripping the prefix. It is a variable so tests
// can mock a load failure.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "DNS_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "DNS_")), value
		},
	}), nil)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values, normalizes the answer name to its IDNA
// ASCII form, and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	// Load default values using structs provider.
	k.Load(structs.Provider(AppConfig{
		AnswerName: "codecrafters.io",
		AnswerAddr: "8.8.8.8",
		AnswerTTL:  60,
		Env:        "prod",
		LogLevel:   "info",
		Port:       2053,
		QueueSize:  1024,
	}, "koanf"), nil)

	err := envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Normalize the answer name so unicode input ends up in the
	// wire-safe ASCII form.
	ascii, err := idna.Lookup.ToASCII(strings.TrimSuffix(cfg.AnswerName, "."))
	if err != nil {
		return nil, fmt.Errorf("invalid answer name %q: %w", cfg.AnswerName, err)
	}
	cfg.AnswerName = ascii

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
