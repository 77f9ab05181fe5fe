package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override, e.g. FLEET_SERVER_PORT.
	EnvPrefix = "FLEET_"

	// ProfileEnv names the environment variable selecting the profile.
	ProfileEnv = EnvPrefix + "PROFILE"

	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// layer is one source of configuration, applied over the previous ones.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load builds the configuration for profile from four layers, later ones
// taking precedence:
//
//  1. built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. FLEET_ environment variables
//
// An environment variable overrides the key it spells with dots replaced by
// underscores, so FLEET_DISPATCH_QUOTE_WORKERS sets dispatch.quote_workers.
// Variables matching no known key are ignored.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for _, l := range layers(o.configDir, profile) {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s config: %w", profile, err)
	}
	return &cfg, nil
}

func layers(dir, profile string) []layer {
	return []layer{
		{name: "defaults", load: loadDefaults},
		yamlLayer(filepath.Join(dir, "base.yaml")),
		yamlLayer(filepath.Join(dir, profile+".yaml")),
		{name: EnvPrefix + " environment", load: loadEnv},
	}
}

func loadDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func yamlLayer(path string) layer {
	return layer{
		name: path,
		load: func(k *koanf.Koanf) error {
			return k.Load(file.Provider(path), yaml.Parser())
		},
	}
}

// loadEnv resolves variables against the keys loaded so far, since keys
// like server.read_timeout contain underscores themselves.
func loadEnv(k *koanf.Koanf) error {
	known := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(name, value string) (string, any) {
			// An empty key makes the provider skip the variable.
			return known[strings.ToLower(strings.TrimPrefix(name, EnvPrefix))], value
		},
	}), nil)
}

// validateProfile rejects profiles that are blank or could name a file
// outside the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
