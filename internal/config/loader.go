// Package config provides configuration loading for the task notifier.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	jsonparser "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/nocoo/skill-task-notifier/pkg/config"
)

var (
	// ErrConfigNotFound is returned when the configuration file is absent.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidJSON is returned when the configuration file cannot be parsed.
	ErrInvalidJSON = errors.New("invalid JSON")
)

const (
	// ConfigFile is the configuration file name, located beside the binary.
	ConfigFile = "config.json"

	// ExampleConfigFile is the template shipped with the notifier.
	ExampleConfigFile = "config.example.json"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "TASK_NOTIFIER_"
)

// Loader handles configuration loading using koanf.
// Precedence order (highest to lowest):
// 1. Environment variables (TASK_NOTIFIER_*)
// 2. config.json beside the executable (or an explicit --config path)
// 3. Defaults
type Loader struct {
	k *koanf.Koanf
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{k: koanf.New(".")}
}

// DefaultPath returns the path of config.json in the directory of the
// running executable.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate executable")
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve executable path")
	}

	return filepath.Join(filepath.Dir(exe), ConfigFile), nil
}

// defaultsToMap returns the built-in defaults as a koanf confmap.
// Defaults are passed explicitly here so the loader carries no mutable
// package-level state.
func defaultsToMap() map[string]any {
	return map[string]any{
		"bark_server":           config.DefaultBarkServer,
		"bark_group":            config.DefaultBarkGroup,
		"sound_enabled":         true,
		"system_notify_enabled": true,
	}
}

// Load reads the configuration file at path and returns the parsed config.
// The file is read fresh on every call; the result is immutable for the run.
func (l *Loader) Load(path string) (*config.Config, error) {
	// Reset koanf instance for a fresh load
	l.k = koanf.New(".")

	// 1. Defaults (lowest priority)
	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	// 2. config.json
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			example := filepath.Join(filepath.Dir(path), ExampleConfigFile)

			return nil, errors.Wrapf(
				ErrConfigNotFound,
				"%s\nPlease copy the example config:\n        cp %s %s\nThen edit %s and fill in your bark_key",
				path, example, path, ConfigFile,
			)
		}

		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	if err := l.k.Load(file.Provider(path), jsonparser.Parser()); err != nil {
		return nil, errors.Wrapf(ErrInvalidJSON, "in %s: %v", path, err)
	}

	// 3. Environment variables (highest priority)
	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	var cfg config.Config

	unmarshalConf := koanf.UnmarshalConf{Tag: "koanf"}
	if err := l.k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(ErrInvalidJSON, "in %s: %v", path, err)
	}

	return &cfg, nil
}

// envTransform transforms environment variable names to config paths.
// TASK_NOTIFIER_BARK_KEY → bark_key. Boolean-looking values are coerced so
// the channel toggles can be flipped from the environment.
func envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, EnvPrefix)
	key = strings.ToLower(key)

	switch strings.ToLower(value) {
	case "true":
		return key, true
	case "false":
		return key, false
	}

	return key, value
}
