package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// LoadWithEnv reads <name>.yaml from the working directory or one of dirs (relative to it),
// then overlays environment variables such as HTTP_PORT onto the matching keys.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name, dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", name)
	}

	loaded := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return envKeyPath(key, loaded), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			// Env overrides arrive lowercased.
			MatchName: strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

func findConfigFile(name string, dirs []string) (string, error) {
	candidates := []string{filepath.Join(defaultPath, name+".yaml")}
	if len(dirs) > 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(wd, dir, name+".yaml"))
		}
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", name)
}

// envKeyPath maps FIREBASE_APIKEY to firebase.apiKey by matching each segment against the keys
// already loaded from YAML, ignoring case and punctuation. Unmatched segments stay lowercased.
func envKeyPath(rawKey string, loaded map[string]any) string {
	var path []string
	level := loaded

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := lookupKey(level, segment)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

func lookupKey(level map[string]any, segment string) (string, map[string]any) {
	want := foldKey(segment)
	for key, value := range level {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}
