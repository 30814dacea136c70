// Package settings loads the optional nextcron settings file.
package settings

import (
	"os"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultLogLevel keeps stderr quiet unless something goes wrong.
	DefaultLogLevel = "warn"

	// LocalLocation resolves to time.Local.
	LocalLocation = "Local"
)

// Settings tune how nextcron runs. Every field can be overridden by the
// environment variable named in its env tag.
type Settings struct {
	LogLevel string `yaml:"logLevel" env:"NEXTCRON_LOG_LEVEL"`

	// Location is the IANA zone used when the reference time is "now".
	Location string `yaml:"location" env:"NEXTCRON_LOCATION"`

	// Sort orders the output by next run instead of crontab order.
	Sort bool `yaml:"sort" env:"NEXTCRON_SORT"`
}

// Default returns the settings used when no file is given.
func Default() *Settings {
	return &Settings{
		LogLevel: DefaultLogLevel,
		Location: LocalLocation,
	}
}

// Load reads settings from the YAML file at path on top of the defaults, then
// applies environment overrides. An empty path skips the file.
func Load(fs afero.Fs, path string) (*Settings, error) {
	s := Default()

	if path != "" {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading settings %s", path)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, errors.Wrapf(err, "decoding settings %s", path)
		}
	}

	if err := OverrideEnvs(s); err != nil {
		return nil, err
	}
	return s, nil
}

// OverrideEnvs sets every field with an env tag from its environment
// variable, when that variable is set and not empty.
func OverrideEnvs(obj interface{}) error {
	return setFieldFromEnv(reflect.ValueOf(obj))
}

func setFieldFromEnv(v reflect.Value) error {
	t := v.Type()

	// If it's a pointer, get the underlying element
	if t.Kind() == reflect.Ptr {
		v = v.Elem()
		t = v.Type()
	}

	if t.Kind() != reflect.Struct {
		return nil
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := setFieldFromEnv(fieldValue); err != nil {
				return err
			}
			continue
		}

		if err := checkEnv(field, fieldValue); err != nil {
			return err
		}
	}

	return nil
}

func checkEnv(field reflect.StructField, fieldValue reflect.Value) error {
	envTag := field.Tag.Get("env")
	if envTag == "" {
		return nil
	}
	envValue := os.Getenv(envTag)
	if envValue == "" || !fieldValue.CanSet() {
		return nil
	}

	switch fieldValue.Kind() {
	case reflect.String:
		fieldValue.SetString(envValue)
	case reflect.Bool:
		b, err := strconv.ParseBool(envValue)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", envTag)
		}
		fieldValue.SetBool(b)
	default:
		return errors.Errorf("%s: unsupported field kind %s", envTag, fieldValue.Kind())
	}
	return nil
}
