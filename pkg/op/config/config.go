// Package config loads and validates YAML configuration.
//
// The configuration struct uses `yaml` tags for mapping, `default` tags for
// values applied when the file leaves a field unset, and `validate` tags
// checked with go-playground/validator. ${VAR} references in the file are
// expanded from the environment after loading an optional .env file.
package config

import (
	"os"
	"reflect"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	CodeConfigNotFound = "CONFIG_NOT_FOUND"
	CodeConfigInvalid  = "CONFIG_INVALID"
)

// Load reads the YAML file at path into a T.
func Load[T any](path string) (T, error) {
	var config T

	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, errx.New("[config]: config file not found",
				errx.WithType(errx.T_NotFound),
				errx.WithCode(CodeConfigNotFound),
				errx.WithDetails(errx.D{"path": path}),
			)
		}
		return config, errx.Wrap(err)
	}

	return Parse[T](data)
}

// Parse is Load for configuration already in memory.
func Parse[T any](data []byte) (T, error) {
	var config T

	if reflect.ValueOf(config).Kind() == reflect.Ptr {
		return config, invalid("type parameter must not be a pointer")
	}

	data = []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errx.Wrap(err, errx.WithCode(CodeConfigInvalid))
	}

	if err := defaults.Set(&config); err != nil {
		return config, errx.Wrap(err, errx.WithCode(CodeConfigInvalid))
	}

	if err := validator.New().Struct(config); err != nil {
		return config, errx.Wrap(err, errx.WithCode(CodeConfigInvalid))
	}

	return config, nil
}

func invalid(reason string) error {
	return errx.New("[config]: "+reason,
		errx.WithType(errx.T_Validation),
		errx.WithCode(CodeConfigInvalid),
	)
}
