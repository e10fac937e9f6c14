package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/xeipuuv/gojsonschema"
)

var ErrInvalidSeed = errors.New("invalid seed")

//go:embed seed_schema.json
var seedSchema string

// Layouts accepted for dates in seed files.
var dateLayouts = []string{time.RFC3339, time.DateOnly}

// LoadSeed reads a seed file. The format is picked from the file extension
// (yaml, json and toml are supported).
func LoadSeed(path string) (*Seed, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("seed file path is empty")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading seed file %q: %w", path, err)
	}

	raw := v.AllSettings()
	if err := validateSeed(raw); err != nil {
		return nil, fmt.Errorf("seed file %q: %w", path, err)
	}

	return decodeSeed(raw)
}

func validateSeed(raw map[string]any) error {
	schemaLoader := gojsonschema.NewStringLoader(seedSchema)
	documentLoader := gojsonschema.NewGoLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrInvalidSeed, strings.Join(errs, "; "))
	}

	return nil
}

func decodeSeed(raw map[string]any) (*Seed, error) {
	var seed Seed

	cfg := &mapstructure.DecoderConfig{
		Result:           &seed,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       stringToTimeHook,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}

	return &seed, nil
}

func stringToTimeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}

	value := strings.TrimSpace(data.(string))
	if value == "" {
		return time.Time{}, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unsupported date %q", value)
}
