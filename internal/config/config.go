// Package config loads and validates the engine's Config from a JSON
// file on disk: read, unmarshal, keep documented defaults for anything
// absent from the file, then validate.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/discrete-sharp/mister.version/internal/engine"
	"github.com/discrete-sharp/mister.version/internal/semver"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("semver_or_empty", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, ok := semver.Parse(s)
		return ok
	})
	return v
}

// rawConfig mirrors engine.Config's JSON shape with pointer fields so
// "absent from the file" can be told apart from "explicitly false".
type rawConfig struct {
	TagPrefix       *string `json:"tag_prefix"`
	SkipTests       *bool   `json:"skip_tests"`
	SkipNonPackable *bool   `json:"skip_non_packable"`
	ForceVersion    string  `json:"force_version"`
	Debug           bool    `json:"debug"`
	ExtraDebug      bool    `json:"extra_debug"`
}

// Load reads path and returns a validated engine.Config. A missing
// file is not an error: it yields DefaultConfig(), matching the
// engine's own graceful-degradation philosophy for absent inputs.
func Load(path string) (engine.Config, error) {
	cfg := engine.DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return engine.Config{}, fmt.Errorf("read config: %w", err)
	}

	var parsed rawConfig
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return engine.Config{}, fmt.Errorf("parse config: %w", err)
	}

	if parsed.TagPrefix != nil {
		cfg.TagPrefix = *parsed.TagPrefix
	}
	if parsed.SkipTests != nil {
		cfg.SkipTests = *parsed.SkipTests
	}
	if parsed.SkipNonPackable != nil {
		cfg.SkipNonPackable = *parsed.SkipNonPackable
	}
	cfg.ForceVersion = parsed.ForceVersion
	cfg.Debug = parsed.Debug
	cfg.ExtraDebug = parsed.ExtraDebug

	if err := validate.Struct(cfg); err != nil {
		return engine.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}
