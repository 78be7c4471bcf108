package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/mathtrainer/internal/training"
)

// ConfigKey is the key under which the training configuration is stored.
const ConfigKey = "math-trainer-config"

// ConfigRepo loads and saves the single training configuration record.
type ConfigRepo interface {
	// Load returns the stored configuration. A missing or malformed record
	// yields training.Default() and no error.
	Load(ctx context.Context) (training.Configuration, error)

	// Save overwrites the stored configuration.
	Save(ctx context.Context, cfg training.Configuration) error

	// Reset deletes the stored configuration so defaults apply again.
	Reset(ctx context.Context) error
}

// ErrMalformedConfig indicates the stored record could not be decoded.
var ErrMalformedConfig = errors.New("malformed training configuration")

var configSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"problemCount": map[string]any{
			"type":    "integer",
			"minimum": training.MinProblemCount,
			"maximum": training.MaxProblemCount,
		},
		"selectedNumbers": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":    "integer",
				"minimum": training.MinTable,
				"maximum": training.MaxTable,
			},
		},
	},
	"required": []any{"problemCount", "selectedNumbers"},
}

var (
	configSchemaOnce sync.Once
	configSchema     *jsonschema.Schema
	configSchemaErr  error
)

// compiledConfigSchema compiles configSchemaDef once.
func compiledConfigSchema() (*jsonschema.Schema, error) {
	configSchemaOnce.Do(func() {
		// The compiler wants a plain decoded JSON value.
		defBytes, err := json.Marshal(configSchemaDef)
		if err != nil {
			configSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			configSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://training-config.json"
		if err := c.AddResource(url, defParsed); err != nil {
			configSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		configSchema, configSchemaErr = c.Compile(url)
	})
	return configSchema, configSchemaErr
}

// DecodeConfig parses and validates a stored configuration record.
func DecodeConfig(raw string) (training.Configuration, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return training.Configuration{}, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}

	schema, err := compiledConfigSchema()
	if err != nil {
		return training.Configuration{}, fmt.Errorf("compile config schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return training.Configuration{}, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}

	var cfg training.Configuration
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return training.Configuration{}, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}
	if cfg.SelectedNumbers == nil {
		cfg.SelectedNumbers = []int{}
	}
	return cfg, nil
}

// EncodeConfig serializes cfg in the stored record format.
func EncodeConfig(cfg training.Configuration) (string, error) {
	if cfg.SelectedNumbers == nil {
		cfg.SelectedNumbers = []int{}
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(b), nil
}

type configRepo struct {
	kv     KVRepo
	logger *slog.Logger
}

func (r *configRepo) Load(ctx context.Context) (training.Configuration, error) {
	raw, err := r.kv.Get(ctx, ConfigKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return training.Default(), nil
		}
		return training.Configuration{}, fmt.Errorf("load config: %w", err)
	}

	cfg, err := DecodeConfig(raw)
	if err != nil {
		r.logger.Warn("stored training configuration is malformed, using defaults",
			"key", ConfigKey, "error", err)
		return training.Default(), nil
	}
	return cfg, nil
}

func (r *configRepo) Save(ctx context.Context, cfg training.Configuration) error {
	raw, err := EncodeConfig(cfg)
	if err != nil {
		return err
	}
	if err := r.kv.Put(ctx, ConfigKey, raw); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

func (r *configRepo) Reset(ctx context.Context) error {
	if err := r.kv.Delete(ctx, ConfigKey); err != nil {
		return fmt.Errorf("reset config: %w", err)
	}
	return nil
}
