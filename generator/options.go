package generator

import (
	"fmt"

	"github.com/openapigen/openapigen/config"
	"github.com/openapigen/openapigen/internal/options"
	"github.com/openapigen/openapigen/parser"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult

	// Shared types (at most one must be set)
	config     *config.Config
	configPath *string

	repair      bool
	includeInfo bool
	logger      parser.Logger
}

// GenerateWithOptions generates a client using functional options.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("openapi.yaml"),
//	    generator.WithConfigPath("shared.json"),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	shared := cfg.config
	if cfg.configPath != nil {
		if shared, err = config.Load(*cfg.configPath); err != nil {
			return nil, fmt.Errorf("generator: %w", err)
		}
	}

	g := &Generator{
		Repair:      cfg.repair,
		IncludeInfo: cfg.includeInfo,
		Logger:      cfg.logger,
	}

	if cfg.filePath != nil {
		return g.Generate(*cfg.filePath, shared)
	}
	return g.GenerateParsed(*cfg.parsed, shared)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		repair:      true,
		includeInfo: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"generator: must specify an input source (use WithFilePath or WithParsed)",
		"generator: must specify exactly one input source",
		cfg.filePath != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}
	if cfg.config != nil && cfg.configPath != nil {
		return nil, fmt.Errorf("generator: use either WithConfig or WithConfigPath, not both")
	}
	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies a parsed ParseResult as the input source
func WithParsed(result parser.ParseResult) Option {
	return func(cfg *generateConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithConfig sets the shared-type table
func WithConfig(c *config.Config) Option {
	return func(cfg *generateConfig) error {
		if c == nil {
			return fmt.Errorf("generator: config cannot be nil")
		}
		cfg.config = c
		return nil
	}
}

// WithConfigPath loads the shared-type table from a file
func WithConfigPath(path string) Option {
	return func(cfg *generateConfig) error {
		if path == "" {
			return fmt.Errorf("generator: config path cannot be empty")
		}
		cfg.configPath = &path
		return nil
	}
}

// WithRepair enables or disables the component reference repair pass
// Default: true
func WithRepair(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.repair = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithLogger sets the structured logger
func WithLogger(l parser.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = l
		return nil
	}
}
