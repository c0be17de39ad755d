package config

import (
	"fmt"
	"time"
)

// Service configures the schemad validation service.
type Service struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`

	// SchemaDir holds *.yaml / *.yml schema definitions, one schema per file.
	SchemaDir   string `env:"SCHEMA_DIR" envDefault:"./schemas"`
	ErrorStatus int    `env:"VALIDATION_ERROR_STATUS" envDefault:"422"`
	Strict      bool   `env:"VALIDATION_STRICT" envDefault:"true"`
	MaxBodySize int64  `env:"MAX_BODY_SIZE" envDefault:"1048576"`
}

// Validate checks values env tags can not express.
func (c Service) Validate() error {
	if c.ErrorStatus < 400 || c.ErrorStatus > 599 {
		return fmt.Errorf("%w: VALIDATION_ERROR_STATUS must be a 4xx or 5xx code, got %d", ErrInvalidConfig, c.ErrorStatus)
	}
	if c.MaxBodySize <= 0 {
		return fmt.Errorf("%w: MAX_BODY_SIZE must be positive, got %d", ErrInvalidConfig, c.MaxBodySize)
	}
	if c.SchemaDir == "" {
		return fmt.Errorf("%w: SCHEMA_DIR is empty", ErrInvalidConfig)
	}
	return nil
}
