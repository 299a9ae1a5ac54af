// Package yamlutil wraps YAML parsing to isolate the external dependency.
// Callers never import the YAML library directly, so it can be swapped
// without touching them.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// maxInputSize caps YAML input to keep malformed files from exhausting
// memory (1MB is far beyond any reasonable tool config).
const maxInputSize = 1 << 20

var (
	ErrEmptyInput     = errors.New("yamlutil: empty input")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// Unmarshal parses YAML data into v.
func Unmarshal(data []byte, v any) error {
	if err := validate(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict parses YAML data into v, rejecting unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	if err := validate(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

func validate(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > maxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), maxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}
