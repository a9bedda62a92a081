// Package errors provides custom error types for the zamani demo.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrUnknownModel = errors.New("unknown model")
	ErrInvalidStep  = errors.New("invalid script step")
	ErrNotMounted   = errors.New("widget is not mounted")
)

// UnknownModelError is returned when a selection names a model outside the catalog
type UnknownModelError struct {
	Name string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown model %q: not in catalog", e.Name)
}

// Is allows comparison with sentinel errors
func (e *UnknownModelError) Is(target error) bool {
	if target == ErrUnknownModel {
		return true
	}
	_, ok := target.(*UnknownModelError)
	return ok
}

// NewUnknownModelError creates a new UnknownModelError
func NewUnknownModelError(name string) *UnknownModelError {
	return &UnknownModelError{Name: name}
}

// StepError represents a script step that could not be parsed or applied
type StepError struct {
	Index   int
	Step    string
	Message string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%q): %s", e.Index+1, e.Step, e.Message)
}

// Is allows comparison with sentinel errors
func (e *StepError) Is(target error) bool {
	if target == ErrInvalidStep {
		return true
	}
	_, ok := target.(*StepError)
	return ok
}

// NewStepError creates a new StepError
func NewStepError(index int, step, message string) *StepError {
	return &StepError{Index: index, Step: step, Message: message}
}

// ConfigError represents an invalid configuration value
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("config error: %s", e.Message)
	}
	return fmt.Sprintf("config error: %s: %s", e.Key, e.Message)
}

// NewConfigError creates a new ConfigError
func NewConfigError(key, message string) *ConfigError {
	return &ConfigError{Key: key, Message: message}
}

// ParseError represents a parsing failure
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// NewParseError creates a new ParseError
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	if ok {
		return true
	}
	// Match with standard errors containing "parse error"
	return target != nil && target.Error() == "parse error"
}

// IsUnknownModel reports whether err is an unknown model selection
func IsUnknownModel(err error) bool {
	return errors.Is(err, ErrUnknownModel)
}

// IsInvalidStep reports whether err came from a bad script step
func IsInvalidStep(err error) bool {
	return errors.Is(err, ErrInvalidStep)
}

// IsConfigError reports whether err is a configuration error
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
