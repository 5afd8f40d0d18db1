// This file contains the error registry and factory functions for
// consistent error creation across the library.
package errors

import (
	"sync"
)

// Error codes registered by this library.
const (
	CodeInvalidTimestamp = "invalid_timestamp"
	CodeLoggerInit       = "logger_init"
)

// ErrorDefinition holds the definition of a registered error.
type ErrorDefinition struct {
	// Code is the unique identifier for this error.
	Code string
	// Type is the category of the error.
	Type ErrorType
	// Message is the default message for this error.
	Message string
}

// Registry holds registered error definitions for consistent error creation.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]ErrorDefinition
}

// NewRegistry creates a new error registry.
func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]ErrorDefinition),
	}
}

// Register adds an error definition to the registry.
// If an error with the same code already exists, it will be overwritten.
func (r *Registry) Register(def ErrorDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions[def.Code] = def
}

// Get retrieves an error definition by code.
// Returns nil if not found.
func (r *Registry) Get(code string) *ErrorDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if def, ok := r.definitions[code]; ok {
		return &def
	}
	return nil
}

// Create creates a new Error from a registered definition.
// Returns nil if the code is not registered.
func (r *Registry) Create(code string) *Error {
	def := r.Get(code)
	if def == nil {
		return nil
	}
	return &Error{
		Type:    def.Type,
		Code:    def.Code,
		Message: def.Message,
	}
}

// CreateWithCause creates a new Error from a registered definition wrapping
// a cause. Returns nil if the code is not registered.
func (r *Registry) CreateWithCause(code string, cause error) *Error {
	err := r.Create(code)
	if err == nil {
		return nil
	}
	err.Cause = cause
	return err
}

// CreateWithInput creates a new Error from a registered definition carrying
// the offending input. Returns nil if the code is not registered.
func (r *Registry) CreateWithInput(code, input string) *Error {
	err := r.Create(code)
	if err == nil {
		return nil
	}
	err.Input = input
	return err
}

// List returns all registered error definitions.
func (r *Registry) List() []ErrorDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]ErrorDefinition, 0, len(r.definitions))
	for _, def := range r.definitions {
		defs = append(defs, def)
	}
	return defs
}

// DefaultRegistry is the global error registry, pre-populated with the
// library's error definitions.
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register(ErrorDefinition{
		Code:    CodeInvalidTimestamp,
		Type:    ErrorTypeInvalidTimestamp,
		Message: "invalid timestamp format",
	})
	DefaultRegistry.Register(ErrorDefinition{
		Code:    CodeLoggerInit,
		Type:    ErrorTypeLogger,
		Message: "logger initialization error",
	})
}

// Create creates a new Error from the default registry.
func Create(code string) *Error {
	return DefaultRegistry.Create(code)
}

// CreateWithCause creates a new Error from the default registry wrapping a cause.
func CreateWithCause(code string, cause error) *Error {
	return DefaultRegistry.CreateWithCause(code, cause)
}

// CreateWithInput creates a new Error from the default registry carrying input.
func CreateWithInput(code, input string) *Error {
	return DefaultRegistry.CreateWithInput(code, input)
}
