package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError is returned when an operation collides with work already in progress
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Reason == t.Reason
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents missing or invalid runtime configuration.
// A build that hits one never starts.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// GenerationError means the generation capability returned output that
// could not be turned into a plan or a complete artifact set.
type GenerationError struct {
	Stage   string // "plan" or "code"
	Reason  string
	Excerpt string
}

func (e *GenerationError) Error() string {
	if e.Excerpt != "" {
		return fmt.Sprintf("generation %s: %s (output: %q)", e.Stage, e.Reason, e.Excerpt)
	}
	return fmt.Sprintf("generation %s: %s", e.Stage, e.Reason)
}

// GatewayError is a failed control-plane call. Status is zero when no HTTP
// response was received; Body keeps the raw diagnostic for operators.
type GatewayError struct {
	Operation string
	Status    int
	Body      string
	Err       error
}

func (e *GatewayError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("control plane %s failed: %v", e.Operation, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("control plane %s failed: status=%d body=%s", e.Operation, e.Status, e.Body)
	default:
		return fmt.Sprintf("control plane %s failed: %s", e.Operation, e.Body)
	}
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// BuildStage names the orchestration step a BuildError happened in.
type BuildStage string

const (
	StageConfigure        BuildStage = "configure"
	StageLoadConversation BuildStage = "load_conversation"
	StagePlan             BuildStage = "plan"
	StageCode             BuildStage = "code"
	StageStoreArtifacts   BuildStage = "store_artifacts"
	StageCreateDatabase   BuildStage = "create_database"
	StageMigrate          BuildStage = "migrate"
	StageDeploy           BuildStage = "deploy"
)

// BuildError is what the orchestrator surfaces: the first failure of a run,
// tagged with the stage it aborted in.
type BuildError struct {
	Stage BuildStage
	Err   error
	// ProvisionedDatabaseID is set when the run created a database before failing.
	// That database is left in place.
	ProvisionedDatabaseID string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build failed at %s: %v", e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrProjectNotFound = &NotFoundError{Entity: "project"}
)

// Conflict Errors
var (
	ErrBuildInProgress = &ConflictError{Entity: "project", Reason: "a build or delete is already running"}
)

// Authentication Errors
var (
	ErrMissingUser = &AuthenticationError{Message: "user not found in context"}
)

// Configuration Errors
var (
	ErrPlatformCredentialsMissing = &ConfigurationError{Message: "CLOUDFLARE_ACCOUNT_ID and CLOUDFLARE_API_TOKEN must be set"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsGeneration checks if an error is a GenerationError
func IsGeneration(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsGateway checks if an error is a GatewayError
func IsGateway(err error) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr)
}

// AsBuildError returns the BuildError in err's chain, if any
func AsBuildError(err error) (*BuildError, bool) {
	var buildErr *BuildError
	if errors.As(err, &buildErr) {
		return buildErr, true
	}
	return nil, false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewGenerationError creates a GenerationError, keeping at most 300 bytes of the raw output
func NewGenerationError(stage, reason, output string) error {
	if len(output) > 300 {
		output = output[:300]
	}
	return &GenerationError{Stage: stage, Reason: reason, Excerpt: output}
}
