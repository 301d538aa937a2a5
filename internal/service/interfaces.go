package service

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PlatformGatewayInterface is the control-plane client used by builds and teardowns
type PlatformGatewayInterface interface {
	CheckConfigured() error
	CreateDatabase(ctx context.Context, name string) (string, error)
	RunStatement(ctx context.Context, databaseID, sql string) (json.RawMessage, error)
	DeleteDatabase(ctx context.Context, databaseID string) error
	DeployService(ctx context.Context, spec *DeploySpec) error
	DeleteService(ctx context.Context, scriptName string) error
}

// GeneratorInterface turns a conversation into a plan and then into source artifacts
type GeneratorInterface interface {
	ProducePlan(ctx context.Context, conversation []ConversationMessage) (*AppPlan, error)
	ProduceCode(ctx context.Context, plan *AppPlan, recent []ConversationMessage) (*GeneratedArtifacts, error)
	Acknowledge(ctx context.Context, conversation []ConversationMessage) (string, error)
}

// ConversationStore reads a project's conversation in chronological order
type ConversationStore interface {
	History(ctx context.Context, projectID string) ([]ConversationMessage, error)
}

// BuilderInterface runs one orchestration of the build pipeline
type BuilderInterface interface {
	Build(ctx context.Context, projectID, projectName, baseURL string) (*BuildResult, error)
}

// TeardownInterface removes everything a project provisioned
type TeardownInterface interface {
	Teardown(ctx context.Context, req TeardownRequest) (*TeardownReport, error)
}

// ProjectLocker hands out per-project mutual exclusion. Acquire fails with
// ErrBuildInProgress instead of waiting when the project is already held.
type ProjectLocker interface {
	Acquire(ctx context.Context, projectID string) (func(), error)
}

// ProjectServiceInterface defines the interface for the project lifecycle service
type ProjectServiceInterface interface {
	Create(ctx context.Context, userID string, req *CreateProjectRequest) (*ProjectResponse, error)
	List(ctx context.Context, userID string) ([]ProjectResponse, error)
	Get(ctx context.Context, userID, id string) (*ProjectResponse, error)
	Build(ctx context.Context, userID, id, baseURL string) (*BuildResponse, error)
	ListFiles(ctx context.Context, userID, id string) ([]string, error)
	Delete(ctx context.Context, userID, id string) (*DeleteProjectResponse, error)
}

// ChatServiceInterface defines the interface for the conversation service
type ChatServiceInterface interface {
	PostMessage(ctx context.Context, userID string, req *PostMessageRequest) (*ChatMessageResponse, error)
	SaveAssistantMessage(ctx context.Context, userID string, req *SaveAssistantMessageRequest) (*ChatMessageResponse, error)
	GetHistory(ctx context.Context, userID, projectID string, limit int) ([]ChatMessageResponse, error)
	Acknowledge(ctx context.Context, userID, projectID string) (string, error)
}
