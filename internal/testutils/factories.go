package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"app-builder-backend/internal/database/models"
)

var projectSeq atomic.Int64

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a draft project owned by user-1
func (f *ProjectFactory) Create() *models.Project {
	n := projectSeq.Add(1)
	return &models.Project{
		ID:     fmt.Sprintf("%032x", n),
		UserID: "user-1",
		Name:   fmt.Sprintf("Test App %d", n),
		Status: models.ProjectStatusDraft,
	}
}

// WithUser creates a draft project owned by userID
func (f *ProjectFactory) WithUser(userID string) *models.Project {
	project := f.Create()
	project.UserID = userID
	return project
}

// WithStatus creates a project in the given status
func (f *ProjectFactory) WithStatus(status models.ProjectStatus) *models.Project {
	project := f.Create()
	project.Status = status
	return project
}

// Deployed creates a project carrying a full deployment identity
func (f *ProjectFactory) Deployed() *models.Project {
	project := f.WithStatus(models.ProjectStatusDeployed)
	url := "https://builder.test/apps/" + project.ID + "/"
	databaseID := "db-" + project.ID
	worker := "app-" + project.ID
	project.DeployedURL = &url
	project.DatabaseID = &databaseID
	project.WorkerName = &worker
	return project
}

// ChatMessageFactory provides methods to create test ChatMessage data
type ChatMessageFactory struct{}

// NewChatMessageFactory creates a new ChatMessageFactory
func NewChatMessageFactory() *ChatMessageFactory {
	return &ChatMessageFactory{}
}

// Create creates a user message on projectID
func (f *ChatMessageFactory) Create(projectID, content string) *models.ChatMessage {
	return &models.ChatMessage{
		ProjectID: projectID,
		Role:      models.ChatRoleUser,
		Content:   content,
	}
}

// At creates a message with an explicit role and timestamp
func (f *ChatMessageFactory) At(projectID string, role models.ChatRole, content string, at time.Time) *models.ChatMessage {
	message := f.Create(projectID, content)
	message.Role = role
	message.CreatedAt = at
	return message
}

// FactorySet provides access to all factories
type FactorySet struct {
	Project     *ProjectFactory
	ChatMessage *ChatMessageFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:     NewProjectFactory(),
		ChatMessage: NewChatMessageFactory(),
	}
}
