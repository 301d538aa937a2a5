package service

import (
	"context"
	"fmt"
	"strings"

	"app-builder-backend/internal/database/models"
	apperrors "app-builder-backend/internal/errors"
	"app-builder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// maxHistoryLimit caps the limit accepted by GetHistory
	maxHistoryLimit = 500
	// acknowledgeWindow is how many recent messages the acknowledgement sees
	acknowledgeWindow = 50
)

// ChatService stores project conversations and feeds them to builds
type ChatService struct {
	repo      repository.ChatMessageRepositoryInterface
	projects  repository.ProjectRepositoryInterface
	generator GeneratorInterface
	validator *validator.Validate
}

// NewChatService creates a new chat service
func NewChatService(repo repository.ChatMessageRepositoryInterface, projects repository.ProjectRepositoryInterface, generator GeneratorInterface, validator *validator.Validate) *ChatService {
	return &ChatService{
		repo:      repo,
		projects:  projects,
		generator: generator,
		validator: validator,
	}
}

// PostMessageRequest appends a user message to a project conversation
type PostMessageRequest struct {
	ProjectID string `json:"project_id" validate:"required,max=32"`
	Message   string `json:"message" validate:"required"`
}

// SaveAssistantMessageRequest appends an assistant reply to a project conversation
type SaveAssistantMessageRequest struct {
	ProjectID string `json:"project_id" validate:"required,max=32"`
	Content   string `json:"content" validate:"required"`
}

// ChatMessageResponse represents one stored message
type ChatMessageResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProjectID string          `json:"project_id"`
	Role      models.ChatRole `json:"role"`
	Content   string          `json:"content"`
	CreatedAt string          `json:"created_at"`
}

// PostMessage appends a user message
func (s *ChatService) PostMessage(ctx context.Context, userID string, req *PostMessageRequest) (*ChatMessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	return s.append(ctx, userID, req.ProjectID, models.ChatRoleUser, req.Message)
}

// SaveAssistantMessage appends an assistant reply
func (s *ChatService) SaveAssistantMessage(ctx context.Context, userID string, req *SaveAssistantMessageRequest) (*ChatMessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	return s.append(ctx, userID, req.ProjectID, models.ChatRoleAssistant, req.Content)
}

// GetHistory returns the conversation in chronological order. A positive
// limit keeps only the last limit messages.
func (s *ChatService) GetHistory(ctx context.Context, userID, projectID string, limit int) ([]ChatMessageResponse, error) {
	if _, err := s.owned(ctx, userID, projectID); err != nil {
		return nil, err
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	var (
		messages []models.ChatMessage
		err      error
	)
	if limit > 0 {
		messages, err = s.repo.ListRecentByProject(ctx, projectID, limit)
	} else {
		messages, err = s.repo.ListByProject(ctx, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	responses := make([]ChatMessageResponse, len(messages))
	for i := range messages {
		responses[i] = *toMessageResponse(&messages[i])
	}
	return responses, nil
}

// Acknowledge asks the model for a short reply to the latest messages. The
// reply is not stored; clients keep it through SaveAssistantMessage.
func (s *ChatService) Acknowledge(ctx context.Context, userID, projectID string) (string, error) {
	if _, err := s.owned(ctx, userID, projectID); err != nil {
		return "", err
	}

	messages, err := s.repo.ListRecentByProject(ctx, projectID, acknowledgeWindow)
	if err != nil {
		return "", fmt.Errorf("failed to load conversation: %w", err)
	}
	return s.generator.Acknowledge(ctx, toConversation(messages))
}

// History is the build pipeline's view of a conversation
func (s *ChatService) History(ctx context.Context, projectID string) ([]ConversationMessage, error) {
	messages, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	return toConversation(messages), nil
}

func toConversation(messages []models.ChatMessage) []ConversationMessage {
	conversation := make([]ConversationMessage, len(messages))
	for i, m := range messages {
		conversation[i] = ConversationMessage{Role: string(m.Role), Content: m.Content}
	}
	return conversation
}

func (s *ChatService) append(ctx context.Context, userID, projectID string, role models.ChatRole, content string) (*ChatMessageResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidationError("content", "must not be blank")
	}
	if _, err := s.owned(ctx, userID, projectID); err != nil {
		return nil, err
	}

	message := &models.ChatMessage{
		ProjectID: projectID,
		Role:      role,
		Content:   content,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return toMessageResponse(message), nil
}

func (s *ChatService) owned(ctx context.Context, userID, projectID string) (*models.Project, error) {
	project, err := s.projects.GetByIDForUser(ctx, projectID, userID)
	if err != nil {
		return nil, notFoundOr(err, "failed to get project")
	}
	return project, nil
}

func toMessageResponse(m *models.ChatMessage) *ChatMessageResponse {
	return &ChatMessageResponse{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
