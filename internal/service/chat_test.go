package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"app-builder-backend/internal/database/models"
	apperrors "app-builder-backend/internal/errors"
	"app-builder-backend/internal/mocks"
	"app-builder-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ChatServiceTestSuite defines the test suite for ChatService
type ChatServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockChatRepo *mocks.MockChatMessageRepositoryInterface
	mockProjects *mocks.MockProjectRepositoryInterface
	mockModel    *mocks.MockGeneratorInterface
	chatService  *service.ChatService
}

// SetupTest sets up the test suite
func (suite *ChatServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockChatRepo = mocks.NewMockChatMessageRepositoryInterface(suite.ctrl)
	suite.mockProjects = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockModel = mocks.NewMockGeneratorInterface(suite.ctrl)
	suite.chatService = service.NewChatService(suite.mockChatRepo, suite.mockProjects, suite.mockModel, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ChatServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ChatServiceTestSuite) TestPostMessage() {
	suite.mockProjects.EXPECT().GetByIDForUser(gomock.Any(), "p1", "u1").Return(draftProject(), nil)
	suite.mockChatRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *models.ChatMessage) error {
		assert.Equal(suite.T(), models.ChatRoleUser, m.Role)
		assert.Equal(suite.T(), "a todo app", m.Content)
		m.ID = uuid.New()
		m.CreatedAt = time.Now()
		return nil
	})

	resp, err := suite.chatService.PostMessage(context.Background(), "u1", &service.PostMessageRequest{ProjectID: "p1", Message: "  a todo app "})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ChatRoleUser, resp.Role)
	assert.NotEqual(suite.T(), uuid.Nil, resp.ID)
}

func (suite *ChatServiceTestSuite) TestPostMessage_Blank() {
	_, err := suite.chatService.PostMessage(context.Background(), "u1", &service.PostMessageRequest{ProjectID: "p1", Message: "   "})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ChatServiceTestSuite) TestPostMessage_MissingProjectID() {
	_, err := suite.chatService.PostMessage(context.Background(), "u1", &service.PostMessageRequest{Message: "hi"})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(suite.T(), err, &validationErr)
	assert.Equal(suite.T(), "projectid", validationErr.Field)
}

func (suite *ChatServiceTestSuite) TestPostMessage_ForeignProject() {
	suite.mockProjects.EXPECT().GetByIDForUser(gomock.Any(), "p1", "intruder").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.chatService.PostMessage(context.Background(), "intruder", &service.PostMessageRequest{ProjectID: "p1", Message: "hi"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func (suite *ChatServiceTestSuite) TestSaveAssistantMessage() {
	suite.mockProjects.EXPECT().GetByIDForUser(gomock.Any(), "p1", "u1").Return(draftProject(), nil)
	suite.mockChatRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *models.ChatMessage) error {
		assert.Equal(suite.T(), models.ChatRoleAssistant, m.Role)
		return nil
	})

	resp, err := suite.chatService.SaveAssistantMessage(context.Background(), "u1", &service.SaveAssistantMessageRequest{ProjectID: "p1", Content: "Noted."})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ChatRoleAssistant, resp.Role)
}

func (suite *ChatServiceTestSuite) TestGetHistory_Full() {
	suite.mockProjects.EXPECT().GetByIDForUser(gomock.Any(), "p1", "u1").Return(draftProject(), nil)
	suite.mockChatRepo.EXPECT().ListByProject(gomock.Any(), "p1").Return([]models.ChatMessage{
		{ProjectID: "p1", Role: models.ChatRoleUser, Content: "first"},
		{ProjectID: "p1", Role: models.ChatRoleAssistant, Content: "second"},
	}, nil)

	messages, err := suite.chatService.GetHistory(context.Background(), "u1", "p1", 0)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), messages, 2)
	assert.Equal(suite.T(), "first", messages[0].Content)
}

func (suite *ChatServiceTestSuite) TestGetHistory_LimitIsCapped() {
	suite.mockProjects.EXPECT().GetByIDForUser(gomock.Any(), "p1", "u1").Return(draftProject(), nil)
	suite.mockChatRepo.EXPECT().ListRecentByProject(gomock.Any(), "p1", 500).Return([]models.ChatMessage{}, nil)

	messages, err := suite.chatService.GetHistory(context.Background(), "u1", "p1", 10000)

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), messages)
}

func (suite *ChatServiceTestSuite) TestHistory() {
	suite.mockChatRepo.EXPECT().ListByProject(gomock.Any(), "p1").Return([]models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "todo app"},
		{Role: models.ChatRoleAssistant, Content: "Noted."},
	}, nil)

	conversation, err := suite.chatService.History(context.Background(), "p1")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []service.ConversationMessage{
		{Role: "user", Content: "todo app"},
		{Role: "assistant", Content: "Noted."},
	}, conversation)
}

func (suite *ChatServiceTestSuite) TestHistory_Error() {
	suite.mockChatRepo.EXPECT().ListByProject(gomock.Any(), "p1").Return(nil, errors.New("connection reset"))

	_, err := suite.chatService.History(context.Background(), "p1")

	assert.ErrorContains(suite.T(), err, "connection reset")
}

func (suite *ChatServiceTestSuite) TestAcknowledge() {
	suite.mockProjects.EXPECT().GetByIDForUser(gomock.Any(), "p1", "u1").Return(draftProject(), nil)
	suite.mockChatRepo.EXPECT().ListRecentByProject(gomock.Any(), "p1", 50).Return([]models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "a todo app"},
	}, nil)
	suite.mockModel.EXPECT().Acknowledge(gomock.Any(), []service.ConversationMessage{{Role: "user", Content: "a todo app"}}).
		Return("Got it: a todo list. Should items have due dates?", nil)

	reply, err := suite.chatService.Acknowledge(context.Background(), "u1", "p1")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Got it: a todo list. Should items have due dates?", reply)
}

func (suite *ChatServiceTestSuite) TestAcknowledge_ForeignProject() {
	suite.mockProjects.EXPECT().GetByIDForUser(gomock.Any(), "p1", "intruder").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.chatService.Acknowledge(context.Background(), "intruder", "p1")

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

// TestChatServiceTestSuite runs the test suite
func TestChatServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChatServiceTestSuite))
}
