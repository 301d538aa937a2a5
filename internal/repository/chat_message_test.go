//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"app-builder-backend/internal/database/models"
	"app-builder-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ChatMessageRepositoryTestSuite tests the ChatMessageRepository
type ChatMessageRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ChatMessageRepository
	factories     *testutils.FactorySet
	projectID     string
}

// SetupSuite runs before all tests in the suite
func (suite *ChatMessageRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewChatMessageRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ChatMessageRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds a project with five messages one second apart
func (suite *ChatMessageRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	ctx := context.Background()

	project := suite.factories.Project.Create()
	suite.Require().NoError(NewProjectRepository(suite.baseTestSuite.DB).Create(ctx, project))
	suite.projectID = project.ID

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"m1", "m2", "m3", "m4", "m5"} {
		role := models.ChatRoleUser
		if i%2 == 1 {
			role = models.ChatRoleAssistant
		}
		message := suite.factories.ChatMessage.At(project.ID, role, content, base.Add(time.Duration(i)*time.Second))
		suite.Require().NoError(suite.repo.Create(ctx, message))
	}
}

func contents(messages []models.ChatMessage) []string {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.Content)
	}
	return out
}

func (suite *ChatMessageRepositoryTestSuite) TestListByProject_Chronological() {
	messages, err := suite.repo.ListByProject(context.Background(), suite.projectID)

	suite.NoError(err)
	suite.Equal([]string{"m1", "m2", "m3", "m4", "m5"}, contents(messages))
	suite.Equal(models.ChatRoleAssistant, messages[1].Role)
}

func (suite *ChatMessageRepositoryTestSuite) TestListRecentByProject_LastNInOrder() {
	messages, err := suite.repo.ListRecentByProject(context.Background(), suite.projectID, 2)

	suite.NoError(err)
	suite.Equal([]string{"m4", "m5"}, contents(messages))
}

func (suite *ChatMessageRepositoryTestSuite) TestListRecentByProject_LimitAboveCount() {
	messages, err := suite.repo.ListRecentByProject(context.Background(), suite.projectID, 50)

	suite.NoError(err)
	suite.Len(messages, 5)
}

func (suite *ChatMessageRepositoryTestSuite) TestListByProject_UnknownProject() {
	messages, err := suite.repo.ListByProject(context.Background(), "missing")

	suite.NoError(err)
	suite.Empty(messages)
}

// TestChatMessageRepositoryTestSuite runs the test suite
func TestChatMessageRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ChatMessageRepositoryTestSuite))
}
