package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	apperrors "app-builder-backend/internal/errors"
	"app-builder-backend/internal/mocks"
	"app-builder-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BuildServiceTestSuite defines the test suite for BuildService
type BuildServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	gateway      *mocks.MockPlatformGatewayInterface
	generator    *mocks.MockGeneratorInterface
	conversation *mocks.MockConversationStore
	artifacts    *mocks.MockArtifactStore
	buildService *service.BuildService
}

// SetupTest sets up the test suite
func (suite *BuildServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.gateway = mocks.NewMockPlatformGatewayInterface(suite.ctrl)
	suite.generator = mocks.NewMockGeneratorInterface(suite.ctrl)
	suite.conversation = mocks.NewMockConversationStore(suite.ctrl)
	suite.artifacts = mocks.NewMockArtifactStore(suite.ctrl)
	suite.buildService = service.NewBuildService(suite.gateway, suite.generator, suite.conversation, suite.artifacts, "user-code")
}

// TearDownTest cleans up after each test
func (suite *BuildServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

var (
	todoConversation = []service.ConversationMessage{{Role: "user", Content: "todo app"}}
	todoPlan         = &service.AppPlan{AppName: "todo-app", Pages: []service.AppPage{}, DataModel: service.DataModel{Tables: []service.Table{}}}
	todoArtifacts    = &service.GeneratedArtifacts{
		Script:    "export default {}",
		Document:  "<html></html>",
		Migration: "CREATE TABLE a (id TEXT);\nCREATE INDEX i ON a(id);",
	}
)

func (suite *BuildServiceTestSuite) expectThroughArtifacts() {
	suite.gateway.EXPECT().CheckConfigured().Return(nil)
	suite.conversation.EXPECT().History(gomock.Any(), "p1").Return(todoConversation, nil)
	suite.generator.EXPECT().ProducePlan(gomock.Any(), todoConversation).Return(todoPlan, nil)
	suite.generator.EXPECT().ProduceCode(gomock.Any(), todoPlan, todoConversation).Return(todoArtifacts, nil)
	suite.artifacts.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
}

// TestBuild_EndToEnd covers the p1 scenario: plan, code, artifacts, database,
// two migration statements and a deployment.
func (suite *BuildServiceTestSuite) TestBuild_EndToEnd() {
	ctx := context.Background()
	var deployed *service.DeploySpec

	gomock.InOrder(
		suite.gateway.EXPECT().CheckConfigured().Return(nil),
		suite.conversation.EXPECT().History(gomock.Any(), "p1").Return(todoConversation, nil),
		suite.generator.EXPECT().ProducePlan(gomock.Any(), todoConversation).Return(todoPlan, nil),
		suite.generator.EXPECT().ProduceCode(gomock.Any(), todoPlan, todoConversation).Return(todoArtifacts, nil),
		suite.artifacts.EXPECT().Put(gomock.Any(), "projects/p1/worker.js", todoArtifacts.Script).Return(nil),
		suite.artifacts.EXPECT().Put(gomock.Any(), "projects/p1/index.html", todoArtifacts.Document).Return(nil),
		suite.artifacts.EXPECT().Put(gomock.Any(), "projects/p1/migration.sql", todoArtifacts.Migration).Return(nil),
		suite.gateway.EXPECT().CreateDatabase(gomock.Any(), "app-p1").Return("db-1", nil),
		suite.gateway.EXPECT().RunStatement(gomock.Any(), "db-1", "CREATE TABLE a (id TEXT);").Return(json.RawMessage(`[]`), nil),
		suite.gateway.EXPECT().RunStatement(gomock.Any(), "db-1", "CREATE INDEX i ON a(id);").Return(json.RawMessage(`[]`), nil),
		suite.gateway.EXPECT().DeployService(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, spec *service.DeploySpec) error {
			deployed = spec
			return nil
		}),
	)

	result, err := suite.buildService.Build(ctx, "p1", "Todo", "https://builder.example.com/")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "https://builder.example.com/apps/p1/", result.DeployedURL)
	assert.Equal(suite.T(), "db-1", result.DatabaseID)
	assert.Equal(suite.T(), "app-p1", result.ScriptName)

	require.NotNil(suite.T(), deployed)
	assert.Equal(suite.T(), "app-p1", deployed.ScriptName)
	assert.Equal(suite.T(), todoArtifacts.Script, deployed.Script)
	assert.Equal(suite.T(), "db-1", deployed.DatabaseID)
	assert.Equal(suite.T(), "user-code", deployed.BucketName)
	assert.Len(suite.T(), deployed.Secret, 64)
	assert.Equal(suite.T(), []service.Asset{{Path: "/index.html", Content: []byte(todoArtifacts.Document)}}, deployed.Assets)
}

func (suite *BuildServiceTestSuite) TestBuild_MissingCredentials() {
	suite.gateway.EXPECT().CheckConfigured().Return(apperrors.ErrPlatformCredentialsMissing)

	_, err := suite.buildService.Build(context.Background(), "p1", "Todo", "https://b")

	be, ok := apperrors.AsBuildError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.StageConfigure, be.Stage)
	assert.True(suite.T(), apperrors.IsConfiguration(err))
}

func (suite *BuildServiceTestSuite) TestBuild_PlanFailureStopsBeforeAnyEffect() {
	suite.gateway.EXPECT().CheckConfigured().Return(nil)
	suite.conversation.EXPECT().History(gomock.Any(), "p1").Return(todoConversation, nil)
	suite.generator.EXPECT().ProducePlan(gomock.Any(), gomock.Any()).Return(nil, apperrors.NewGenerationError("plan", "no JSON object found", "nope"))

	_, err := suite.buildService.Build(context.Background(), "p1", "Todo", "https://b")

	be, ok := apperrors.AsBuildError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.StagePlan, be.Stage)
	assert.True(suite.T(), apperrors.IsGeneration(err))
	assert.Empty(suite.T(), be.ProvisionedDatabaseID)
}

func (suite *BuildServiceTestSuite) TestBuild_ArtifactStoreFailure() {
	suite.gateway.EXPECT().CheckConfigured().Return(nil)
	suite.conversation.EXPECT().History(gomock.Any(), "p1").Return(todoConversation, nil)
	suite.generator.EXPECT().ProducePlan(gomock.Any(), gomock.Any()).Return(todoPlan, nil)
	suite.generator.EXPECT().ProduceCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(todoArtifacts, nil)
	suite.artifacts.EXPECT().Put(gomock.Any(), "projects/p1/worker.js", gomock.Any()).Return(errors.New("bucket unavailable"))

	_, err := suite.buildService.Build(context.Background(), "p1", "Todo", "https://b")

	be, ok := apperrors.AsBuildError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.StageStoreArtifacts, be.Stage)
	assert.Contains(suite.T(), err.Error(), "bucket unavailable")
}

func (suite *BuildServiceTestSuite) TestBuild_CreateDatabaseFailure() {
	suite.expectThroughArtifacts()
	suite.gateway.EXPECT().CreateDatabase(gomock.Any(), "app-p1").Return("", &apperrors.GatewayError{Operation: "create database", Status: 409, Body: "exists"})

	_, err := suite.buildService.Build(context.Background(), "p1", "Todo", "https://b")

	be, ok := apperrors.AsBuildError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.StageCreateDatabase, be.Stage)
	assert.Empty(suite.T(), be.ProvisionedDatabaseID)
}

func (suite *BuildServiceTestSuite) TestBuild_MigrationStopsAtFirstFailingStatement() {
	suite.expectThroughArtifacts()
	suite.gateway.EXPECT().CreateDatabase(gomock.Any(), "app-p1").Return("db-1", nil)
	suite.gateway.EXPECT().RunStatement(gomock.Any(), "db-1", "CREATE TABLE a (id TEXT);").
		Return(nil, &apperrors.GatewayError{Operation: "run statement", Body: "syntax error"})

	_, err := suite.buildService.Build(context.Background(), "p1", "Todo", "https://b")

	be, ok := apperrors.AsBuildError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.StageMigrate, be.Stage)
	assert.Equal(suite.T(), "db-1", be.ProvisionedDatabaseID)
	assert.Contains(suite.T(), err.Error(), "statement 1 of 2")
	assert.True(suite.T(), apperrors.IsGateway(err))
}

func (suite *BuildServiceTestSuite) TestBuild_DeployFailureReportsProvisionedDatabase() {
	suite.expectThroughArtifacts()
	suite.gateway.EXPECT().CreateDatabase(gomock.Any(), "app-p1").Return("db-1", nil)
	suite.gateway.EXPECT().RunStatement(gomock.Any(), "db-1", gomock.Any()).Return(json.RawMessage(`[]`), nil).Times(2)
	suite.gateway.EXPECT().DeployService(gomock.Any(), gomock.Any()).Return(&apperrors.GatewayError{Operation: "deploy service", Status: 500})

	_, err := suite.buildService.Build(context.Background(), "p1", "Todo", "https://b")

	be, ok := apperrors.AsBuildError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.StageDeploy, be.Stage)
	assert.Equal(suite.T(), "db-1", be.ProvisionedDatabaseID)
}

func (suite *BuildServiceTestSuite) TestBuild_CodeSeesOnlyRecentWindow() {
	conversation := make([]service.ConversationMessage, 25)
	for i := range conversation {
		conversation[i] = service.ConversationMessage{Role: "user", Content: fmt.Sprintf("message %d", i)}
	}

	suite.gateway.EXPECT().CheckConfigured().Return(nil)
	suite.conversation.EXPECT().History(gomock.Any(), "p1").Return(conversation, nil)
	suite.generator.EXPECT().ProducePlan(gomock.Any(), conversation).Return(todoPlan, nil)
	suite.generator.EXPECT().ProduceCode(gomock.Any(), todoPlan, conversation[15:]).Return(nil, apperrors.NewGenerationError("code", "missing worker.js", ""))

	_, err := suite.buildService.Build(context.Background(), "p1", "Todo", "https://b")

	be, ok := apperrors.AsBuildError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), apperrors.StageCode, be.Stage)
}

// TestBuildServiceTestSuite runs the test suite
func TestBuildServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BuildServiceTestSuite))
}
