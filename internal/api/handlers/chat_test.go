package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app-builder-backend/internal/api/handlers"
	apperrors "app-builder-backend/internal/errors"
	"app-builder-backend/internal/mocks"
	"app-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newChatRouter(t *testing.T) (*gin.Engine, *mocks.MockChatServiceInterface) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockChatServiceInterface(ctrl)
	handler := handlers.NewChatHandler(mockService)

	router := gin.New()
	chat := router.Group("/chat", withUser("u1"))
	chat.POST("", handler.PostMessage)
	chat.POST("/save-assistant", handler.SaveAssistantMessage)
	chat.GET("/:projectId/history", handler.GetHistory)
	return router, mockService
}

func TestChatHandler_PostMessage(t *testing.T) {
	router, mockService := newChatRouter(t)

	mockService.EXPECT().PostMessage(gomock.Any(), "u1", &service.PostMessageRequest{ProjectID: "p1", Message: "todo app"}).
		Return(&service.ChatMessageResponse{ProjectID: "p1", Role: "user", Content: "todo app"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(`{"project_id":"p1","message":"todo app"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func postStreaming(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatHandler_PostMessage_StreamsAcknowledgement(t *testing.T) {
	router, mockService := newChatRouter(t)

	gomock.InOrder(
		mockService.EXPECT().PostMessage(gomock.Any(), "u1", gomock.Any()).
			Return(&service.ChatMessageResponse{ProjectID: "p1", Role: "user", Content: "todo app"}, nil),
		mockService.EXPECT().Acknowledge(gomock.Any(), "u1", "p1").Return("Got it: a todo list.", nil),
	)

	w := postStreaming(router, `{"project_id":"p1","message":"todo app"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	body := w.Body.String()
	assert.Contains(t, body, "event:message")
	assert.Contains(t, body, "event:reply")
	assert.Contains(t, body, `"content":"Got it: a todo list."`)
	assert.Less(t, strings.Index(body, "event:message"), strings.Index(body, "event:reply"))
}

func TestChatHandler_PostMessage_StreamReportsModelFailure(t *testing.T) {
	router, mockService := newChatRouter(t)

	mockService.EXPECT().PostMessage(gomock.Any(), "u1", gomock.Any()).
		Return(&service.ChatMessageResponse{ProjectID: "p1", Role: "user", Content: "todo app"}, nil)
	mockService.EXPECT().Acknowledge(gomock.Any(), "u1", "p1").Return("", errors.New("model unavailable"))

	w := postStreaming(router, `{"project_id":"p1","message":"todo app"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "event:message")
	assert.Contains(t, w.Body.String(), "event:error")
	assert.NotContains(t, w.Body.String(), "event:reply")
}

func TestChatHandler_PostMessage_StreamRequestedButMessageRejected(t *testing.T) {
	router, mockService := newChatRouter(t)

	mockService.EXPECT().PostMessage(gomock.Any(), "u1", gomock.Any()).Return(nil, apperrors.ErrProjectNotFound)

	w := postStreaming(router, `{"project_id":"p9","message":"hi"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestChatHandler_PostMessage_ForeignProject(t *testing.T) {
	router, mockService := newChatRouter(t)

	mockService.EXPECT().PostMessage(gomock.Any(), "u1", gomock.Any()).Return(nil, apperrors.ErrProjectNotFound)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(`{"project_id":"p9","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatHandler_SaveAssistantMessage(t *testing.T) {
	router, mockService := newChatRouter(t)

	mockService.EXPECT().SaveAssistantMessage(gomock.Any(), "u1", &service.SaveAssistantMessageRequest{ProjectID: "p1", Content: "Noted."}).
		Return(&service.ChatMessageResponse{ProjectID: "p1", Role: "assistant", Content: "Noted."}, nil)

	req := httptest.NewRequest(http.MethodPost, "/chat/save-assistant", bytes.NewBufferString(`{"project_id":"p1","content":"Noted."}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestChatHandler_GetHistory(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantStatus int
	}{
		{name: "full history", query: "", wantLimit: 0, wantStatus: http.StatusOK},
		{name: "recent only", query: "?limit=10", wantLimit: 10, wantStatus: http.StatusOK},
		{name: "bad limit", query: "?limit=ten", wantLimit: -1, wantStatus: http.StatusBadRequest},
		{name: "negative limit", query: "?limit=-3", wantLimit: -1, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newChatRouter(t)
			if tt.wantLimit >= 0 {
				mockService.EXPECT().GetHistory(gomock.Any(), "u1", "p1", tt.wantLimit).Return(nil, nil)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chat/p1/history"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"messages":[]}`, w.Body.String())
			}
		})
	}
}
