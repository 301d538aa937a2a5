package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"app-builder-backend/internal/config"
	apperrors "app-builder-backend/internal/errors"
	"app-builder-backend/internal/logger"
)

// ConversationMessage is one turn of a project conversation
type ConversationMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AppPlan is the structured description of the application to generate
type AppPlan struct {
	AppName          string    `json:"appName"`
	Pages            []AppPage `json:"pages"`
	DataModel        DataModel `json:"dataModel"`
	Features         []string  `json:"features,omitempty"`
	NeedsAuth        bool      `json:"needsAuth"`
	NeedsFileStorage bool      `json:"needsFileStorage"`
}

type AppPage struct {
	Name  string `json:"name"`
	Route string `json:"route"`
}

type DataModel struct {
	Tables []Table `json:"tables"`
}

type Table struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// GeneratedArtifacts is the source of one application
type GeneratedArtifacts struct {
	Script    string
	Document  string
	Migration string
}

const planSystemPrompt = `You design small web applications. Read the user's description and the conversation, then answer with ONE JSON object and nothing else (no markdown, no code fence). The object has this shape:
{
  "appName": "kebab-case-name",
  "pages": [{"name": "PageName", "route": "/path"}],
  "dataModel": {
    "tables": [
      {"name": "table_name", "columns": [{"name": "id", "type": "TEXT PRIMARY KEY"}]}
    ]
  },
  "features": ["auth", "crud"],
  "needsAuth": true,
  "needsFileStorage": false
}
Column types are SQLite types (TEXT, INTEGER, REAL, BLOB). When needsAuth is true include a table holding the application's users.`

const codeSystemPrompt = `You write complete applications that run on Cloudflare Workers.
1. worker.js: an ES module with export default { async fetch(request, env) { ... } }. Requests under /api/ run API logic; everything else returns env.ASSETS.fetch(request). env.DB is a D1 database, env.STORAGE an R2 bucket and env.JWT_SECRET a signing secret. Implement register/login and the CRUD endpoints of the plan without npm imports: hash passwords with crypto.subtle SHA-256 plus a salt and sign tokens with HMAC-SHA256.
2. index.html: a single page using Preact from https://esm.sh/preact@10 with htm from https://esm.sh/htm@3 and Tailwind from its CDN. It calls /api/ on the same origin.
3. migration.sql: CREATE TABLE IF NOT EXISTS for every table of the plan, plus useful indexes.

Answer with exactly three blocks. Each block starts with a line ---FILE:filename--- and runs until the next such line or the end of the answer. Write nothing outside the blocks.`

const acknowledgeSystemPrompt = `You help a user describe a web application that will be generated for them. Answer the latest message in one or two short sentences: confirm what you understood and, if something important is unclear, ask one question. Do not write code.`

const (
	planClosingInstruction = "Output the JSON plan only, no other text."
	codeClosingInstruction = "Generate the three files now."
)

// WorkersAIGenerator produces plans and code through the Workers AI REST API
type WorkersAIGenerator struct {
	baseURL    string
	accountID  string
	apiToken   string
	model      string
	httpClient *http.Client
}

// NewWorkersAIGenerator creates a generator using the account credentials in cfg
func NewWorkersAIGenerator(cfg *config.Config) *WorkersAIGenerator {
	return &WorkersAIGenerator{
		baseURL:    strings.TrimRight(cfg.CloudflareAPIBaseURL, "/"),
		accountID:  cfg.CloudflareAccountID,
		apiToken:   cfg.CloudflareAPIToken,
		model:      cfg.AIModel,
		httpClient: &http.Client{Timeout: cfg.AITimeout()},
	}
}

// ProducePlan asks the model for an application plan
func (g *WorkersAIGenerator) ProducePlan(ctx context.Context, conversation []ConversationMessage) (*AppPlan, error) {
	messages := make([]ConversationMessage, 0, len(conversation)+2)
	messages = append(messages, ConversationMessage{Role: "system", Content: planSystemPrompt})
	for _, m := range conversation {
		messages = append(messages, ConversationMessage{Role: modelRole(m.Role), Content: m.Content})
	}
	messages = append(messages, ConversationMessage{Role: "user", Content: planClosingInstruction})

	text, err := g.run(ctx, "generate plan", messages)
	if err != nil {
		return nil, err
	}
	return ParsePlan(text)
}

// ProduceCode asks the model for the three source files of plan
func (g *WorkersAIGenerator) ProduceCode(ctx context.Context, plan *AppPlan, recent []ConversationMessage) (*GeneratedArtifacts, error) {
	planJSON, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}

	lines := make([]string, 0, len(recent))
	for _, m := range recent {
		lines = append(lines, m.Role+": "+m.Content)
	}
	prompt := fmt.Sprintf("Plan:\n%s\n\nRecent conversation:\n%s\n\n%s", planJSON, strings.Join(lines, "\n"), codeClosingInstruction)

	text, err := g.run(ctx, "generate code", []ConversationMessage{
		{Role: "system", Content: codeSystemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return nil, err
	}
	return ParseArtifacts(text)
}

// Acknowledge asks the model for a short reply to the latest message of conversation
func (g *WorkersAIGenerator) Acknowledge(ctx context.Context, conversation []ConversationMessage) (string, error) {
	messages := make([]ConversationMessage, 0, len(conversation)+1)
	messages = append(messages, ConversationMessage{Role: "system", Content: acknowledgeSystemPrompt})
	for _, m := range conversation {
		messages = append(messages, ConversationMessage{Role: modelRole(m.Role), Content: m.Content})
	}

	text, err := g.run(ctx, "acknowledge", messages)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func modelRole(role string) string {
	if role == "assistant" {
		return "assistant"
	}
	return "user"
}

type aiRunResult struct {
	Response json.RawMessage `json:"response"`
	Choices  []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *WorkersAIGenerator) run(ctx context.Context, operation string, messages []ConversationMessage) (string, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"model":     g.model,
		"operation": operation,
	})

	if g.accountID == "" || g.apiToken == "" {
		return "", apperrors.ErrPlatformCredentialsMissing
	}
	if g.model == "" {
		return "", apperrors.NewConfigurationError("AI_MODEL must be set")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"messages": messages,
		"stream":   false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode %s request: %w", operation, err)
	}

	endpoint := fmt.Sprintf("%s/accounts/%s/ai/run/%s", g.baseURL, url.PathEscape(g.accountID), g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", &apperrors.GatewayError{Operation: operation, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+g.apiToken)
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Model request failed")
		return "", &apperrors.GatewayError{Operation: operation, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &apperrors.GatewayError{Operation: operation, Status: resp.StatusCode, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil || !env.Success || resp.StatusCode >= 300 {
		log.Errorf("Model request returned status %d", resp.StatusCode)
		return "", &apperrors.GatewayError{Operation: operation, Status: resp.StatusCode, Body: diagnosticText(body)}
	}

	text := responseText(env.Result)
	log.Debugf("Model answered with %d bytes in %s", len(text), time.Since(started))
	return text, nil
}

// responseText pulls the generated text out of a run result. Models answer
// either with a response field or with OpenAI-style choices.
func responseText(raw json.RawMessage) string {
	var result aiRunResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return ""
	}

	response := bytes.TrimSpace(result.Response)
	if len(response) > 0 && !bytes.Equal(response, []byte("null")) {
		var s string
		if err := json.Unmarshal(response, &s); err == nil {
			return s
		}
		// Structured output: hand the JSON itself to the parser.
		return string(response)
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content
	}
	return ""
}
