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
	"unicode/utf8"

	"app-builder-backend/internal/config"
	apperrors "app-builder-backend/internal/errors"
	"app-builder-backend/internal/logger"
	"app-builder-backend/internal/metrics"

	"golang.org/x/time/rate"
)

// Operation names used in errors, logs and metrics
const (
	opCreateDatabase = "create database"
	opRunStatement   = "run statement"
	opDeleteDatabase = "delete database"
	opUploadSession  = "start upload session"
	opUploadAssets   = "upload assets"
	opDeployService  = "deploy service"
	opDeleteService  = "delete service"
)

const maxDiagnosticBody = 4096

// PlatformGateway talks to the hosting control plane: databases, dispatch
// scripts and their static assets.
type PlatformGateway struct {
	baseURL    string
	accountID  string
	apiToken   string
	namespace  string
	bucketName string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewPlatformGateway creates a gateway from the control-plane settings in cfg
func NewPlatformGateway(cfg *config.Config) *PlatformGateway {
	var limiter *rate.Limiter
	if cfg.PlatformRateLimitRPS > 0 {
		burst := cfg.PlatformRateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.PlatformRateLimitRPS), burst)
	}

	return &PlatformGateway{
		baseURL:    strings.TrimRight(cfg.CloudflareAPIBaseURL, "/"),
		accountID:  cfg.CloudflareAccountID,
		apiToken:   cfg.CloudflareAPIToken,
		namespace:  cfg.DispatchNamespace,
		bucketName: cfg.CodeBucket,
		timeout:    cfg.PlatformTimeout(),
		httpClient: &http.Client{Timeout: cfg.PlatformTimeout()},
		limiter:    limiter,
	}
}

// CheckConfigured fails when the account id or the API token is missing
func (g *PlatformGateway) CheckConfigured() error {
	if g.accountID == "" || g.apiToken == "" {
		return apperrors.ErrPlatformCredentialsMissing
	}
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Errors  json.RawMessage `json:"errors"`
}

type platformRequest struct {
	operation   string
	method      string
	path        string
	body        []byte
	contentType string
	// token overrides the API token, e.g. with an upload session credential
	token string
}

type platformResponse struct {
	status int
	body   []byte
}

func (r *platformResponse) ok() bool {
	return r.status >= 200 && r.status < 300
}

func (r *platformResponse) diagnostic() string {
	return diagnosticText(r.body)
}

// diagnosticText keeps at most maxDiagnosticBody bytes of a response body,
// cut on a rune boundary and with invalid UTF-8 replaced.
func diagnosticText(body []byte) string {
	if len(body) > maxDiagnosticBody {
		cut := maxDiagnosticBody
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut]
	}
	return strings.ToValidUTF8(string(body), "\uFFFD")
}

func (g *PlatformGateway) accountPath() string {
	return "/accounts/" + url.PathEscape(g.accountID)
}

func (g *PlatformGateway) databasePath(databaseID string) string {
	return g.accountPath() + "/d1/database/" + url.PathEscape(databaseID)
}

func (g *PlatformGateway) scriptPath(scriptName string) string {
	return fmt.Sprintf("%s/workers/dispatch/namespaces/%s/scripts/%s",
		g.accountPath(), url.PathEscape(g.namespace), url.PathEscape(scriptName))
}

// do sends one request. It only fails on transport problems; the caller
// judges the status code and body.
func (g *PlatformGateway) do(ctx context.Context, req platformRequest) (*platformResponse, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, &apperrors.GatewayError{Operation: req.operation, Err: err}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, g.baseURL+req.path, body)
	if err != nil {
		return nil, &apperrors.GatewayError{Operation: req.operation, Err: err}
	}

	token := req.token
	if token == "" {
		token = g.apiToken
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, &apperrors.GatewayError{Operation: req.operation, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.GatewayError{Operation: req.operation, Status: resp.StatusCode, Err: err}
	}

	return &platformResponse{status: resp.StatusCode, body: data}, nil
}

// doJSON sends a JSON body and requires a successful response envelope
func (g *PlatformGateway) doJSON(ctx context.Context, operation, method, path string, payload interface{}) (*envelope, error) {
	req := platformRequest{operation: operation, method: method, path: path}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", operation, err)
		}
		req.body = data
		req.contentType = "application/json"
	}

	resp, err := g.do(ctx, req)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(resp.body, &env); err != nil || !env.Success || !resp.ok() {
		return nil, &apperrors.GatewayError{Operation: operation, Status: resp.status, Body: resp.diagnostic()}
	}
	return &env, nil
}

func (g *PlatformGateway) observe(operation string, started time.Time, errp *error) {
	metrics.ObservePlatformRequest(operation, *errp, started)
}

// CreateDatabase provisions a database and returns its identifier
func (g *PlatformGateway) CreateDatabase(ctx context.Context, name string) (databaseID string, err error) {
	defer g.observe(opCreateDatabase, time.Now(), &err)
	log := logger.WithContext(ctx).WithField("database_name", name)

	if err := g.CheckConfigured(); err != nil {
		return "", err
	}

	env, err := g.doJSON(ctx, opCreateDatabase, http.MethodPost, g.accountPath()+"/d1/database", map[string]string{"name": name})
	if err != nil {
		log.WithError(err).Error("Failed to create database")
		return "", err
	}

	var result struct {
		UUID       string `json:"uuid"`
		DatabaseID string `json:"database_id"`
	}
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return "", &apperrors.GatewayError{Operation: opCreateDatabase, Body: string(env.Result), Err: err}
	}

	databaseID = result.UUID
	if databaseID == "" {
		databaseID = result.DatabaseID
	}
	if databaseID == "" {
		return "", &apperrors.GatewayError{Operation: opCreateDatabase, Body: "response carries no database id: " + string(env.Result)}
	}

	log.WithField("database_id", databaseID).Info("Database created")
	return databaseID, nil
}

// RunStatement executes one SQL statement against a database and returns the raw result
func (g *PlatformGateway) RunStatement(ctx context.Context, databaseID, sql string) (result json.RawMessage, err error) {
	defer g.observe(opRunStatement, time.Now(), &err)

	if err := g.CheckConfigured(); err != nil {
		return nil, err
	}

	env, err := g.doJSON(ctx, opRunStatement, http.MethodPost, g.databasePath(databaseID)+"/query", map[string]string{"sql": sql})
	if err != nil {
		logger.WithContext(ctx).WithField("database_id", databaseID).WithError(err).Error("Statement failed")
		return nil, err
	}
	return env.Result, nil
}

// DeleteDatabase removes a database
func (g *PlatformGateway) DeleteDatabase(ctx context.Context, databaseID string) (err error) {
	defer g.observe(opDeleteDatabase, time.Now(), &err)

	if err := g.CheckConfigured(); err != nil {
		return err
	}

	if _, err := g.doJSON(ctx, opDeleteDatabase, http.MethodDelete, g.databasePath(databaseID), nil); err != nil {
		return err
	}
	logger.WithContext(ctx).WithField("database_id", databaseID).Info("Database deleted")
	return nil
}

// DeleteService removes a deployed script from the dispatch namespace
func (g *PlatformGateway) DeleteService(ctx context.Context, scriptName string) (err error) {
	defer g.observe(opDeleteService, time.Now(), &err)

	if err := g.CheckConfigured(); err != nil {
		return err
	}

	resp, err := g.do(ctx, platformRequest{
		operation: opDeleteService,
		method:    http.MethodDelete,
		path:      g.scriptPath(scriptName),
	})
	if err != nil {
		return err
	}
	if !resp.ok() {
		return &apperrors.GatewayError{Operation: opDeleteService, Status: resp.status, Body: resp.diagnostic()}
	}

	logger.WithContext(ctx).WithField("script_name", scriptName).Info("Script deleted")
	return nil
}
