package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	apperrors "app-builder-backend/internal/errors"
	"app-builder-backend/internal/logger"
)

const (
	compatibilityDate  = "2024-01-01"
	scriptModuleType   = "application/javascript+module"
	databaseBinding    = "DB"
	storageBinding     = "STORAGE"
	secretBinding      = "JWT_SECRET"
	assetsBinding      = "ASSETS"
	assetDigestByteLen = 16
)

// Asset is one static file served next to a deployed script
type Asset struct {
	Path    string
	Content []byte
}

// DeploySpec describes a script deployment with its bindings and assets
type DeploySpec struct {
	ScriptName string
	Script     string
	Assets     []Asset
	DatabaseID string
	BucketName string
	Secret     string
}

type manifestEntry struct {
	Hash string `json:"hash"`
	Size int    `json:"size"`
}

type uploadSession struct {
	JWT     string     `json:"jwt"`
	Buckets [][]string `json:"buckets"`
}

type scriptBinding struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	DatabaseID string `json:"database_id,omitempty"`
	BucketName string `json:"bucket_name,omitempty"`
	Text       string `json:"text,omitempty"`
}

type scriptMetadata struct {
	MainModule        string          `json:"main_module"`
	CompatibilityDate string          `json:"compatibility_date"`
	Assets            assetsMetadata  `json:"assets"`
	Bindings          []scriptBinding `json:"bindings"`
}

type assetsMetadata struct {
	JWT string `json:"jwt"`
}

// AssetDigest is the content address of an asset: the hex form of the first
// 16 bytes of its SHA-256.
func AssetDigest(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:assetDigestByteLen])
}

// preparedAssets is the manifest sent to open an upload session plus the
// encoded payloads the session may ask for.
type preparedAssets struct {
	manifest map[string]manifestEntry
	payloads map[string]string
}

func prepareAssets(assets []Asset) (*preparedAssets, error) {
	prepared := &preparedAssets{
		manifest: make(map[string]manifestEntry, len(assets)),
		payloads: make(map[string]string, len(assets)),
	}
	for _, asset := range assets {
		path := asset.Path
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		if _, dup := prepared.manifest[path]; dup {
			return nil, fmt.Errorf("duplicate asset path %s", path)
		}
		digest := AssetDigest(asset.Content)
		prepared.manifest[path] = manifestEntry{Hash: digest, Size: len(asset.Content)}
		prepared.payloads[digest] = base64.StdEncoding.EncodeToString(asset.Content)
	}
	return prepared, nil
}

// DeployService uploads the assets the control plane is missing and then
// publishes the script with its bindings.
func (g *PlatformGateway) DeployService(ctx context.Context, spec *DeploySpec) (err error) {
	defer g.observe(opDeployService, time.Now(), &err)
	log := logger.WithContext(ctx).WithField("script_name", spec.ScriptName)

	if err := g.CheckConfigured(); err != nil {
		return err
	}

	prepared, err := prepareAssets(spec.Assets)
	if err != nil {
		return err
	}

	session, err := g.startUploadSession(ctx, spec.ScriptName, prepared.manifest)
	if err != nil {
		log.WithError(err).Error("Failed to open asset upload session")
		return err
	}
	log.Debugf("Upload session requested %d buckets", len(session.Buckets))

	completion, err := g.uploadBuckets(ctx, session, prepared.payloads)
	if err != nil {
		log.WithError(err).Error("Failed to upload assets")
		return err
	}

	body, contentType, err := g.deployForm(spec, completion)
	if err != nil {
		return fmt.Errorf("failed to encode deployment: %w", err)
	}

	resp, err := g.do(ctx, platformRequest{
		operation:   opDeployService,
		method:      http.MethodPut,
		path:        g.scriptPath(spec.ScriptName),
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return err
	}
	if !resp.ok() {
		log.Errorf("Deployment rejected with status %d", resp.status)
		return &apperrors.GatewayError{Operation: opDeployService, Status: resp.status, Body: resp.diagnostic()}
	}

	log.Info("Script deployed")
	return nil
}

func (g *PlatformGateway) startUploadSession(ctx context.Context, scriptName string, manifest map[string]manifestEntry) (*uploadSession, error) {
	env, err := g.doJSON(ctx, opUploadSession, http.MethodPost,
		g.scriptPath(scriptName)+"/assets-upload-session",
		map[string]interface{}{"manifest": manifest})
	if err != nil {
		return nil, err
	}

	var session uploadSession
	if err := json.Unmarshal(env.Result, &session); err != nil {
		return nil, &apperrors.GatewayError{Operation: opUploadSession, Body: string(env.Result), Err: err}
	}
	if session.JWT == "" {
		return nil, &apperrors.GatewayError{Operation: opUploadSession, Body: "response carries no upload credential"}
	}
	return &session, nil
}

// uploadBuckets sends one request per requested bucket and returns the
// credential the deployment must present. A bucket response that carries a
// new credential replaces the current one.
func (g *PlatformGateway) uploadBuckets(ctx context.Context, session *uploadSession, payloads map[string]string) (string, error) {
	completion := session.JWT
	for i, bucket := range session.Buckets {
		refreshed, err := g.uploadBucket(ctx, session.JWT, bucket, payloads)
		if err != nil {
			return "", fmt.Errorf("bucket %d of %d: %w", i+1, len(session.Buckets), err)
		}
		if refreshed != "" {
			completion = refreshed
		}
	}
	return completion, nil
}

func (g *PlatformGateway) uploadBucket(ctx context.Context, token string, hashes []string, payloads map[string]string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, hash := range hashes {
		payload, ok := payloads[hash]
		if !ok {
			logger.WithContext(ctx).Warnf("Upload session asked for unknown asset %s", hash)
			continue
		}
		if err := writer.WriteField(hash, payload); err != nil {
			return "", err
		}
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	resp, err := g.do(ctx, platformRequest{
		operation:   opUploadAssets,
		method:      http.MethodPost,
		path:        g.accountPath() + "/workers/assets/upload?base64=true",
		body:        buf.Bytes(),
		contentType: writer.FormDataContentType(),
		token:       token,
	})
	if err != nil {
		return "", err
	}

	var env envelope
	if err := json.Unmarshal(resp.body, &env); err != nil || !env.Success || !resp.ok() {
		return "", &apperrors.GatewayError{Operation: opUploadAssets, Status: resp.status, Body: resp.diagnostic()}
	}

	var result struct {
		JWT string `json:"jwt"`
	}
	// Intermediate buckets answer with an empty result.
	if len(env.Result) > 0 && string(env.Result) != "null" {
		if err := json.Unmarshal(env.Result, &result); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("Ignoring unreadable upload result; keeping the previous credential")
		}
	}
	return result.JWT, nil
}

func (g *PlatformGateway) deployForm(spec *DeploySpec, completion string) ([]byte, string, error) {
	bucketName := spec.BucketName
	if bucketName == "" {
		bucketName = g.bucketName
	}
	mainModule := spec.ScriptName + ".mjs"

	metadata := scriptMetadata{
		MainModule:        mainModule,
		CompatibilityDate: compatibilityDate,
		Assets:            assetsMetadata{JWT: completion},
		Bindings: []scriptBinding{
			{Type: "d1_database", Name: databaseBinding, DatabaseID: spec.DatabaseID},
			{Type: "r2_bucket", Name: storageBinding, BucketName: bucketName},
			{Type: "secret_text", Name: secretBinding, Text: spec.Secret},
			{Type: "assets", Name: assetsBinding},
		},
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writePart(writer, "metadata", "blob", "application/json", metadataJSON); err != nil {
		return nil, "", err
	}
	if err := writePart(writer, mainModule, mainModule, scriptModuleType, []byte(spec.Script)); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), writer.FormDataContentType(), nil
}

func writePart(writer *multipart.Writer, field, filename, contentType string, content []byte) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = part.Write(content)
	return err
}
