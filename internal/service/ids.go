package service

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const resourcePrefix = "app-"

// randomID returns 16 random bytes as 32 hex characters
func randomID() string {
	b := make([]byte, 16)
	// crypto/rand.Read never returns an error since Go 1.24
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewProjectID creates the identifier of a new project
func NewProjectID() string {
	return randomID()
}

func newDeploymentSecret() string {
	return randomID() + randomID()
}

// ResourceName is the name of a project's database and script
func ResourceName(projectID string) string {
	return resourcePrefix + projectID
}

// DeployedURL is where a project's application is served
func DeployedURL(baseURL, projectID string) string {
	return strings.TrimRight(baseURL, "/") + "/apps/" + projectID + "/"
}
