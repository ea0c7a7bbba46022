package infrastructure

import (
	"encoding/json"
	"os"
	"strings"

	"weatherdesk.app/pkg/errors"
)

const apiKeyEnvName = "OPENWEATHERMAP_API_KEY"

// CredentialProvider holds the OpenWeatherMap API key resolved at start-up.
// The value never changes after construction.
type CredentialProvider struct {
	apiKey string
	err    error
	source string
}

type credentialsFile struct {
	APIKey string `json:"api_key"`
}

// NewCredentialProvider resolves the key from envKey, falling back to the JSON file at filePath
func NewCredentialProvider(envKey, filePath string) *CredentialProvider {
	if key := strings.TrimSpace(envKey); key != "" {
		return &CredentialProvider{apiKey: key, source: "environment"}
	}

	if filePath == "" {
		return &CredentialProvider{err: missingCredential(nil)}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return &CredentialProvider{err: missingCredential(err)}
	}

	var creds credentialsFile
	if err := json.Unmarshal(data, &creds); err != nil {
		return &CredentialProvider{err: errors.NewConfigurationError("credentials file "+filePath+" is not valid JSON", err)}
	}

	key := strings.TrimSpace(creds.APIKey)
	if key == "" {
		return &CredentialProvider{err: missingCredential(nil)}
	}
	return &CredentialProvider{apiKey: key, source: "file"}
}

// APIKey returns the resolved key or a configuration error when none is available
func (c *CredentialProvider) APIKey() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.apiKey, nil
}

// Source reports where the key came from, or an empty string when it is missing
func (c *CredentialProvider) Source() string {
	return c.source
}

func missingCredential(cause error) error {
	return errors.NewConfigurationError("OpenWeatherMap API key is not configured; set "+apiKeyEnvName+" or provide api_key in the credentials file", cause)
}
