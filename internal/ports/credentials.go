package ports

// CredentialProvider supplies the provider API key
type CredentialProvider interface {
	APIKey() (string, error)
}
