package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the cost used by the seeding tool. Hashes produced with a
// different cost still verify, so changing this does not invalidate existing files.
const BcryptCost = 10

// Credentials is the on-disk credential record. All three fields must be present
// and non-empty for the server to start.
type Credentials struct {
	AdminPasswordHash string `json:"adminPasswordHash"`
	SecretQuestion    string `json:"secretQuestion"`
	SecretAnswerHash  string `json:"secretAnswerHash"`
}

func (c Credentials) validate() error {
	if c.AdminPasswordHash == "" || c.SecretQuestion == "" || c.SecretAnswerHash == "" {
		return fmt.Errorf("credential file is missing required fields")
	}
	return nil
}

// LoadCredentials reads and validates the credential file. It returns a snapshot;
// callers must not mutate shared state, they reload after any write instead.
func LoadCredentials(path string) (Credentials, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("read credential file %s: %w", path, err)
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return Credentials{}, fmt.Errorf("parse credential file %s: %w", path, err)
	}

	if err := creds.validate(); err != nil {
		return Credentials{}, fmt.Errorf("credential file %s: %w", path, err)
	}

	return creds, nil
}

// WriteCredentials serializes the record and overwrites the credential file.
func WriteCredentials(path string, creds Credentials) error {
	if err := creds.validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(creds, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write credential file %s: %w", path, err)
	}

	return nil
}

// HashSecret bcrypt-hashes a password or secret answer.
func HashSecret(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}
