package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileCredentials persists the credential pair as a JSON file with 0600
// permissions. Writes go through a temp file and rename so a crash mid-write
// never leaves a truncated credential behind.
type FileCredentials struct {
	path string
}

// DefaultCredentialPath returns $HOME/.pmcli/credentials.json.
func DefaultCredentialPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".pmcli", "credentials.json"), nil
}

// NewFileCredentials returns a file-backed credential store rooted at path.
func NewFileCredentials(path string) *FileCredentials {
	return &FileCredentials{path: path}
}

// Path returns the file the credential is stored at.
func (f *FileCredentials) Path() string {
	return f.path
}

// Load reads the persisted credential. A missing file or an empty token field
// reports ErrNoCredential.
func (f *FileCredentials) Load(_ context.Context) (Credential, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credential{}, ErrNoCredential
		}
		return Credential{}, fmt.Errorf("read credential file: %w", err)
	}

	var cred Credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return Credential{}, fmt.Errorf("decode credential file: %w", err)
	}
	if cred.Token == "" {
		return Credential{}, ErrNoCredential
	}
	return cred, nil
}

// Store writes the credential pair atomically.
func (f *FileCredentials) Store(_ context.Context, cred Credential) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create credential directory: %w", err)
	}

	raw, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return fmt.Errorf("create temp credential file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write credential: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod credential: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close credential: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace credential file: %w", err)
	}
	return nil
}

// Clear removes the credential file. Removing an already-absent file is not an
// error.
func (f *FileCredentials) Clear(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential file: %w", err)
	}
	return nil
}
