package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pcotoolkit/cli/pkg/assert"
)

func TestLoadCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yml")
	err := os.WriteFile(path, []byte(
		"client_id: my_id\nclient_secret: my_secret\n",
	), 0600)
	if err != nil {
		t.Fatal(err)
	}

	credentials, err := LoadCredentials(path)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, credentials.ClientId, "my_id")
	assert.Equal(t, credentials.ClientSecret, "my_secret")
	assert.Equal(t, credentials.Path, path)
}

func TestLoadCredentialsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yml")

	_, err := LoadCredentials(path)
	var e *MissingFileError
	if !errors.As(err, &e) {
		t.Fatalf("Expected a MissingFileError, got %v", err)
	}
	assert.Equal(t, e.Path, path)
	if !strings.Contains(err.Error(), path) {
		t.Error("The error message should name the missing path")
	}
}

func TestLoadCredentialsMissingKeys(t *testing.T) {
	testCases := []string{
		"client_id: my_id\n",
		"client_secret: my_secret\n",
		"",
	}
	for _, content := range testCases {
		path := filepath.Join(t.TempDir(), "credentials.yml")
		err := os.WriteFile(path, []byte(content), 0600)
		if err != nil {
			t.Fatal(err)
		}

		_, err = LoadCredentials(path)
		var e *InvalidError
		if !errors.As(err, &e) {
			t.Fatalf("Expected an InvalidError for %q, got %v", content, err)
		}
		if !strings.Contains(err.Error(), "client_id") ||
			!strings.Contains(err.Error(), "client_secret") {
			t.Error("The error message should name both required keys")
		}
	}
}

func TestSaveCreatesParentFolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".pcotoolkit", "credentials.yml")

	credentials := NewPlaceholderCredentials(path)
	err := credentials.Save()
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadCredentials(path)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, loaded.ClientId, "your_client_id_here")
	assert.Equal(t, loaded.ClientSecret, "your_client_secret_here")

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, info.Mode().Perm(), os.FileMode(0600))
}
