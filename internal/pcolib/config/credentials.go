package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Credentials struct {
	ClientId     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	Path         string `yaml:"-"`
}

/*
LoadCredentials
Load the client_id/client_secret pair from the YAML file at 'path'. A
missing file yields a MissingFileError, a file without both keys an
InvalidError.
*/
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, err
	}

	var credentials Credentials
	err = yaml.Unmarshal(data, &credentials)
	if err != nil {
		return nil, err
	}
	credentials.Path = path

	if credentials.ClientId == "" || credentials.ClientSecret == "" {
		return nil, &InvalidError{Path: path}
	}
	return &credentials, nil
}

/*
Save
Write the credentials to their path, creating the parent folder when it's
not there yet. The file is only readable by the owner; it holds a secret.
*/
func (credentials *Credentials) Save() error {
	data, err := yaml.Marshal(credentials)
	if err != nil {
		return err
	}
	err = os.MkdirAll(filepath.Dir(credentials.Path), 0755)
	if err != nil {
		return err
	}
	return os.WriteFile(credentials.Path, data, 0600)
}

/*
NewPlaceholderCredentials
Credentials with dummy values, written by 'pco init' for the user to fill
in.
*/
func NewPlaceholderCredentials(path string) *Credentials {
	return &Credentials{
		ClientId:     "your_client_id_here",
		ClientSecret: "your_client_secret_here",
		Path:         path,
	}
}
