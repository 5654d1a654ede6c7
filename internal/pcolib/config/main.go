/*
Package config
Configuration for the pco CLI. Two files are involved:

- The credentials file (YAML, '~/.pcotoolkit/credentials.yml' by default)
  holds the 'client_id'/'client_secret' pair used for HTTP Basic auth.
  It is required for every command that talks to the API.

- The settings file (ini, './.pco/config' by default) holds optional
  per-project defaults: the API host, the default service type name and the
  page size. Its absence is not an error.

Paths always flow in from the caller so tests can inject their own;
there is no process-wide mutable default.

Usage:

    import "github.com/pcotoolkit/cli/internal/pcolib/config"

    credentials, err := config.LoadCredentials(path)
    if err != nil { ... }

    settings, err := config.LoadSettings(settingsPath)
    if err != nil { ... }
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// MissingFileError is returned when the credentials file does not exist at
// the given path.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf(
		"configuration file not found at '%s', run 'pco init' to create it",
		e.Path,
	)
}

// InvalidError is returned when the credentials file exists but does not
// carry both required keys.
type InvalidError struct {
	Path string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf(
		"configuration file '%s' must contain both 'client_id' and "+
			"'client_secret'",
		e.Path,
	)
}

/*
GetCredentialsPath
Return the default location of the credentials file.
*/
func GetCredentialsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pcotoolkit", "credentials.yml"), nil
}
