// Package profiles loads named orchestrator profiles from a YAML file, so
// operators working across several orchestrators do not have to retype the
// FQDN and username for each one.
package profiles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultRelPath is the profiles file location below the user config dir.
const DefaultRelPath = "vcoctl/profiles.yaml"

// Profile is one named orchestrator entry. Tokens are never stored in the
// file itself; TokenEnv names an environment variable that holds one.
type Profile struct {
	FQDN     string `yaml:"fqdn"`
	Username string `yaml:"username,omitempty"`
	TokenEnv string `yaml:"tokenEnv,omitempty"`
}

// File is the parsed profiles file.
type File struct {
	Default  string             `yaml:"default,omitempty"`
	Profiles map[string]Profile `yaml:"profiles"`
}

// ErrNoProfiles indicates the profiles file does not exist.
var ErrNoProfiles = errors.New("profiles file not found")

// DefaultPath returns the default profiles file location,
// e.g. ~/.config/vcoctl/profiles.yaml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, DefaultRelPath), nil
}

// Load parses the profiles file at path. A missing file is reported as
// ErrNoProfiles so callers can treat it as "no profiles configured".
func Load(path string) (File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, fmt.Errorf("%w: %s", ErrNoProfiles, path)
		}
		return File{}, fmt.Errorf("reading profiles file %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("parsing profiles file %s: %w", path, err)
	}

	for name, p := range f.Profiles {
		if strings.TrimSpace(p.FQDN) == "" {
			return File{}, fmt.Errorf("profiles file %s: profile %q has no fqdn", path, name)
		}
	}
	if f.Default != "" {
		if _, ok := f.Profiles[f.Default]; !ok {
			return File{}, fmt.Errorf("profiles file %s: default names unknown profile %q", path, f.Default)
		}
	}
	return f, nil
}

// Lookup resolves a profile by name. An empty name selects the file's
// default profile.
func (f File) Lookup(name string) (Profile, error) {
	if name == "" {
		name = f.Default
	}
	if name == "" {
		return Profile{}, fmt.Errorf("no profile named and no default set")
	}
	p, ok := f.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
	return p, nil
}

// Token reads the profile's API token from its TokenEnv variable. It
// returns an empty string when the profile has no token source or the
// variable is unset.
func (p Profile) Token() string {
	if p.TokenEnv == "" {
		return ""
	}
	return strings.TrimSpace(os.Getenv(p.TokenEnv))
}
