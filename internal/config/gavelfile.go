package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gavel-org/gavel-cli/internal/domain"
)

// GavelFile is the on-disk gavel.toml configuration.
type GavelFile struct {
	Defaults GavelDefaults              `toml:"defaults"`
	Networks map[string]*domain.Network `toml:"networks"`
}

// GavelDefaults holds the [defaults] section.
type GavelDefaults struct {
	Network           string   `toml:"network"`
	SenderKeyEnv      string   `toml:"sender_key_env"`
	Timeout           duration `toml:"timeout"`
	ExtensionDuration duration `toml:"extension_duration"`
}

// duration lets gavel.toml use Go duration strings like "90s" or "2m".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// LoadGavelFile parses a gavel.toml. Network entries get their map key as
// name when none is set.
func LoadGavelFile(path string) (*GavelFile, error) {
	var file GavelFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for name, network := range file.Networks {
		if network.Name == "" {
			network.Name = name
		}
	}
	return &file, nil
}

// FindGavelFile walks up from the working directory looking for a
// gavel.toml, falling back to ~/.config/gavel/gavel.toml. An empty path
// with a nil error means no config file exists and defaults apply.
func FindGavelFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, "gavel.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	candidate := filepath.Join(home, ".config", "gavel", "gavel.toml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", nil
}
