package config

import (
	"time"

	"github.com/gavel-org/gavel-cli/internal/domain"
)

// Default runtime settings.
const (
	DefaultSenderKeyEnv      = "GAVEL_PRIVATE_KEY"
	DefaultTimeout           = 2 * time.Minute
	DefaultExtensionDuration = 600 * time.Second
)

// RuntimeConfig represents the complete runtime configuration. It is
// resolved once per invocation and injected into use cases; nothing here
// mutates after startup.
type RuntimeConfig struct {
	// ConfigPath is the gavel.toml the settings were loaded from, empty
	// when running on built-in defaults.
	ConfigPath string

	// Network is the resolved target network, nil if not specified.
	Network *domain.Network

	// SenderKeyEnv names the environment variable holding the hex private
	// key used to sign transactions.
	SenderKeyEnv string

	// ExtensionDuration is how far a qualifying late bid pushes the
	// auction's end time. The auction house exposes no getter for it.
	ExtensionDuration time.Duration

	// Timeout bounds a whole command, including waiting for a
	// transaction to be mined.
	Timeout time.Duration

	// Execution settings
	NonInteractive bool
	JSON           bool
}
