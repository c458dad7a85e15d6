package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// SetupViper creates the viper instance backing a single invocation.
// Settings resolve flag > environment > gavel.toml defaults.
func SetupViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("GAVEL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindGlobalFlags binds the root command's persistent flags into viper so
// explicitly-set flags win over environment and file values.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
	})
	for _, name := range []string{"network", "non-interactive", "json", "timeout"} {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = v.BindPFlag(strings.ReplaceAll(name, "-", "_"), f)
		}
	}
}

// Provider resolves the RuntimeConfig for Wire dependency injection.
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	// Secrets such as the sender key commonly live in a local .env.
	_ = godotenv.Load()

	cfg := &RuntimeConfig{
		SenderKeyEnv:      DefaultSenderKeyEnv,
		Timeout:           DefaultTimeout,
		ExtensionDuration: DefaultExtensionDuration,
		NonInteractive:    v.GetBool("non_interactive"),
		JSON:              v.GetBool("json"),
	}

	resolver := NewNetworkResolver()

	path, err := FindGavelFile()
	if err != nil {
		return nil, fmt.Errorf("failed to locate gavel.toml: %w", err)
	}

	networkName := ""
	if path != "" {
		file, err := LoadGavelFile(path)
		if err != nil {
			return nil, err
		}
		cfg.ConfigPath = path
		resolver.LoadNetworks(file.Networks)

		if file.Defaults.SenderKeyEnv != "" {
			cfg.SenderKeyEnv = file.Defaults.SenderKeyEnv
		}
		if file.Defaults.Timeout.Duration > 0 {
			cfg.Timeout = file.Defaults.Timeout.Duration
		}
		if file.Defaults.ExtensionDuration.Duration > 0 {
			cfg.ExtensionDuration = file.Defaults.ExtensionDuration.Duration
		}
		networkName = file.Defaults.Network

		// A shared registry next to gavel.toml extends the known
		// networks; its absence is fine.
		registry := filepath.Join(filepath.Dir(path), "networks.yaml")
		_ = resolver.LoadYAML(registry)
	}

	if flagNetwork := v.GetString("network"); flagNetwork != "" {
		networkName = flagNetwork
	}
	if networkName != "" {
		network, err := resolver.Resolve(networkName)
		if err != nil {
			return nil, err
		}
		cfg.Network = network
	}

	if timeout := v.GetDuration("timeout"); timeout > 0 {
		cfg.Timeout = timeout
	}

	return cfg, nil
}

// NewNetworkStore builds the resolver view used by the networks command.
func NewNetworkStore(cfg *RuntimeConfig) (*NetworkResolver, error) {
	resolver := NewNetworkResolver()
	if cfg.ConfigPath != "" {
		file, err := LoadGavelFile(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		resolver.LoadNetworks(file.Networks)
		registry := filepath.Join(filepath.Dir(cfg.ConfigPath), "networks.yaml")
		_ = resolver.LoadYAML(registry)
	}
	return resolver, nil
}
