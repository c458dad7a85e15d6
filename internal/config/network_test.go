package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavel-org/gavel-cli/internal/config"
	"github.com/gavel-org/gavel-cli/internal/domain"
)

func TestNetworkResolver(t *testing.T) {
	r := config.NewNetworkResolver()

	t.Run("resolve by name", func(t *testing.T) {
		network, err := r.Resolve("mainnet")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), network.ChainID)
		assert.NotEmpty(t, network.AuctionHouse)
	})

	t.Run("name is case insensitive", func(t *testing.T) {
		network, err := r.Resolve("Mainnet")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), network.ChainID)
	})

	t.Run("resolve by chain id", func(t *testing.T) {
		network, err := r.Resolve("11155111")
		require.NoError(t, err)
		assert.Equal(t, "sepolia", network.Name)
	})

	t.Run("unknown network fails", func(t *testing.T) {
		_, err := r.Resolve("moonbase")
		assert.Error(t, err)
	})

	t.Run("custom network overrides default", func(t *testing.T) {
		r := config.NewNetworkResolver()
		r.LoadNetworks(map[string]*domain.Network{
			"mainnet": {ChainID: 1, RPCURL: "https://rpc.example.org", AuctionHouse: "0x1"},
		})
		network, err := r.Resolve("mainnet")
		require.NoError(t, err)
		assert.Equal(t, "https://rpc.example.org", network.RPCURL)
	})
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "networks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
testnet:
  chain_id: 5777
  rpc_url: http://10.0.0.5:8545
  governor: "0x00000000000000000000000000000000000000aa"
`), 0o644))

	r := config.NewNetworkResolver()
	require.NoError(t, r.LoadYAML(path))

	network, err := r.Resolve("testnet")
	require.NoError(t, err)
	assert.Equal(t, uint64(5777), network.ChainID)
	assert.Equal(t, "http://10.0.0.5:8545", network.RPCURL)
}

func TestLoadGavelFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gavel.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[defaults]
network = "devnet"
sender_key_env = "DEVNET_KEY"
timeout = "90s"
extension_duration = "5m"

[networks.devnet]
chain_id = 1337
rpc_url = "http://localhost:9545"
auction_house = "0x00000000000000000000000000000000000000a1"
governor = "0x00000000000000000000000000000000000000a2"
token = "0x00000000000000000000000000000000000000a3"
`), 0o644))

	file, err := config.LoadGavelFile(path)
	require.NoError(t, err)

	assert.Equal(t, "devnet", file.Defaults.Network)
	assert.Equal(t, "DEVNET_KEY", file.Defaults.SenderKeyEnv)
	assert.Equal(t, 90*time.Second, file.Defaults.Timeout.Duration)
	assert.Equal(t, 5*time.Minute, file.Defaults.ExtensionDuration.Duration)

	require.Contains(t, file.Networks, "devnet")
	devnet := file.Networks["devnet"]
	assert.Equal(t, "devnet", devnet.Name)
	assert.Equal(t, uint64(1337), devnet.ChainID)
	assert.Equal(t, "0x00000000000000000000000000000000000000a2", devnet.Governor)
}
