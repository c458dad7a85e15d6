package chain

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/gavel-org/gavel-cli/internal/config"
)

// Signer holds the transaction signing key. The key is read from an
// environment variable so it never lands in config files, and loading is
// deferred until a write is actually requested: read-only commands must
// work without a key.
type Signer struct {
	keyEnv  string
	chainID *big.Int

	once    sync.Once
	key     *ecdsa.PrivateKey
	address common.Address
	err     error
}

// NewSigner creates a signer bound to the configured network's chain id.
func NewSigner(cfg *config.RuntimeConfig) *Signer {
	s := &Signer{keyEnv: cfg.SenderKeyEnv}
	if cfg.Network != nil {
		s.chainID = new(big.Int).SetUint64(cfg.Network.ChainID)
	}
	return s
}

func (s *Signer) load() {
	s.once.Do(func() {
		raw := os.Getenv(s.keyEnv)
		if raw == "" {
			s.err = fmt.Errorf("%s is not set", s.keyEnv)
			return
		}
		key, err := crypto.HexToECDSA(strings.TrimPrefix(raw, "0x"))
		if err != nil {
			s.err = fmt.Errorf("invalid private key in %s: %w", s.keyEnv, err)
			return
		}
		s.key = key
		s.address = crypto.PubkeyToAddress(key.PublicKey)
	})
}

// Address returns the sender address derived from the key.
func (s *Signer) Address() (common.Address, error) {
	s.load()
	return s.address, s.err
}

// TransactOpts builds signed transaction options for this chain.
func (s *Signer) TransactOpts() (*bind.TransactOpts, error) {
	s.load()
	if s.err != nil {
		return nil, s.err
	}
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to build transactor: %w", err)
	}
	return opts, nil
}
