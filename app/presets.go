package app

import (
	_ "embed"
	"os"

	errorsmod "cosmossdk.io/errors"
	"github.com/cometbft/cometbft/libs/log"

	"github.com/baron-chain/coinnet-bc/crypto/keyring"
	"github.com/baron-chain/coinnet-bc/types"
)

// DefaultChainID is the preset used when no chain is requested.
const DefaultChainID = "dev"

var (
	//go:embed res/coinnet.json
	coinnetTestJSON []byte
	//go:embed res/coinnet_main.json
	coinnetMainJSON []byte
)

type preset struct {
	id          string
	description string
	load        func(opts ...Option) (*ChainSpec, error)
}

var presets = []preset{
	{"dev", "Development, single validator Alice", DevelopmentConfig},
	{"local", "Local Testnet, validators Alice and Bob", LocalTestnetConfig},
	{"staging", "Staging Testnet, three fixed validators", StagingTestnetConfig},
	{"coinnet", "1COIN Testnet, pre-built", CoinnetTestConfig},
	{"coinnet-main", "1COIN, pre-built", CoinnetMainConfig},
}

// ChainIDs lists the preset identifiers accepted by LoadChainSpec.
func ChainIDs() []string {
	ids := make([]string, 0, len(presets))
	for _, p := range presets {
		ids = append(ids, p.id)
	}
	return ids
}

// ChainDescription returns the one-line description of a preset.
func ChainDescription(id string) (string, bool) {
	for _, p := range presets {
		if p.id == id {
			return p.description, true
		}
	}
	return "", false
}

// LoadChainSpec resolves a preset identifier, or the path of a chain spec
// file when id names no preset. An empty id selects DefaultChainID.
func LoadChainSpec(id string, opts ...Option) (*ChainSpec, error) {
	if id == "" {
		id = DefaultChainID
	}
	for _, p := range presets {
		if p.id == id {
			return p.load(opts...)
		}
	}

	bz, err := os.ReadFile(id)
	if os.IsNotExist(err) {
		return nil, errorsmod.Wrapf(ErrUnknownChain, "%q is neither a preset nor a file", id)
	}
	if err != nil {
		return nil, errorsmod.Wrapf(ErrUnknownChain, "read %s: %s", id, err)
	}
	return loadJSON(id, bz, opts)
}

// DevelopmentConfig is a single validator network run by Alice.
func DevelopmentConfig(opts ...Option) (*ChainSpec, error) {
	env := optionsEnv(opts)
	return NewChainSpec("Development", "dev", ChainTypeDevelopment, func() GenesisConfig {
		return TestnetGenesis(GenesisInitOptions{
			Authorities:   AuthoritiesFromSeeds("Alice"),
			RootKey:       keyring.MustAccountIDFromSeed("Alice"),
			EnablePrintln: true,
			Logger:        env.logger,
			Metrics:       env.metrics,
		})
	}, opts...)
}

// LocalTestnetConfig is a two validator network run by Alice and Bob.
func LocalTestnetConfig(opts ...Option) (*ChainSpec, error) {
	env := optionsEnv(opts)
	return NewChainSpec("Local Testnet", "local_testnet", ChainTypeLocal, localTestnetGenesis(env), opts...)
}

func localTestnetGenesis(env *ChainSpec) GenesisBuilder {
	return func() GenesisConfig {
		return TestnetGenesis(GenesisInitOptions{
			Authorities: AuthoritiesFromSeeds("Alice", "Bob"),
			RootKey:     keyring.MustAccountIDFromSeed("Alice"),
			Logger:      env.logger,
			Metrics:     env.metrics,
		})
	}
}

// StagingTestnetConfig is the live staging network with fixed authorities.
func StagingTestnetConfig(opts ...Option) (*ChainSpec, error) {
	env := optionsEnv(opts)

	telemetry, err := NewTelemetryEndpoint(StagingTelemetryURL, 0)
	if err != nil {
		return nil, err
	}

	builder := func() GenesisConfig {
		return TestnetGenesis(GenesisInitOptions{
			Authorities:     StagingAuthorities(),
			RootKey:         stagingRootKey,
			EndowedAccounts: []types.AccountID{stagingRootKey},
			Logger:          env.logger,
			Metrics:         env.metrics,
		})
	}

	opts = append([]Option{WithTelemetryEndpoints(telemetry)}, opts...)
	return NewChainSpec("Staging Testnet", "staging_testnet", ChainTypeLive, builder, opts...)
}

// CoinnetTestConfig loads the pre-built 1COIN test network.
func CoinnetTestConfig(opts ...Option) (*ChainSpec, error) {
	return loadJSON("coinnet", coinnetTestJSON, opts)
}

// CoinnetMainConfig loads the pre-built 1COIN main network.
func CoinnetMainConfig(opts ...Option) (*ChainSpec, error) {
	return loadJSON("coinnet-main", coinnetMainJSON, opts)
}

func loadJSON(source string, bz []byte, opts []Option) (*ChainSpec, error) {
	cs, err := ChainSpecFromJSONBytes(bz, opts...)
	if err != nil {
		env := optionsEnv(opts)
		env.metrics.observeLoadFailure(source)
		env.logger.Error("failed to load chain spec", "source", source, "err", err)
		return nil, errorsmod.Wrapf(err, "load %s", source)
	}
	return cs, nil
}

// optionsEnv applies opts to a scratch spec to recover the logger and metrics
// that genesis builders run with.
func optionsEnv(opts []Option) *ChainSpec {
	env := &ChainSpec{}
	for _, opt := range opts {
		opt(env)
	}
	if env.logger == nil {
		env.logger = log.NewNopLogger()
	}
	return env
}
