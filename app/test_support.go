package app

import (
	"github.com/baron-chain/coinnet-bc/crypto/keyring"
	"github.com/baron-chain/coinnet-bc/types"
)

// DevSeeds are the well-known development identities.
var DevSeeds = []string{"Alice", "Bob", "Charlie", "Dave", "Eve", "Ferdie"}

// DefaultEndowedAccounts returns the development accounts followed by their
// stash accounts.
func DefaultEndowedAccounts() []types.AccountID {
	accounts := make([]types.AccountID, 0, 2*len(DevSeeds))
	for _, seed := range DevSeeds {
		accounts = append(accounts, keyring.MustAccountIDFromSeed(seed))
	}
	for _, seed := range DevSeeds {
		accounts = append(accounts, keyring.MustAccountIDFromSeed(seed+keyring.StashSuffix))
	}
	return accounts
}

// AuthoritiesFromSeeds derives the authority keys of each seed.
func AuthoritiesFromSeeds(seeds ...string) []types.AuthorityKeys {
	authorities := make([]types.AuthorityKeys, 0, len(seeds))
	for _, seed := range seeds {
		authorities = append(authorities, keyring.MustAuthorityKeysFromSeed(seed))
	}
	return authorities
}

// IntegrationTestConfigWithSingleAuthority is a development network run by
// Alice alone, without contract printing.
func IntegrationTestConfigWithSingleAuthority(opts ...Option) (*ChainSpec, error) {
	env := optionsEnv(opts)
	return NewChainSpec("Integration Test", "test", ChainTypeDevelopment, func() GenesisConfig {
		return TestnetGenesis(GenesisInitOptions{
			Authorities: AuthoritiesFromSeeds("Alice"),
			RootKey:     keyring.MustAccountIDFromSeed("Alice"),
			Logger:      env.logger,
			Metrics:     env.metrics,
		})
	}, opts...)
}

// IntegrationTestConfigWithTwoAuthorities is a development network run by
// Alice and Bob.
func IntegrationTestConfigWithTwoAuthorities(opts ...Option) (*ChainSpec, error) {
	env := optionsEnv(opts)
	return NewChainSpec("Integration Test", "test", ChainTypeDevelopment, localTestnetGenesis(env), opts...)
}
