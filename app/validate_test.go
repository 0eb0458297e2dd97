package app

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baron-chain/coinnet-bc/crypto/keyring"
	"github.com/baron-chain/coinnet-bc/types"
)

func TestValidateGenesis(t *testing.T) {
	stranger := keyring.MustAccountIDFromSeed("Stranger")

	testCases := map[string]struct {
		malleate func(g *GenesisConfig)
		expErr   string
	}{
		"valid": {
			malleate: func(*GenesisConfig) {},
		},
		"missing runtime code": {
			malleate: func(g *GenesisConfig) { g.System.Code = nil },
			expErr:   "runtime code",
		},
		"missing sudo key": {
			malleate: func(g *GenesisConfig) { g.Sudo.Key = types.AccountID{} },
			expErr:   "sudo key",
		},
		"duplicate balance": {
			malleate: func(g *GenesisConfig) {
				g.Balances.Balances = append(g.Balances.Balances, g.Balances.Balances[0])
			},
			expErr: "duplicate balance",
		},
		"zero balance": {
			malleate: func(g *GenesisConfig) { g.Balances.Balances[0].Amount = math.ZeroInt() },
			expErr:   "must be positive",
		},
		"validator count below minimum": {
			malleate: func(g *GenesisConfig) { g.Staking.ValidatorCount = 1 },
			expErr:   "below minimum",
		},
		"unendowed staker": {
			malleate: func(g *GenesisConfig) {
				g.Staking.Stakers = append(g.Staking.Stakers, Staker{
					Stash:      stranger,
					Controller: stranger,
					Value:      Stash,
					Status:     StakerStatus{Role: StakerRoleValidator},
				})
			},
			expErr: "is not endowed",
		},
		"zero stake": {
			malleate: func(g *GenesisConfig) { g.Staking.Stakers[0].Value = math.ZeroInt() },
			expErr:   "stake of",
		},
		"validator with targets": {
			malleate: func(g *GenesisConfig) {
				g.Staking.Stakers[0].Status.Targets = []types.AccountID{g.Staking.Stakers[1].Stash}
			},
			expErr: "has nomination targets",
		},
		"unknown role": {
			malleate: func(g *GenesisConfig) { g.Staking.Stakers[0].Status.Role = "Chilled" },
			expErr:   "unknown staker role",
		},
		"nominator backs unknown validator": {
			malleate: func(g *GenesisConfig) {
				g.Staking.Stakers = append(g.Staking.Stakers, nominatorOf(g, stranger))
			},
			expErr: "unknown validator",
		},
		"nominator backs validator twice": {
			malleate: func(g *GenesisConfig) {
				stash := g.Staking.Stakers[0].Stash
				g.Staking.Stakers = append(g.Staking.Stakers, nominatorOf(g, stash, stash))
			},
			expErr: "twice",
		},
		"nominator backs too many validators": {
			malleate: func(g *GenesisConfig) {
				targets := make([]types.AccountID, 16)
				for i := range targets {
					targets[i] = g.Staking.Stakers[0].Stash
				}
				g.Staking.Stakers = append(g.Staking.Stakers, nominatorOf(g, targets...))
			},
			expErr: "limit is 15",
		},
		"nominator backs more validators than exist": {
			malleate: func(g *GenesisConfig) {
				a, b := g.Staking.Stakers[0].Stash, g.Staking.Stakers[1].Stash
				g.Staking.Stakers = append(g.Staking.Stakers, nominatorOf(g, a, b, a))
			},
			expErr: "more validators than exist",
		},
		"unendowed session key owner": {
			malleate: func(g *GenesisConfig) { g.Session.Keys[0].Account = stranger },
			expErr:   "session key owner",
		},
		"short technical committee": {
			malleate: func(g *GenesisConfig) {
				g.TechnicalCommittee.Members = g.TechnicalCommittee.Members[:1]
			},
			expErr: "technical committee has 1 members",
		},
		"reordered society": {
			malleate: func(g *GenesisConfig) {
				m := g.Society.Members
				m[0], m[1] = m[1], m[0]
			},
			expErr: "society member 0",
		},
		"zero council bond": {
			malleate: func(g *GenesisConfig) { g.Elections.Members[0].Bond = math.ZeroInt() },
			expErr:   "council bond",
		},
		"society over capacity": {
			malleate: func(g *GenesisConfig) { g.Society.MaxMembers = 1 },
			expErr:   "society exceeds 1 members",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			genesis := TestnetGenesis(GenesisInitOptions{
				Authorities: AuthoritiesFromSeeds("Alice", "Bob"),
				RootKey:     keyring.MustAccountIDFromSeed("Alice"),
			})
			tc.malleate(&genesis)

			err := ValidateGenesis(genesis)
			if tc.expErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidGenesis)
			assert.Contains(t, err.Error(), tc.expErr)
		})
	}
}

func TestValidateDefaultGenesisState(t *testing.T) {
	err := ValidateGenesis(NewDefaultGenesisState())
	assert.ErrorIs(t, err, ErrInvalidGenesis)
}

// nominatorOf returns a nominator staker funded from the first endowed account.
func nominatorOf(g *GenesisConfig, targets ...types.AccountID) Staker {
	acc := g.Balances.Balances[0].Account
	return Staker{
		Stash:      acc,
		Controller: acc,
		Value:      Stash,
		Status:     StakerStatus{Role: StakerRoleNominator, Targets: targets},
	}
}
