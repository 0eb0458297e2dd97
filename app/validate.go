package app

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/baron-chain/coinnet-bc/app/params"
	"github.com/baron-chain/coinnet-bc/types"
)

// ValidateGenesis checks the consistency of a genesis config, whether it was
// assembled locally or decoded from a chain spec.
func ValidateGenesis(g GenesisConfig) error {
	if len(g.System.Code) == 0 {
		return errorsmod.Wrap(ErrInvalidGenesis, "runtime code is required")
	}
	if g.Sudo.Key.IsEmpty() {
		return errorsmod.Wrap(ErrInvalidGenesis, "sudo key is required")
	}

	endowed, err := validateBalances(g.Balances.Balances)
	if err != nil {
		return err
	}
	if err := validateStaking(g.Staking, endowed); err != nil {
		return err
	}

	for _, binding := range g.Session.Keys {
		if _, ok := endowed[binding.Account]; !ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "session key owner %s is not endowed", binding.Account)
		}
	}

	return validateMemberships(g)
}

func validateBalances(balances []Balance) (map[types.AccountID]struct{}, error) {
	endowed := make(map[types.AccountID]struct{}, len(balances))
	for _, b := range balances {
		if _, dup := endowed[b.Account]; dup {
			return nil, errorsmod.Wrapf(ErrInvalidGenesis, "duplicate balance for %s", b.Account)
		}
		if b.Amount.IsNil() || !b.Amount.IsPositive() {
			return nil, errorsmod.Wrapf(ErrInvalidGenesis, "balance of %s must be positive", b.Account)
		}
		endowed[b.Account] = struct{}{}
	}
	return endowed, nil
}

func validateStaking(staking StakingConfig, endowed map[types.AccountID]struct{}) error {
	if staking.ValidatorCount < staking.MinimumValidatorCount {
		return errorsmod.Wrapf(ErrInvalidGenesis, "validator count %d below minimum %d",
			staking.ValidatorCount, staking.MinimumValidatorCount)
	}

	validators := make(map[types.AccountID]struct{})
	for _, s := range staking.Stakers {
		if s.Status.Role == StakerRoleValidator {
			validators[s.Stash] = struct{}{}
		}
	}

	for _, s := range staking.Stakers {
		if _, ok := endowed[s.Stash]; !ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "staker stash %s is not endowed", s.Stash)
		}
		if s.Value.IsNil() || !s.Value.IsPositive() {
			return errorsmod.Wrapf(ErrInvalidGenesis, "stake of %s must be positive", s.Stash)
		}

		switch s.Status.Role {
		case StakerRoleValidator, StakerRoleIdle:
			if len(s.Status.Targets) > 0 {
				return errorsmod.Wrapf(ErrInvalidGenesis, "%s staker %s has nomination targets", s.Status.Role, s.Stash)
			}
		case StakerRoleNominator:
			if err := validateTargets(s, validators); err != nil {
				return err
			}
		default:
			return errorsmod.Wrapf(ErrInvalidGenesis, "unknown staker role %q", s.Status.Role)
		}
	}
	return nil
}

func validateTargets(s Staker, validators map[types.AccountID]struct{}) error {
	targets := s.Status.Targets
	if len(targets) >= params.MaxNominations {
		return errorsmod.Wrapf(ErrInvalidGenesis, "nominator %s backs %d validators, limit is %d",
			s.Stash, len(targets), params.MaxNominations-1)
	}
	if len(targets) > len(validators) {
		return errorsmod.Wrapf(ErrInvalidGenesis, "nominator %s backs more validators than exist", s.Stash)
	}

	seen := make(map[types.AccountID]struct{}, len(targets))
	for _, t := range targets {
		if _, ok := validators[t]; !ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "nominator %s backs unknown validator %s", s.Stash, t)
		}
		if _, dup := seen[t]; dup {
			return errorsmod.Wrapf(ErrInvalidGenesis, "nominator %s backs %s twice", s.Stash, t)
		}
		seen[t] = struct{}{}
	}
	return nil
}

// validateMemberships requires the elected bodies to be the first half of the
// endowed accounts, in balance order.
func validateMemberships(g GenesisConfig) error {
	endowed := make([]types.AccountID, 0, len(g.Balances.Balances))
	for _, b := range g.Balances.Balances {
		endowed = append(endowed, b.Account)
	}
	expected := firstHalf(endowed)

	elected := make([]types.AccountID, 0, len(g.Elections.Members))
	for _, m := range g.Elections.Members {
		if m.Bond.IsNil() || !m.Bond.IsPositive() {
			return errorsmod.Wrapf(ErrInvalidGenesis, "council bond of %s must be positive", m.Account)
		}
		elected = append(elected, m.Account)
	}

	bodies := []struct {
		name    string
		members []types.AccountID
	}{
		{"elections", elected},
		{"technical committee", g.TechnicalCommittee.Members},
		{"society", g.Society.Members},
	}
	for _, body := range bodies {
		if len(body.members) != len(expected) {
			return errorsmod.Wrapf(ErrInvalidGenesis, "%s has %d members, want %d",
				body.name, len(body.members), len(expected))
		}
		for i := range expected {
			if !body.members[i].Equals(expected[i]) {
				return errorsmod.Wrapf(ErrInvalidGenesis, "%s member %d is %s, want %s",
					body.name, i, body.members[i], expected[i])
			}
		}
	}

	if g.Society.MaxMembers > 0 && uint32(len(g.Society.Members)) > g.Society.MaxMembers {
		return errorsmod.Wrapf(ErrInvalidGenesis, "society exceeds %d members", g.Society.MaxMembers)
	}
	return nil
}
