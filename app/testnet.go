package app

import (
	"math/rand"
	"time"

	"cosmossdk.io/math"
	"github.com/cometbft/cometbft/libs/log"

	"github.com/baron-chain/coinnet-bc/app/params"
	"github.com/baron-chain/coinnet-bc/types"
)

var (
	// Endowment is the free balance of every endowed account.
	Endowment = params.DollarsOf(10_000_000)
	// Stash is the bond of every staker and every elected council member.
	Stash = Endowment.QuoRaw(1000)
	// SlashRewardFraction is the share of a slash paid to reporters.
	SlashRewardFraction = math.LegacyNewDecWithPrec(10, 2)
)

// NominationSource picks nomination targets. *rand.Rand satisfies it.
type NominationSource interface {
	// Intn returns a uniform value in [0, n). n is always positive.
	Intn(n int) int
}

// GenesisInitOptions are the inputs of TestnetGenesis.
type GenesisInitOptions struct {
	// Authorities become validators, bonded from their stash.
	Authorities []types.AuthorityKeys
	// Nominators back a random subset of the authorities.
	Nominators []types.AccountID
	// RootKey is the sudo account.
	RootKey types.AccountID
	// EndowedAccounts defaults to DefaultEndowedAccounts when nil.
	EndowedAccounts []types.AccountID
	// EnablePrintln lets contracts print to the node log.
	EnablePrintln bool

	// Rand defaults to a time-seeded source. It is only consulted when there
	// are nominators.
	Rand NominationSource
	// Logger defaults to a no-op logger.
	Logger  log.Logger
	Metrics *GenesisMetrics
	// RuntimeCode defaults to the embedded runtime blob.
	RuntimeCode []byte
}

// TestnetGenesis assembles the genesis config of a test or development
// network. Without nominators the result is a pure function of the options.
func TestnetGenesis(opts GenesisInitOptions) GenesisConfig {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	logger = logger.With("module", ModuleName)

	endowed := endowedAccounts(opts)
	logger.Debug("endowing accounts", "count", len(endowed), "amount", Endowment.String())

	stakers := make([]Staker, 0, len(opts.Authorities)+len(opts.Nominators))
	for _, auth := range opts.Authorities {
		stakers = append(stakers, Staker{
			Stash:      auth.Stash,
			Controller: auth.Controller,
			Value:      Stash,
			Status:     StakerStatus{Role: StakerRoleValidator},
		})
	}

	if len(opts.Nominators) > 0 {
		src := opts.Rand
		if src == nil {
			src = rand.New(rand.NewSource(time.Now().UnixNano()))
		}

		stashes := types.Stashes(opts.Authorities)
		for _, nominator := range opts.Nominators {
			targets := sampleTargets(src, stashes)
			logger.Debug("nominating", "nominator", nominator.String(), "targets", len(targets))
			if opts.Metrics != nil {
				opts.Metrics.NominationTargets.Observe(float64(len(targets)))
			}

			stakers = append(stakers, Staker{
				Stash:      nominator,
				Controller: nominator,
				Value:      Stash,
				Status:     StakerStatus{Role: StakerRoleNominator, Targets: targets},
			})
		}
	}

	code := opts.RuntimeCode
	if code == nil {
		code = WasmBinaryUnwrap()
	}

	genesis := NewDefaultGenesisState()
	genesis.System.Code = code

	genesis.Balances.Balances = make([]Balance, 0, len(endowed))
	for _, acc := range endowed {
		genesis.Balances.Balances = append(genesis.Balances.Balances, Balance{Account: acc, Amount: Endowment})
	}

	genesis.Session.Keys = make([]SessionKeyBinding, 0, len(opts.Authorities))
	for _, auth := range opts.Authorities {
		genesis.Session.Keys = append(genesis.Session.Keys, SessionKeyBinding{
			Account:   auth.Stash,
			Validator: auth.Stash,
			Keys:      auth.SessionKeys(),
		})
	}

	genesis.Staking.ValidatorCount = uint32(len(opts.Authorities)) * 2
	genesis.Staking.MinimumValidatorCount = uint32(len(opts.Authorities))
	genesis.Staking.Invulnerables = types.Stashes(opts.Authorities)
	genesis.Staking.SlashRewardFraction = SlashRewardFraction
	genesis.Staking.Stakers = stakers

	members := firstHalf(endowed)
	genesis.Elections.Members = make([]ElectionMember, 0, len(members))
	for _, acc := range members {
		genesis.Elections.Members = append(genesis.Elections.Members, ElectionMember{Account: acc, Bond: Stash})
	}
	genesis.TechnicalCommittee.Members = firstHalf(endowed)
	genesis.Society.Members = firstHalf(endowed)
	genesis.Society.MaxMembers = params.SocietyMaxMembers

	genesis.Contracts.CurrentSchedule.EnablePrintln = opts.EnablePrintln
	genesis.Sudo.Key = opts.RootKey

	epoch := params.BabeGenesisEpochConfig()
	genesis.Babe.EpochConfig = &epoch

	if opts.Metrics != nil {
		opts.Metrics.EndowedAccounts.Set(float64(len(endowed)))
	}
	return genesis
}

// endowedAccounts returns the explicit or default endowment list followed by
// every authority stash and nominator not already in it, in first-seen order.
func endowedAccounts(opts GenesisInitOptions) []types.AccountID {
	base := opts.EndowedAccounts
	if base == nil {
		base = DefaultEndowedAccounts()
	}

	endowed := make([]types.AccountID, 0, len(base)+len(opts.Authorities)+len(opts.Nominators))
	seen := make(map[types.AccountID]struct{}, cap(endowed))
	add := func(acc types.AccountID) {
		if _, ok := seen[acc]; ok {
			return
		}
		seen[acc] = struct{}{}
		endowed = append(endowed, acc)
	}

	for _, acc := range base {
		add(acc)
	}
	for _, auth := range opts.Authorities {
		add(auth.Stash)
	}
	for _, acc := range opts.Nominators {
		add(acc)
	}
	return endowed
}

// sampleTargets draws a target count below min(MaxNominations, len(stashes))
// and picks that many distinct stashes with a partial Fisher-Yates shuffle.
func sampleTargets(src NominationSource, stashes []types.AccountID) []types.AccountID {
	limit := min(params.MaxNominations, len(stashes))
	if limit == 0 {
		return nil
	}

	count := src.Intn(limit)
	if count == 0 {
		return nil
	}

	pool := append([]types.AccountID(nil), stashes...)
	targets := make([]types.AccountID, 0, count)
	for i := 0; i < count; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		targets = append(targets, pool[i])
	}
	return targets
}

// firstHalf returns the first ceil(len(accounts)/2) accounts.
func firstHalf(accounts []types.AccountID) []types.AccountID {
	n := (len(accounts) + 1) / 2
	return append([]types.AccountID{}, accounts[:n]...)
}
