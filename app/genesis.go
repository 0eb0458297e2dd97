package app

import (
	"encoding/json"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/baron-chain/coinnet-bc/app/params"
	"github.com/baron-chain/coinnet-bc/types"
)

// GenesisState is the genesis record rendered per module, each module's
// configuration stored as raw JSON keyed by module name.
type GenesisState map[string]json.RawMessage

// GenesisConfig is the complete runtime state at block zero. It is built once
// and handed to the chain spec serializer; nothing mutates it afterwards.
type GenesisConfig struct {
	System              SystemConfig             `json:"system"`
	Balances            BalancesConfig           `json:"balances"`
	Indices             IndicesConfig            `json:"indices"`
	Session             SessionConfig            `json:"session"`
	Staking             StakingConfig            `json:"staking"`
	Democracy           DemocracyConfig          `json:"democracy"`
	Elections           ElectionsConfig          `json:"elections"`
	Council             CollectiveConfig         `json:"council"`
	TechnicalCommittee  CollectiveConfig         `json:"technicalCommittee"`
	Contracts           ContractsConfig          `json:"contracts"`
	Sudo                SudoConfig               `json:"sudo"`
	Babe                BabeConfig               `json:"babe"`
	ImOnline            ImOnlineConfig           `json:"imOnline"`
	AuthorityDiscovery  AuthorityDiscoveryConfig `json:"authorityDiscovery"`
	Grandpa             GrandpaConfig            `json:"grandpa"`
	TechnicalMembership MembershipConfig         `json:"technicalMembership"`
	Treasury            TreasuryConfig           `json:"treasury"`
	Society             SocietyConfig            `json:"society"`
	Vesting             VestingConfig            `json:"vesting"`
}

type SystemConfig struct {
	// Code is the runtime blob executed from block one.
	Code              hexutil.Bytes      `json:"code"`
	ChangesTrieConfig *ChangesTrieConfig `json:"changesTrieConfig"`
}

type ChangesTrieConfig struct {
	DigestInterval uint32 `json:"digestInterval"`
	DigestLevels   uint32 `json:"digestLevels"`
}

type BalancesConfig struct {
	Balances []Balance `json:"balances"`
}

// Balance is the free balance an account is endowed with.
type Balance struct {
	Account types.AccountID `json:"account"`
	Amount  math.Int        `json:"amount"`
}

type IndicesConfig struct {
	Indices []Index `json:"indices"`
}

type Index struct {
	Index   uint32          `json:"index"`
	Account types.AccountID `json:"account"`
}

type SessionConfig struct {
	Keys []SessionKeyBinding `json:"keys"`
}

// SessionKeyBinding assigns session keys to the validator identified by Validator,
// owned by Account.
type SessionKeyBinding struct {
	Account   types.AccountID   `json:"account"`
	Validator types.AccountID   `json:"validator"`
	Keys      types.SessionKeys `json:"keys"`
}

type StakingConfig struct {
	HistoryDepth          uint32            `json:"historyDepth"`
	ValidatorCount        uint32            `json:"validatorCount"`
	MinimumValidatorCount uint32            `json:"minimumValidatorCount"`
	Invulnerables         []types.AccountID `json:"invulnerables"`
	ForceEra              string            `json:"forceEra"`
	SlashRewardFraction   math.LegacyDec    `json:"slashRewardFraction"`
	CanceledPayout        math.Int          `json:"canceledPayout"`
	Stakers               []Staker          `json:"stakers"`
}

// StakerRole distinguishes validators from nominators in the staker list.
type StakerRole string

const (
	StakerRoleValidator StakerRole = "Validator"
	StakerRoleNominator StakerRole = "Nominator"
	StakerRoleIdle      StakerRole = "Idle"
)

type StakerStatus struct {
	Role    StakerRole        `json:"role"`
	Targets []types.AccountID `json:"targets,omitempty"`
}

// Staker bonds Value from Stash, managed by Controller.
type Staker struct {
	Stash      types.AccountID `json:"stash"`
	Controller types.AccountID `json:"controller"`
	Value      math.Int        `json:"value"`
	Status     StakerStatus    `json:"status"`
}

type DemocracyConfig struct{}

type ElectionsConfig struct {
	Members []ElectionMember `json:"members"`
}

// ElectionMember is a council seat held at genesis together with its bond.
type ElectionMember struct {
	Account types.AccountID `json:"account"`
	Bond    math.Int        `json:"bond"`
}

type CollectiveConfig struct {
	Members []types.AccountID `json:"members"`
}

type ContractsConfig struct {
	CurrentSchedule Schedule `json:"currentSchedule"`
}

// Schedule holds the contract execution limits. EnablePrintln lets contracts
// write to the node log and is meant for development chains only.
type Schedule struct {
	Version       uint32         `json:"version"`
	EnablePrintln bool           `json:"enablePrintln"`
	Limits        ScheduleLimits `json:"limits"`
}

type ScheduleLimits struct {
	EventTopics uint32 `json:"eventTopics"`
	StackHeight uint32 `json:"stackHeight"`
	Globals     uint32 `json:"globals"`
	Parameters  uint32 `json:"parameters"`
	MemoryPages uint32 `json:"memoryPages"`
	TableSize   uint32 `json:"tableSize"`
	BrTableSize uint32 `json:"brTableSize"`
	SubjectLen  uint32 `json:"subjectLen"`
	CodeSize    uint32 `json:"codeSize"`
}

// DefaultSchedule returns the stock contract limits.
func DefaultSchedule() Schedule {
	return Schedule{
		Limits: ScheduleLimits{
			EventTopics: 4,
			StackHeight: 64 * 1024,
			Globals:     256,
			Parameters:  128,
			MemoryPages: 16,
			TableSize:   4096,
			BrTableSize: 256,
			SubjectLen:  32,
			CodeSize:    512 * 1024,
		},
	}
}

type SudoConfig struct {
	Key types.AccountID `json:"key"`
}

type BabeConfig struct {
	Authorities []WeightedAuthority     `json:"authorities"`
	EpochConfig *params.BabeEpochConfig `json:"epochConfig"`
}

type WeightedAuthority struct {
	Key    types.PublicKey `json:"key"`
	Weight uint64          `json:"weight"`
}

type ImOnlineConfig struct {
	Keys []types.PublicKey `json:"keys"`
}

type AuthorityDiscoveryConfig struct {
	Keys []types.PublicKey `json:"keys"`
}

type GrandpaConfig struct {
	Authorities []WeightedAuthority `json:"authorities"`
}

type MembershipConfig struct {
	Members []types.AccountID `json:"members"`
}

type TreasuryConfig struct{}

type SocietyConfig struct {
	Members    []types.AccountID `json:"members"`
	Pot        math.Int          `json:"pot"`
	MaxMembers uint32            `json:"maxMembers"`
}

type VestingConfig struct {
	Vesting []VestingSchedule `json:"vesting"`
}

type VestingSchedule struct {
	Account types.AccountID `json:"account"`
	Begin   uint32          `json:"begin"`
	Length  uint32          `json:"length"`
	Liquid  math.Int        `json:"liquid"`
}

// NewDefaultGenesisState returns a genesis config with every module at its
// empty default.
func NewDefaultGenesisState() GenesisConfig {
	return GenesisConfig{
		Balances: BalancesConfig{Balances: []Balance{}},
		Indices:  IndicesConfig{Indices: []Index{}},
		Session:  SessionConfig{Keys: []SessionKeyBinding{}},
		Staking: StakingConfig{
			HistoryDepth:        84,
			Invulnerables:       []types.AccountID{},
			ForceEra:            "NotForcing",
			SlashRewardFraction: math.LegacyZeroDec(),
			CanceledPayout:      math.ZeroInt(),
			Stakers:             []Staker{},
		},
		Elections:           ElectionsConfig{Members: []ElectionMember{}},
		Council:             CollectiveConfig{Members: []types.AccountID{}},
		TechnicalCommittee:  CollectiveConfig{Members: []types.AccountID{}},
		Contracts:           ContractsConfig{CurrentSchedule: DefaultSchedule()},
		Babe:                BabeConfig{Authorities: []WeightedAuthority{}},
		ImOnline:            ImOnlineConfig{Keys: []types.PublicKey{}},
		AuthorityDiscovery:  AuthorityDiscoveryConfig{Keys: []types.PublicKey{}},
		Grandpa:             GrandpaConfig{Authorities: []WeightedAuthority{}},
		TechnicalMembership: MembershipConfig{Members: []types.AccountID{}},
		Society: SocietyConfig{
			Members: []types.AccountID{},
			Pot:     math.ZeroInt(),
		},
		Vesting: VestingConfig{Vesting: []VestingSchedule{}},
	}
}

// TotalIssuance sums every genesis balance.
func (g GenesisConfig) TotalIssuance() math.Int {
	total := math.ZeroInt()
	for _, b := range g.Balances.Balances {
		total = total.Add(b.Amount)
	}
	return total
}

// ModuleStates renders the config as one raw JSON document per module.
func (g GenesisConfig) ModuleStates() (GenesisState, error) {
	bz, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}

	var state GenesisState
	if err := json.Unmarshal(bz, &state); err != nil {
		return nil, err
	}
	return state, nil
}
