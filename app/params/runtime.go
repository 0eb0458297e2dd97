package params

const (
	// MaxNominations bounds the number of validators a single nominator may back.
	MaxNominations = 16

	// SocietyMaxMembers is the society membership cap set at genesis.
	SocietyMaxMembers = 999

	// AllowedSlotsPrimaryAndSecondaryPlain lets both primary and secondary plain
	// slots author blocks.
	AllowedSlotsPrimaryAndSecondaryPlain = "PrimaryAndSecondaryPlainSlots"
)

// BabeEpochConfig is the block production epoch configuration.
type BabeEpochConfig struct {
	// C is the primary slot probability as a (numerator, denominator) pair.
	C            [2]uint64 `json:"c"`
	AllowedSlots string    `json:"allowedSlots"`
}

// BabeGenesisEpochConfig is the epoch configuration the chain starts with.
func BabeGenesisEpochConfig() BabeEpochConfig {
	return BabeEpochConfig{
		C:            [2]uint64{1, 4},
		AllowedSlots: AllowedSlotsPrimaryAndSecondaryPlain,
	}
}
