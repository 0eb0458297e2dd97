package params

import (
	"github.com/baron-chain/coinnet-bc/types"
)

// EncodingConfig defines how chain specifications are rendered: the address
// format of accounts and keys and the indentation of the JSON document.
type EncodingConfig struct {
	SS58Prefix uint16
	Indent     string
}

// MakeEncodingConfig returns the default encoding configuration.
func MakeEncodingConfig() EncodingConfig {
	return EncodingConfig{
		SS58Prefix: types.DefaultSS58Prefix,
		Indent:     "  ",
	}
}
