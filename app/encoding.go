package app

import (
	"github.com/baron-chain/coinnet-bc/app/params"
	"github.com/baron-chain/coinnet-bc/types"
)

// MakeEncodingConfig returns the encoding config with the address format the
// process was configured with.
func MakeEncodingConfig() params.EncodingConfig {
	encodingConfig := params.MakeEncodingConfig()
	encodingConfig.SS58Prefix = types.GetConfig().GetSS58Prefix()
	return encodingConfig
}
