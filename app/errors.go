package app

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace of genesis and chain spec errors.
const ModuleName = "genesis"

var (
	ErrInvalidGenesis     = errorsmod.Register(ModuleName, 2, "invalid genesis")
	ErrMalformedChainSpec = errorsmod.Register(ModuleName, 3, "malformed chain spec")
	ErrUnknownChain       = errorsmod.Register(ModuleName, 4, "unknown chain")
	ErrInvalidTelemetry   = errorsmod.Register(ModuleName, 5, "invalid telemetry endpoint")
	ErrMissingRuntime     = errorsmod.Register(ModuleName, 6, "runtime code not available")
)
