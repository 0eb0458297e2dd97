package keyring

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace of keyring errors.
const ModuleName = "keyring"

var (
	ErrInvalidSecretURI = errorsmod.Register(ModuleName, 2, "invalid secret uri")
	ErrInvalidPhrase    = errorsmod.Register(ModuleName, 3, "invalid secret phrase")
	ErrDerivation       = errorsmod.Register(ModuleName, 4, "key derivation failed")
	ErrUnknownScheme    = errorsmod.Register(ModuleName, 5, "unknown signature scheme")
	ErrUnknownRole      = errorsmod.Register(ModuleName, 6, "unknown key role")
)
