package types

import (
	errorsmod "cosmossdk.io/errors"
)

// RootCodespace is the codespace for errors raised by the types package.
const RootCodespace = "types"

var (
	// ErrInvalidAddress is returned when an SS58 or hex account string cannot be decoded.
	ErrInvalidAddress = errorsmod.Register(RootCodespace, 2, "invalid address")
	// ErrInvalidPublicKey is returned for public keys of the wrong length or encoding.
	ErrInvalidPublicKey = errorsmod.Register(RootCodespace, 3, "invalid public key")
)
