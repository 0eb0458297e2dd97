package types

import (
	"bytes"
	"encoding/json"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// PublicKeyLength is the size of sr25519 and ed25519 public keys.
const PublicKeyLength = 32

// PublicKey is a raw 32-byte public key of any supported scheme.
type PublicKey [PublicKeyLength]byte

// AccountID identifies an account on chain. For sr25519 and ed25519 signers it
// is the signer's public key.
type AccountID [PublicKeyLength]byte

// PublicKeyFromBytes copies bz into a PublicKey.
func PublicKeyFromBytes(bz []byte) (PublicKey, error) {
	var pk PublicKey
	if len(bz) != PublicKeyLength {
		return pk, errorsmod.Wrapf(ErrInvalidPublicKey, "expected %d bytes, got %d", PublicKeyLength, len(bz))
	}
	copy(pk[:], bz)
	return pk, nil
}

// MustPublicKeyFromHex decodes a 0x-prefixed hex literal. It panics on bad input
// and is meant for static key tables.
func MustPublicKeyFromHex(s string) PublicKey {
	pk, err := PublicKeyFromString(s)
	if err != nil {
		panic(err)
	}
	return pk
}

// PublicKeyFromString decodes either a 0x-prefixed hex string or an SS58 address.
func PublicKeyFromString(s string) (PublicKey, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		bz, err := hexutil.Decode(s)
		if err != nil {
			return PublicKey{}, errorsmod.Wrap(ErrInvalidPublicKey, err.Error())
		}
		return PublicKeyFromBytes(bz)
	}
	payload, _, err := SS58Decode(s)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKeyFromBytes(payload)
}

func (pk PublicKey) Bytes() []byte { return pk[:] }

func (pk PublicKey) IsEmpty() bool { return pk == PublicKey{} }

// Hex returns the 0x-prefixed hex form.
func (pk PublicKey) Hex() string { return hexutil.Encode(pk[:]) }

// String returns the SS58 form under the configured network prefix.
func (pk PublicKey) String() string {
	return SS58Encode(pk[:], GetConfig().GetSS58Prefix())
}

func (pk PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(pk.String())
}

func (pk *PublicKey) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return errorsmod.Wrap(ErrInvalidPublicKey, err.Error())
	}
	decoded, err := PublicKeyFromString(s)
	if err != nil {
		return err
	}
	*pk = decoded
	return nil
}

// AccountID returns the account identifier owned by this public key.
func (pk PublicKey) AccountID() AccountID { return AccountID(pk) }

// MustAccountIDFromHex decodes a 0x-prefixed hex literal. It panics on bad input.
func MustAccountIDFromHex(s string) AccountID {
	return MustPublicKeyFromHex(s).AccountID()
}

// AccountIDFromString decodes either a 0x-prefixed hex string or an SS58 address.
func AccountIDFromString(s string) (AccountID, error) {
	pk, err := PublicKeyFromString(s)
	if err != nil {
		return AccountID{}, errorsmod.Wrap(ErrInvalidAddress, err.Error())
	}
	return pk.AccountID(), nil
}

func (a AccountID) Bytes() []byte { return a[:] }

func (a AccountID) IsEmpty() bool { return a == AccountID{} }

func (a AccountID) Equals(other AccountID) bool { return bytes.Equal(a[:], other[:]) }

func (a AccountID) Hex() string { return hexutil.Encode(a[:]) }

func (a AccountID) String() string {
	return SS58Encode(a[:], GetConfig().GetSS58Prefix())
}

func (a AccountID) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AccountID) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return errorsmod.Wrap(ErrInvalidAddress, err.Error())
	}
	decoded, err := AccountIDFromString(s)
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}
